package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wanderly-app/wanderly-api/geo"
	"github.com/wanderly-app/wanderly-api/planner"
	"github.com/wanderly-app/wanderly-api/store"
)

var log = logrus.WithField("prefix", "api")

// Config holds the server settings read at startup.
type Config struct {
	Port        int
	TraceMode   bool
	DevTools    bool
	CORSOrigins []string

	JWTSecret string
	TokenTTL  time.Duration

	DefaultRadiusKm float64
	NearbyLimit     int
	PerDiem         planner.PerDiem
}

// Server is the http front of the catalog.
type Server struct {
	server *http.Server

	store    store.Store
	searcher geo.LocationSearcher
	routes   geo.RouteEstimator
	tokens   *TokenIssuer

	port            int
	traceMode       bool
	devTools        bool
	corsOrigins     []string
	defaultRadiusKm float64
	nearbyLimit     int
	perDiem         planner.PerDiem
}

func NewServer(cfg Config, s store.Store, searcher geo.LocationSearcher, routes geo.RouteEstimator) *Server {
	if routes == nil {
		routes = geo.HaversineRouteEstimator{}
	}

	return &Server{
		store:           s,
		searcher:        searcher,
		routes:          routes,
		tokens:          NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		port:            cfg.Port,
		traceMode:       cfg.TraceMode,
		devTools:        cfg.DevTools,
		corsOrigins:     cfg.CORSOrigins,
		defaultRadiusKm: cfg.DefaultRadiusKm,
		nearbyLimit:     cfg.NearbyLimit,
		perDiem:         cfg.PerDiem,
	}
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.RequestLogger)
	r.Use(s.DumpRequest)
	r.Use(cors.New(s.corsConfig()))

	r.GET("/healthz", s.healthz)

	apiRoute := r.Group("/api")

	auth := apiRoute.Group("/auth")
	{
		auth.POST("/register", s.register)
		auth.POST("/login", s.login)
		auth.GET("/me", s.authenticate, s.me)
	}

	attractions := apiRoute.Group("/attractions")
	{
		attractions.GET("", s.listAttractions)
		attractions.POST("/nearby", s.nearbyByRoute)
		attractions.GET("/:id", s.getAttraction)
		attractions.POST("/:id/distance", s.attractionDistance)
		attractions.POST("", s.authenticate, s.requireAdmin, s.createAttraction)
		attractions.PUT("/:id", s.authenticate, s.requireAdmin, s.updateAttraction)
		attractions.DELETE("/:id", s.authenticate, s.requireAdmin, s.deleteAttraction)
	}

	apiRoute.GET("/nearby", s.nearby)

	reviews := apiRoute.Group("/reviews")
	{
		reviews.GET("/:attractionId", s.reviewsByAttraction)
		reviews.POST("", s.authenticate, s.createReview)
	}

	users := apiRoute.Group("/users/:id")
	{
		users.GET("/reviews", s.reviewsByUser)
		users.GET("/favorites", s.authenticate, s.listFavorites)
		users.POST("/favorites", s.authenticate, s.requireSelf, s.addFavorite)
		users.DELETE("/favorites/:attractionId", s.authenticate, s.requireSelf, s.removeFavorite)
	}

	trips := apiRoute.Group("/trips")
	{
		trips.POST("/estimate", s.estimateTrip)
		trips.POST("/checkout", s.checkoutTrip)
	}

	apiRoute.GET("/categories", s.categories)
	apiRoute.POST("/dev/reseed", s.requireDevTools, s.reseed)

	return r
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AddAllowHeaders("Authorization", "Geo-Position")
	if len(s.corsOrigins) == 0 || (len(s.corsOrigins) == 1 && s.corsOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.corsOrigins
	}
	return cfg
}

// Run starts the http server and blocks until it stops.
func (s *Server) Run() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.WithField("addr", s.server.Addr).Info("server started")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
