package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/wanderly-app/wanderly-api/api"
	"github.com/wanderly-app/wanderly-api/geo"
	"github.com/wanderly-app/wanderly-api/planner"
	"github.com/wanderly-app/wanderly-api/schema"
	"github.com/wanderly-app/wanderly-api/store"
	"github.com/wanderly-app/wanderly-api/utils"
)

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", gin.ReleaseMode)
	viper.SetDefault("server.trace", false)
	viper.SetDefault("server.dev_tools", false)
	viper.SetDefault("server.cors_origins", []string{"*"})

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	viper.SetDefault("jwt.ttl", 168*time.Hour)
	viper.SetDefault("bcrypt.cost", 10)

	viper.SetDefault("nearby.default_radius_km", 5)
	viper.SetDefault("nearby.limit", 12)

	viper.SetDefault("planner.accommodation_per_diem", planner.DefaultPerDiem.Accommodation)
	viper.SetDefault("planner.food_per_diem", planner.DefaultPerDiem.Food)

	viper.SetDefault("geocoder.nominatim_endpoint", "https://nominatim.openstreetmap.org")
}

func loadConfig(path string) {
	if err := godotenv.Load(); err != nil {
		log.WithField("prefix", "init").Debug("no .env file found")
	}

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("wanderly")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			log.WithField("prefix", "init").WithError(err).Fatal("fail to read config")
		}
	}
}

func setupLogger() {
	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.WithField("prefix", "init").WithError(err).Warn("unknown log level, use info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if viper.GetString("log.format") == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func newRouteEstimator() geo.RouteEstimator {
	key := viper.GetString("geocoder.google_maps_key")
	if key == "" {
		return geo.HaversineRouteEstimator{}
	}

	g, err := geo.NewGoogleRouteEstimator(key)
	if err != nil {
		log.WithField("prefix", "init").WithError(err).Warn("fail to init google maps client, use straight line estimates")
		return geo.HaversineRouteEstimator{}
	}
	return g
}

func newStore() *store.MemoryStore {
	dataset, err := store.LoadDataset(viper.GetString("seed.file"))
	if err != nil {
		log.WithField("prefix", "init").WithError(err).Fatal("fail to load seed dataset")
	}

	if email := viper.GetString("seed.admin_email"); email != "" {
		dataset.Admin = &schema.AccountInput{
			Username: "admin",
			Email:    email,
			Password: viper.GetString("seed.admin_password"),
		}
	}

	s := store.NewMemoryStore(
		store.WithBcryptCost(viper.GetInt("bcrypt.cost")),
		store.WithDataset(dataset),
	)
	if err := s.Reseed(); err != nil {
		log.WithField("prefix", "init").WithError(err).Fatal("fail to seed store")
	}
	return s
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "", "config file")
	flag.Parse()

	loadConfig(configFile)
	setupLogger()
	gin.SetMode(viper.GetString("server.mode"))

	if viper.GetString("jwt.secret") == "" {
		log.WithField("prefix", "init").Fatal("jwt.secret is required")
	}

	if err := utils.InitI18NBundle(); err != nil {
		log.WithField("prefix", "init").WithError(err).Fatal("fail to init i18n bundle")
	}

	server := api.NewServer(api.Config{
		Port:            viper.GetInt("server.port"),
		TraceMode:       viper.GetBool("server.trace"),
		DevTools:        viper.GetBool("server.dev_tools"),
		CORSOrigins:     viper.GetStringSlice("server.cors_origins"),
		JWTSecret:       viper.GetString("jwt.secret"),
		TokenTTL:        viper.GetDuration("jwt.ttl"),
		DefaultRadiusKm: viper.GetFloat64("nearby.default_radius_km"),
		NearbyLimit:     viper.GetInt("nearby.limit"),
		PerDiem: planner.PerDiem{
			Accommodation: viper.GetFloat64("planner.accommodation_per_diem"),
			Food:          viper.GetFloat64("planner.food_per_diem"),
		},
	},
		newStore(),
		geo.NewNominatimSearcher(viper.GetString("geocoder.nominatim_endpoint")),
		newRouteEstimator(),
	)

	go func() {
		if err := server.Run(); err != nil {
			log.WithField("prefix", "init").WithError(err).Fatal("server stopped")
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	log.WithField("prefix", "init").WithField("signal", sig).Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithField("prefix", "init").WithError(err).Error("fail to shutdown server")
	}
}
