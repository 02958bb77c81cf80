package api

import (
	"net/http/httputil"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DumpRequest is a middleware to dump incoming http requests if the
// trace mode is enabled. The Authorization header is never dumped.
func (s *Server) DumpRequest(c *gin.Context) {
	if s.traceMode {
		req := c.Request.Clone(c.Request.Context())
		req.Header.Del("Authorization")

		dump, err := httputil.DumpRequest(req, false)
		if err != nil {
			log.WithFields(logrus.Fields{
				"prefix": "gin",
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
				"error":  err,
			}).Error("fail to dump request")
		}

		log.WithFields(logrus.Fields{
			"prefix": "gin",
			"req":    string(dump),
		}).Debug("incoming request")
	}

	c.Next()
}

// RequestLogger logs one line per request once it is served.
func (s *Server) RequestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	entry := log.WithFields(logrus.Fields{
		"prefix":  "gin",
		"status":  c.Writer.Status(),
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"latency": time.Since(start).String(),
		"client":  c.ClientIP(),
	})
	if len(c.Errors) > 0 {
		entry = entry.WithField("errors", c.Errors.String())
	}

	switch status := c.Writer.Status(); {
	case status >= 500:
		entry.Error("request served")
	case status >= 400:
		entry.Warn("request served")
	default:
		entry.Info("request served")
	}
}
