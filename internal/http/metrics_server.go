package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/echo/internal/metrics"
)

// readinessTimeout bounds the database ping of the readiness probe.
const readinessTimeout = 2 * time.Second

// MetricsServer serves Prometheus metrics and the readiness probe on a separate port,
// outside the session middleware.
type MetricsServer struct {
	listener
}

// NewMetricsServer creates the metrics server. /metrics is only mounted when
// metricsProvider is non-nil; /ready is always mounted.
func NewMetricsServer(
	host string,
	port int,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
	db *sql.DB,
) *MetricsServer {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(logger))

	if metricsProvider != nil {
		router.GET("/metrics", gin.WrapH(metricsProvider.Handler()))
	}
	router.GET("/ready", readinessHandler(db))

	s := &MetricsServer{listener: newListener("metrics server", host, port, logger)}
	s.server.Handler = router
	return s
}

// readinessHandler reports whether the database answers a ping.
func readinessHandler(db *sql.DB) gin.HandlerFunc {
	notReady := gin.H{
		"status":     "not_ready",
		"components": gin.H{"database": "error"},
	}

	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, notReady)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, notReady)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"components": gin.H{"database": "ok"},
		})
	}
}
