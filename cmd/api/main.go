package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/quicklic/clinic-scheduler/internal/config"
	dbpkg "github.com/quicklic/clinic-scheduler/internal/db"
	"github.com/quicklic/clinic-scheduler/internal/logger"
	"github.com/quicklic/clinic-scheduler/internal/observability/metrics"
	"github.com/quicklic/clinic-scheduler/internal/routes"
	"github.com/quicklic/clinic-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()

	zapLog := logger.New(cfg.Env)
	defer zapLog.Sync()

	if !timezone.IsValid(cfg.DefaultTimezone) {
		zapLog.Fatal("invalid DEFAULT_TIMEZONE", zap.String("tz", cfg.DefaultTimezone))
	}
	timezone.SetDefault(cfg.DefaultTimezone)

	db := dbpkg.NewDB(cfg)

	rdb := newRedis(cfg, zapLog)

	m := metrics.NewSchedulingMetrics(prometheus.DefaultRegisterer)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, db, rdb, cfg, zapLog, m)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// newRedis returns nil when redis is unreachable; the slot cache is
// nil-safe and the API keeps working without it.
func newRedis(cfg *config.Config, zapLog *zap.Logger) *redis.Client {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		zapLog.Warn("invalid REDIS_URL, slot cache disabled", zap.Error(err))
		return nil
	}
	return redis.NewClient(opts)
}
