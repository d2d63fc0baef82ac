package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelhub-backend/config"
	"hotelhub-backend/logger"
	"hotelhub-backend/metrics"
	"hotelhub-backend/routes"
	"hotelhub-backend/services"
	"hotelhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const appName = "hotelhub-backend"

func main() {
	cfg := config.Load()

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
		ServiceName: appName,
	}); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	zlog := logger.GetLogger()
	defer zlog.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	zlog.Info("starting", cfg.LogFields()...)
	if cfg.UsesDefaultSecret() {
		zlog.Warn("SECRET_KEY not set, sessions are signed with the development key")
	}

	httpMetrics := metrics.NewHTTPMetrics(appName)

	db, ready := openDatabase(cfg)
	if db != nil {
		defer func() {
			if err := config.CloseDB(db); err != nil {
				zlog.Error("failed to close database", zap.Error(err))
			}
		}()
	}

	var (
		r         *gin.Engine
		scheduler *cron.Cron
		err       error
	)
	if ready {
		r, err = routes.SetupRouter(routes.Deps{
			DB:       db,
			Config:   cfg,
			Sessions: utils.NewSessionManager(cfg.Session.SecretKey, cfg.Session.ExpiryHours, cfg.Session.Secure),
			Metrics:  httpMetrics,
			Notifier: services.NewNotificationService(db, cfg.SMTP, cfg.Twilio),
		})
		if err == nil {
			scheduler, err = services.NewAnalyticsService(db).StartScheduler(cfg.AnalyticsSchedule)
		}
	} else {
		zlog.Warn("database unavailable, serving fallback routes")
		r, err = routes.SetupFallbackRouter(httpMetrics)
	}
	if err != nil {
		zlog.Fatal("failed to set up server", zap.Error(err))
	}

	printRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}
}

// openDatabase connects and prepares the schema. A false result means the
// process should run in fallback mode.
func openDatabase(cfg *config.Config) (*gorm.DB, bool) {
	db, err := config.ConnectDB(cfg.DB)
	if err != nil {
		logger.GetLogger().Error("database connection failed", zap.Error(err))
		return nil, false
	}
	return db, services.EnsureSchema(db, cfg.Seed)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
