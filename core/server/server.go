package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"collabtime-api/core/cache"
	"collabtime-api/core/config"
	"collabtime-api/core/database"
	"collabtime-api/core/logger"
	"collabtime-api/core/middleware"
	"collabtime-api/core/worker"
	"collabtime-api/modules/auth"
	"collabtime-api/modules/invitation"
	"collabtime-api/modules/scheduler"
	"collabtime-api/modules/team"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run boots config, database, redis, the background worker, and the HTTP
// server. It blocks until SIGINT/SIGTERM and then shuts down gracefully.
func Run() error {
	cfg := config.Get()
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	redisCache, err := cache.InitCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}

	worker.InitClient(cfg.Redis)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())

	mw := middleware.NewMiddleware(redisCache)

	// Module registration
	auth.Init(e, db, redisCache, mw)
	team.Init(e, db, mw)
	invitation.Init(e, db, mw)
	scheduler.Init(e, db, redisCache, mw)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Asynq worker runs alongside the HTTP server
	go func() {
		if err := worker.Run(cfg.Redis); err != nil {
			logger.Error("worker stopped", err)
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", err)
		}
	}()
	logger.Info("server started", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
