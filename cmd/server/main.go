package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/jesquared/prophealth/internal/config"
	"github.com/jesquared/prophealth/internal/health"
	"github.com/jesquared/prophealth/internal/scheduler"
	"github.com/jesquared/prophealth/internal/server/handlers"
	"github.com/jesquared/prophealth/internal/server/router"
	portfoliosvc "github.com/jesquared/prophealth/internal/service/portfolio"
	sessionsvc "github.com/jesquared/prophealth/internal/service/session"
	weathersvc "github.com/jesquared/prophealth/internal/service/weather"
	"github.com/jesquared/prophealth/internal/store"
	"github.com/jesquared/prophealth/pkg/clients/openweather"
	"github.com/jesquared/prophealth/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	if cfg.Weather.APIKey == "" {
		baseLogger.Warn("weather api key missing, weather panels will show a configuration notice")
	}

	calc := health.NewCalculator()
	portfolioStore := store.New()

	portfolioSvc := portfoliosvc.NewService(portfolioStore, calc, baseLogger.Named("svc.portfolio"))
	sessionMgr := sessionsvc.NewManager(cfg.Access.Code, baseLogger.Named("svc.session"))

	weatherClient := openweather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey)
	weatherSvc := weathersvc.NewService(weatherClient, cfg.Weather.CacheTTL, baseLogger.Named("svc.weather"))

	authHandler := handlers.NewAuthHandler(sessionMgr, portfolioSvc, baseLogger.Named("handlers.auth"))
	propertyHandler := handlers.NewPropertyHandler(portfolioSvc, baseLogger.Named("handlers.property"))
	dashboardHandler := handlers.NewDashboardHandler(portfolioSvc, calc, weatherSvc, baseLogger.Named("handlers.dashboard"))
	engine := router.New(authHandler, propertyHandler, dashboardHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, portfolioSvc, weatherSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
