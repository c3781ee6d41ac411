package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nikofree-web/internal/apiclient"
	"nikofree-web/internal/config"
	"nikofree-web/internal/handlers"
	"nikofree-web/internal/logger"
	"nikofree-web/internal/metrics"
	"nikofree-web/internal/middleware"
	"nikofree-web/internal/server"
	"nikofree-web/internal/services"
	"nikofree-web/internal/session"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logr := logger.New("nikofree-web", cfg.Log.Level, cfg.Log.Format)
	cfg.ApplyTimezone()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Without the API (demo mode) fixture data is served instead
	var backend services.BackendAPI
	if cfg.API.Demo {
		backend = services.NewMockBackend(time.Now)
		logr.Warn("demo mode: serving fixture data instead of the backend API")
	} else {
		backend = apiclient.New(cfg.API.BaseURL, cfg.API.Timeout,
			apiclient.WithLogger(logr),
			apiclient.WithMetrics(m),
		)
	}

	store := session.NewStore(session.Options{
		Secret: cfg.Session.Secret,
		MaxAge: cfg.Session.MaxAge,
		Secure: cfg.Session.Secure,
	})

	cards := services.NewCardBuilder(apiclient.NewImageResolver(cfg.API.ImageBaseURL), cfg.Location())
	eventService := services.NewEventService(backend, cards, cfg.API.EventsPerPage, logr)
	partnerService := services.NewPartnerService(eventService)
	authService := services.NewAuthService(backend, logr, m)
	adminService := services.NewAdminService(backend)
	accountService := services.NewAccountService(backend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rateLimiter := middleware.NewLoginRateLimiter(5, 15*time.Minute)
	go rateLimiter.Run(ctx, time.Minute)

	router := server.NewRouter(server.Deps{
		Store:       store,
		RateLimiter: rateLimiter,
		Public:      handlers.NewPublicHandler(eventService, partnerService, cards, store, services.NoopFollowNotifier{Logger: logr}, m, logr),
		Auth:        handlers.NewAuthHandler(authService, store, m, logr),
		Dashboards:  handlers.NewDashboardHandler(adminService, accountService, store, m, logr),
		Health:      handlers.NewHealthHandler(cfg.API.Demo),
		Gatherer:    registry,
		Logger:      logr,
	})

	srv := server.New(cfg.Addr(), router)

	go func() {
		logr.WithFields(logrus.Fields{
			"addr": cfg.Addr(),
			"env":  cfg.Server.Env,
			"api":  cfg.API.BaseURL,
		}).Info("server starting")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.WithError(err).Error("graceful shutdown failed")
		os.Exit(1)
	}

	logr.Info("server stopped")
}
