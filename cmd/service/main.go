package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/propdesk/messaging-service/internal/client/centrifugo"
	"github.com/propdesk/messaging-service/internal/config"
	"github.com/propdesk/messaging-service/internal/infra"
	"github.com/propdesk/messaging-service/internal/pkg/directory"
	"github.com/propdesk/messaging-service/internal/pkg/jwt"
	"github.com/propdesk/messaging-service/internal/pkg/validator"
	"github.com/propdesk/messaging-service/internal/repository/memory"
	db "github.com/propdesk/messaging-service/internal/repository/postgres"
	"github.com/propdesk/messaging-service/internal/rest"
	"github.com/propdesk/messaging-service/internal/service/inbox"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	names, err := directory.Load(cfg.Directory.File)
	if err != nil {
		log.Fatalf("failed to load name directory: %v", err)
	}

	var repo inbox.Repository
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		dbRepo := db.New(cfg)
		defer dbRepo.Close()
		repo = dbRepo
	default:
		repo = memory.New()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := infra.NewMetrics(registry)

	recorders := infra.FanoutMetrics{metrics}
	platformMetrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	} else {
		defer platformMetrics.Disconnect()
		recorders = append(recorders, infra.NewGraphiteMetrics(platformMetrics))
	}

	centrifugeClient := centrifugo.New(cfg)
	defer centrifugeClient.Close()

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Centrifuge.JWTSecret)

	conversations := inbox.New(repo, names, inbox.SystemClock{}, inbox.UUIDGenerator{}, recorders)
	handler := rest.New(conversations, centrifugeClient, vldtr, jwtGenerator)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(metrics.HTTP)
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})

	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	limiter := infra.NewLimiterPool(cfg.RateLimit)
	router.Group(func(r chi.Router) {
		r.Use(infra.AuthInterceptorHTTP)
		handler.Register(r, infra.RateLimitHTTP(limiter))
	})

	httpServer := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		log.Fatalf("failed to start TCP listener: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(fmt.Sprintf("listening on %s with %s storage", listener.Addr(), cfg.Storage.Driver))
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
