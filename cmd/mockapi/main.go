// Package main runs the mock collaborator API and serves the compiled form.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vcrobe/userform/config"
	"github.com/vcrobe/userform/internal/mockapi"
	"github.com/vcrobe/userform/internal/mockapi/storage"
	"github.com/vcrobe/userform/internal/transport/http/handlers"
	"github.com/vcrobe/userform/internal/transport/http/middleware"
	"github.com/vcrobe/userform/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	seed, err := storage.LoadSeed(cfg.MockAPI.SeedFile)
	if err != nil {
		log.Errorw("seed load error", "error", err)
		return
	}

	registry, err := storage.New(cfg, seed, log)
	if err != nil {
		log.Errorw("registry initialization error", "error", err)
		return
	}
	if lc, ok := registry.(storage.Lifecycle); ok {
		if err := lc.OnStart(ctx); err != nil {
			log.Errorw("registry start error", "error", err)
			return
		}
		defer func() {
			_ = lc.OnStop(context.Background())
		}()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := mockapi.NewService(registry, log,
		mockapi.WithLatency(cfg.MockAPI.Latency),
		mockapi.WithLimiter(mockapi.NewClientLimiter(cfg.RateLimit)),
		mockapi.WithMetrics(mockapi.NewMetrics(reg)),
	)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))
	serv.Use(middleware.RequestTimeout(cfg.HTTP.RequestTimeout))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	serv.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.NewHandler(log, svc).Register(serv)

	if cfg.Server.StaticDir != "" {
		serv.Static("/", cfg.Server.StaticDir)
	}

	go func() {
		log.Infow("listening", "addr", cfg.ServerAddr(), "storage", cfg.Storage.Driver)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
