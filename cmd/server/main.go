package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gallegosdmz/pos-front-sub000/internal/cache"
	"github.com/gallegosdmz/pos-front-sub000/internal/checkout"
	"github.com/gallegosdmz/pos-front-sub000/internal/config"
	"github.com/gallegosdmz/pos-front-sub000/internal/infra"
	"github.com/gallegosdmz/pos-front-sub000/internal/router"
	"github.com/gallegosdmz/pos-front-sub000/internal/upstream"
	"github.com/gallegosdmz/pos-front-sub000/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Upstream POS API ─────────────────────────────────────────────────────
	upstreamCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	api := upstream.NewClient(cfg.UpstreamURL, time.Duration(cfg.UpstreamTimeoutSeconds)*time.Second, upstreamCB)

	catalogCache := cache.NewCatalogCache(rdb)
	catalogSource := cache.NewCatalogSource(catalogCache, api)

	// ── Async receipt pipeline ───────────────────────────────────────────────
	// Worker handlers are wired here (composition root) so that the pool
	// has full access to all infrastructure dependencies.
	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)
	workerHandlers := &worker.WorkerHandlers{
		Receipt: worker.NewReceiptWorker(mailer, cfg.ReceiptStoragePath),
	}
	worker.StartWorkerPool(ctx, rdb, workerHandlers, cfg.WorkerPoolSize)

	// ── Checkout sessions ────────────────────────────────────────────────────
	checkoutSvc := checkout.NewService(catalogSource, api, dispatcher)
	checkoutSvc.StartSweeper(ctx)

	r := router.New(cfg, rdb, upstreamCB, api, catalogCache, catalogSource, checkoutSvc)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("POS gateway listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
