package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bran258/land-roys-v4/internal/config"
	"github.com/Bran258/land-roys-v4/internal/infra"
	"github.com/Bran258/land-roys-v4/internal/repository"
	"github.com/Bran258/land-roys-v4/internal/router"
	"github.com/Bran258/land-roys-v4/internal/worker"

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

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Worker handlers are wired here (composition root) so the pool has full
	// access to infrastructure dependencies.
	mailer := infra.NewMailer(cfg)
	ventaRepo := repository.NewVentaRepository(db)
	movimientoRepo := repository.NewMovimientoRepository(db)
	motoRepo := repository.NewMotoRepository(db)

	notificacionW := worker.NewNotificacionWorker(mailer, cfg.AdminEmail)
	comprobanteW := worker.NewComprobanteWorker(ventaRepo, mailer, cfg.PDFStoragePath)

	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, map[string]worker.Handler{
		worker.QueueNotificaciones: notificacionW.Process,
		worker.QueueComprobantes:   comprobanteW.Process,
	})

	worker.StartReconciliacion(ctx, worker.ReconciliacionConfig{
		VentaRepo:      ventaRepo,
		MovimientoRepo: movimientoRepo,
		MotoRepo:       motoRepo,
	})

	storageCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	r := router.New(cfg, db, rdb, storageCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("land roys backend listening on :%d", cfg.Port)
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
