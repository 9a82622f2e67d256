package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/cli"
	"fintrack/internal/events"
	apphttp "fintrack/internal/http"
	"fintrack/internal/ledger"
	applog "fintrack/internal/log"
	"fintrack/internal/services"
	"fintrack/internal/session"
	"fintrack/internal/storage"
)

func main() {
	cli.LoadEnvFile()
	slogger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(slogger)

	logger := applog.New(applog.DefaultConfig())

	store := cli.InitStore(slogger, cfg)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close store", applog.FieldError, err.Error())
		}
	}()

	repo := storage.NewRepository(store)
	sessions := session.NewManager(repo)
	book := ledger.NewBook(repo)

	// The broker is optional. Without AMQP_URL mutations still work,
	// they just emit no events.
	var publisher *events.Publisher
	if cfg.AMQPURL != "" {
		p, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("AMQP unavailable, transaction events disabled", applog.FieldError, err.Error())
		} else {
			publisher = p
			logger.Info("AMQP publisher connected", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	svc := services.NewLedgerService(sessions, book, repo, publisher)
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Error("Failed to close service", applog.FieldError, err.Error())
		}
	}()

	// Pick up a persisted session from a previous run.
	if err := svc.Restore(context.Background()); err != nil {
		logger.Warn("Session restore failed, starting anonymous", applog.FieldError, err.Error())
	}

	srv := apphttp.NewServer(":"+cfg.Port, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting fintrack server",
			"port", cfg.Port,
			"backend", cfg.DataBackend,
			applog.FieldOperation, applog.OpStartup)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received", applog.FieldOperation, applog.OpShutdown)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", applog.FieldError, err.Error())
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
