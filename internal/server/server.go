// Package server boots the application: config, database, cache, storage,
// queue workers, and the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/freshbasket/app/jobs"
	"github.com/shashiranjanraj/freshbasket/config"
	"github.com/shashiranjanraj/freshbasket/internal/kernel"
	"github.com/shashiranjanraj/freshbasket/pkg/cache"
	"github.com/shashiranjanraj/freshbasket/pkg/database"
	"github.com/shashiranjanraj/freshbasket/pkg/logger"
	"github.com/shashiranjanraj/freshbasket/pkg/queue"
	"github.com/shashiranjanraj/freshbasket/pkg/storage"
)

// Start boots everything and serves until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if uri := config.LogMongoURI(); uri != "" {
		sink, err := logger.AttachMongoSink(uri, config.LogMongoDB())
		if err != nil {
			logger.Warn("mongo log sink disabled", "error", err)
		} else {
			defer sink.Close()
		}
	}

	if err := database.Connect(); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db := database.DB

	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, cache and OTP store disabled", "error", err)
	}

	storage.Connect()

	jobs.Register()
	if client := cache.Client(); client != nil {
		queue.SetDriver(queue.NewRedisDriver(client, ""))
	}
	queue.UseDB(db)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	queue.StartWorkers(workerCtx, 4)

	k := kernel.New(db)
	defer k.Close()

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           k.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("freshbasket listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
