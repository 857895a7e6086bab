package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	pg "vetsoft/internal/adapters/storage/postgres"
	"vetsoft/internal/platform/config"
	"vetsoft/internal/platform/logger"
	"vetsoft/internal/router"
)

//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../internal/docs --outputTypes go

// @title Vetsoft API
// @version 1.0
// @description Alta, edición y baja de clientes, productos, proveedores, veterinarios, mascotas y medicamentos de la clínica.
// @BasePath /
func main() {
	if err := run(); err != nil {
		logger.New(logger.Options{App: "vetsoft"}).Error("server stopped", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.LoggerOptions())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		if cfg.DBMigrate {
			if err := pg.Migrate(ctx, db); err != nil {
				return err
			}
		}
		log.Info("storage ready", map[string]any{"driver": "postgres"})
	} else {
		log.Info("storage ready", map[string]any{"driver": "memory"})
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{DB: db, Logger: log}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
