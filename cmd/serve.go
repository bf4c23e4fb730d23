// cmd/serve.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"go_5_prayer_journal/internal/config"
	"go_5_prayer_journal/internal/handlers"
	"go_5_prayer_journal/internal/repository"
	"go_5_prayer_journal/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServer(ctx, &config.Cfg)
	},
}

func runServer(ctx context.Context, cfg *config.Config) error {
	logger, closer := setupLogger(cfg.Log.Level, cfg.Log.File)
	defer closer.Close()

	logger.Info("Application starting...", slog.String("version", config.AppVersion))

	db, err := repository.NewDB(cfg.Database.Driver, cfg.Database.URL, logger)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting sql.DB: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", slog.Any("error", err))
		} else {
			logger.Info("Database connection closed.")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
	}

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      newRouter(db, sqlDB, logger, cfg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %s: %w", cfg.Server.Port, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	err = g.Wait()
	logger.Info("Server exiting")
	return err
}

// newRouter はリポジトリ・サービス・ハンドラを組み立てます
func newRouter(db *gorm.DB, pinger handlers.Pinger, logger *slog.Logger, cfg *config.Config) http.Handler {
	tagRepo := repository.NewGormTagRepository()
	personRepo := repository.NewGormPersonRepository()
	entryRepo := repository.NewGormJournalEntryRepository()
	prRepo := repository.NewGormPrayerRequestRepository()
	updateRepo := repository.NewGormPrayerRequestUpdateRepository()

	paging := handlers.Pagination{
		DefaultLimit: cfg.App.DefaultPageLimit,
		MaxLimit:     cfg.App.MaxPageLimit,
	}

	return handlers.NewRouter(handlers.Handlers{
		Health:         handlers.NewHealthHandler(pinger, config.AppVersion),
		Tags:           handlers.NewTagHandler(service.NewTagService(db, tagRepo), paging),
		People:         handlers.NewPersonHandler(service.NewPersonService(db, personRepo, prRepo), paging),
		Journal:        handlers.NewJournalHandler(service.NewJournalService(db, entryRepo, prRepo, tagRepo, personRepo), paging),
		PrayerRequests: handlers.NewPrayerRequestHandler(service.NewPrayerRequestService(db, prRepo, tagRepo, personRepo), paging),
		Updates:        handlers.NewPrayerRequestUpdateHandler(service.NewPrayerRequestUpdateService(db, prRepo, updateRepo)),
	}, handlers.RouterOptions{
		Logger: logger,
		CORS: cors.Options{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   cfg.CORS.AllowedMethods,
			AllowedHeaders:   cfg.CORS.AllowedHeaders,
			ExposedHeaders:   cfg.CORS.ExposedHeaders,
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           cfg.CORS.MaxAge,
		},
	})
}
