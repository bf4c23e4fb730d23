// cmd/migrate.go
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"go_5_prayer_journal/internal/config"
	"go_5_prayer_journal/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closer := setupLogger(config.Cfg.Log.Level, config.Cfg.Log.File)
		defer closer.Close()

		db, err := repository.NewDB(config.Cfg.Database.Driver, config.Cfg.Database.URL, logger)
		if err != nil {
			return fmt.Errorf("initializing database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("getting sql.DB: %w", err)
		}
		defer sqlDB.Close()

		if err := repository.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
		logger.Info("Database migrated", slog.String("driver", config.Cfg.Database.Driver))
		return nil
	},
}
