package main

import (
	"context"
	"linkify/internal/config"
	"linkify/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand. It prepares the
// PostgreSQL page store: the pages table and the job queue tables.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the PostgreSQL page store to the latest schema",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := strg.Migrate(ctx); err != nil {
				logger.Fatal(ctx, "could not migrate page store", zap.Error(err))
			}
			logger.Info(ctx, "page store migrated")
		},
	}

	return cmd
}
