package main

import (
	"fmt"

	"github.com/piresc/kurir/internal/pkg/database"
	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		configs, _, zapLogger, err := bootstrap()
		if err != nil {
			return err
		}
		defer zapLogger.Close()

		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		defer postgresClient.Close()

		applied, err := database.Migrate(cmd.Context(), postgresClient.GetDB())
		if err != nil {
			return err
		}
		logger.Info("Migrations applied", logger.Strings("versions", applied))
		return nil
	},
}
