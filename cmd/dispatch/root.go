package main

import (
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/kurir/internal/pkg/config"
	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/models"
	nrpkg "github.com/piresc/kurir/internal/pkg/newrelic"
	"github.com/spf13/cobra"
)

const appName = "dispatch-service"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "Driver admission and order dispatch service",
	// serve is the default so the container entrypoint needs no arguments
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config/dispatch.env", "env-format configuration file")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// bootstrap loads config and installs the global logger
func bootstrap() (*models.Config, *newrelic.Application, *logger.ZapLogger, error) {
	configs := config.InitConfig(configPath)
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))
	return configs, nrApp, zapLogger, nil
}
