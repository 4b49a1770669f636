package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sebuszqo/FinanceTracker/internal/config"
	"github.com/sebuszqo/FinanceTracker/internal/logger"
)

var (
	cfg     *config.Config
	rootCmd = &cobra.Command{
		Use:               "FinanceTracker",
		Short:             "Personal finance tracker API",
		Long:              `FinanceTracker serves a JSON API for managing spending categories and income/expense transactions.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("port", "8080", "HTTP listen port")

	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyPort, rootCmd.PersistentFlags().Lookup("port"))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	dotEnvErr := config.LoadDotEnv()
	config.SetDefaults(viper.GetViper())

	loaded, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	if err := logger.Init(loaded.LogLevel, loaded.LogFormat); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	if dotEnvErr != nil {
		log.Debug().Err(dotEnvErr).Msg("no .env file loaded, continuing with system environment variables")
	}

	cfg = loaded
	log.Debug().Str("port", cfg.Port).Strs("cors_allowed_origins", cfg.CORSAllowedOrigins).Msg("configuration loaded")
	return nil
}
