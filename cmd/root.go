package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katiamach/rainfall-console/internal/api"
	"github.com/katiamach/rainfall-console/internal/config"
	"github.com/katiamach/rainfall-console/internal/logger"
)

func rootCommand() *cobra.Command {
	v := viper.New()
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "rainfall-console",
		Short:         "Operator console for the rainfall prediction API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the console page API and event stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlag(config.KeyLogLevel, cmd.Flags().Lookup("log-level")); err != nil {
				return fmt.Errorf("error binding flags: %w", err)
			}
			if err := v.BindPFlag(config.KeyPort, cmd.Flags().Lookup("port")); err != nil {
				return fmt.Errorf("error binding flags: %w", err)
			}

			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			logger.SetLevel(cfg.LogLevel)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return api.RunAPI(ctx, cfg)
		},
	}
	serveCmd.Flags().String("port", "8080", "Port to listen on")

	rootCmd.AddCommand(serveCmd)

	return rootCmd
}
