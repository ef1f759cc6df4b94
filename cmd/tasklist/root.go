package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fastygo/tasklist/internal/config"
	"github.com/fastygo/tasklist/pkg/logger"
)

// app carries what every subcommand needs once the root pre-run has finished.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "tasklist",
		Short:         "Task list HTTP service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if driver, _ := cmd.Flags().GetString("driver"); driver != "" {
				cfg.Database.Driver = driver
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("config error: %w", err)
				}
			}

			zapLogger, err := logger.New(logger.Config{
				Level:    cfg.Logger.Level,
				Encoding: cfg.Logger.Encoding,
				Name:     cfg.AppName,
			})
			if err != nil {
				return fmt.Errorf("logger error: %w", err)
			}

			a.cfg = cfg
			a.logger = zapLogger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
	root.PersistentFlags().String("driver", "", "override DB_DRIVER (postgres or sqlite)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server (default)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.migrate()
			},
		},
	)

	return root
}
