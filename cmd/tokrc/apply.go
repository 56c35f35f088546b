package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/tokrc/pkg/config"
	"github.com/walteh/tokrc/pkg/log"
	"github.com/walteh/tokrc/pkg/operation"
	"github.com/walteh/tokrc/pkg/replace"
	"gitlab.com/tozd/go/errors"
)

// newApplyCmd creates the apply command
func newApplyCmd() *cobra.Command {
	var (
		destination string
		async       bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply token replacements to the configured source tree",
		Long: `Apply loads the configuration, builds the replacement engine, and runs
every selected file through it. Configuration problems (missing
replacements, invalid prefix) abort before any file is touched; bad
tokens inside files are reported and removed, never fatal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := zerolog.Ctx(ctx).With().Str("command", "apply").Logger()
			ctx = logger.WithContext(ctx)

			// Load config
			cfg, err := config.Load(ctx, configFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			// Apply flag overrides
			if destination != "" {
				cfg.Destination = filepath.Clean(destination)
			}
			if async {
				cfg.Async = true
			}
			if debug {
				cfg.Debug = true
			}

			// Create console logger and diagnostic sink
			level := zerolog.InfoLevel
			if cfg.Debug {
				level = zerolog.DebugLevel
			}
			console := log.New(os.Stdout, level)
			reporter := log.NewConsoleReporter(os.Stderr, logger)

			// Build the engine; this is where configuration errors surface,
			// before any file is processed
			engineOpts := cfg.EngineOptions()
			engineOpts.Reporter = reporter
			engine, err := replace.New(ctx, engineOpts)
			if err != nil {
				return errors.Errorf("building engine: %w", err)
			}

			// Create and run the apply operation
			op, err := operation.NewApplyOperation(operation.Options{
				Config:  cfg,
				Engine:  engine,
				Logger:  &logger,
				Console: console,
			})
			if err != nil {
				return errors.Errorf("creating operation: %w", err)
			}

			runner := operation.NewRunner(&logger)
			if err := runner.Run(ctx, op); err != nil {
				console.Error("apply failed")
				return errors.Errorf("running apply: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&destination, "destination", "", "override destination path")
	cmd.Flags().BoolVar(&async, "async", false, "process files concurrently")

	return cmd
}
