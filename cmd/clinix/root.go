package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/clinixhq/clinix"
	"github.com/clinixhq/clinix/internal/config"
	"github.com/clinixhq/clinix/pkg/core"
)

var (
	verbose        bool
	resetOnCorrupt bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clinix",
	Short: "A local-first clinic appointment manager",
	Long: `Clinix keeps your appointments, notifications and profile in a single
JSON document on disk. Every state-changing command records the change and
its derived notification in one atomic write.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&resetOnCorrupt, "reset-on-corrupt", false, "Reset to the seed document if the state file is corrupt")
}

// mustService resolves the configuration and wires a service, exiting on
// failure.
func mustService() (*core.Service, config.Config) {
	cfg, err := config.Load()
	if err != nil {
		fatal("Failed to load configuration", err)
	}

	opts := []clinix.Option{
		clinix.WithLogger(slog.Default()),
		clinix.WithResetOnCorrupt(resetOnCorrupt),
	}
	if cfg.StateFile != "" {
		opts = append(opts, clinix.WithStateFilename(cfg.StateFile))
	}

	service, err := clinix.New(cfg.StateDir, opts...)
	if err != nil {
		fatal("Failed to initialize clinix", err)
	}
	return service, cfg
}
