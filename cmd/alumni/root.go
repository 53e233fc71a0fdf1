package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"alumni/internal/alumni"
	"alumni/internal/config"
)

// Version is set via ldflags at build time.
var Version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "alumni",
	Short:        "Alumni showcase and registration site",
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "alumni %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "alumni.yml", "config file path")
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and validates the configuration and builds a logger
// writing to logOut.
func loadConfig(logOut io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	level, _ := cfg.LogLevel()

	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: level,
	}))
	return cfg, logger, nil
}

func newAlumniService(cfg *config.Config, logger *slog.Logger) *alumni.Service {
	return alumni.NewService(alumni.NewSource(cfg.Dataset.Path), alumni.ServiceConfig{
		PageSize:     cfg.PageSize,
		CacheTTL:     cfg.Dataset.CacheTTL,
		FetchTimeout: cfg.Dataset.FetchTimeout,
		Images: alumni.ImageConfig{
			Prefix:       cfg.Assets.ImagePrefix,
			DefaultImage: cfg.Assets.DefaultImage,
		},
	}, logger)
}
