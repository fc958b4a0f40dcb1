// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tomtom215/moodreel/internal/catalog"
	"github.com/tomtom215/moodreel/internal/config"
	"github.com/tomtom215/moodreel/internal/logging"
	"github.com/tomtom215/moodreel/internal/recommend"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath  string
	catalogPath string
	logLevel    string
	colorMode   string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "moodreel",
		Short:         "Mood-aware movie recommendations",
		Long:          "moodreel ranks movies by how well their genres match your selected genres and mood.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return applyColorMode(opts.colorMode)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: CONFIG_PATH or moodreel.yaml)")
	flags.StringVar(&opts.catalogPath, "catalog", "", "YAML movie catalog (default: built-in catalog)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace|debug|info|warn|error)")
	flags.StringVar(&opts.colorMode, "color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(
		newRecommendCmd(opts),
		newGenresCmd(opts),
		newMoodsCmd(opts),
		newMoviesCmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
	)

	return root
}

func applyColorMode(mode string) error {
	switch strings.ToLower(mode) {
	case "auto", "":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("unsupported color mode %q (must be auto, on or off)", mode)
	}
	return nil
}

// loadConfig resolves the layered configuration. --catalog and --log-level
// override the loaded values.
func loadConfig(opts *globalOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.LoadWithKoanf()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.catalogPath != "" {
		cfg.Catalog.Path = opts.catalogPath
	}
	if opts.logLevel != "" {
		if !logging.ValidLevel(opts.logLevel) {
			return nil, fmt.Errorf("invalid log level %q", opts.logLevel)
		}
		cfg.Logging.Level = opts.logLevel
		cfg.Logging.LevelExplicit = true
	}
	return cfg, nil
}

// newEngine loads the catalog and builds an engine from cfg.
func newEngine(cfg *config.Config) (*recommend.Engine, error) {
	cat, err := catalog.LoadOrDefault(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	engine, err := recommend.NewEngine(cat, engineConfig(cfg), logging.Logger())
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation engine: %w", err)
	}
	return engine, nil
}

func engineConfig(cfg *config.Config) *recommend.Config {
	return &recommend.Config{
		GenreBoost: cfg.Recommend.GenreBoost,
		Limits: recommend.LimitsConfig{
			DefaultK: cfg.Recommend.DefaultK,
			MaxK:     cfg.Recommend.MaxK,
		},
	}
}

// setupOfflineLogging keeps one-shot commands quiet unless a level was set
// by flag, config file or environment.
func setupOfflineLogging(cfg *config.Config, cmd *cobra.Command) {
	level := "warn"
	if cfg.Logging.LevelExplicit {
		level = cfg.Logging.Level
	}
	logging.Init(logging.Config{
		Level:     level,
		Format:    "console",
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    cmd.ErrOrStderr(),
	})
}

// offlineConfig loads configuration and prepares logging for the one-shot
// subcommands.
func offlineConfig(opts *globalOptions, cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	setupOfflineLogging(cfg, cmd)
	return cfg, nil
}

// offlineEngine builds the engine for the one-shot subcommands.
func offlineEngine(opts *globalOptions, cmd *cobra.Command) (*recommend.Engine, error) {
	cfg, err := offlineConfig(opts, cmd)
	if err != nil {
		return nil, err
	}
	return newEngine(cfg)
}
