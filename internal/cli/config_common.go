package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/pesel/internal/config"
	"github.com/vvka-141/pesel/internal/logging"
	"github.com/vvka-141/pesel/internal/report"
	"github.com/vvka-141/pesel/pkg/pesel"
)

// runEnv is everything a subcommand needs after flag and config resolution.
type runEnv struct {
	cfg      *config.Config
	logger   logging.Logger
	builder  *report.Builder
	renderer report.Renderer
}

// newRunEnv resolves configuration with precedence flag > env > file > default.
func newRunEnv(cmd *cobra.Command, flags *rootFlags) (*runEnv, error) {
	logger := logging.NewConsoleLogger(cmd.ErrOrStderr(), flags.verbose)

	cfg, err := loadConfig(flags.configPath, logger)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	applyFlagOverrides(cmd, flags, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Verbose("Output: format=%s mask=%v color=%s", cfg.Output.Format, cfg.Output.Mask, cfg.Output.Color)

	styles := report.NewStyles(cmd.OutOrStdout(), cfg.Output.Color)
	renderer, err := report.NewRenderer(cfg.Output.Format, styles)
	if err != nil {
		return nil, err
	}

	return &runEnv{
		cfg:      cfg,
		logger:   logger,
		builder:  report.NewBuilder(cfg.Output.Mask, cfg.Reference.Namespace),
		renderer: renderer,
	}, nil
}

// loadConfig loads godotenv and the config file.
// A missing default pesel.yaml is not an error; a missing --config path is.
func loadConfig(path string, logger logging.Logger) (*config.Config, error) {
	_ = godotenv.Load()

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load(".")
	}

	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			if path == "" {
				logger.Verbose("No %s found, using defaults", config.ConfigFileName)
				return config.Default(), nil
			}
			return nil, fmt.Errorf("%w: %s: %v", pesel.ErrInvalidConfig, path, err)
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if path != "" {
		logger.Verbose("Loaded config from %s", path)
	} else {
		logger.Verbose("Loaded config from %s", config.ConfigFileName)
	}
	return cfg, nil
}

func applyFlagOverrides(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) {
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = flags.format
	}
	if cmd.Flags().Changed("mask") {
		cfg.Output.Mask = flags.mask
	}
	if cmd.Flags().Changed("color") {
		cfg.Output.Color = flags.color
	}
}
