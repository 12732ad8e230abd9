package cmd

import (
	"errors"
	"fmt"

	"github.com/beanboi7/chyp8/emu/statsview"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/viper"
)

const (
	frontendPixel    = "pixel"
	frontendTerminal = "terminal"
)

var errInvalidConfig = errors.New("invalid configuration")

// Config holds the settings merged from flags, environment and config file.
type Config struct {
	Clock    int    `mapstructure:"clock"`
	Refresh  int    `mapstructure:"refresh"`
	Frontend string `mapstructure:"frontend"`
	Mute     bool   `mapstructure:"mute"`
	Seed     int64  `mapstructure:"seed"`
	Trace    bool   `mapstructure:"trace"`

	Debug bool `mapstructure:"debug"`
	Quiet bool `mapstructure:"quiet"`

	StatsView     bool   `mapstructure:"statsview"`
	StatsViewAddr string `mapstructure:"statsview-addr"`
}

func setDefaults() {
	viper.SetDefault("clock", 700)
	viper.SetDefault("refresh", 60)
	viper.SetDefault("frontend", frontendPixel)
	viper.SetDefault("mute", false)
	viper.SetDefault("seed", 0)
	viper.SetDefault("trace", false)
	viper.SetDefault("statsview", false)
	viper.SetDefault("statsview-addr", statsview.DefaultAddress)
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Clock <= 0 {
		return fmt.Errorf("%w: clock must be positive, got %d", errInvalidConfig, c.Clock)
	}
	if c.Refresh <= 0 {
		return fmt.Errorf("%w: refresh must be positive, got %d", errInvalidConfig, c.Refresh)
	}
	switch c.Frontend {
	case frontendPixel, frontendTerminal:
	default:
		return fmt.Errorf("%w: unsupported frontend '%s'", errInvalidConfig, c.Frontend)
	}
	return nil
}

// newLogger creates a logger with appropriate settings
func newLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
