package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the goofx command configuration.
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Output OutputConfig `mapstructure:"output"`
}

type InputConfig struct {
	// Charset is one of auto, utf-8 or windows-1252.
	Charset string `mapstructure:"charset"`
}

type OutputConfig struct {
	// Format is one of table or summary.
	Format string `mapstructure:"format"`
}

// NewDefaultConfig returns the configuration used when no file or environment overrides it.
func NewDefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Charset: charsetAuto},
		Output: OutputConfig{Format: formatTable},
	}
}

// loadConfig reads the config file, if any, and GOOFX_* environment overrides.
func loadConfig(v *viper.Viper, path string) (*Config, error) {
	defaults := NewDefaultConfig()
	v.SetDefault("input.charset", defaults.Input.Charset)
	v.SetDefault("output.format", defaults.Output.Format)

	v.SetEnvPrefix("GOOFX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("goofx")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Input.Charset {
	case charsetAuto, charsetUTF8, charsetWindows1252:
	default:
		return fmt.Errorf("unknown input charset %q", c.Input.Charset)
	}
	switch c.Output.Format {
	case formatTable, formatSummary:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	return nil
}
