// Package config loads the optional project-level defaults a saddlecheck
// invocation falls back to when a flag isn't given explicitly.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the subset of CLI behavior a .saddlecheck.yaml file may
// override. Flags passed on the command line always take precedence over
// these values; these values always take precedence over the built-in
// defaults returned by Defaults.
type Config struct {
	Format     string `mapstructure:"format"`
	Color      string `mapstructure:"color"`
	Concurrent bool   `mapstructure:"concurrent"`
}

// Defaults returns the built-in configuration used when no config file is
// found and no flags override it.
func Defaults() Config {
	return Config{Format: "text", Color: "auto", Concurrent: false}
}

// Load reads a .saddlecheck.yaml from cfgFile, or from the working
// directory if cfgFile is empty. When cfgFile is empty and no
// .saddlecheck.yaml is found, that is not an error: the result is Defaults.
// An explicit cfgFile that cannot be read is reported as an error.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	cfg := Defaults()
	v.SetDefault("format", cfg.Format)
	v.SetDefault("color", cfg.Color)
	v.SetDefault("concurrent", cfg.Concurrent)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".saddlecheck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
