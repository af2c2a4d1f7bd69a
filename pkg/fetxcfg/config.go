// Package fetxcfg supplies shared defaults for the fetx command-line
// tools: an optional .fetx.yaml in the working directory and FETX_*
// environment variables, either of which a command-line flag overrides.
package fetxcfg

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds the tool defaults viper resolved.
type Config struct {
	TimeLimit int    `mapstructure:"time_limit"`
	LogLevel  string `mapstructure:"log_level"`
}

// Load resolves the config from .fetx.yaml (if present) and FETX_*
// environment variables. A missing config file is not an error; a
// malformed one is.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("time_limit", 0)
	v.SetDefault("log_level", "info")

	v.SetConfigName(".fetx")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("fetx")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// NewLogger builds a console logger at the given level, writing to
// stderr so tool output on stdout stays machine-readable. An
// unrecognized level falls back to info.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}
