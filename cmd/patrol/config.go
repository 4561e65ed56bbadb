package main

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/patrol/loop"
	"github.com/katalvlaran/patrol/patrol"
)

// Configuration keys, shared by flags, environment and config files.
const (
	keyConfig    = "config"
	keyWorkers   = "workers"
	keyThreshold = "threshold"
	keyExact     = "exact"
	keyLogLevel  = "log-level"
)

const envPrefix = "PATROL"

var (
	errBadWorkers   = errors.New("patrol: workers must be >= 1")
	errBadThreshold = errors.New("patrol: threshold must be >= 1")
)

// Config is the resolved run configuration.
type Config struct {
	Workers   int
	Threshold int
	Exact     bool
	LogLevel  logrus.Level
}

// newViper returns a viper instance with defaults and environment binding.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyWorkers, runtime.GOMAXPROCS(0))
	v.SetDefault(keyThreshold, loop.DefaultThreshold)
	v.SetDefault(keyExact, false)
	v.SetDefault(keyLogLevel, logrus.InfoLevel.String())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadDotEnv loads .env from the working directory if there is one.
// Variables already set in the environment win.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("patrol: load .env: %w", err)
	}
	return nil
}

// loadConfig binds the command's flags, reads the optional config file and
// validates the result.
func loadConfig(v *viper.Viper, cmd *cobra.Command) (Config, error) {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, fmt.Errorf("patrol: bind flags: %w", err)
	}
	if file := v.GetString(keyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("patrol: read config %s: %w", file, err)
		}
	}

	level, err := logrus.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("patrol: %s: %w", keyLogLevel, err)
	}
	c := Config{
		Workers:   v.GetInt(keyWorkers),
		Threshold: v.GetInt(keyThreshold),
		Exact:     v.GetBool(keyExact),
		LogLevel:  level,
	}
	if c.Workers < 1 {
		return Config{}, fmt.Errorf("%w: got %d", errBadWorkers, c.Workers)
	}
	if c.Threshold < 1 {
		return Config{}, fmt.Errorf("%w: got %d", errBadThreshold, c.Threshold)
	}
	return c, nil
}

// options translates c into analysis options.
func (c Config) options(log logrus.FieldLogger) []patrol.Option {
	detect := loop.WithThreshold(c.Threshold)
	if c.Exact {
		detect = loop.WithExact()
	}
	return []patrol.Option{
		patrol.WithWorkers(c.Workers),
		patrol.WithLogger(log),
		patrol.WithDetectOptions(detect),
	}
}
