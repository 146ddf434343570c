/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Run configuration for langgen. Values come from viper, which layers
command-line flags over an optional config file over LANGGEN_* environment
variables over the defaults registered here.
*/

package config

import (
	"fmt"
	"strings"

	"github.com/kleascm/langgen/pkg/corpus"
	"github.com/kleascm/langgen/pkg/language"
	"github.com/kleascm/langgen/pkg/logging"
	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix, e.g. LANGGEN_SEED
const EnvPrefix = "LANGGEN"

// Keys
const (
	KeySeed           = "seed"
	KeyWorkers        = "workers"
	KeySamples        = "samples"
	KeyAlpha          = "alpha"
	KeyMaxRejections  = "max_rejections"
	KeyEnumerateLimit = "enumerate_limit"
	KeyOutputDir      = "output_dir"
	KeyFormat         = "format"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
	KeyLogDir         = "log_dir"
	KeyLogMaxFiles    = "log_max_files"
	KeyLogCaller      = "log_caller"
	KeyLogColors      = "log_colors"
)

// Config holds everything a langgen run needs
type Config struct {
	Seed           int64   `mapstructure:"seed"`
	Workers        int     `mapstructure:"workers"`
	Samples        int     `mapstructure:"samples"`
	Alpha          float64 `mapstructure:"alpha"`
	MaxRejections  int     `mapstructure:"max_rejections"`
	EnumerateLimit int     `mapstructure:"enumerate_limit"`
	OutputDir      string  `mapstructure:"output_dir"`
	Format         string  `mapstructure:"format"`

	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	LogDir      string `mapstructure:"log_dir"`
	LogMaxFiles int    `mapstructure:"log_max_files"`
	LogCaller   bool   `mapstructure:"log_caller"`
	LogColors   bool   `mapstructure:"log_colors"`
}

// SetDefaults registers the default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySeed, int64(1))
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeySamples, 1000)
	v.SetDefault(KeyAlpha, corpus.DefaultAlpha)
	v.SetDefault(KeyMaxRejections, language.DefaultMaxRejections)
	v.SetDefault(KeyEnumerateLimit, 20)
	v.SetDefault(KeyOutputDir, "./reports")
	v.SetDefault(KeyFormat, string(corpus.FormatText))

	v.SetDefault(KeyLogLevel, string(logging.LogLevelInfo))
	v.SetDefault(KeyLogFormat, string(logging.LogFormatCustom))
	v.SetDefault(KeyLogDir, "")
	v.SetDefault(KeyLogMaxFiles, 10)
	v.SetDefault(KeyLogCaller, false)
	v.SetDefault(KeyLogColors, true)
}

// Load reads an optional config file and the environment into a Config.
// configFile may be empty.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &c, nil
}

// Validate checks the Config for out-of-range values
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	if c.Samples < 0 {
		return fmt.Errorf("samples must not be negative")
	}
	if c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("alpha must be in (0, 1], got %v", c.Alpha)
	}
	if c.MaxRejections < 1 {
		return fmt.Errorf("max_rejections must be positive")
	}
	if c.EnumerateLimit < 0 {
		return fmt.Errorf("enumerate_limit must not be negative")
	}
	if _, err := corpus.ParseFormat(c.Format); err != nil {
		return err
	}
	return c.Logger().ValidateLevelAndFormat()
}

// Logger returns the logging configuration
func (c *Config) Logger() *logging.LoggerConfig {
	return &logging.LoggerConfig{
		Level:     logging.LogLevel(strings.ToLower(c.LogLevel)),
		Format:    logging.LogFormat(strings.ToLower(c.LogFormat)),
		OutputDir: c.LogDir,
		MaxFiles:  c.LogMaxFiles,
		Timestamp: true,
		Caller:    c.LogCaller,
		Colors:    c.LogColors,
	}
}

// Sampler returns the worker pool settings
func (c *Config) Sampler() corpus.SamplerConfig {
	return corpus.SamplerConfig{
		Workers: c.Workers,
		Seed:    c.Seed,
		Alpha:   c.Alpha,
	}
}
