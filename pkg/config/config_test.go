/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config_test.go
Description: Tests for configuration defaults, file and environment layering,
and validation.
*/

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kleascm/langgen/pkg/config"
	"github.com/kleascm/langgen/pkg/corpus"
	"github.com/kleascm/langgen/pkg/language"
	"github.com/kleascm/langgen/pkg/logging"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaults checks the built-in values
func TestDefaults(t *testing.T) {
	c, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, int64(1), c.Seed)
	assert.Equal(t, 0, c.Workers)
	assert.Equal(t, 1000, c.Samples)
	assert.Equal(t, corpus.DefaultAlpha, c.Alpha)
	assert.Equal(t, language.DefaultMaxRejections, c.MaxRejections)
	assert.Equal(t, 20, c.EnumerateLimit)
	assert.Equal(t, "text", c.Format)
	assert.Equal(t, logging.LogLevelInfo, c.Logger().Level)
	assert.Equal(t, logging.LogFormatCustom, c.Logger().Format)

	sc := c.Sampler()
	assert.Equal(t, int64(1), sc.Seed)
	assert.Equal(t, corpus.DefaultAlpha, sc.Alpha)
}

// TestConfigFile checks values read from YAML
func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "langgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 42\nworkers: 3\nalpha: 0.5\nlog_level: debug\n"), 0644))

	c, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, 3, c.Workers)
	assert.Equal(t, 0.5, c.Alpha)
	assert.Equal(t, logging.LogLevelDebug, c.Logger().Level)

	_, err = config.Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestEnvironment checks LANGGEN_ variables override defaults
func TestEnvironment(t *testing.T) {
	t.Setenv("LANGGEN_SAMPLES", "77")
	t.Setenv("LANGGEN_MAX_REJECTIONS", "5")

	c, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 77, c.Samples)
	assert.Equal(t, 5, c.MaxRejections)
}

// TestValidate checks out-of-range values
func TestValidate(t *testing.T) {
	base := func() *config.Config {
		c, err := config.Load(viper.New(), "")
		require.NoError(t, err)
		return c
	}

	for name, mutate := range map[string]func(*config.Config){
		"workers":   func(c *config.Config) { c.Workers = -1 },
		"samples":   func(c *config.Config) { c.Samples = -1 },
		"alpha":     func(c *config.Config) { c.Alpha = 1.5 },
		"zeroAlpha": func(c *config.Config) { c.Alpha = 0 },
		"rejection": func(c *config.Config) { c.MaxRejections = 0 },
		"enumerate": func(c *config.Config) { c.EnumerateLimit = -2 },
		"format":    func(c *config.Config) { c.Format = "csv" },
		"logLevel":  func(c *config.Config) { c.LogLevel = "loud" },
		"logFormat": func(c *config.Config) { c.LogFormat = "xml" },
	} {
		t.Run(name, func(t *testing.T) {
			c := base()
			require.NoError(t, c.Validate())
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}

	v := viper.New()
	v.Set(config.KeyAlpha, 2.0)
	_, err := config.Load(v, "")
	assert.Error(t, err)
}
