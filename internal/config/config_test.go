package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "data.json", cfg.Catalog.Source)
	assert.False(t, cfg.Catalog.Watch)
	assert.Equal(t, 10*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Feedback.Timeout)
	assert.Equal(t, "itemstore.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Telemetry.Endpoint)
	assert.Empty(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog:
  source: https://example.com/data.json
  timeout: 3s
feedback:
  webhook: https://hooks.example.com/abc
log:
  level: debug
`), 0o644))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/data.json", cfg.Catalog.Source)
	assert.Equal(t, 3*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, "https://hooks.example.com/abc", cfg.Feedback.Webhook)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "itemstore.log", cfg.Log.File)
}

func TestLoad_CollectsValidationErrors(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("catalog.source", " ")
	v.Set("feedback.webhook", "ftp://nope")
	v.Set("log.level", "loud")

	_, err := Load(v)
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := make([]string, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"catalog.source", "feedback.webhook", "log.level"}, fields)
	assert.Contains(t, err.Error(), "3 validation errors")
}

func TestValidate_Timeouts(t *testing.T) {
	cfg := Default()
	cfg.Catalog.Timeout = 0
	cfg.Feedback.Timeout = -time.Second
	assert.Len(t, cfg.Validate(), 2)
}

func TestValidationErrors_Single(t *testing.T) {
	errs := ValidationErrors{{Field: "log.level", Value: "x", Message: "bad"}}
	assert.Equal(t, "log.level: bad (got: x)", errs.Error())
	assert.Equal(t, "", ValidationErrors{}.Error())
}

func TestConfigDir(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		assert.Equal(t, "/custom/config/itemstore", ConfigDir())
		assert.Equal(t, "/custom/config/itemstore/config.yaml", ConfigFile())
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, _ := os.UserHomeDir()
		assert.Equal(t, filepath.Join(home, ".config", "itemstore"), ConfigDir())
	})
}
