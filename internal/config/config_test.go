package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/arm5e-effects/internal/effects"
	"github.com/KirkDiggler/arm5e-effects/internal/magic"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("EFFECTS_LOCALE", "")
	t.Setenv("EFFECTS_HIDDEN_MODE", "")
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("EFFECTS_LOCALE")
	os.Unsetenv("EFFECTS_HIDDEN_MODE")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, "en-US", cfg.Effects.Locale)
	assert.Equal(t, effects.HiddenMark, cfg.Effects.Hidden())
	assert.Equal(t, zapcore.InfoLevel, cfg.Log.ZapLevel())

	table, err := cfg.Effects.Table()
	require.NoError(t, err)
	assert.Same(t, effects.DefaultTable(), table)

	params, err := cfg.Effects.Parameters()
	require.NoError(t, err)
	assert.Same(t, magic.DefaultParameters(), params)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("EFFECTS_LOCALE", "fr")
	t.Setenv("EFFECTS_HIDDEN_MODE", "suppress")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, "fr", cfg.Effects.Locale)
	assert.Equal(t, effects.HiddenSuppress, cfg.Effects.Hidden())
	assert.Equal(t, zapcore.DebugLevel, cfg.Log.ZapLevel())
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("hidden mode", func(t *testing.T) {
		t.Setenv("EFFECTS_HIDDEN_MODE", "sometimes")
		t.Setenv("LOG_LEVEL", "info")

		_, err := Load()
		assert.ErrorContains(t, err, "EFFECTS_HIDDEN_MODE")
	})

	t.Run("log level", func(t *testing.T) {
		t.Setenv("EFFECTS_HIDDEN_MODE", "mark")
		t.Setenv("LOG_LEVEL", "chatty")

		_, err := Load()
		assert.ErrorContains(t, err, "LOG_LEVEL")
	})
}

func TestEffectsConfig_Overrides(t *testing.T) {
	dir := t.TempDir()

	tablePath := filepath.Join(dir, "types.yaml")
	require.NoError(t, os.WriteFile(tablePath, []byte(`
types:
  vitals:
    mnemonic: vitals
    subtypes:
      soak: {mnemonic: soak}
`), 0o600))

	paramsPath := filepath.Join(dir, "parameters.yaml")
	require.NoError(t, os.WriteFile(paramsPath, []byte(`
ranges: {per: {impact: 0}}
durations: {mom: {impact: 0}}
targets: {ind: {impact: 0}}
`), 0o600))

	cfg := EffectsConfig{TypeTablePath: tablePath, ParametersPath: paramsPath}

	table, err := cfg.Table()
	require.NoError(t, err)
	assert.Equal(t, []string{"vitals"}, table.Types())

	params, err := cfg.Parameters()
	require.NoError(t, err)
	assert.Equal(t, []string{"per"}, params.Keys("ranges"))

	_, err = EffectsConfig{TypeTablePath: filepath.Join(dir, "missing.yaml")}.Table()
	assert.Error(t, err)
}
