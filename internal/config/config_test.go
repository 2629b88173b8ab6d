package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg := loadWithArgs(filepath.Join(t.TempDir(), "nope.json"), nil)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/restrictions.json", cfg.DataFile)
	assert.Equal(t, "reference/catalogs", cfg.CatalogsDir)
	assert.False(t, cfg.Watch)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestConfigFlagSwitchesFile(t *testing.T) {
	a := writeConfig(t, "a.json", `{"port": "1111"}`)
	b := writeConfig(t, "b.json", `{"port": "2222", "watch": true}`)

	cfg := loadWithArgs(a, []string{"-config", b})
	assert.Equal(t, "2222", cfg.Port)
	assert.True(t, cfg.Watch)

	// повторный вызов — флаги на свежем FlagSet, никакого "flag redefined"
	cfg = loadWithArgs(a, []string{"-config", b})
	assert.Equal(t, "2222", cfg.Port)
}

func TestFlagBeatsConfigAndEnv(t *testing.T) {
	a := writeConfig(t, "a.json", `{"port": "1111"}`)
	t.Setenv("RODIZIO_PORT", "3333")

	cfg := loadWithArgs(a, nil)
	assert.Equal(t, "3333", cfg.Port, "ENV поверх JSON")

	cfg = loadWithArgs(a, []string{"-port", "9999", "-watch", "true"})
	assert.Equal(t, "9999", cfg.Port, "флаг поверх ENV")
	assert.True(t, cfg.Watch)
}

func TestExplicitFlagSurvivesConfigSwitch(t *testing.T) {
	a := writeConfig(t, "a.json", `{"port": "1111"}`)
	b := writeConfig(t, "b.json", `{"port": "2222", "logLevel": "debug"}`)

	cfg := loadWithArgs(a, []string{"-config", b, "-port", "9999"})
	assert.Equal(t, "9999", cfg.Port, "явный флаг не затирается перечитанным конфигом")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "data/restrictions.json", cfg.DataFile)
}
