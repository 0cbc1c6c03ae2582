package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme/acme/config"
)

func resetConfig(t *testing.T) {
	t.Cleanup(func() {
		_ = config.LoadFrom("does-not-exist.json", "does-not-exist.env")
	})
}

func TestDefaults(t *testing.T) {
	resetConfig(t)
	require.NoError(t, config.LoadFrom("missing.json", "missing.env"))

	assert.Equal(t, "local", config.AppEnv())
	assert.Equal(t, "log", config.NotifyDriver())
	assert.Equal(t, "02/01/2006", config.OrderDateLayout())
	assert.Equal(t, "587", config.MailPort())
}

func TestJSONThenDotEnvMerge(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "app.json")
	envPath := filepath.Join(dir, ".env")

	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"app_env":"staging","mail_host":"json.example","port":8080}`), 0o644))
	require.NoError(t, os.WriteFile(envPath, []byte("# comment\nMAIL_HOST=\"env.example\"\nNOTIFY_DRIVER=mail\nbroken-line\n"), 0o644))

	require.NoError(t, config.LoadFrom(jsonPath, envPath))

	assert.Equal(t, "staging", config.AppEnv())
	assert.Equal(t, "env.example", config.MailHost())
	assert.Equal(t, "mail", config.NotifyDriver())
	assert.Equal(t, "", config.Get("PORT", ""), "non-string JSON values are skipped")
}

func TestUnknownNotifyDriverFallsBack(t *testing.T) {
	resetConfig(t)
	t.Setenv("NOTIFY_DRIVER", "carrier-pigeon")

	assert.Equal(t, "log", config.NotifyDriver())
}

func TestProcessEnvOverridesFiles(t *testing.T) {
	resetConfig(t)
	t.Setenv("ORDER_DATE_LAYOUT", "2006-01-02")

	assert.Equal(t, "2006-01-02", config.OrderDateLayout())
}

func TestInvalidJSON(t *testing.T) {
	resetConfig(t)
	path := filepath.Join(t.TempDir(), "app.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	err := config.LoadFrom(path, "missing.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
