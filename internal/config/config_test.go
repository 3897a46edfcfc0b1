package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"port": 9090,
		"database_url": "postgres://localhost/ats",
		"seed_fixtures": true
	}`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/ats", cfg.DatabaseURL)
	assert.True(t, cfg.SeedFixtures)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("SEED_FIXTURES", "true")

	cfg := FromEnv()
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, "key-123", cfg.GeminiAPIKey)
	assert.True(t, cfg.SeedFixtures)
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("SEED_FIXTURES", "")

	cfg := FromEnv()
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.False(t, cfg.SeedFixtures)
}

func TestMerge(t *testing.T) {
	base := &Config{Port: 8080, DatabaseURL: "postgres://env/db"}
	file := &Config{Port: 9090, GeminiAPIKey: "from-file"}

	merged := base.Merge(file)
	assert.Equal(t, 9090, merged.Port, "file values win")
	assert.Equal(t, "postgres://env/db", merged.DatabaseURL, "zero values do not overwrite")
	assert.Equal(t, "from-file", merged.GeminiAPIKey)

	assert.Same(t, base, base.Merge(nil))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{Port: 8080}).Validate())
	assert.Error(t, (&Config{Port: 0}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
}
