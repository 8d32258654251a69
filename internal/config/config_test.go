package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMap_Defaults(t *testing.T) {
	cfg, err := LoadFromMap(map[string]string{
		"DATABASE_URL": "postgres://localhost:5432/fractional",
	})
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "postgres://localhost:5432/fractional", cfg.DatabaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, int32(4), cfg.DB.MaxConns)
	assert.Equal(t, 10*time.Second, cfg.DB.ConnectTimeout)
	assert.Equal(t, "linkedin", cfg.Import.Source)
	assert.Equal(t, 100, cfg.Import.MaxErrors)
	assert.Equal(t, "linkedin-", cfg.Import.ExternalIDPrefix())
}

func TestLoadFromMap_Overrides(t *testing.T) {
	cfg, err := LoadFromMap(map[string]string{
		"DATABASE_URL":       "postgres://db/fq",
		"LOG_LEVEL":          "DEBUG",
		"LOG_FORMAT":         "json",
		"DB_MAX_CONNS":       "10",
		"DB_CONNECT_TIMEOUT": "2s",
		"IMPORT_SOURCE":      "otta",
		"IMPORT_MAX_ERRORS":  "5",
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, int32(10), cfg.DB.MaxConns)
	assert.Equal(t, 2*time.Second, cfg.DB.ConnectTimeout)
	assert.Equal(t, "otta", cfg.Import.Source)
	assert.Equal(t, 5, cfg.Import.MaxErrors)
}

func TestLoadFromMap_MissingDatabaseURL(t *testing.T) {
	cfg, err := LoadFromMap(map[string]string{})
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'DATABASE_URL' is required")
}

func TestLoadFromMap_InvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		contains string
	}{
		{"bad log level", "LOG_LEVEL", "verbose", "'LOG_LEVEL' must be one of"},
		{"bad log format", "LOG_FORMAT", "xml", "'LOG_FORMAT' must be one of"},
		{"zero max errors", "IMPORT_MAX_ERRORS", "0", "'IMPORT_MAX_ERRORS' must be gte 1"},
		{"source with dash", "IMPORT_SOURCE", "linked-in", "'IMPORT_SOURCE' failed alphanum validation"},
		{"unparseable int", "DB_MAX_CONNS", "many", "failed to parse environment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromMap(map[string]string{
				"DATABASE_URL": "postgres://db/fq",
				tt.key:         tt.value,
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/fq")
	t.Setenv("IMPORT_MAX_ERRORS", "7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/fq", cfg.DatabaseURL)
	assert.Equal(t, 7, cfg.Import.MaxErrors)
}

func TestLoadDotEnv(t *testing.T) {
	content := "# local settings\n" +
		"\n" +
		"FQ_TEST_QUOTED=\"postgres://user:pa ss@localhost/fq\"\n" +
		"FQ_TEST_PRESET=from-file\n"
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("FQ_TEST_PRESET", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("FQ_TEST_QUOTED") })

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "postgres://user:pa ss@localhost/fq", os.Getenv("FQ_TEST_QUOTED"))
	assert.Equal(t, "from-env", os.Getenv("FQ_TEST_PRESET"), "existing variables must not be overridden")
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	err := LoadDotEnv(filepath.Join(t.TempDir(), "does-not-exist.env"))
	assert.NoError(t, err)
}
