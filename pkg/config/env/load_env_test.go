package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FHS_TEST_ATTACHMENTS=https://cdn.example.com\n"), 0o644))
	t.Setenv("ENV_PATH", path)
	t.Setenv("FHS_TEST_ATTACHMENTS", "")
	require.NoError(t, os.Unsetenv("FHS_TEST_ATTACHMENTS"))

	require.NoError(t, LoadDotEnv("local", "ignored/.env"))
	assert.Equal(t, "https://cdn.example.com", os.Getenv("FHS_TEST_ATTACHMENTS"))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, LoadDotEnv("local", ""))
	assert.NoError(t, LoadDotEnv("production", ""))
}

func TestGetters(t *testing.T) {
	t.Setenv("FHS_TEST_FLAG", "yes")
	t.Setenv("FHS_TEST_EMPTY", "")

	assert.True(t, GetBool("FHS_TEST_FLAG", false))
	assert.True(t, GetBool("FHS_TEST_EMPTY", true))
	assert.Equal(t, "fallback", GetOrDefault("FHS_TEST_EMPTY", "fallback"))
	assert.Equal(t, "yes", GetOrDefault("FHS_TEST_FLAG", "fallback"))
}
