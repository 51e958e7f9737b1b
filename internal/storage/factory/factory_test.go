package factory

import (
	"testing"

	"github.com/DjordjeVuckovic/fhs-news/internal/storage"
	"github.com/DjordjeVuckovic/fhs-news/internal/storage/disk"
	"github.com/DjordjeVuckovic/fhs-news/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageConfig_ApplyEnv(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("CONTENT_ROOT", "")

	cfg := StorageConfig{}
	cfg.ApplyEnv()
	assert.Equal(t, storage.Disk, cfg.Type)
	assert.Equal(t, ".", cfg.Root)

	t.Setenv("STORAGE_TYPE", "in_mem")
	t.Setenv("CONTENT_ROOT", "/srv/content")
	cfg = StorageConfig{Type: storage.Disk, Root: "./from-yaml"}
	cfg.ApplyEnv()
	assert.Equal(t, storage.InMem, cfg.Type)
	assert.Equal(t, "/srv/content", cfg.Root)
}

func TestStorageConfig_Validate(t *testing.T) {
	assert.NoError(t, (&StorageConfig{Type: storage.Disk, Root: "."}).Validate())
	assert.NoError(t, (&StorageConfig{Type: storage.InMem}).Validate())
	assert.Error(t, (&StorageConfig{Type: "es", Root: "."}).Validate())
}

func TestNewReader(t *testing.T) {
	r, err := NewReader(StorageConfig{Type: storage.Disk, Root: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &disk.Reader{}, r)

	r, err = NewReader(StorageConfig{Type: storage.InMem})
	require.NoError(t, err)
	assert.IsType(t, &in_mem.InMemReader{}, r)

	_, err = NewReader(StorageConfig{Type: "pg"})
	assert.Error(t, err)
}
