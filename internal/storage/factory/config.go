package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/fhs-news/internal/storage"
)

type StorageConfig struct {
	Type storage.Type `yaml:"storage_type"`
	// Root is the content root holding articles/, clubs/, alerts/ and extras/.
	Root string `yaml:"content_root"`
}

// ApplyEnv overrides fields with STORAGE_TYPE and CONTENT_ROOT when they are set
// and fills defaults for anything still empty.
func (c *StorageConfig) ApplyEnv() {
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		c.Type = storage.Type(v)
	}
	if v := os.Getenv("CONTENT_ROOT"); v != "" {
		c.Root = v
	}

	if c.Type == "" {
		c.Type = storage.Disk
	}
	if c.Root == "" {
		c.Root = "."
	}
}

func (c *StorageConfig) Validate() error {
	if c.Type != storage.Disk && c.Type != storage.InMem {
		slog.Error("Invalid storage type", "value", c.Type)
		return fmt.Errorf(
			"invalid STORAGE_TYPE value: %s, expected one of %v",
			c.Type,
			[]storage.Type{storage.Disk, storage.InMem})
	}
	if c.Type == storage.Disk && c.Root == "" {
		return fmt.Errorf("content root is required for %s storage", storage.Disk)
	}
	return nil
}
