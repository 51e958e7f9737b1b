package factory

import (
	"fmt"

	"github.com/DjordjeVuckovic/fhs-news/internal/storage"
	"github.com/DjordjeVuckovic/fhs-news/internal/storage/disk"
	"github.com/DjordjeVuckovic/fhs-news/internal/storage/in_mem"
)

// NewReader creates a new storage.Reader based on the storage type
func NewReader(cfg StorageConfig) (storage.Reader, error) {
	switch cfg.Type {
	case storage.Disk:
		r, err := disk.NewReader(cfg.Root)
		if err != nil {
			return nil, fmt.Errorf("failed to open content store: %w", err)
		}
		return r, nil

	case storage.InMem:
		return in_mem.NewInMemReader(), nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
