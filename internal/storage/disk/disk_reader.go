package disk

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/fhs-news/internal/domain"
	"github.com/DjordjeVuckovic/fhs-news/internal/storage"
)

const (
	alertsDir = "alerts"
	extrasDir = "extras"
)

// Reader reads content from a directory tree:
//
//	<root>/articles/<id>/article.json
//	<root>/clubs/<id>/club.json
//	<root>/alerts/<name>
//	<root>/extras/<name>.json
type Reader struct {
	root string
}

func NewReader(root string) (*Reader, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("content root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content root %s is not a directory", root)
	}
	return &Reader{root: root}, nil
}

func (r *Reader) ListCollection(ctx context.Context, c storage.Collection) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(filepath.Join(r.root, string(c)))
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %w", storage.ErrUnavailable, c, err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		// DirEntry does not follow symlinks, so only real folders count.
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	return ids, nil
}

func (r *Reader) ReadRecord(ctx context.Context, c storage.Collection, id string) (domain.Item, error) {
	if !storage.ValidID(id) {
		return nil, fmt.Errorf("%w: %s %q", storage.ErrNotFound, c, id)
	}

	folder := filepath.Join(r.root, string(c), id)
	if info, err := os.Stat(folder); err == nil && !info.IsDir() {
		// Only folders are records; ListCollection skips plain files too.
		return nil, fmt.Errorf("%w: %s %q", storage.ErrNotFound, c, id)
	}

	data, err := r.read(ctx, filepath.Join(folder, c.RecordFile()))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s %q", storage.ErrNotFound, c, id)
		}
		return nil, err
	}

	return storage.DecodeRecord(c, data)
}

func (r *Reader) ListAlerts(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(filepath.Join(r.root, alertsDir))
	if err != nil {
		return nil, fmt.Errorf("%w: list alerts: %w", storage.ErrUnavailable, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func (r *Reader) ReadAlert(ctx context.Context, name string) (domain.Item, error) {
	if !storage.ValidID(name) {
		return nil, fmt.Errorf("%w: alert %q", storage.ErrNotFound, name)
	}

	data, err := r.read(ctx, filepath.Join(r.root, alertsDir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: alert %q", storage.ErrNotFound, name)
		}
		return nil, err
	}

	return storage.DecodeLoose(data)
}

func (r *Reader) ReadExtra(ctx context.Context, name storage.ExtraName) (domain.Item, error) {
	data, err := r.read(ctx, filepath.Join(r.root, extrasDir, string(name)+".json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: extra %q", storage.ErrUnavailable, name)
		}
		return nil, err
	}

	return storage.DecodeLoose(data)
}

func (r *Reader) read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Debug("Reading content file", "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
