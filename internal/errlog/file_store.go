package errlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// FileStore writes each entry to <dir>/<when>.json.
type FileStore struct {
	dir string
}

// NewFileStore creates dir when it does not exist yet.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create errors dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Write(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(e, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal error entry: %w", err)
	}

	key := strconv.FormatInt(e.When, 10)
	err = s.create(key, data)
	if errors.Is(err, fs.ErrExist) {
		// Two failures in the same millisecond.
		err = s.create(key+"-"+uuid.NewString(), data)
	}
	return err
}

func (s *FileStore) create(key string, data []byte) error {
	f, err := os.OpenFile(filepath.Join(s.dir, key+".json"), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create error entry: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write error entry: %w", err)
	}
	return f.Close()
}

func (s *FileStore) Close() error {
	return nil
}
