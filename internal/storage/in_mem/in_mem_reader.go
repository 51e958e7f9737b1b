package in_mem

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/fhs-news/internal/domain"
	"github.com/DjordjeVuckovic/fhs-news/internal/storage"
)

// DelayFunc returns how long a read of key should take. Keys look like
// "articles/3", "alerts/a.json" or "extras/lunch".
type DelayFunc func(key string) time.Duration

// InMemReader holds raw record content in memory and decodes it on every read,
// so it behaves like the disk store without touching the filesystem.
type InMemReader struct {
	storageLock sync.RWMutex
	records     map[storage.Collection]map[string][]byte
	alerts      map[string][]byte
	extras      map[storage.ExtraName][]byte

	delay DelayFunc
}

type Option func(*InMemReader)

func WithDelay(fn DelayFunc) Option {
	return func(r *InMemReader) {
		r.delay = fn
	}
}

func NewInMemReader(opts ...Option) *InMemReader {
	r := &InMemReader{
		records: make(map[storage.Collection]map[string][]byte),
		alerts:  make(map[string][]byte),
		extras:  make(map[storage.ExtraName][]byte),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *InMemReader) PutRecord(c storage.Collection, id string, data []byte) {
	r.storageLock.Lock()
	defer r.storageLock.Unlock()

	if r.records[c] == nil {
		r.records[c] = make(map[string][]byte)
	}
	r.records[c][id] = data
}

func (r *InMemReader) PutAlert(name string, data []byte) {
	r.storageLock.Lock()
	defer r.storageLock.Unlock()
	r.alerts[name] = data
}

func (r *InMemReader) PutExtra(name storage.ExtraName, data []byte) {
	r.storageLock.Lock()
	defer r.storageLock.Unlock()
	r.extras[name] = data
}

func (r *InMemReader) ListCollection(ctx context.Context, c storage.Collection) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.storageLock.RLock()
	defer r.storageLock.RUnlock()

	ids := make([]string, 0, len(r.records[c]))
	for id := range r.records[c] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *InMemReader) ReadRecord(ctx context.Context, c storage.Collection, id string) (domain.Item, error) {
	if err := r.wait(ctx, string(c)+"/"+id); err != nil {
		return nil, err
	}

	r.storageLock.RLock()
	data, ok := r.records[c][id]
	r.storageLock.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", storage.ErrNotFound, c, id)
	}
	return storage.DecodeRecord(c, data)
}

func (r *InMemReader) ListAlerts(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.storageLock.RLock()
	defer r.storageLock.RUnlock()

	names := make([]string, 0, len(r.alerts))
	for name := range r.alerts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *InMemReader) ReadAlert(ctx context.Context, name string) (domain.Item, error) {
	if err := r.wait(ctx, "alerts/"+name); err != nil {
		return nil, err
	}

	r.storageLock.RLock()
	data, ok := r.alerts[name]
	r.storageLock.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: alert %q", storage.ErrNotFound, name)
	}
	return storage.DecodeLoose(data)
}

func (r *InMemReader) ReadExtra(ctx context.Context, name storage.ExtraName) (domain.Item, error) {
	if err := r.wait(ctx, "extras/"+string(name)); err != nil {
		return nil, err
	}

	r.storageLock.RLock()
	data, ok := r.extras[name]
	r.storageLock.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: extra %q", storage.ErrUnavailable, name)
	}
	return storage.DecodeLoose(data)
}

func (r *InMemReader) wait(ctx context.Context, key string) error {
	if r.delay == nil {
		return ctx.Err()
	}

	d := r.delay(key)
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
