package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/fhs-news/internal/domain"
)

// Collection is a folder-backed set of like-typed records.
// Each folder holds exactly one record file; the folder name is the record id.
type Collection string

const (
	Articles Collection = "articles"
	Clubs    Collection = "clubs"
)

// RecordFile is the name of the record file inside each folder of the collection.
func (c Collection) RecordFile() string {
	switch c {
	case Articles:
		return "article.json"
	case Clubs:
		return "club.json"
	default:
		return "record.json"
	}
}

// ExtraName names a singleton record.
type ExtraName string

const (
	Lunch   ExtraName = "lunch"
	Weather ExtraName = "weather"
)

// Reader is pure read access to the content store. Every call hits the backing
// store; nothing is cached between calls.
type Reader interface {
	// ListCollection returns the folder ids of the collection.
	ListCollection(ctx context.Context, c Collection) ([]string, error)
	// ReadRecord returns ErrNotFound when the record file is absent and ErrCorrupt
	// when it does not decode as the collection's item type.
	ReadRecord(ctx context.Context, c Collection, id string) (domain.Item, error)
	// ListAlerts returns alert file names.
	ListAlerts(ctx context.Context) ([]string, error)
	ReadAlert(ctx context.Context, name string) (domain.Item, error)
	// ReadExtra returns ErrUnavailable when the extra is absent.
	ReadExtra(ctx context.Context, name ExtraName) (domain.Item, error)
}

// DecodeRecord decodes raw record content for the given collection.
func DecodeRecord(c Collection, data []byte) (domain.Item, error) {
	var (
		item domain.Item
		err  error
	)
	switch c {
	case Articles:
		item, err = domain.DecodeArticle(data)
	case Clubs:
		item, err = domain.DecodeClub(data)
	default:
		item, err = domain.DecodeItem(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, c, err)
	}
	return item, nil
}

// DecodeLoose decodes alerts and extras, which carry no fixed schema.
func DecodeLoose(data []byte) (domain.Item, error) {
	item, err := domain.DecodeItem(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return item, nil
}

// ValidID reports whether id can name a single folder or file inside the store.
func ValidID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`) && !strings.ContainsRune(id, 0)
}
