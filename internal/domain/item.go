package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

type ItemType string

const (
	ItemTypeArticle ItemType = "Article"
	ItemTypeClub    ItemType = "Club"
)

var ErrInvalidItem = errors.New("invalid item")

// Item is a single feed record. Concrete variants are Article, Club and Extra.
type Item interface {
	Type() ItemType
}

type itemHeader struct {
	ItemType ItemType `json:"itemType"`
}

// DecodeItem decodes a stored record into the variant named by its itemType tag.
// Records with an unknown or missing tag decode as Extra.
func DecodeItem(data []byte) (Item, error) {
	var h itemHeader
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}

	switch h.ItemType {
	case ItemTypeArticle:
		return DecodeArticle(data)
	case ItemTypeClub:
		return DecodeClub(data)
	default:
		return DecodeExtra(data)
	}
}

// attributes keeps the fields of a record that have no dedicated struct field,
// so responses carry the record as it was stored.
type attributes map[string]json.RawMessage

func splitAttributes(data []byte, known ...string) (attributes, []string, error) {
	var fields attributes
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, nil, err
	}
	for _, k := range known {
		delete(fields, k)
	}

	var text []string
	for _, raw := range fields {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			text = append(text, s)
		}
	}
	return fields, text, nil
}

func mergeAttributes(typed any, attrs attributes) ([]byte, error) {
	data, err := json.Marshal(typed)
	if err != nil {
		return nil, err
	}
	if len(attrs) == 0 {
		return data, nil
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	for k, v := range attrs {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return json.Marshal(out)
}

func requireKeys(data []byte, keys ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, k := range keys {
		if _, ok := fields[k]; !ok {
			return fmt.Errorf("missing field %q", k)
		}
	}
	return nil
}
