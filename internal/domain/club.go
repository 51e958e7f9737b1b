package domain

import (
	"encoding/json"
	"fmt"
)

var clubKeys = []string{"itemType", "clubThumbnail"}

// Club types only what enrichment rewrites; the rest of the record passes through.
type Club struct {
	ItemType      ItemType `json:"itemType"`
	ClubThumbnail string   `json:"clubThumbnail"`

	attrs attributes
}

func (c Club) Type() ItemType { return ItemTypeClub }

// DecodeClub decodes and validates a club record.
func DecodeClub(data []byte) (Club, error) {
	var c Club
	if err := json.Unmarshal(data, &c); err != nil {
		return Club{}, fmt.Errorf("%w: club: %v", ErrInvalidItem, err)
	}
	if c.ItemType != ItemTypeClub {
		return Club{}, fmt.Errorf("%w: expected itemType %q, got %q", ErrInvalidItem, ItemTypeClub, c.ItemType)
	}
	return c, nil
}

type clubFields Club

func (c *Club) UnmarshalJSON(data []byte) error {
	var v clubFields
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	attrs, _, err := splitAttributes(data, clubKeys...)
	if err != nil {
		return err
	}
	v.attrs = attrs
	*c = Club(v)
	return nil
}

func (c Club) MarshalJSON() ([]byte, error) {
	return mergeAttributes(clubFields(c), c.attrs)
}
