package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Extra is an untyped record (weather, lunch, alerts). It is served as stored.
type Extra struct {
	ItemType ItemType
	raw      json.RawMessage
}

func (e Extra) Type() ItemType { return e.ItemType }

// DecodeExtra accepts any JSON object.
func DecodeExtra(data []byte) (Extra, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return Extra{}, fmt.Errorf("%w: extra: not a JSON object", ErrInvalidItem)
	}

	var h itemHeader
	if err := json.Unmarshal(data, &h); err != nil {
		return Extra{}, fmt.Errorf("%w: extra: %v", ErrInvalidItem, err)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return Extra{}, fmt.Errorf("%w: extra: %v", ErrInvalidItem, err)
	}
	return Extra{ItemType: h.ItemType, raw: compact.Bytes()}, nil
}

func (e Extra) MarshalJSON() ([]byte, error) {
	if len(e.raw) == 0 {
		return []byte("{}"), nil
	}
	return e.raw, nil
}
