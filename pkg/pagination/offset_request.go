package pagination

import (
	"errors"
	"fmt"
	"strconv"
)

// OffsetRequest represents an offset/limit pagination request
type OffsetRequest struct {
	Position int `json:"position" query:"position"`
	Quantity int `json:"quantity" query:"quantity"`
}

// ParseOffset builds an OffsetRequest from raw query values. Empty values fall
// back to the defaults.
func ParseOffset(position, quantity string) (OffsetRequest, error) {
	r := OffsetRequest{Position: DefaultPosition, Quantity: DefaultQuantity}

	var err error
	if quantity != "" {
		if r.Quantity, err = parseInt("quantity", quantity); err != nil {
			return OffsetRequest{}, err
		}
	}
	if position != "" {
		if r.Position, err = parseInt("position", position); err != nil {
			return OffsetRequest{}, err
		}
	}

	return r, r.Validate()
}

// Validate rejects negative offsets and limits. A zero quantity is valid.
func (r OffsetRequest) Validate() error {
	if r.Quantity < 0 {
		return errors.New("Argument quantity must be positive!")
	}
	if r.Position < 0 {
		return errors.New("Argument position must be positive!")
	}
	return nil
}

func parseInt(name, value string) (int, error) {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("Argument %s must be an integer.", name)
	}
	return v, nil
}
