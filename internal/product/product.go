// Package product manages the in-memory product catalog and image association.
package product

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices serialize as JSON numbers, matching the public API contract.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrNotFound is returned when a product does not exist.
var ErrNotFound = errors.New("product not found")

// Product is a catalog item. ImageURL is nil until an image has been uploaded
// and serializes as JSON null rather than an empty string.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"imageUrl"`
}

// OptionalString is a string field that records whether it appeared in the
// JSON payload at all, so an omitted field can be told apart from an explicit
// null. Omitted fields leave Set false; an explicit null sets Set with a nil
// Value.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked for fields
// present in the payload, which is what makes the omitted/null distinction work.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}
