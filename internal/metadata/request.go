package metadata

import (
	"encoding/json"
	"strings"

	"tokensmith/internal/services"
)

// Request carries the metadata for one write attempt. All fields are
// required; a Request is built once per workflow pass and never mutated.
type Request struct {
	Mint   string
	Name   string
	Symbol string
	URI    string
}

// Validate enforces the required-field contract.
func (r Request) Validate() error {
	fields := []struct {
		label string
		value string
	}{
		{"mint", r.Mint},
		{"name", r.Name},
		{"symbol", r.Symbol},
		{"uri", r.URI},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return services.Wrap(services.ErrValidation, "metadata", "validate request", f.label+" is required", nil)
		}
	}
	return nil
}

// document is the on-disk JSON shape consumed by metaboss and the direct
// program call. creators serializes as a literal null.
type document struct {
	Name                 string `json:"name"`
	Symbol               string `json:"symbol"`
	URI                  string `json:"uri"`
	SellerFeeBasisPoints int    `json:"seller_fee_basis_points"`
	Creators             any    `json:"creators"`
}

func (r Request) documentJSON() ([]byte, error) {
	return json.Marshal(document{
		Name:   r.Name,
		Symbol: r.Symbol,
		URI:    r.URI,
	})
}
