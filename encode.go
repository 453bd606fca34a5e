package financier

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts persist as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeStore decodes a whole store document from r.
func DecodeStore(r io.Reader) (*Store, error) {
	var store Store
	if err := json.NewDecoder(r).Decode(&store); err != nil {
		return nil, fmt.Errorf("%w: cannot decode store: %v", ErrParse, err)
	}
	if store.Years == nil {
		store.Years = make(map[string]*YearBucket)
	}
	return &store, nil
}

// EncodeStore writes the whole store as a single JSON document to w.
//
// encoding/json writes struct fields in declaration order and map keys
// sorted, so encoding is canonical: the same store always produces the same
// bytes.
func EncodeStore(w io.Writer, s *Store) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("cannot encode store: %w", err)
	}
	return nil
}
