package financier

import "errors"

// Error kinds reported by the engine. Callers match them with errors.Is.
//
// A missing edit/delete target is not an error kind: lookups by id report
// absence through their boolean result.
var (
	// ErrValidation reports malformed transaction input (bad type, negative
	// amount). It is detected before any mutation of the store.
	ErrValidation = errors.New("invalid transaction")

	// ErrFormat reports an import document that fails required-field or
	// header checks.
	ErrFormat = errors.New("invalid document format")

	// ErrParse reports import document content that cannot be decoded.
	ErrParse = errors.New("unparsable document")
)
