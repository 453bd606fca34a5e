package financier

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TxType is a typed string identifying the kind of a transaction.
type TxType string

// The two transaction kinds recorded in the ledger.
const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("%w: unknown transaction type %q", ErrValidation, s)
	}
}

// Transaction is a single dated income or expense entry.
//
// The id is assigned by the ledger at creation and never reassigned. The
// Timestamp decides which Day bucket owns the transaction (see DateOf);
// all other fields are free to change through EditTransaction.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TxType          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
}

// Day returns the calendar date of the Day bucket owning this transaction.
func (t Transaction) Day() Date { return DateOf(t.Timestamp) }

// Validate checks a transaction for correctness before it enters the ledger.
func (t Transaction) Validate() error {
	if _, err := ParseTxType(string(t.Type)); err != nil {
		return err
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: negative amount %s", ErrValidation, t.Amount)
	}
	return nil
}

// Equal reports whether two transactions carry the same identity and fields.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Type == o.Type &&
		t.Amount.Equal(o.Amount) &&
		t.Category == o.Category &&
		t.Description == o.Description &&
		t.Timestamp.Equal(o.Timestamp)
}

// Patch carries the mutable fields of a transaction for EditTransaction.
// Nil fields are left untouched.
type Patch struct {
	Type        *TxType
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	Timestamp   *time.Time
}

// Validate checks the patched fields before any mutation takes place.
func (p Patch) Validate() error {
	if p.Type != nil {
		if _, err := ParseTxType(string(*p.Type)); err != nil {
			return err
		}
	}
	if p.Amount != nil && p.Amount.IsNegative() {
		return fmt.Errorf("%w: negative amount %s", ErrValidation, p.Amount)
	}
	return nil
}

// apply merges the patch into a transaction in place. The id is never touched.
func (p Patch) apply(t *Transaction) {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Timestamp != nil {
		t.Timestamp = *p.Timestamp
	}
}
