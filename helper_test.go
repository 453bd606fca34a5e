package financier

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// memStorage keeps the store in memory and counts writes.
type memStorage struct {
	store *Store
	saves int
}

func (m *memStorage) Load() (*Store, error) {
	if m.store == nil {
		return NewStore(), nil
	}
	return m.store, nil
}

func (m *memStorage) Save(s *Store) error {
	m.store = s
	m.saves++
	return nil
}

// newTestLedger returns a fresh ledger over in-memory storage.
func newTestLedger(t *testing.T) (*Ledger, *memStorage) {
	t.Helper()
	storage := &memStorage{}
	ledger, err := NewLedger(storage)
	if err != nil {
		t.Fatalf("NewLedger() error: %v", err)
	}
	return ledger, storage
}

// tx builds a transaction input dated at noon UTC of the given day.
func tx(txType TxType, amount float64, category, description, day string) Transaction {
	on := MustParseDate(day)
	return Transaction{
		Type:        txType,
		Amount:      decimal.NewFromFloat(amount),
		Category:    category,
		Description: description,
		Timestamp:   time.Date(on.Year(), on.Month(), on.Day(), 12, 0, 0, 0, time.UTC),
	}
}

// mustAdd adds a transaction or fails the test.
func mustAdd(t *testing.T, l *Ledger, in Transaction) Transaction {
	t.Helper()
	stored, err := l.AddTransaction(in)
	if err != nil {
		t.Fatalf("AddTransaction(%v) error: %v", in, err)
	}
	return stored
}

// amount is a shorthand for exact decimal literals in expectations.
func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }
