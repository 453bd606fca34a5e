package financier

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Period selects the aggregation level of a transaction query.
type Period string

// The four aggregation levels of the bucket tree.
const (
	Daily   Period = "day"
	Weekly  Period = "week"
	Monthly Period = "month"
	Yearly  Period = "year"
)

// ParsePeriod parses a string into a Period.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case Daily, Weekly, Monthly, Yearly:
		return Period(s), nil
	default:
		return "", fmt.Errorf("unknown period %q (want day, week, month or year)", s)
	}
}

// Ledger is the service owning the store: it orchestrates bucket creation,
// stats recomputation and carry-forward, and persists the whole store after
// every successful mutation.
//
// A Ledger is the single writer of its store: operations run to completion
// (load, mutate, persist) with no interleaving. Callers inject the Storage
// handle; there is no hidden process-wide state.
type Ledger struct {
	store   *Store
	storage Storage
	index   map[string]path // transaction id to owning bucket path
}

// NewLedger loads the store from the given storage and returns a ledger
// service bound to it.
func NewLedger(storage Storage) (*Ledger, error) {
	store, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load store: %w", err)
	}
	l := &Ledger{store: store, storage: storage}
	l.rebuildIndex()
	return l, nil
}

// Store exposes the current in-memory store for read access (category
// lists, chart data, business info).
func (l *Ledger) Store() *Store { return l.store }

// rebuildIndex recreates the id lookup index from the bucket tree. The
// index only accelerates edit/delete; the tree remains the truth.
func (l *Ledger) rebuildIndex() {
	l.index = make(map[string]path)
	l.store.walkDays(func(p path, day *DayBucket) {
		for _, tx := range day.Transactions {
			l.index[tx.ID] = p
		}
	})
}

// AddTransaction validates the input, assigns a fresh id, files the
// transaction under its Day bucket (creating buckets and applying the
// opening-balance carry-forward if the Day is new), recomputes stats
// bottom-up, applies the week-close carry-forward, and persists the store.
// It returns the stored transaction including its assigned id.
func (l *Ledger) AddTransaction(tx Transaction) (Transaction, error) {
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now().UTC()
	}
	tx.ID = uuid.NewString()

	l.insert(tx)
	if err := l.persist(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// insert files a transaction through the normal add path without
// persisting. It is shared by AddTransaction and by CSV reimport.
func (l *Ledger) insert(tx Transaction) {
	on := tx.Day()
	p := pathOf(on)
	day, created := l.store.ensureDay(p)
	if created {
		l.carryOpeningBalance(on, day)
	}
	day.Transactions = append(day.Transactions, tx)
	l.index[tx.ID] = p
	l.store.recompute(p)
	l.carryWeekClose(on)
}

// EditTransaction merges the patch into the transaction with the given id
// and reports whether it was found. A missing id is a normal outcome, not
// an error.
//
// The owning bucket is not re-derived from a patched timestamp: editing the
// timestamp does not move the transaction to another Day bucket.
func (l *Ledger) EditTransaction(id string, patch Patch) (bool, error) {
	if err := patch.Validate(); err != nil {
		return false, err
	}
	p, ok := l.index[id]
	if !ok {
		return false, nil
	}
	day := l.store.dayBucket(p)
	for i := range day.Transactions {
		if day.Transactions[i].ID != id {
			continue
		}
		patch.apply(&day.Transactions[i])
		l.store.recompute(p)
		l.carryWeekClose(MustParseDate(p.day))
		return true, l.persist()
	}
	return false, nil
}

// DeleteTransaction removes the transaction with the given id and reports
// whether it was found. The emptied Day bucket is kept with zero stats;
// carry-forward transactions already injected from this one's balance are
// never retracted.
func (l *Ledger) DeleteTransaction(id string) (bool, error) {
	p, ok := l.index[id]
	if !ok {
		return false, nil
	}
	day := l.store.dayBucket(p)
	for i := range day.Transactions {
		if day.Transactions[i].ID != id {
			continue
		}
		day.Transactions = append(day.Transactions[:i], day.Transactions[i+1:]...)
		delete(l.index, id)
		l.store.recompute(p)
		l.carryWeekClose(MustParseDate(p.day))
		return true, l.persist()
	}
	return false, nil
}

// Transactions returns the leaf transactions of the bucket owning the given
// date at the requested aggregation level, or nil if that bucket does not
// exist. It is read-only and never persists.
func (l *Ledger) Transactions(period Period, on Date) []Transaction {
	p := pathOf(on)
	switch period {
	case Daily:
		if day := l.store.dayBucket(p); day != nil {
			return day.Transactions
		}
	case Weekly:
		if week := l.store.weekBucket(p); week != nil {
			return week.flatten()
		}
	case Monthly:
		if month := l.store.monthBucket(p); month != nil {
			return month.flatten()
		}
	case Yearly:
		if year := l.store.yearBucket(p); year != nil {
			return year.flatten()
		}
	}
	return nil
}

// Stats returns the Stats of the bucket owning the given date at the
// requested aggregation level. A missing bucket yields the all-zero Stats.
func (l *Ledger) Stats(period Period, on Date) Stats {
	p := pathOf(on)
	switch period {
	case Daily:
		if day := l.store.dayBucket(p); day != nil {
			return day.Stats
		}
	case Weekly:
		if week := l.store.weekBucket(p); week != nil {
			return week.Stats
		}
	case Monthly:
		if month := l.store.monthBucket(p); month != nil {
			return month.Stats
		}
	case Yearly:
		if year := l.store.yearBucket(p); year != nil {
			return year.Stats
		}
	}
	return EmptyStats()
}

// persist writes the whole store back through the storage handle.
func (l *Ledger) persist() error {
	if err := l.storage.Save(l.store); err != nil {
		return fmt.Errorf("could not persist store: %w", err)
	}
	return nil
}
