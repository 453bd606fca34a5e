package financier

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SafeCategory is the category of synthetic carry-forward transactions.
const SafeCategory = "Safe"

// safeDescription marks a synthetic carry-forward transaction. Apart from
// these two fields, carried balances are ordinary transactions: they count
// in every aggregation and can be edited or deleted like any other entry.
const safeDescription = "Previous day safe money"

// newSafeTransaction builds the synthetic income transaction carrying a
// positive balance into the given day.
func newSafeTransaction(on Date, amount decimal.Decimal) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Type:        Income,
		Amount:      amount,
		Category:    SafeCategory,
		Description: safeDescription,
		Timestamp:   time.Date(on.Year(), on.Month(), on.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// carryOpeningBalance applies the daily opening-balance rule to a Day
// bucket that was just created for date on: if the Day bucket for the
// previous calendar date exists (irrespective of week, month or year
// boundaries) and closed with a positive net, that net is injected into the
// new day before its own stats are computed for the first time.
func (l *Ledger) carryOpeningBalance(on Date, day *DayBucket) {
	prev := l.store.dayBucket(pathOf(on.Add(-1)))
	if prev == nil || !prev.Stats.NetAmount.IsPositive() {
		return
	}
	tx := newSafeTransaction(on, prev.Stats.NetAmount)
	day.Transactions = append(day.Transactions, tx)
	l.index[tx.ID] = pathOf(on)
	log.Printf("%v: carry forward opening balance %s", on, tx.Amount)
}

// carryWeekClose applies the weekly closing rule after a mutation of the
// Day bucket for date on: when on is the last day of its week and the
// enclosing week closed with a positive net, that net is injected into the
// next day's bucket and the next day's ancestors are recomputed.
//
// When the next day's bucket is created by this rule, the opening-balance
// rule fires for it as well, so a week boundary can carry both the day net
// and the week net into the same bucket. This double credit reproduces the
// observed ledger behavior; injected balances are never retracted when the
// transactions that produced them later change.
func (l *Ledger) carryWeekClose(on Date) {
	next := on.Add(1)
	if on.WeekNumber() == next.WeekNumber() && on.Year() == next.Year() {
		return
	}
	week := l.store.weekBucket(pathOf(on))
	if week == nil || !week.Stats.NetAmount.IsPositive() {
		return
	}

	p := pathOf(next)
	day, created := l.store.ensureDay(p)
	if created {
		l.carryOpeningBalance(next, day)
	}
	tx := newSafeTransaction(next, week.Stats.NetAmount)
	day.Transactions = append(day.Transactions, tx)
	l.index[tx.ID] = p
	l.store.recompute(p)
	log.Printf("%v: carry forward closing week net %s", next, tx.Amount)
}
