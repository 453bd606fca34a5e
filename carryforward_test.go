package financier

import (
	"testing"
)

// isSafe reports whether a transaction is a synthetic carried balance.
func isSafe(tx Transaction) bool {
	return tx.Category == SafeCategory && tx.Type == Income
}

func TestOpeningBalanceCarry(t *testing.T) {
	ledger, _ := newTestLedger(t)

	// Tuesday closes with a net of 50; the first transaction on Wednesday
	// must find the carried balance already in place.
	mustAdd(t, ledger, tx(Income, 80, "Sales", "", "2024-01-02"))
	mustAdd(t, ledger, tx(Expense, 30, "Rent", "", "2024-01-02"))
	mustAdd(t, ledger, tx(Expense, 20, "Supplies", "", "2024-01-03"))

	day := ledger.Transactions(Daily, MustParseDate("2024-01-03"))
	if len(day) != 2 {
		t.Fatalf("got %d transactions on 2024-01-03, want safe + user", len(day))
	}
	safe := day[0]
	if !isSafe(safe) {
		t.Fatalf("first transaction is not the carried balance: %+v", safe)
	}
	if !safe.Amount.Equal(amount("50")) {
		t.Errorf("carried amount = %s, want 50", safe.Amount)
	}
	if safe.Description != "Previous day safe money" {
		t.Errorf("carried description = %q", safe.Description)
	}
	if safe.Day() != MustParseDate("2024-01-03") {
		t.Errorf("carried balance dated %v, want 2024-01-03", safe.Day())
	}
}

func TestOpeningBalanceSkipsNonPositiveNet(t *testing.T) {
	ledger, _ := newTestLedger(t)

	mustAdd(t, ledger, tx(Expense, 40, "Rent", "", "2024-01-02"))
	mustAdd(t, ledger, tx(Income, 10, "Sales", "", "2024-01-03"))

	day := ledger.Transactions(Daily, MustParseDate("2024-01-03"))
	if len(day) != 1 || isSafe(day[0]) {
		t.Errorf("negative prior net must not carry: got %+v", day)
	}
}

func TestOpeningBalanceCrossesMonthBoundary(t *testing.T) {
	ledger, _ := newTestLedger(t)

	// Jan 31 and Feb 1 2024 share a week, so only the daily rule fires.
	mustAdd(t, ledger, tx(Income, 50, "Sales", "", "2024-01-31"))
	mustAdd(t, ledger, tx(Expense, 10, "Rent", "", "2024-02-01"))

	day := ledger.Transactions(Daily, MustParseDate("2024-02-01"))
	if len(day) != 2 || !isSafe(day[0]) || !day[0].Amount.Equal(amount("50")) {
		t.Errorf("month boundary did not carry the day net: %+v", day)
	}
}

func TestWeekCloseCarry(t *testing.T) {
	ledger, _ := newTestLedger(t)

	// 2024-01-06 is a Saturday, the last day of week 1. The Saturday
	// itself closes negative (carried 300 minus 400 spent), so only the
	// weekly rule reaches Sunday, with the week net of 200.
	mustAdd(t, ledger, tx(Income, 300, "Sales", "", "2024-01-05"))
	mustAdd(t, ledger, tx(Expense, 400, "Supplies", "", "2024-01-06"))

	day := ledger.Transactions(Daily, MustParseDate("2024-01-07"))
	if len(day) != 1 {
		t.Fatalf("got %d transactions on 2024-01-07, want 1: %+v", len(day), day)
	}
	if !isSafe(day[0]) || !day[0].Amount.Equal(amount("200")) {
		t.Errorf("week close carried %+v, want safe income of 200", day[0])
	}
	// The injected day is fully aggregated.
	if got := ledger.Stats(Daily, MustParseDate("2024-01-07")); !got.NetAmount.Equal(amount("200")) {
		t.Errorf("next day net = %s, want 200", got.NetAmount)
	}
}

func TestWeekBoundaryDoubleCarry(t *testing.T) {
	ledger, _ := newTestLedger(t)

	// A single positive Saturday triggers both rules for Sunday: the
	// opening balance carries the day net and the week close carries the
	// week net, crediting the same 200 twice.
	mustAdd(t, ledger, tx(Income, 200, "Sales", "", "2024-01-06"))

	day := ledger.Transactions(Daily, MustParseDate("2024-01-07"))
	if len(day) != 2 {
		t.Fatalf("got %d transactions on 2024-01-07, want 2: %+v", len(day), day)
	}
	for i, safe := range day {
		if !isSafe(safe) || !safe.Amount.Equal(amount("200")) {
			t.Errorf("transaction %d = %+v, want safe income of 200", i, safe)
		}
	}
	if got := ledger.Stats(Daily, MustParseDate("2024-01-07")); !got.NetAmount.Equal(amount("400")) {
		t.Errorf("double carry net = %s, want 400", got.NetAmount)
	}
}

func TestWeekCloseCrossesYearBoundary(t *testing.T) {
	ledger, _ := newTestLedger(t)

	// Dec 31 is always the last day of its (year-scoped) week.
	mustAdd(t, ledger, tx(Income, 100, "Sales", "", "2024-12-31"))

	day := ledger.Transactions(Daily, MustParseDate("2025-01-01"))
	if len(day) != 2 {
		t.Fatalf("got %d transactions on 2025-01-01, want day and week carry: %+v", len(day), day)
	}
	// The carried transactions live under the new year's tree.
	if ledger.Store().Years["2025"] == nil {
		t.Error("2025 bucket missing after year-boundary carry")
	}
}

func TestCarryNeverRetracted(t *testing.T) {
	ledger, _ := newTestLedger(t)

	stored := mustAdd(t, ledger, tx(Income, 200, "Sales", "", "2024-01-06"))
	before := len(ledger.Transactions(Daily, MustParseDate("2024-01-07")))

	// Deleting the source of the carried balance does not reverse the
	// injections already made.
	if found, err := ledger.DeleteTransaction(stored.ID); !found || err != nil {
		t.Fatalf("DeleteTransaction = (%v, %v)", found, err)
	}
	after := ledger.Transactions(Daily, MustParseDate("2024-01-07"))
	if len(after) != before {
		t.Errorf("carried balances changed on delete: %d -> %d", before, len(after))
	}
}

func TestCarriedTransactionIsOrdinary(t *testing.T) {
	ledger, _ := newTestLedger(t)

	mustAdd(t, ledger, tx(Income, 50, "Sales", "", "2024-01-02"))
	mustAdd(t, ledger, tx(Expense, 20, "Rent", "", "2024-01-03"))

	day := ledger.Transactions(Daily, MustParseDate("2024-01-03"))
	safe := day[0]
	if !isSafe(safe) {
		t.Fatalf("expected carried balance first: %+v", day)
	}
	// Synthetic transactions can be deleted like any other entry.
	if found, err := ledger.DeleteTransaction(safe.ID); !found || err != nil {
		t.Fatalf("DeleteTransaction(safe) = (%v, %v)", found, err)
	}
	got := ledger.Stats(Daily, MustParseDate("2024-01-03"))
	if !got.NetAmount.Equal(amount("-20")) {
		t.Errorf("net after deleting carried balance = %s, want -20", got.NetAmount)
	}
}
