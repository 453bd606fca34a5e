package financier

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	ledger, _ := newTestLedger(t)
	mustAdd(t, ledger, tx(Income, 1000, "Sales", "big sale", "2024-01-10"))
	mustAdd(t, ledger, tx(Expense, 250.75, "Rent", "office", "2024-01-11"))
	mustAdd(t, ledger, tx(Expense, 10, "Supplies", "", "2024-02-01"))

	var snap bytes.Buffer
	if err := ledger.ExportSnapshot(&snap); err != nil {
		t.Fatalf("ExportSnapshot error: %v", err)
	}

	restored, err := DecodeSnapshot(bytes.NewReader(snap.Bytes()))
	if err != nil {
		t.Fatalf("DecodeSnapshot error: %v", err)
	}

	// The restored store is byte-for-byte the exported one, modulo the
	// wrapper's version and timestamp.
	var before, after bytes.Buffer
	if err := EncodeStore(&before, ledger.Store()); err != nil {
		t.Fatal(err)
	}
	if err := EncodeStore(&after, restored); err != nil {
		t.Fatal(err)
	}
	if before.String() != after.String() {
		t.Errorf("snapshot round trip differs:\n%s\n%s", before.String(), after.String())
	}
}

func TestImportSnapshotReplacesStore(t *testing.T) {
	source, _ := newTestLedger(t)
	mustAdd(t, source, tx(Income, 100, "Sales", "", "2024-01-10"))
	var snap bytes.Buffer
	if err := source.ExportSnapshot(&snap); err != nil {
		t.Fatal(err)
	}

	target, storage := newTestLedger(t)
	mustAdd(t, target, tx(Expense, 999, "Rent", "", "2023-06-01"))

	if err := target.ImportSnapshot(&snap); err != nil {
		t.Fatalf("ImportSnapshot error: %v", err)
	}
	// The previous content is gone, replaced verbatim.
	if got := target.Transactions(Daily, MustParseDate("2023-06-01")); len(got) != 0 {
		t.Errorf("old store content survived import: %+v", got)
	}
	got := target.Transactions(Daily, MustParseDate("2024-01-10"))
	if len(got) != 1 || !got[0].Amount.Equal(amount("100")) {
		t.Errorf("imported content = %+v", got)
	}
	if storage.saves == 0 {
		t.Error("import did not persist")
	}
	// The id index works over the imported tree.
	if found, err := target.DeleteTransaction(got[0].ID); !found || err != nil {
		t.Errorf("DeleteTransaction after import = (%v, %v)", found, err)
	}
}

func TestImportSnapshotRejectsIncompleteDocuments(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
		want error
	}{
		{"not json", `{"version":`, ErrParse},
		{"missing version", `{"data":{"businessInfo":{},"transactions":{}}}`, ErrFormat},
		{"missing businessInfo", `{"version":"1.0","data":{"transactions":{}}}`, ErrFormat},
		{"missing transactions", `{"version":"1.0","data":{"businessInfo":{}}}`, ErrFormat},
		{"missing data", `{"version":"1.0"}`, ErrFormat},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger, storage := newTestLedger(t)
			err := ledger.ImportSnapshot(strings.NewReader(tc.doc))
			if !errors.Is(err, tc.want) {
				t.Errorf("ImportSnapshot error = %v, want %v", err, tc.want)
			}
			if storage.saves != 0 {
				t.Error("rejected import persisted the store")
			}
		})
	}
}

func TestExportCSV(t *testing.T) {
	ledger, _ := newTestLedger(t)
	mustAdd(t, ledger, tx(Expense, 12.50, "Supplies", "paper, ink and toner", "2024-01-10"))

	var out bytes.Buffer
	if err := ledger.ExportCSV(&out); err != nil {
		t.Fatalf("ExportCSV error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if lines[0] != "Date,Type,Description,Amount" {
		t.Errorf("header = %q", lines[0])
	}
	// The comma-bearing description is quoted, not split.
	if lines[1] != `2024-01-10,expense,"paper, ink and toner",12.5` {
		t.Errorf("row = %q", lines[1])
	}
}

func TestCSVLossyRoundTrip(t *testing.T) {
	source, _ := newTestLedger(t)
	a := mustAdd(t, source, tx(Expense, 40, "Rent", "january rent", "2024-01-10"))
	b := mustAdd(t, source, tx(Expense, 12.50, "Supplies", "paper, ink", "2024-01-11"))

	var out bytes.Buffer
	if err := source.ExportCSV(&out); err != nil {
		t.Fatal(err)
	}

	target, _ := newTestLedger(t)
	count, err := target.ImportCSV(&out)
	if err != nil || count != 2 {
		t.Fatalf("ImportCSV = (%d, %v), want (2, nil)", count, err)
	}

	got := target.Store().AllTransactions()
	if len(got) != 2 {
		t.Fatalf("reimported %d transactions, want 2: %+v", len(got), got)
	}
	for i, want := range []Transaction{a, b} {
		if got[i].Day() != want.Day() || got[i].Type != want.Type ||
			got[i].Description != want.Description || !got[i].Amount.Equal(want.Amount) {
			t.Errorf("transaction %d = %+v, want the fields of %+v", i, got[i], want)
		}
		// The flat form drops the category and the id.
		if got[i].Category != "" {
			t.Errorf("transaction %d kept category %q", i, got[i].Category)
		}
		if got[i].ID == want.ID || got[i].ID == "" {
			t.Errorf("transaction %d id not reassigned: %q", i, got[i].ID)
		}
	}
}

func TestImportCSVRejectsBadHeader(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"missing amount", "Date,Type,Description\n2024-01-10,income,x\n"},
		{"wrong order", "Type,Date,Description,Amount\n"},
		{"extra column", "Date,Type,Description,Amount,Category\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger, storage := newTestLedger(t)
			count, err := ledger.ImportCSV(strings.NewReader(tc.doc))
			if !errors.Is(err, ErrFormat) || count != 0 {
				t.Errorf("ImportCSV = (%d, %v), want (0, ErrFormat)", count, err)
			}
			if len(ledger.Store().Years) != 0 || storage.saves != 0 {
				t.Error("rejected import touched the store")
			}
		})
	}
}

func TestImportCSVAbortsOnMalformedRow(t *testing.T) {
	ledger, _ := newTestLedger(t)
	doc := "Date,Type,Description,Amount\n" +
		"2024-01-10,expense,ok,10\n" +
		"2024-01-11,expense,bad,not-a-number\n" +
		"2024-01-12,expense,never reached,5\n"

	count, err := ledger.ImportCSV(strings.NewReader(doc))
	if count != 1 || err == nil {
		t.Fatalf("ImportCSV = (%d, %v), want 1 committed row and an error", count, err)
	}
	// Rows before the malformed one stay committed; later rows are not.
	if got := ledger.Transactions(Daily, MustParseDate("2024-01-10")); len(got) != 1 {
		t.Errorf("committed row missing: %+v", got)
	}
	if got := ledger.Transactions(Daily, MustParseDate("2024-01-12")); len(got) != 0 {
		t.Errorf("rows after the failure were processed: %+v", got)
	}
}

func TestImportCSVRefiresCarryForward(t *testing.T) {
	ledger, _ := newTestLedger(t)
	doc := "Date,Type,Description,Amount\n" +
		"2024-01-02,income,sale,50\n" +
		"2024-01-03,expense,supplies,20\n"

	if _, err := ledger.ImportCSV(strings.NewReader(doc)); err != nil {
		t.Fatalf("ImportCSV error: %v", err)
	}
	// Reimport goes through the normal add path, so the opening balance
	// is injected again even though the export never contained it.
	day := ledger.Transactions(Daily, MustParseDate("2024-01-03"))
	if len(day) != 2 || !isSafe(day[0]) || !day[0].Amount.Equal(amount("50")) {
		t.Errorf("carry-forward did not re-fire on import: %+v", day)
	}
}
