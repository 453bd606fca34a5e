package financier

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file contains the two external exchange formats of the ledger: the
// structured snapshot (lossless, self-describing) and the flat tabular form
// (lossy: no id, no category).

// SnapshotVersion tags the structured export format.
const SnapshotVersion = "1.0"

// snapshot is the structured export document: the whole store wrapped with
// a version tag and an export timestamp.
type snapshot struct {
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Data      *Store    `json:"data"`
}

// ExportSnapshot writes the whole store to w as a self-describing
// versioned document.
func ExportSnapshot(w io.Writer, s *Store) error {
	doc := snapshot{Version: SnapshotVersion, Timestamp: time.Now().UTC(), Data: s}
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot parses a structured export document and returns the store
// it wraps. The document must carry a version field and a data object
// holding both businessInfo and transactions; anything else fails with
// ErrFormat before any state is touched.
func DecodeSnapshot(r io.Reader) (*Store, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: snapshot is not valid JSON: %v", ErrParse, err)
	}
	for _, required := range []string{"$.version", "$.data.businessInfo", "$.data.transactions"} {
		if _, err := jsonpath.Get(required, doc); err != nil {
			return nil, fmt.Errorf("%w: snapshot is missing %s", ErrFormat, required)
		}
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%w: cannot decode snapshot: %v", ErrParse, err)
	}
	if snap.Data.Years == nil {
		snap.Data.Years = make(map[string]*YearBucket)
	}
	return snap.Data, nil
}

// ImportSnapshot replaces the whole store with the snapshot's data verbatim
// and persists it. The snapshot's own Stats are trusted as-is; nothing is
// recomputed and no carry-forward fires.
func (l *Ledger) ImportSnapshot(r io.Reader) error {
	store, err := DecodeSnapshot(r)
	if err != nil {
		return err
	}
	l.store = store
	l.rebuildIndex()
	return l.persist()
}

// csvHeader is the fixed column set of the flat tabular form. Category and
// id are not exported, which makes the format lossy.
var csvHeader = []string{"Date", "Type", "Description", "Amount"}

// ExportCSV writes every leaf transaction to w in the flat tabular form,
// one row per transaction in chronological bucket order. Fields are quoted
// per RFC 4180, so descriptions containing commas survive a round-trip.
func ExportCSV(w io.Writer, s *Store) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}
	for _, tx := range s.AllTransactions() {
		row := []string{tx.Day().String(), string(tx.Type), tx.Description, tx.Amount.String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV replays rows of the flat tabular form through the normal add
// path, so bucket creation and both carry-forward rules fire again during
// reimport. Reconstructed transactions get fresh ids and an empty category
// (information the flat form does not carry).
//
// The header must contain exactly the four expected column names or the
// import fails with ErrFormat before touching the store. A malformed data
// row aborts the remaining rows but does not roll back rows already
// committed in this call. It returns the number of rows imported.
func (l *Ledger) ImportCSV(r io.Reader) (int, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("%w: cannot read csv header: %v", ErrParse, err)
	}
	if len(header) != len(csvHeader) {
		return 0, fmt.Errorf("%w: csv header %v, want %v", ErrFormat, header, csvHeader)
	}
	for i, name := range csvHeader {
		if header[i] != name {
			return 0, fmt.Errorf("%w: csv header %v, want %v", ErrFormat, header, csvHeader)
		}
	}

	count := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("%w: cannot read csv row: %v", ErrParse, err)
		}
		tx, err := transactionFromRow(row)
		if err != nil {
			return count, err
		}
		if _, err := l.AddTransaction(tx); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// transactionFromRow rebuilds a transaction from a flat-form data row.
func transactionFromRow(row []string) (Transaction, error) {
	on, err := ParseDate(row[0])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	txType, err := ParseTxType(row[1])
	if err != nil {
		return Transaction{}, err
	}
	amount, err := decimal.NewFromString(row[3])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: invalid amount %q: %v", ErrParse, row[3], err)
	}
	return Transaction{
		Type:        txType,
		Amount:      amount,
		Description: row[2],
		Timestamp:   time.Date(on.Year(), on.Month(), on.Day(), 0, 0, 0, 0, time.UTC),
	}, nil
}

// ExportSnapshot writes the ledger's current store as a snapshot document.
func (l *Ledger) ExportSnapshot(w io.Writer) error { return ExportSnapshot(w, l.store) }

// ExportCSV writes the ledger's current store in the flat tabular form.
func (l *Ledger) ExportCSV(w io.Writer) error { return ExportCSV(w, l.store) }
