package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/financier"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	txType      string
	amount      string
	category    string
	description string
	date        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new income or expense transaction" }
func (*addCmd) Usage() string {
	return `fin add -t <income|expense> -a <amount> [-c <category>] [-m <description>] [-d <date>]

  Records a transaction in the ledger. The transaction is filed under the
  Day bucket of its date and all rollup statistics are updated.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "t", "", "Transaction type: income or expense.")
	f.StringVar(&c.amount, "a", "", "Amount (non-negative decimal).")
	f.StringVar(&c.category, "c", "", "Category label.")
	f.StringVar(&c.description, "m", "", "Free-text description.")
	f.StringVar(&c.date, "d", "", "Transaction date (defaults to today).")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txType, err := financier.ParseTxType(c.txType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	on := financier.Today()
	if c.date != "" {
		if on, err = financier.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	stored, err := ledger.AddTransaction(financier.Transaction{
		Type:        txType,
		Amount:      amount,
		Category:    c.category,
		Description: c.description,
		Timestamp:   time.Date(on.Year(), on.Month(), on.Day(), 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s of %s on %s (id %s)\n", stored.Type, financier.M(stored.Amount, currency(ledger)), on, stored.ID)
	return subcommands.ExitSuccess
}
