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

type editCmd struct {
	id          string
	txType      string
	amount      string
	category    string
	description string
	date        string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit fields of an existing transaction" }
func (*editCmd) Usage() string {
	return `fin edit -id <id> [-t <type>] [-a <amount>] [-c <category>] [-m <description>] [-d <date>]

  Edits a transaction in place. Only the given flags are changed. Note that
  editing the date does not move the transaction to another Day bucket.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the transaction to edit.")
	f.StringVar(&c.txType, "t", "", "New transaction type.")
	f.StringVar(&c.amount, "a", "", "New amount.")
	f.StringVar(&c.category, "c", "", "New category.")
	f.StringVar(&c.description, "m", "", "New description.")
	f.StringVar(&c.date, "d", "", "New date.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	var patch financier.Patch
	seen := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { seen[fl.Name] = true })

	if seen["t"] {
		txType, err := financier.ParseTxType(c.txType)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		patch.Type = &txType
	}
	if seen["a"] {
		amount, err := decimal.NewFromString(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", c.amount, err)
			return subcommands.ExitUsageError
		}
		patch.Amount = &amount
	}
	if seen["c"] {
		patch.Category = &c.category
	}
	if seen["m"] {
		patch.Description = &c.description
	}
	if seen["d"] {
		on, err := financier.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		ts := time.Date(on.Year(), on.Month(), on.Day(), 0, 0, 0, 0, time.UTC)
		patch.Timestamp = &ts
	}

	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	found, err := ledger.EditTransaction(c.id, patch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !found {
		fmt.Fprintf(os.Stderr, "No transaction with id %q.\n", c.id)
		return subcommands.ExitFailure
	}
	fmt.Printf("Edited transaction %s\n", c.id)
	return subcommands.ExitSuccess
}
