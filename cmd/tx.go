package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/financier"
	"github.com/etnz/financier/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	period string
	date   string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions for a day, week, month or year" }
func (*txCmd) Usage() string {
	return `fin tx [-p <period>] [-d <date>]

  Lists the transactions of the bucket owning the given date at the
  requested aggregation level.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "day", "Period (day, week, month, year).")
	f.StringVar(&c.date, "d", "", "Date inside the period (defaults to today).")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, on, status := parsePeriodAndDate(c.period, c.date)
	if status != subcommands.ExitSuccess {
		return status
	}
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	txs := ledger.Transactions(period, on)
	title := fmt.Sprintf("Transactions (%s of %s)", period, on)
	printMarkdown(renderer.Transactions(title, txs, currency(ledger)))
	return subcommands.ExitSuccess
}

// parsePeriodAndDate parses the two flags shared by the reporting commands.
func parsePeriodAndDate(periodFlag, dateFlag string) (financier.Period, financier.Date, subcommands.ExitStatus) {
	period, err := financier.ParsePeriod(periodFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return "", financier.Date{}, subcommands.ExitUsageError
	}
	on := financier.Today()
	if dateFlag != "" {
		if on, err = financier.ParseDate(dateFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return "", financier.Date{}, subcommands.ExitUsageError
		}
	}
	return period, on, subcommands.ExitSuccess
}
