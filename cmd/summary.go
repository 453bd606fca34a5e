package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/financier/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	period string
	date   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "print aggregated stats for a period" }
func (*summaryCmd) Usage() string {
	return `fin summary [-p <period>] [-d <date>]

  Prints totals, net amount and top categories for the bucket owning
  the given date at the requested aggregation level.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Period (day, week, month, year).")
	f.StringVar(&c.date, "d", "", "Date inside the period (defaults to today).")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, on, status := parsePeriodAndDate(c.period, c.date)
	if status != subcommands.ExitSuccess {
		return status
	}
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	stats := ledger.Stats(period, on)
	printMarkdown(renderer.Summary(period, on, stats, currency(ledger)))
	return subcommands.ExitSuccess
}
