package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type importCmd struct {
	format string
	input  string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a snapshot or csv into the ledger" }
func (*importCmd) Usage() string {
	return `fin import [-format snapshot|csv] [-i <file>]

  Reads a document from stdin, or from a file with -i. A snapshot
  replaces the whole ledger; a csv replays each row as a new
  transaction on top of the existing ledger.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "snapshot", "Import format (snapshot or csv).")
	f.StringVar(&c.input, "i", "", "Input file (defaults to stdin).")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var r io.Reader = os.Stdin
	if c.input != "" {
		file, err := os.Open(c.input)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	switch c.format {
	case "snapshot":
		if err := ledger.ImportSnapshot(r); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Println("Snapshot imported.")
	case "csv":
		n, err := ledger.ImportCSV(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error after %d transactions: %v\n", n, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Imported %d transactions.\n", n)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
