package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/financier"
	"github.com/google/subcommands"
)

type initCmd struct {
	name     string
	currency string
	force    bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new ledger file" }
func (*initCmd) Usage() string {
	return `fin init [-n <name>] [-c <currency>] [-f]

  Creates a fresh ledger file at the configured location. Refuses to
  overwrite an existing file unless -f is given.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "My Business", "Business name.")
	f.StringVar(&c.currency, "c", "USD", "ISO 4217 currency code.")
	f.BoolVar(&c.force, "f", false, "Overwrite an existing ledger file.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := storePath()
	if !c.force {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %q already exists, use -f to overwrite\n", path)
			return subcommands.ExitFailure
		}
	}

	store := financier.NewStore()
	store.BusinessInfo.Name = c.name
	store.BusinessInfo.Currency = c.currency

	storage := &financier.FileStorage{Path: path}
	if err := storage.Save(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created ledger %q for %q (%s).\n", path, c.name, c.currency)
	return subcommands.ExitSuccess
}
