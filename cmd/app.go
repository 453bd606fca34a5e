// Package cmd implements the CLI application to manage a business ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/financier"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("ledger-file", "", "Path to the ledger store file (JSON). Defaults to $FINANCIER_FILE or financier.json")

// Commands lists every subcommand of the fin application; the main package
// registers them all.
var Commands = []subcommands.Command{
	&initCmd{},
	&addCmd{},
	&editCmd{},
	&deleteCmd{},
	&txCmd{},
	&summaryCmd{},
	&exportCmd{},
	&importCmd{},
	&topicCmd{},
}

// storePath resolves the ledger store file from the flag, the environment,
// or the default, in that order.
func storePath() string {
	if *storeFile != "" {
		return *storeFile
	}
	if path := os.Getenv("FINANCIER_FILE"); path != "" {
		return path
	}
	return "financier.json"
}

// openLedger loads the ledger service over the resolved store file.
func openLedger() (*financier.Ledger, error) {
	return financier.NewLedger(&financier.FileStorage{Path: storePath()})
}

// currency returns the ledger's configured display currency.
func currency(l *financier.Ledger) string {
	return l.Store().BusinessInfo.Currency
}

// printMarkdown renders markdown to the terminal. If terminal rendering
// fails the raw markdown is still printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
