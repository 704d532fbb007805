package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ocastel/shop/date"
	"github.com/ocastel/shop/renderer"
)

// dailyCmd holds the flags for the 'daily' subcommand.
type dailyCmd struct {
	date string
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display the sales total for one day" }
func (*dailyCmd) Usage() string {
	return `shp daily [-d <date>]

  Sums the ledger's amount column for the given day (defaults to today).
  The sum keeps the ledger's literal semantics: multi-item checkouts
  count their bill total once per item line.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the report (defaults to today)")
}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day := date.Today()
	if c.date != "" {
		var err error
		day, err = date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Daily(day, store.DailyTotal(day)))
	return subcommands.ExitSuccess
}
