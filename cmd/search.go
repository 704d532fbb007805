package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/ocastel/shop/renderer"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search products by id or name" }
func (*searchCmd) Usage() string {
	return `shp search <term>

  Case-insensitive substring search over product ids and names. An empty
  term matches every product.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	term := strings.Join(f.Args(), " ")

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	catalog := store.Load()

	printMarkdown(renderer.SearchResults(term, catalog.Search(term)))
	return subcommands.ExitSuccess
}
