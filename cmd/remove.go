package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct {
	id  string
	yes bool
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a product from the catalog" }
func (*removeCmd) Usage() string {
	return `shp remove -id <id> -yes

  Deletes a product and persists the catalog. Refuses to act without
  -yes: deletions are not recoverable from the snapshot.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product id to remove.")
	f.BoolVar(&c.yes, "yes", false, "Confirm the deletion.")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	if !c.yes {
		fmt.Fprintf(os.Stderr, "Refusing to remove %q without -yes.\n", c.id)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	catalog := store.Load()

	msg, err := store.Remove(catalog, c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(msg)
	return subcommands.ExitSuccess
}
