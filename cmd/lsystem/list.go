package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viktordanov/lturtle/grammars"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in figures",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range grammars.Names() {
				fig, _ := grammars.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s depth %d\n", name, fig.Defaults().Depth)
			}
		},
	}
}
