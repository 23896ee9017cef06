package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newNutCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "nut",
		Short:  "gimme a nut",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pterm.Println("No nuts here. gimme hoards node metadata, not acorns.")
			pterm.Println("Try: gimme list-fields")
			return nil
		},
	}
}
