package cmd

import (
	"github.com/jfox91/gimme/internal/exit"
	"github.com/jfox91/gimme/internal/output"
	"github.com/jfox91/gimme/internal/selector"
	"github.com/spf13/cobra"
)

func newLabelCmd() *cobra.Command {
	var outputMode string
	cmd := &cobra.Command{
		Use:   "label <selector>",
		Short: "List the inventory nodes whose labels match a selector",
		Long: `List the inventory nodes whose labels match a Kubernetes-style label
selector, e.g. "gpu", "env=prod", or "env=prod,!retired".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := output.ParseMode(outputMode)
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			parsed, err := selector.Parse(args[0])
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			cfg, err := loadConfig()
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			inv, err := loadInventory(cfg)
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			records := inv.FilterByLabel(parsed)
			if err := output.RenderRecords(records, mode); err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "table", "output format: table|json|yaml")
	return cmd
}
