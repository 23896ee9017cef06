package cmd

import (
	"fmt"

	"github.com/jfox91/gimme/internal/exit"
	"github.com/jfox91/gimme/internal/output"
	"github.com/spf13/cobra"
)

func newListFieldsCmd() *cobra.Command {
	var outputMode string
	cmd := &cobra.Command{
		Use:   "list-fields",
		Short: "List every field name present in the inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := output.ParseMode(outputMode)
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
			if err := output.RenderFields(inv.ListFields(), mode); err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "table", "output format: table|json|yaml")
	return cmd
}

func newGetCmd() *cobra.Command {
	var outputMode string
	cmd := &cobra.Command{
		Use:   "get <node> <field>",
		Short: "Print one field of a node, nested fields addressed by dot-path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := output.ParseMode(outputMode)
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
			value, err := inv.Get(args[0], args[1])
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			if err := output.RenderValue(value, mode); err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "table", "output format: table|json|yaml")
	return cmd
}

func newRlookupCmd() *cobra.Command {
	var (
		outputMode string
		substring  bool
	)
	cmd := &cobra.Command{
		Use:   "rlookup <field> <value>",
		Short: "Find the nodes whose field holds a value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := output.ParseMode(outputMode)
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
			ids := inv.ReverseLookup(args[0], args[1], substring)
			if len(ids) == 0 {
				return exit.New(exit.CodeUsage, fmt.Errorf("no node with %s=%q", args[0], args[1]))
			}
			if err := output.RenderIdentifiers(ids, mode); err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&substring, "substring", false, "match on substring instead of exact value")
	cmd.Flags().StringVar(&outputMode, "output", "table", "output format: table|json|yaml")
	return cmd
}
