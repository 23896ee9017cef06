package cmd

import (
	"fmt"

	"github.com/jfox91/gimme/internal/exit"
	"github.com/jfox91/gimme/internal/output"
	"github.com/spf13/cobra"
)

// newFieldShortcutCmd builds the `gimme mac <node>` style commands: each is
// `get <node> <field>` with the field baked in.
func newFieldShortcutCmd(field, short string) *cobra.Command {
	var outputMode string
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <node>", field),
		Short: short,
		Args:  cobra.ExactArgs(1),
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
			value, err := inv.Get(args[0], field)
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
