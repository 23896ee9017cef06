package cmd

import (
	"fmt"

	"github.com/jfox91/gimme/internal/exit"
	"github.com/jfox91/gimme/internal/inventory"
	"github.com/jfox91/gimme/internal/output"
	"github.com/jfox91/gimme/internal/probe"
	"github.com/spf13/cobra"
)

func newHwCmd() *cobra.Command {
	var outputMode string
	cmd := &cobra.Command{
		Use:   "hw <node>...",
		Short: "Probe hardware facts over ssh",
		Long: `Probe one or more nodes over ssh and report hardware facts. Nodes are
probed one at a time; a node that cannot be reached is marked FAILED and
the remaining nodes are still probed.`,
		Args: cobra.MinimumNArgs(1),
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

			results := make([]output.ProbeResult, 0, len(args))
			failed := 0
			for _, id := range args {
				result := output.ProbeResult{Node: id}
				record, ok := inv.Lookup(id)
				if !ok {
					result.Error = (&inventory.NotFoundError{ID: id}).Error()
					failed++
					results = append(results, result)
					continue
				}
				result.Target = probeTarget(record)
				info, err := probe.Run(cmd.Context(), result.Target, cfg.SSHUser, cfg.SSHTimeout)
				if err != nil {
					result.Error = err.Error()
					failed++
				} else {
					result.Info = info
				}
				results = append(results, result)
			}

			if err := output.RenderProbeResults(results, mode); err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			if failed > 0 {
				return exit.New(exit.CodeAdapter, fmt.Errorf("%d of %d probes failed", failed, len(args)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "table", "output format: table|json|yaml")
	return cmd
}

// probeTarget prefers the record's ip field over its identifier, since
// inventory hostnames are not always resolvable from the operator's machine.
func probeTarget(record inventory.Record) string {
	if raw, ok := record.Fields["ip"]; ok {
		if ip := inventory.Stringify(raw); ip != "" {
			return ip
		}
	}
	return record.ID
}
