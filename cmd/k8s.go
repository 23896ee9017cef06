package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/jfox91/gimme/internal/exit"
	"github.com/jfox91/gimme/internal/inventory"
	"github.com/jfox91/gimme/internal/output"
	"github.com/jfox91/gimme/internal/report"
	"github.com/jfox91/gimme/internal/resolve"
	"github.com/jfox91/gimme/internal/selector"
	"github.com/jfox91/gimme/internal/types"
	"github.com/spf13/cobra"
)

func newK8sCmd() *cobra.Command {
	var outputMode string
	cmd := &cobra.Command{
		Use:   "k8s <node>",
		Short: "Show a node's Kubernetes status, version, and age",
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
			record, ok := inv.Lookup(args[0])
			if !ok {
				return exit.New(exit.CodeUsage, &inventory.NotFoundError{ID: args[0]})
			}

			client, err := newClusterClient(cfg)
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			nodes, err := client.ListNodes(context.Background(), nil)
			if err != nil {
				return exit.New(exit.CodeAdapter, err)
			}
			node, ok := resolve.Node(record, nodes)
			if !ok {
				return exit.New(exit.CodeUsage, fmt.Errorf("node %q is not registered with the cluster", args[0]))
			}
			if err := output.RenderClusterNode(node, mode, time.Now()); err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "table", "output format: table|json|yaml")
	return cmd
}

// listClusterNodes is the shared front half of the report commands: parse
// flags, build the client, list nodes.
func listClusterNodes(selectorRaw string) ([]types.ClusterNode, error) {
	parsed, err := selector.Parse(selectorRaw)
	if err != nil {
		return nil, exit.New(exit.CodeUsage, err)
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, exit.New(exit.CodeUsage, err)
	}
	client, err := newClusterClient(cfg)
	if err != nil {
		return nil, exit.New(exit.CodeUsage, err)
	}
	nodes, err := client.ListNodes(context.Background(), parsed)
	if err != nil {
		return nil, exit.New(exit.CodeAdapter, err)
	}
	return nodes, nil
}

func newOfflineCmd() *cobra.Command {
	var (
		outputMode  string
		selectorRaw string
	)
	cmd := &cobra.Command{
		Use:   "offline",
		Short: "List the cluster nodes that are not Ready",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := output.ParseMode(outputMode)
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			nodes, err := listClusterNodes(selectorRaw)
			if err != nil {
				return err
			}
			if err := output.RenderClusterNodes(report.Offline(nodes), mode, time.Now()); err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&selectorRaw, "selector", "", "label selector to filter nodes")
	cmd.Flags().StringVar(&outputMode, "output", "table", "output format: table|json|yaml")
	return cmd
}

func newOldestCmd() *cobra.Command {
	var (
		outputMode  string
		selectorRaw string
	)
	cmd := &cobra.Command{
		Use:   "oldest",
		Short: "Show the longest-registered cluster node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := output.ParseMode(outputMode)
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			nodes, err := listClusterNodes(selectorRaw)
			if err != nil {
				return err
			}
			oldest, ok := report.Oldest(nodes)
			if !ok {
				return exit.New(exit.CodeUsage, fmt.Errorf("no nodes found in the cluster"))
			}
			if err := output.RenderClusterNode(oldest, mode, time.Now()); err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&selectorRaw, "selector", "", "label selector to filter nodes")
	cmd.Flags().StringVar(&outputMode, "output", "table", "output format: table|json|yaml")
	return cmd
}

func newVersionMismatchCmd() *cobra.Command {
	var (
		outputMode  string
		selectorRaw string
	)
	cmd := &cobra.Command{
		Use:   "version-mismatch",
		Short: "List the nodes whose kubelet version differs from the majority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := output.ParseMode(outputMode)
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			nodes, err := listClusterNodes(selectorRaw)
			if err != nil {
				return err
			}
			majority, outliers := report.VersionMismatch(nodes)
			if err := output.RenderVersionMismatch(majority, outliers, mode, time.Now()); err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&selectorRaw, "selector", "", "label selector to filter nodes")
	cmd.Flags().StringVar(&outputMode, "output", "table", "output format: table|json|yaml")
	return cmd
}
