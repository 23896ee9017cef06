package cmd

import (
	"fmt"
	"os"

	"github.com/jfox91/gimme/internal/config"
	"github.com/jfox91/gimme/internal/inventory"
	"github.com/jfox91/gimme/internal/k8s"
	"github.com/jfox91/gimme/internal/output"
	"github.com/spf13/cobra"
)

var (
	configPath     string
	inventoryDir   string
	kubeconfigPath string
	kubeContext    string
	verbose        bool
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gimme",
		Short:         "Query node inventory, cluster state, and DCIM records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file (default ~/.config/gimme/gimme.conf)")
	cmd.PersistentFlags().StringVar(&inventoryDir, "inventory-dir", "", "inventory directory, overrides the configuration file")
	cmd.PersistentFlags().StringVar(&kubeconfigPath, "kubeconfig", "", "path to kubeconfig file")
	cmd.PersistentFlags().StringVar(&kubeContext, "context", "", "kubeconfig context to use")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	cmd.AddCommand(newListFieldsCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newRlookupCmd())
	cmd.AddCommand(newLabelCmd())
	cmd.AddCommand(newFieldShortcutCmd("mac", "Print a node's MAC address"))
	cmd.AddCommand(newFieldShortcutCmd("ip", "Print a node's IP address"))
	cmd.AddCommand(newFieldShortcutCmd("serial", "Print a node's serial number"))
	cmd.AddCommand(newK8sCmd())
	cmd.AddCommand(newOfflineCmd())
	cmd.AddCommand(newOldestCmd())
	cmd.AddCommand(newVersionMismatchCmd())
	cmd.AddCommand(newHwCmd())
	cmd.AddCommand(newNautoCmd())
	cmd.AddCommand(newNutCmd())

	return cmd
}

// loadConfig builds the Config once per invocation; flags win over the
// configuration file.
func loadConfig() (*config.Config, error) {
	path := configPath
	explicit := path != ""
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, err
	}
	if inventoryDir != "" {
		cfg.InventoryDir = inventoryDir
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "config path=%s inventory=%s\n", path, cfg.InventoryDir)
	}
	return cfg, nil
}

func loadInventory(cfg *config.Config) (*inventory.Inventory, error) {
	if cfg.InventoryDir == "" {
		return nil, fmt.Errorf("inventory directory not configured (set GIMME_INVENTORY_DIR or use --inventory-dir)")
	}
	inv, warnings, err := inventory.Load(cfg.InventoryDir, cfg.InventoryRecursive)
	if err != nil {
		return nil, err
	}
	output.PrintWarnings(warnings)
	if verbose {
		fmt.Fprintf(os.Stderr, "inventory dir=%s records=%d\n", cfg.InventoryDir, len(inv.Records))
	}
	return inv, nil
}

func newClusterClient(cfg *config.Config) (*k8s.Client, error) {
	kubeConfig, info, err := k8s.ResolveKubeconfig(kubeconfigPath, kubeContext)
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Fprintln(os.Stderr, k8s.DescribeKubeconfig(info))
	}
	return k8s.NewClient(kubeConfig, cfg.K8sTimeout)
}
