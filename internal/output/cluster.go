package output

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jfox91/gimme/internal/types"
	"github.com/pterm/pterm"
)

type nodePayload struct {
	types.ClusterNode `yaml:",inline"`
	AgeText           string `json:"age" yaml:"age"`
}

func nodePayloads(nodes []types.ClusterNode, now time.Time) []nodePayload {
	out := make([]nodePayload, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, nodePayload{ClusterNode: node, AgeText: FormatAge(node.Age(now))})
	}
	return out
}

// RenderClusterNodes prints a node listing with status, version, and age.
func RenderClusterNodes(nodes []types.ClusterNode, mode Mode, now time.Time) error {
	switch mode {
	case ModeJSON:
		return EmitJSON(nodePayloads(nodes, now))
	case ModeYAML:
		return EmitYAML(nodePayloads(nodes, now))
	default:
		return renderClusterNodesTable(nodes, now)
	}
}

// RenderClusterNode prints the detail view for one node.
func RenderClusterNode(node types.ClusterNode, mode Mode, now time.Time) error {
	switch mode {
	case ModeJSON:
		return EmitJSON(nodePayload{ClusterNode: node, AgeText: FormatAge(node.Age(now))})
	case ModeYAML:
		return EmitYAML(nodePayload{ClusterNode: node, AgeText: FormatAge(node.Age(now))})
	default:
		InitStyles()
		rows := [][]string{
			{"Node", node.Name},
			{"Status", node.Status},
			{"Version", node.Version},
			{"Age", FormatAge(node.Age(now))},
			{"InternalIP", strings.Join(node.InternalIPs, ",")},
			{"ExternalIP", strings.Join(node.ExternalIPs, ",")},
		}
		return pterm.DefaultTable.WithData(rows).Render()
	}
}

type mismatchPayload struct {
	MajorityVersion string        `json:"majorityVersion" yaml:"majorityVersion"`
	Outliers        []nodePayload `json:"outliers" yaml:"outliers"`
}

// RenderVersionMismatch prints the majority kubelet version and every node
// not running it.
func RenderVersionMismatch(majority string, outliers []types.ClusterNode, mode Mode, now time.Time) error {
	switch mode {
	case ModeJSON:
		return EmitJSON(mismatchPayload{MajorityVersion: majority, Outliers: nodePayloads(outliers, now)})
	case ModeYAML:
		return EmitYAML(mismatchPayload{MajorityVersion: majority, Outliers: nodePayloads(outliers, now)})
	default:
		InitStyles()
		pterm.Println("Majority version:", majority)
		if len(outliers) == 0 {
			pterm.Println("All nodes match.")
			return nil
		}
		return renderClusterNodesTable(outliers, now)
	}
}

func renderClusterNodesTable(nodes []types.ClusterNode, now time.Time) error {
	InitStyles()
	rows := [][]string{{"Node", "Status", "Version", "Age", "InternalIP"}}
	for _, node := range nodes {
		ip := ""
		if len(node.InternalIPs) > 0 {
			ip = node.InternalIPs[0]
		}
		rows = append(rows, []string{node.Name, node.Status, node.Version, FormatAge(node.Age(now)), ip})
	}
	table := pterm.DefaultTable.WithHasHeader().WithData(rows)
	return table.Render()
}

// FormatAge renders a duration the way node listings usually do: days and
// hours past one day, hours and minutes past one hour, minutes below that.
func FormatAge(age time.Duration) string {
	if age <= 0 {
		return "0m"
	}
	totalHours := int(age.Hours())
	switch {
	case totalHours >= 24:
		return fmt.Sprintf("%dd%dh", totalHours/24, totalHours%24)
	case totalHours >= 1:
		return fmt.Sprintf("%dh%dm", totalHours, int(age.Minutes())%60)
	default:
		return fmt.Sprintf("%dm", int(age.Minutes()))
	}
}

func formatLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}
	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+labels[key])
	}
	return strings.Join(parts, ",")
}
