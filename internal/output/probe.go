package output

import (
	"sort"
	"strings"

	"github.com/jfox91/gimme/internal/probe"
	"github.com/pterm/pterm"
)

// ProbeResult is one row of a hardware probe run. A failed node carries its
// error and stays in the report; the batch never aborts on one bad node.
type ProbeResult struct {
	Node   string     `json:"node" yaml:"node"`
	Target string     `json:"target" yaml:"target"`
	Info   probe.Info `json:"info,omitempty" yaml:"info,omitempty"`
	Error  string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// RenderProbeResults prints one row per probed node.
func RenderProbeResults(results []ProbeResult, mode Mode) error {
	switch mode {
	case ModeJSON:
		return EmitJSON(results)
	case ModeYAML:
		return EmitYAML(results)
	default:
		return renderProbeTable(results)
	}
}

func renderProbeTable(results []ProbeResult) error {
	InitStyles()
	rows := [][]string{{"Node", "Target", "Status", "Hardware"}}
	for _, result := range results {
		status := "ok"
		detail := formatInfo(result.Info)
		if result.Error != "" {
			status = pterm.Red("FAILED")
			detail = result.Error
		}
		rows = append(rows, []string{result.Node, result.Target, status, detail})
	}
	table := pterm.DefaultTable.WithHasHeader().WithData(rows)
	return table.Render()
}

func formatInfo(info probe.Info) string {
	if len(info) == 0 {
		return ""
	}
	keys := make([]string, 0, len(info))
	for key := range info {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+info[key])
	}
	return strings.Join(parts, " ")
}
