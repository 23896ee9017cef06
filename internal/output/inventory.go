package output

import (
	"fmt"

	"github.com/jfox91/gimme/internal/inventory"
	"github.com/pterm/pterm"
)

// RenderFields prints the discoverable field names.
func RenderFields(fields []string, mode Mode) error {
	switch mode {
	case ModeJSON:
		return EmitJSON(fields)
	case ModeYAML:
		return EmitYAML(fields)
	default:
		for _, field := range fields {
			fmt.Println(field)
		}
		return nil
	}
}

// RenderIdentifiers prints reverse-lookup results, one identifier per line
// in table mode.
func RenderIdentifiers(ids []string, mode Mode) error {
	switch mode {
	case ModeJSON:
		return EmitJSON(ids)
	case ModeYAML:
		return EmitYAML(ids)
	default:
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	}
}

// RenderRecords prints filtered inventory records. The table view keeps one
// row per node with its labels; structured modes carry the full documents.
func RenderRecords(records []inventory.Record, mode Mode) error {
	switch mode {
	case ModeJSON:
		return EmitJSON(records)
	case ModeYAML:
		return EmitYAML(records)
	default:
		return renderRecordsTable(records)
	}
}

func renderRecordsTable(records []inventory.Record) error {
	InitStyles()
	rows := [][]string{{"Node", "IP", "Labels"}}
	for _, record := range records {
		ip := ""
		if raw, ok := record.Fields["ip"]; ok {
			ip = inventory.Stringify(raw)
		}
		rows = append(rows, []string{record.ID, ip, formatLabels(record.Labels())})
	}
	table := pterm.DefaultTable.WithHasHeader().WithData(rows)
	return table.Render()
}
