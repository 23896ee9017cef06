package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jfox91/gimme/internal/inventory"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

type Mode string

const (
	ModeTable Mode = "table"
	ModeJSON  Mode = "json"
	ModeYAML  Mode = "yaml"
)

func ParseMode(raw string) (Mode, error) {
	switch raw {
	case "", string(ModeTable):
		return ModeTable, nil
	case string(ModeJSON):
		return ModeJSON, nil
	case string(ModeYAML):
		return ModeYAML, nil
	default:
		return "", fmt.Errorf("invalid output mode: %s", raw)
	}
}

func InitStyles() {
	if os.Getenv("NO_COLOR") != "" {
		pterm.DisableColor()
	}
}

func EmitJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func EmitYAML(value any) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(value)
}

// PrintWarnings reports loader warnings on stderr so stdout stays parseable.
func PrintWarnings(warnings []inventory.Warning) {
	InitStyles()
	printer := pterm.Warning.WithWriter(os.Stderr)
	for _, warning := range warnings {
		printer.Println(warning.String())
	}
}

// RenderValue prints a single field value. Table mode prints the bare value
// so the output can feed a pipeline.
func RenderValue(value any, mode Mode) error {
	switch mode {
	case ModeJSON:
		return EmitJSON(value)
	case ModeYAML:
		return EmitYAML(value)
	default:
		fmt.Println(inventory.Stringify(value))
		return nil
	}
}
