package output

import (
	"fmt"
)

type dcimPayload struct {
	Device string `json:"device" yaml:"device"`
	Field  string `json:"field" yaml:"field"`
	Value  string `json:"value" yaml:"value"`
}

// RenderDCIMValue prints one DCIM fact about a device. Table mode prints
// the bare value for pipelines; structured modes keep the device context.
func RenderDCIMValue(device, field, value string, mode Mode) error {
	switch mode {
	case ModeJSON:
		return EmitJSON(dcimPayload{Device: device, Field: field, Value: value})
	case ModeYAML:
		return EmitYAML(dcimPayload{Device: device, Field: field, Value: value})
	default:
		fmt.Println(value)
		return nil
	}
}
