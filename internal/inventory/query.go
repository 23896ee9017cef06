package inventory

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/labels"
)

// NotFoundError reports a missing record, or a missing field on an existing
// record. A field holding an empty string is present, not missing.
type NotFoundError struct {
	ID    string
	Field string
}

func (e *NotFoundError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("node %q has no field %q", e.ID, e.Field)
	}
	return fmt.Sprintf("node %q not found in inventory", e.ID)
}

// Lookup returns the record with the given identifier.
func (inv *Inventory) Lookup(id string) (Record, bool) {
	idx, ok := inv.byID[id]
	if !ok {
		return Record{}, false
	}
	return inv.Records[idx], true
}

// Get resolves a field on one record. Nested fields are addressed by
// dot-path ("hardware.disks.boot"); field names are case-sensitive.
func (inv *Inventory) Get(id, field string) (any, error) {
	record, ok := inv.Lookup(id)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	value, ok := getValue(record.Fields, field)
	if !ok {
		return nil, &NotFoundError{ID: id, Field: field}
	}
	return value, nil
}

// FieldString is Get with the value rendered for display.
func (inv *Inventory) FieldString(id, field string) (string, error) {
	value, err := inv.Get(id, field)
	if err != nil {
		return "", err
	}
	return Stringify(value), nil
}

// ReverseLookup returns the identifiers of every record whose field matches
// value, in inventory order. Matching is exact unless substring is set.
func (inv *Inventory) ReverseLookup(field, value string, substring bool) []string {
	var ids []string
	for _, record := range inv.Records {
		raw, ok := getValue(record.Fields, field)
		if !ok {
			continue
		}
		rendered := Stringify(raw)
		if rendered == value || (substring && strings.Contains(rendered, value)) {
			ids = append(ids, record.ID)
		}
	}
	return ids
}

// FilterByLabel returns the records whose labels satisfy the selector, in
// inventory order.
func (inv *Inventory) FilterByLabel(selector labels.Selector) []Record {
	var out []Record
	for _, record := range inv.Records {
		if selector.Matches(labels.Set(record.Labels())) {
			out = append(out, record)
		}
	}
	return out
}

// ListFields returns the sorted union of top-level field names across all
// records, each name once.
func (inv *Inventory) ListFields() []string {
	set := map[string]struct{}{}
	for _, record := range inv.Records {
		for key := range record.Fields {
			set[key] = struct{}{}
		}
	}
	fields := make([]string, 0, len(set))
	for key := range set {
		fields = append(fields, key)
	}
	sort.Strings(fields)
	return fields
}

// Stringify renders a field value for display and comparison. Scalars keep
// their JSON source form; composites render as compact JSON.
func Stringify(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case json.Number:
		return typed.String()
	case bool:
		return strconv.FormatBool(typed)
	default:
		data, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprintf("%v", typed)
		}
		return string(data)
	}
}

func getValue(raw map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var current any = raw
	for _, part := range parts {
		asMap, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = asMap[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
