// Package inventory loads node metadata from a directory of JSON group
// files and answers field queries over the loaded records. An Inventory is
// rebuilt from disk on every invocation and never written back.
package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Record is one node's metadata as read from a single JSON file. Fields are
// schemaless; whatever the file contains is preserved as-is, with numbers
// decoded as json.Number so they render back unchanged.
type Record struct {
	ID     string         `json:"id" yaml:"id"`
	Path   string         `json:"-" yaml:"-"`
	Fields map[string]any `json:"fields" yaml:"fields"`
}

// Labels returns the record's labels field as a flat string map. Records
// without a labels mapping return nil.
func (r Record) Labels() map[string]string {
	raw, ok := r.Fields["labels"].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		out[key] = Stringify(value)
	}
	return out
}

// Inventory is the ordered set of records from one load. Order is the
// lexical order of the source file paths.
type Inventory struct {
	Records []Record

	byID map[string]int
}

// Warning reports a file the loader had to skip or reconcile without
// aborting the load.
type Warning struct {
	Path   string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Path, w.Reason)
}

// LoadError means the inventory directory itself is unusable.
type LoadError struct {
	Dir string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("inventory directory %s: %v", e.Dir, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads every *.json file under dir into an Inventory. Files that fail
// to parse, or that carry no identifier, are skipped with a warning. A
// duplicate identifier keeps the record position of its first occurrence
// but takes the content of the last file, with a warning naming both.
func Load(dir string, recursive bool) (*Inventory, []Warning, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, nil, &LoadError{Dir: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, nil, &LoadError{Dir: dir, Err: fmt.Errorf("not a directory")}
	}

	paths, err := jsonFiles(dir, recursive)
	if err != nil {
		return nil, nil, &LoadError{Dir: dir, Err: err}
	}

	inv := &Inventory{byID: map[string]int{}}
	var warnings []Warning

	for _, path := range paths {
		record, warn := loadFile(path)
		if warn != nil {
			warnings = append(warnings, *warn)
			continue
		}
		if prev, ok := inv.byID[record.ID]; ok {
			warnings = append(warnings, Warning{
				Path:   path,
				Reason: fmt.Sprintf("duplicate identifier %q also defined in %s, keeping this file", record.ID, inv.Records[prev].Path),
			})
			inv.Records[prev] = record
			continue
		}
		inv.byID[record.ID] = len(inv.Records)
		inv.Records = append(inv.Records, record)
	}

	return inv, warnings, nil
}

func jsonFiles(dir string, recursive bool) ([]string, error) {
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		var paths []string
		for _, entry := range entries {
			if entry.IsDir() || !isJSONName(entry.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
		return paths, nil
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !isJSONName(entry.Name()) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func isJSONName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".json")
}

func loadFile(path string) (Record, *Warning) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, &Warning{Path: path, Reason: fmt.Sprintf("unreadable: %v", err)}
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		return Record{}, &Warning{Path: path, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	id := identifier(fields)
	if id == "" {
		return Record{}, &Warning{Path: path, Reason: "no hostname or name field"}
	}
	return Record{ID: id, Path: path, Fields: fields}, nil
}

func identifier(fields map[string]any) string {
	for _, key := range []string{"hostname", "name"} {
		if value, ok := fields[key].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}
