package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromFile reads and validates a worksheet.
func LoadFromFile(path string) (*Worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read worksheet file: %w", err)
	}
	return Parse(data)
}

// Parse decodes worksheet YAML and validates its structure. Expressions
// are not compiled here; the runner reports per-entry compile errors so
// one bad expression does not reject the whole sheet.
func Parse(data []byte) (*Worksheet, error) {
	var ws Worksheet
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("parse worksheet YAML: %w", err)
	}
	if len(ws.Entries) == 0 {
		return nil, fmt.Errorf("worksheet has no entries")
	}

	seen := make(map[string]bool, len(ws.Entries))
	for i, e := range ws.Entries {
		if e.ID == "" {
			return nil, fmt.Errorf("entry at index %d has no id", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("duplicate entry id %q", e.ID)
		}
		seen[e.ID] = true
		if e.Expression == "" {
			return nil, fmt.Errorf("entry %q has no expression", e.ID)
		}
	}

	return &ws, nil
}
