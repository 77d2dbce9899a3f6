package floorplan

import (
	"encoding/json"
	"fmt"
	"os"
)

// Parse decodes a floor plan from JSON and validates it.
func Parse(data []byte) (*FloorPlan, error) {
	var p FloorPlan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and validates a floor plan from a JSON file.
func Load(filename string) (*FloorPlan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return p, nil
}

// Save writes the plan to a JSON file, indented for hand editing.
func Save(filename string, p *FloorPlan) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("writing plan: %w", err)
	}
	return nil
}
