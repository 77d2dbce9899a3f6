package floorplan

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// ReadLocations decodes locations from CSV with an id,name,x,y header.
// This is the interchange format the inventory system exports.
func ReadLocations(r io.Reader) ([]Location, error) {
	var locs []Location
	if err := gocsv.Unmarshal(r, &locs); err != nil {
		return nil, fmt.Errorf("parsing locations CSV: %w", err)
	}
	return locs, nil
}

// WriteLocations encodes locations as CSV with a header row.
func WriteLocations(w io.Writer, locs []Location) error {
	if err := gocsv.Marshal(locs, w); err != nil {
		return fmt.Errorf("writing locations CSV: %w", err)
	}
	return nil
}

// ImportLocations loads locations from a CSV file and merges them into the
// plan: an incoming id that already exists replaces that location, anything
// else is appended. The merged plan is re-validated.
func (p *FloorPlan) ImportLocations(filename string) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, fmt.Errorf("opening locations CSV: %w", err)
	}
	defer f.Close()

	locs, err := ReadLocations(f)
	if err != nil {
		return 0, err
	}

	byID := make(map[string]int, len(p.Locations))
	for i, l := range p.Locations {
		byID[l.ID] = i
	}
	for _, l := range locs {
		if i, ok := byID[l.ID]; ok {
			p.Locations[i] = l
		} else {
			byID[l.ID] = len(p.Locations)
			p.Locations = append(p.Locations, l)
		}
	}

	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("imported locations: %w", err)
	}
	return len(locs), nil
}
