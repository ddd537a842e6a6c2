package topology

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jihwankim/rubbertree/pkg/lattice"
)

// Loader parses a population document into a ready-to-use Lattice plus
// the plan settings that rode alongside it.
type Loader struct {
	validator *Validator
}

// NewLoader returns a ready-to-use Loader.
func NewLoader() *Loader {
	return &Loader{validator: NewValidator()}
}

// LoadFile reads path and parses it as a population document.
func (l *Loader) LoadFile(path string) (*lattice.Lattice, PlanSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, PlanSettings{}, fmt.Errorf("failed to read population file: %w", err)
	}
	return l.Load(data)
}

// Load parses data as a population document, validates it, and builds
// the Lattice it describes.
func (l *Loader) Load(data []byte) (*lattice.Lattice, PlanSettings, error) {
	var p Population
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, PlanSettings{}, fmt.Errorf("failed to parse population YAML: %w", err)
	}

	if err := l.validator.Validate(&p); err != nil {
		return nil, PlanSettings{}, err
	}

	lat := lattice.New(p.Dimensions)
	for i, c := range p.Cells {
		endpoints := make([]lattice.Endpoint, len(c.Endpoints))
		for j, e := range c.Endpoints {
			endpoints[j] = lattice.WithHealthChecks(e.Value, e.HealthCheckIDs...)
		}
		if err := lat.AddEndpointsForSector(lattice.Coordinate(c.Coord), endpoints); err != nil {
			return nil, PlanSettings{}, fmt.Errorf("cells[%d]: %w", i, err)
		}
	}

	return lat, p.Plan, nil
}

// Warnings returns the non-fatal findings from the most recent Load
// call.
func (l *Loader) Warnings() []string {
	return l.validator.Warnings
}
