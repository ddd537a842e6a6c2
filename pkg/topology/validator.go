package topology

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validator checks a Population document. Fatal findings accumulate
// into a *multierror.Error so the caller gets every individual failure
// message rather than just a count; non-fatal findings collect into
// Warnings as a plain string slice.
type Validator struct {
	Warnings []string
}

// NewValidator returns a ready-to-use Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate runs every check and returns ErrInvalidPopulation (wrapping
// the accumulated *multierror.Error) if any fatal finding occurred.
func (v *Validator) Validate(p *Population) error {
	v.Warnings = nil

	var result *multierror.Error
	result = multierror.Append(result, v.validateDimensions(p))
	result = multierror.Append(result, v.validateCells(p))
	result = multierror.Append(result, v.validateDuplicateValues(p))
	result = multierror.Append(result, v.validatePlan(p))

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPopulation, err)
	}
	return nil
}

func (v *Validator) validateDimensions(p *Population) error {
	if len(p.Dimensions) == 0 {
		return errors.New("dimensions must declare at least one dimension name")
	}
	return nil
}

func (v *Validator) validateCells(p *Population) error {
	arity := len(p.Dimensions)
	var result *multierror.Error
	for i, c := range p.Cells {
		if len(c.Coord) != arity {
			result = multierror.Append(result, fmt.Errorf("cells[%d].coord has arity %d, want %d", i, len(c.Coord), arity))
		}
		if len(c.Endpoints) == 0 {
			v.Warnings = append(v.Warnings, fmt.Sprintf("cells[%d] has no endpoints", i))
		}
	}
	return result.ErrorOrNil()
}

// validateDuplicateValues enforces a document-wide uniqueness that
// Lattice.AddEndpointsForSector itself doesn't: a repeated endpoint
// value anywhere in the population is a configuration mistake, even
// across different cells.
func (v *Validator) validateDuplicateValues(p *Population) error {
	seen := make(map[string]struct{})
	var result *multierror.Error
	for ci, c := range p.Cells {
		for ei, e := range c.Endpoints {
			if _, ok := seen[e.Value]; ok {
				result = multierror.Append(result, fmt.Errorf("cells[%d].endpoints[%d] value %q is duplicated across the population", ci, ei, e.Value))
				continue
			}
			seen[e.Value] = struct{}{}
		}
	}
	return result.ErrorOrNil()
}

func (v *Validator) validatePlan(p *Population) error {
	var result *multierror.Error
	if p.Plan.ZoneID == "" {
		result = multierror.Append(result, errors.New("plan.zone_id is required"))
	}
	if p.Plan.Name == "" {
		result = multierror.Append(result, errors.New("plan.name is required"))
	}
	if p.Plan.Type == "" {
		result = multierror.Append(result, errors.New("plan.type is required"))
	}
	if p.Plan.RecordsPerEntry < 1 || p.Plan.RecordsPerEntry > 8 {
		result = multierror.Append(result, fmt.Errorf("plan.records_per_entry must be in [1,8], got %d", p.Plan.RecordsPerEntry))
	}
	return result.ErrorOrNil()
}

// HasWarnings reports whether the last Validate call produced
// non-fatal findings.
func (v *Validator) HasWarnings() bool {
	return len(v.Warnings) > 0
}
