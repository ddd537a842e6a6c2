package lattice

import (
	"fmt"
	"sort"
)

// Lattice is an N-dimensional container of endpoints, addressed by
// coordinate tuples over a fixed, ordered list of dimension names.
// Lattices are built by append-only AddEndpointsForSector calls; once
// handed to a sharder or the vulcanizer they must be treated as
// immutable. SimulateFailure never mutates the receiver.
type Lattice struct {
	dims      []string
	dimIndex  map[string]int
	dimValues map[string]map[string]struct{}
	sectors   map[string][]Endpoint
	coords    map[string]Coordinate
}

// New constructs an empty lattice over the given ordered dimension
// names. len(dims) must be >= 1; a single-cell lattice uses one
// reserved dimension name (the caller's choice, e.g. "root").
func New(dims []string) *Lattice {
	dimIndex := make(map[string]int, len(dims))
	dimValues := make(map[string]map[string]struct{}, len(dims))
	for i, d := range dims {
		dimIndex[d] = i
		dimValues[d] = make(map[string]struct{})
	}
	return &Lattice{
		dims:      append([]string(nil), dims...),
		dimIndex:  dimIndex,
		dimValues: dimValues,
		sectors:   make(map[string][]Endpoint),
		coords:    make(map[string]Coordinate),
	}
}

// AddEndpointsForSector appends endpoints to coord's ordered sequence
// (I1 arity, I2 value-set registration) and returns ErrPrecondition if
// |coord| != |D|.
func (l *Lattice) AddEndpointsForSector(coord Coordinate, endpoints []Endpoint) error {
	if len(coord) != len(l.dims) {
		return fmt.Errorf("%w: coordinate arity %d, lattice has %d dimensions", ErrPrecondition, len(coord), len(l.dims))
	}

	key := coord.key()
	if _, ok := l.coords[key]; !ok {
		l.coords[key] = append(Coordinate(nil), coord...)
	}
	l.sectors[key] = append(l.sectors[key], endpoints...)

	for i, v := range coord {
		l.dimValues[l.dims[i]][v] = struct{}{}
	}
	return nil
}

// GetEndpointsForSector returns coord's ordered endpoint sequence, or
// nil if the sector is unoccupied. Returns ErrPrecondition on arity
// mismatch.
func (l *Lattice) GetEndpointsForSector(coord Coordinate) ([]Endpoint, error) {
	if len(coord) != len(l.dims) {
		return nil, fmt.Errorf("%w: coordinate arity %d, lattice has %d dimensions", ErrPrecondition, len(coord), len(l.dims))
	}
	return l.sectors[coord.key()], nil
}

// GetAllCoordinates returns the occupied coordinate keys. Order is
// unspecified semantically (the contract models a set); this
// implementation returns them in I4's sorted order so callers that
// iterate deterministically get it for free.
func (l *Lattice) GetAllCoordinates() []Coordinate {
	keys := l.sortedSectorKeys()
	out := make([]Coordinate, len(keys))
	for i, k := range keys {
		out[i] = l.coords[k]
	}
	return out
}

// GetAllEndpoints concatenates every occupied sector's endpoints in
// I4's order: sorted coordinate keys, insertion order within a sector.
func (l *Lattice) GetAllEndpoints() []Endpoint {
	var out []Endpoint
	for _, key := range l.sortedSectorKeys() {
		out = append(out, l.sectors[key]...)
	}
	return out
}

// GetDimensionNames returns the lattice's declared dimension order.
func (l *Lattice) GetDimensionNames() []string {
	return append([]string(nil), l.dims...)
}

// GetDimensionValues returns the observed values for dimension d, in
// ascending order. Returns ErrPrecondition if d is unknown.
func (l *Lattice) GetDimensionValues(d string) ([]string, error) {
	values, ok := l.dimValues[d]
	if !ok {
		return nil, fmt.Errorf("%w: unknown dimension %q", ErrPrecondition, d)
	}
	out := make([]string, 0, len(values))
	for v := range values {
		out = append(out, v)
	}
	sort.Strings(out)
	return out, nil
}

// GetDimensionSize returns the number of distinct observed values for
// dimension d.
func (l *Lattice) GetDimensionSize(d string) (int, error) {
	values, err := l.GetDimensionValues(d)
	if err != nil {
		return 0, err
	}
	return len(values), nil
}

// SimulateFailure returns a fresh lattice (I3) restricted to sectors
// whose component at dimension d is not v. Per-dimension value sets on
// the result reflect only the surviving sectors. The receiver is never
// mutated. Returns ErrPrecondition if d is unknown.
func (l *Lattice) SimulateFailure(d, v string) (*Lattice, error) {
	idx, ok := l.dimIndex[d]
	if !ok {
		return nil, fmt.Errorf("%w: unknown dimension %q", ErrPrecondition, d)
	}

	out := New(l.dims)
	for _, key := range l.sortedSectorKeys() {
		coord := l.coords[key]
		if coord[idx] == v {
			continue
		}
		// AddEndpointsForSector cannot fail here: coord came from this
		// lattice, so its arity already matches.
		_ = out.AddEndpointsForSector(coord, l.sectors[key])
	}
	return out, nil
}

func (l *Lattice) sortedSectorKeys() []string {
	keys := make([]string, 0, len(l.sectors))
	for k := range l.sectors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
