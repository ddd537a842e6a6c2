package lattice

import "strings"

// coordKeySep joins coordinate components into a single sortable
// string. It must not appear in any dimension value; using the ASCII
// unit separator keeps that assumption safe for ordinary DNS/AZ-style
// labels without forcing callers to escape anything.
const coordKeySep = "\x1f"

// Coordinate is an n-tuple of strings, one value per dimension, in the
// lattice's declared dimension order.
type Coordinate []string

// key renders the coordinate as the map key used for sector storage
// and as the sort key for I4's deterministic flatten order: plain
// string comparison on the joined form is equivalent to lexicographic
// per-component comparison because coordKeySep sorts below every
// printable character.
func (c Coordinate) key() string {
	return strings.Join(c, coordKeySep)
}

// Equal reports whether two coordinates have identical components.
func (c Coordinate) Equal(other Coordinate) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}
