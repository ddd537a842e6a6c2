package shard

import (
	"github.com/jihwankim/rubbertree/pkg/fuzz"
	"github.com/jihwankim/rubbertree/pkg/lattice"
)

// StatefulSharder is the randomized backtracking sharder. Unlike
// SimpleSharder it is stateful across calls only through the
// FragmentLedger passed to Shard: the ledger is what bounds the
// pairwise overlap between shards produced by successive calls.
type StatefulSharder struct {
	sampler *fuzz.Sampler
}

// NewStatefulSharder seeds the sharder's randomized enumeration order.
// The same seed reproduces the same search trace, though the search
// still explores candidates in the order the ledger happens to reject
// or accept them, so it is not bit-identical across differing ledger
// histories the way the deterministic hash-based sharder is.
func NewStatefulSharder(seed int64) *StatefulSharder {
	return &StatefulSharder{sampler: fuzz.NewSampler(seed)}
}

// Shard runs the backtracking search over l for k endpoints per cell
// and a maximum pairwise overlap of m, committing every size-(m+1)
// fragment of the winning shard to ledger. Returns ErrNoShardsAvailable
// if no placement satisfying the overlap bound exists.
func (s *StatefulSharder) Shard(l *lattice.Lattice, k, m int, ledger FragmentLedger) (*lattice.Lattice, error) {
	result := s.search(l, k, m, ledger)
	endpoints := result.GetAllEndpoints()
	if len(endpoints) == 0 {
		return nil, ErrNoShardsAvailable
	}

	if err := s.commit(endpoints, m, ledger); err != nil {
		return nil, err
	}
	return result, nil
}

// commit records every size-(m+1) fragment of the winning shard. If
// the shard has fewer than m+1 endpoints there is nothing to commit.
func (s *StatefulSharder) commit(endpoints []lattice.Endpoint, m int, ledger FragmentLedger) error {
	identities := identitiesOf(endpoints)
	if len(identities) < m+1 {
		return nil
	}
	seq, err := lattice.Sublists(identities, m+1)
	if err != nil {
		return err
	}
	var commitErr error
	seq(func(fragment []string) bool {
		if err := ledger.Save(CanonicalizeFragment(fragment)); err != nil {
			commitErr = err
			return false
		}
		return true
	})
	return commitErr
}

// search implements the recursive backtracking step. It always
// returns a non-nil lattice; an empty one signals "no placement found
// at this level".
func (s *StatefulSharder) search(l *lattice.Lattice, k, m int, ledger FragmentLedger) *lattice.Lattice {
	coords := l.GetAllCoordinates()
	fuzz.Shuffle(s.sampler, coords)

	for _, c := range coords {
		endpoints, _ := l.GetEndpointsForSector(c)
		if len(endpoints) < k {
			continue
		}

		shuffled := append([]lattice.Endpoint(nil), endpoints...)
		fuzz.Shuffle(s.sampler, shuffled)

		seq, err := lattice.Sublists(shuffled, k)
		if err != nil {
			continue
		}

		failurePoint := simulateFailureAtCoordinate(l, c)

		var placed *lattice.Lattice
		seq(func(fragment []lattice.Endpoint) bool {
			fragmentIdentities := identitiesOf(fragment)
			if overlapsRecorded(fragmentIdentities, m, ledger) {
				return true // try the next candidate fragment
			}

			partial := s.search(failurePoint, k, m, ledger)
			combined := append(append([]string(nil), fragmentIdentities...), identitiesOf(partial.GetAllEndpoints())...)
			if overlapsRecorded(combined, m, ledger) {
				return true
			}

			if err := partial.AddEndpointsForSector(c, fragment); err != nil {
				return true
			}
			placed = partial
			return false // success, stop enumerating this coordinate
		})

		if placed != nil {
			return placed
		}
	}

	return lattice.New(l.GetDimensionNames())
}

// simulateFailureAtCoordinate removes every sector sharing any of c's
// per-dimension values, i.e. the row/column c occupies along every
// dimension, one dimension at a time.
func simulateFailureAtCoordinate(l *lattice.Lattice, c lattice.Coordinate) *lattice.Lattice {
	cur := l
	for i, d := range l.GetDimensionNames() {
		next, err := cur.SimulateFailure(d, c[i])
		if err != nil {
			continue
		}
		cur = next
	}
	return cur
}

// overlapsRecorded reports whether any size-(m+1) subset of identities
// has already been committed to the ledger. Fragments smaller than
// m+1 can't overlap anything by definition.
func overlapsRecorded(identities []string, m int, ledger FragmentLedger) bool {
	if len(identities) < m+1 {
		return false
	}
	seq, err := lattice.Sublists(identities, m+1)
	if err != nil {
		return false
	}
	var found bool
	seq(func(sub []string) bool {
		ok, err := ledger.Contains(CanonicalizeFragment(sub))
		if err != nil || ok {
			found = ok
			return false
		}
		return true
	})
	return found
}

func identitiesOf(endpoints []lattice.Endpoint) []string {
	out := make([]string, len(endpoints))
	for i, e := range endpoints {
		out[i] = e.Value
	}
	return out
}
