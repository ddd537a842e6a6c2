// Package vulcanize implements the RubberTree vulcanizer: it composes
// a Lattice and repeated AnswerSet lowerings into the full ordered,
// dependency-correct DNS provisioning plan.
package vulcanize

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	route53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/rs/zerolog/log"

	"github.com/jihwankim/rubbertree/pkg/answer"
	"github.com/jihwankim/rubbertree/pkg/lattice"
)

// MaxRecordsPerEntry is the hard cap the downstream DNS product places
// on K, the records-per-entry window size.
const MaxRecordsPerEntry = 8

const truncateLimit = 30

// Vulcanizer runs the RubberTree procedure. It carries no state across
// calls to Vulcanize; currentState exists purely to make the
// single-cell/multi-cell dispatch and its sub-steps visible in logs.
type Vulcanizer struct {
	currentState PlanState
}

// New returns a ready-to-use Vulcanizer.
func New() *Vulcanizer {
	return &Vulcanizer{currentState: StateIdle}
}

// Vulcanize produces the ordered DNS plan for l. K must be in [1,8].
// Case A (single-cell lattices) runs the flat procedure directly on
// l's endpoints. Case B (multi-cell) interleaves every cell's
// endpoints, runs the flat procedure over the interleaving, promotes
// its fallbacks to a secondary tree, and appends one per-dimension-
// value secondary dispatch branch plus a final root alias.
func (v *Vulcanizer) Vulcanize(l *lattice.Lattice, zoneID, name, recordType string, ttl int64, k int) ([]route53types.ResourceRecordSet, error) {
	if k < 1 || k > MaxRecordsPerEntry {
		return nil, fmt.Errorf("%w: K=%d must be in [1,%d]", ErrPrecondition, k, MaxRecordsPerEntry)
	}

	v.transitionState(StatePlanning)
	coords := l.GetAllCoordinates()

	if len(coords) <= 1 {
		v.transitionState(StateFlat)
		records := v.flat(l.GetAllEndpoints(), zoneID, name, recordType, ttl, k)
		v.transitionState(StateComplete)
		return records, nil
	}

	return v.vulcanizeMultiCell(l, coords, zoneID, name, recordType, ttl, k)
}

func (v *Vulcanizer) vulcanizeMultiCell(l *lattice.Lattice, coords []lattice.Coordinate, zoneID, name, recordType string, ttl int64, k int) ([]route53types.ResourceRecordSet, error) {
	v.transitionState(StateInterleave)
	// coords is already in the lattice's sorted-key order (I4); sorting
	// again by arity is a documented no-op since every coordinate here
	// shares arity |D|.
	cells := make([][]lattice.Endpoint, len(coords))
	for i, c := range coords {
		endpoints, err := l.GetEndpointsForSector(c)
		if err != nil {
			return nil, err
		}
		cells[i] = endpoints
	}
	interleaved := interleave(cells)

	v.transitionState(StateFlat)
	out := v.flat(interleaved, zoneID, name, recordType, ttl, k)

	v.transitionState(StatePromote)
	promoteFallbacks(out, name)

	secondaryName := "secondary." + name
	v.transitionState(StateSecondaryDispatch)
	for _, d := range l.GetDimensionNames() {
		values, err := l.GetDimensionValues(d)
		if err != nil {
			return nil, err
		}
		for _, val := range values {
			prefix := truncate(d, truncateLimit) + "-" + truncate(val, truncateLimit)
			subName := prefix + "." + secondaryName

			restricted, err := l.SimulateFailure(d, val)
			if err != nil {
				return nil, err
			}
			out = append(out, v.flat(restricted.GetAllEndpoints(), zoneID, subName, recordType, ttl, k)...)

			out = append(out, route53types.ResourceRecordSet{
				Name:          aws.String(secondaryName),
				Type:          route53types.RRType(recordType),
				Weight:        aws.Int64(0),
				SetIdentifier: aws.String(prefix),
				AliasTarget: &route53types.AliasTarget{
					DNSName:              aws.String(subName),
					HostedZoneId:         aws.String(zoneID),
					EvaluateTargetHealth: true,
				},
			})
		}
	}

	v.transitionState(StateFinalAlias)
	out = append(out, route53types.ResourceRecordSet{
		Name:          aws.String(name),
		Type:          route53types.RRType(recordType),
		Weight:        aws.Int64(0),
		SetIdentifier: aws.String("secondary for " + name),
		AliasTarget: &route53types.AliasTarget{
			DNSName:              aws.String(secondaryName),
			HostedZoneId:         aws.String(zoneID),
			EvaluateTargetHealth: true,
		},
	})

	v.transitionState(StateComplete)
	return out, nil
}

// flat implements the flat procedure: a pseudo-ring of sliding
// AnswerSet windows when E exceeds K, otherwise a primary AnswerSet
// over all of E plus one weight-0 fallback per size-(K-1) sublist.
func (v *Vulcanizer) flat(e []lattice.Endpoint, zoneID, name, recordType string, ttl int64, k int) []route53types.ResourceRecordSet {
	if len(e) == 0 {
		return nil
	}

	if len(e) > k {
		ring := make([]lattice.Endpoint, len(e)+k-1)
		copy(ring, e)
		copy(ring[len(e):], e[:k-1])

		var out []route53types.ResourceRecordSet
		for i := 0; i < len(e); i++ {
			as := answer.New(ring[i : i+k]...)
			out = append(out, as.ToRecords(zoneID, name, recordType, ttl)...)
		}
		return out
	}

	var out []route53types.ResourceRecordSet
	primary := answer.New(e...)
	out = append(out, primary.ToRecords(zoneID, name, recordType, ttl)...)

	if k-1 > len(e) {
		return out
	}

	seq, err := lattice.Sublists(e, k-1)
	if err != nil {
		return out
	}
	seq(func(f []lattice.Endpoint) bool {
		fallback := answer.New(f...)
		chain := fallback.ToRecords(zoneID, name, recordType, ttl)
		chain[len(chain)-1].Weight = aws.Int64(0)
		out = append(out, chain...)
		return true
	})
	return out
}

// promoteFallbacks rewrites every weight-0 entry still named name (the
// original-cap fallbacks emitted by the primary flat pass) into the
// weight-1 root of the secondary tree.
func promoteFallbacks(records []route53types.ResourceRecordSet, name string) {
	secondaryName := "secondary." + name
	for i := range records {
		if records[i].Weight == nil || *records[i].Weight != 0 {
			continue
		}
		records[i].Name = aws.String(secondaryName)
		records[i].Weight = aws.Int64(1)
	}
}

// interleave scatters each cell's endpoints across a single ordered
// list so overlapping K-windows naturally mix cells: for a cell with q
// endpoints processed while the list currently holds n entries, its
// i-th endpoint is inserted at position floor(i * (n+q)/q). The
// integer truncation in that formula is intentional; downstream
// weight-0 fallbacks cover any resulting unevenness.
func interleave(cells [][]lattice.Endpoint) []lattice.Endpoint {
	var p []lattice.Endpoint
	for _, endpoints := range cells {
		q := len(endpoints)
		if q == 0 {
			continue
		}
		step := (len(p) + q) / q
		for i, e := range endpoints {
			pos := i * step
			if pos > len(p) {
				pos = len(p)
			}
			p = insertAt(p, pos, e)
		}
	}
	return p
}

func insertAt(s []lattice.Endpoint, pos int, e lattice.Endpoint) []lattice.Endpoint {
	s = append(s, lattice.Endpoint{})
	copy(s[pos+1:], s[pos:])
	s[pos] = e
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func (v *Vulcanizer) transitionState(next PlanState) {
	log.Debug().Str("from", v.currentState.String()).Str("to", next.String()).Msg("vulcanize: state transition")
	v.currentState = next
}
