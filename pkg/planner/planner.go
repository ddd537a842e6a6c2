// Package planner drives the end-to-end pipelines: Plan loads a
// population document, builds its lattice, vulcanizes it into a DNS
// record set, and reports on the run; Shard loads and builds the
// lattice the same way and runs a sharding strategy over it. No entry
// point vulcanizes a shard. It is the thing cmd/rubbertree's plan and
// shard subcommands call.
package planner

import (
	"context"
	"fmt"

	route53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/jihwankim/rubbertree/pkg/lattice"
	"github.com/jihwankim/rubbertree/pkg/metrics"
	"github.com/jihwankim/rubbertree/pkg/reporting"
	"github.com/jihwankim/rubbertree/pkg/shard"
	"github.com/jihwankim/rubbertree/pkg/topology"
	"github.com/jihwankim/rubbertree/pkg/vulcanize"
)

// Options configures a Plan invocation.
type Options struct {
	// K overrides the population document's records_per_entry when
	// nonzero.
	K int

	Metrics *metrics.Planner
	Storage *reporting.Storage
}

// ShardOptions configures a Shard invocation.
type ShardOptions struct {
	// Strategy selects the sharding algorithm: "simple" (deterministic
	// hash-based) or "search" (randomized backtracking).
	Strategy string
	Seed     int64
	K        int

	// M bounds pairwise fragment overlap; only consulted when
	// Strategy is "search".
	M      int
	Ledger shard.FragmentLedger

	Metrics *metrics.Planner
}

// Plan loads data as a population document, builds its lattice, and
// vulcanizes it into a DNS record set, returning both the records and
// a completed PlanReport. If opts.Storage is non-nil the report is
// also persisted.
func Plan(ctx context.Context, data []byte, opts Options) ([]route53types.ResourceRecordSet, *reporting.PlanReport, error) {
	state := StateLoad
	logState(state)

	loader := topology.NewLoader()
	lat, settings, err := loader.Load(data)
	if err != nil {
		return nil, nil, fmt.Errorf("planner: load: %w", err)
	}
	for _, w := range loader.Warnings() {
		log.Warn().Str("warning", w).Msg("planner: population warning")
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	state = transition(state, StateLattice)
	coords := lat.GetAllCoordinates()
	if opts.Metrics != nil {
		opts.Metrics.LatticeCells.Set(float64(len(coords)))
	}

	report := reporting.NewPlanReport(reporting.PopulationSummary{
		Dimensions:    lat.GetDimensionNames(),
		CellCount:     len(coords),
		EndpointCount: len(lat.GetAllEndpoints()),
	})

	if err := ctx.Err(); err != nil {
		report.Fail(err)
		return nil, report, err
	}

	k := settings.RecordsPerEntry
	if opts.K > 0 {
		k = opts.K
	}

	state = transition(state, StateVulcanize)
	v := vulcanize.New()
	if opts.Metrics != nil {
		timer := prometheus.NewTimer(opts.Metrics.VulcanizeDuration)
		defer timer.ObserveDuration()
	}
	records, err := v.Vulcanize(lat, settings.ZoneID, settings.Name, settings.Type, settings.TTL, k)
	if err != nil {
		report.Fail(err)
		return nil, report, fmt.Errorf("planner: vulcanize: %w", err)
	}

	state = transition(state, StateReport)
	report.Complete(records)

	if opts.Storage != nil {
		if _, err := opts.Storage.SaveReport(report); err != nil {
			log.Warn().Err(err).Msg("planner: failed to persist plan report")
		}
	}

	transition(state, StateComplete)
	return records, report, nil
}

// Shard loads data as a population document, builds its lattice, and
// runs the requested sharding strategy over it. Strategy is dispatched
// by name to one of two sharder implementations.
func Shard(ctx context.Context, data []byte, id []byte, opts ShardOptions) (*lattice.Lattice, error) {
	state := StateLoad
	logState(state)

	loader := topology.NewLoader()
	lat, _, err := loader.Load(data)
	if err != nil {
		return nil, fmt.Errorf("planner: load: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	state = transition(state, StateLattice)
	if opts.Metrics != nil {
		opts.Metrics.LatticeCells.Set(float64(len(lat.GetAllCoordinates())))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	state = transition(state, StateShard)
	switch opts.Strategy {
	case "simple":
		sharder := shard.NewSimpleSharder(uint64(opts.Seed))
		out, err := sharder.Shard(lat, id, opts.K)
		transition(state, StateComplete)
		return out, err
	case "search":
		ledger := opts.Ledger
		var tracker *instrumentedLedger
		if opts.Metrics != nil {
			tracker = &instrumentedLedger{inner: ledger, metrics: opts.Metrics}
			ledger = tracker
		}
		sharder := shard.NewStatefulSharder(opts.Seed)
		out, err := sharder.Shard(lat, opts.K, opts.M, ledger)
		if tracker != nil {
			opts.Metrics.SearchAttempts.Observe(float64(tracker.lookups))
		}
		transition(state, StateComplete)
		return out, err
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, opts.Strategy)
	}
}

func transition(from, to PlanState) PlanState {
	log.Debug().Str("from", from.String()).Str("to", to.String()).Msg("planner: state transition")
	return to
}

func logState(s PlanState) {
	log.Debug().Str("state", s.String()).Msg("planner: state transition")
}

// instrumentedLedger wraps a FragmentLedger to record hit/miss counts
// on every Contains lookup, without the search algorithm itself
// needing to know metrics exist. lookups counts successful Contains
// calls, which is what SearchAttempts records; it is not a count of
// candidate fragments, since each candidate costs one lookup per
// size-(m+1) subset checked, once for the fragment and once for the
// fragment combined with the recursive result.
type instrumentedLedger struct {
	inner   shard.FragmentLedger
	metrics *metrics.Planner
	lookups int
}

func (l *instrumentedLedger) Save(key string) error {
	return l.inner.Save(key)
}

func (l *instrumentedLedger) Contains(key string) (bool, error) {
	ok, err := l.inner.Contains(key)
	if err == nil {
		l.lookups++
		l.metrics.RecordLedgerLookup(ok)
	}
	return ok, err
}
