package planner

// PlanState enumerates the planner's own pipeline stages, distinct
// from pkg/vulcanize's PlanState (which tracks vulcanization's
// internal phases one level down).
type PlanState int

const (
	StateLoad PlanState = iota
	StateLattice
	StateShard
	StateVulcanize
	StateReport
	StateComplete
)

func (s PlanState) String() string {
	switch s {
	case StateLoad:
		return "load"
	case StateLattice:
		return "lattice"
	case StateShard:
		return "shard"
	case StateVulcanize:
		return "vulcanize"
	case StateReport:
		return "report"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}
