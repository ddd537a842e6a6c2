package vulcanize

// PlanState marks where a Vulcanize call currently sits in the
// single-cell/multi-cell procedure, for diagnostic logging only.
// Nothing here governs control flow or can be queried by a caller
// mid-call.
type PlanState int

const (
	StateIdle PlanState = iota
	StatePlanning
	StateFlat
	StateInterleave
	StatePromote
	StateSecondaryDispatch
	StateFinalAlias
	StateComplete
)

func (s PlanState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StatePlanning:
		return "PLANNING"
	case StateFlat:
		return "FLAT"
	case StateInterleave:
		return "INTERLEAVE"
	case StatePromote:
		return "PROMOTE"
	case StateSecondaryDispatch:
		return "SECONDARY_DISPATCH"
	case StateFinalAlias:
		return "FINAL_ALIAS"
	case StateComplete:
		return "COMPLETE"
	default:
		return "UNKNOWN"
	}
}
