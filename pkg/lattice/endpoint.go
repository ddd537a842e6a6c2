package lattice

import "sort"

// Endpoint is a totally-ordered value object: a DNS record value plus
// zero or more health-check identifiers. Ordering and equality compare
// Value only; HealthCheckIDs never participate.
type Endpoint struct {
	Value          string
	HealthCheckIDs []string
}

// NewEndpoint builds a plain (non-health-checked) endpoint.
func NewEndpoint(value string) Endpoint {
	return Endpoint{Value: value}
}

// WithHealthChecks builds an endpoint carrying the given check ids, in
// the order given. The caller owns ordering; this constructor does not
// sort or dedup them.
func WithHealthChecks(value string, healthCheckIDs ...string) Endpoint {
	return Endpoint{Value: value, HealthCheckIDs: healthCheckIDs}
}

// HealthChecked reports whether the endpoint carries at least one
// health check.
func (e Endpoint) HealthChecked() bool {
	return len(e.HealthCheckIDs) > 0
}

// Less implements Endpoint's total order: lexicographic compare on
// Value only.
func (e Endpoint) Less(other Endpoint) bool {
	return e.Value < other.Value
}

// Equal reports value equality, ignoring health checks.
func (e Endpoint) Equal(other Endpoint) bool {
	return e.Value == other.Value
}

// SortEndpoints returns a new slice sorted ascending by Value. Stable,
// so equal-value entries (which should not occur within an AnswerSet
// but can inside a raw sector) keep their relative order.
func SortEndpoints(endpoints []Endpoint) []Endpoint {
	out := make([]Endpoint, len(endpoints))
	copy(out, endpoints)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
