package reporting

import (
	"time"

	route53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/google/uuid"
)

// PlanStatus is the lifecycle status of a planning run.
type PlanStatus string

const (
	StatusRunning   PlanStatus = "running"
	StatusCompleted PlanStatus = "completed"
	StatusFailed    PlanStatus = "failed"
)

// PopulationSummary describes the input a plan was computed from.
type PopulationSummary struct {
	Dimensions    []string `json:"dimensions"`
	CellCount     int      `json:"cell_count"`
	EndpointCount int      `json:"endpoint_count"`
}

// RecordCounts tallies the emitted DNS entries by kind.
type RecordCounts struct {
	Total int `json:"total"`
	Leaf  int `json:"leaf"`
	Alias int `json:"alias"`
}

// PlanReport is one JSON-serializable record of a single Plan
// invocation, identified by its run ID.
type PlanReport struct {
	RunID     string     `json:"run_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time,omitempty"`
	Duration  string     `json:"duration,omitempty"`
	Status    PlanStatus `json:"status"`

	Population   PopulationSummary `json:"population_summary"`
	RecordCounts RecordCounts      `json:"record_counts"`

	Errors []string `json:"errors,omitempty"`
}

// NewPlanReport starts a report in the running state.
func NewPlanReport(population PopulationSummary) *PlanReport {
	return &PlanReport{
		RunID:      uuid.NewString(),
		StartTime:  time.Now(),
		Status:     StatusRunning,
		Population: population,
	}
}

// Complete marks the report successful, tallying records by kind.
func (r *PlanReport) Complete(records []route53types.ResourceRecordSet) {
	counts := RecordCounts{Total: len(records)}
	for _, rec := range records {
		if rec.AliasTarget != nil {
			counts.Alias++
		} else {
			counts.Leaf++
		}
	}
	r.RecordCounts = counts
	r.finish(StatusCompleted)
}

// Fail marks the report failed, recording err's message.
func (r *PlanReport) Fail(err error) {
	if err != nil {
		r.Errors = append(r.Errors, err.Error())
	}
	r.finish(StatusFailed)
}

func (r *PlanReport) finish(status PlanStatus) {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime).String()
	r.Status = status
}
