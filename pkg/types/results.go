package types

import "time"

// ActionStatus is the outcome of one action
type ActionStatus string

const (
	StatusApplied   ActionStatus = "applied"
	StatusSimulated ActionStatus = "simulated"
	StatusSkipped   ActionStatus = "skipped"
	StatusFailed    ActionStatus = "failed"
)

// ActionResult reports what happened to one action
type ActionResult struct {
	Action   Action        `json:"action" yaml:"action"`
	Status   ActionStatus  `json:"status" yaml:"status"`
	Message  string        `json:"message,omitempty" yaml:"message,omitempty"`
	Error    error         `json:"-" yaml:"-"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Succeeded reports whether the action was applied or would be
func (r ActionResult) Succeeded() bool {
	return r.Status == StatusApplied || r.Status == StatusSimulated
}

// CountByStatus tallies results
func CountByStatus(results []ActionResult) map[ActionStatus]int {
	counts := make(map[ActionStatus]int)
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}
