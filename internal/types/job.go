package types

// JobLifecycle is the lifecycle state of a Job opening, independent of any
// candidate's pipeline status.
type JobLifecycle string

// Job lifecycle states.
const (
	JobHiring JobLifecycle = "Hiring"
	JobPaused JobLifecycle = "Paused"
	JobClosed JobLifecycle = "Closed"
	JobDraft  JobLifecycle = "Draft"
)

// Job is a single opening with its own pipeline board.
type Job struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Department    string       `json:"department"`
	Location      string       `json:"location"`
	Type          string       `json:"type"` // employment type, e.g. "Full-time"
	Lifecycle     JobLifecycle `json:"status"`
	Recruiter     string       `json:"recruiter"`
	HiringManager string       `json:"hiringManager"`
	TargetCount   int          `json:"targetCount"`
	HiredCount    int          `json:"hiredCount"`
}
