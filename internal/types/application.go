package types

import "time"

// Application joins one Candidate to one Job and carries the pipeline state
// for that pairing. At most one active (non-terminal) Application may exist
// per (candidate, job) pair; the intake resolver enforces this, not the store.
type Application struct {
	ID             string    `json:"id"`
	JobID          string    `json:"jobId"`
	CandidateID    string    `json:"candidateId"`
	Status         Status    `json:"status"`
	InterviewRound int       `json:"interviewRound"`
	Score          *float64  `json:"score,omitempty"` // latest scorecard score, 1.0-5.0
	RejectReason   string    `json:"rejectReason,omitempty"`
	AppliedAt      time.Time `json:"appliedAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Reviews []InterviewReview `json:"reviews,omitempty"`
}

// InterviewReview is one submitted scorecard for an Application, appended in
// submission order.
type InterviewReview struct {
	ID              string    `json:"id"`
	InterviewerName string    `json:"interviewerName"`
	Score           float64   `json:"score"`
	Decision        Decision  `json:"decision"`
	Comment         string    `json:"comment"`
	Date            time.Time `json:"date"`
}
