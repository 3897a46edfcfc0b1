package types

import "encoding/json"

// RowScope says which context a projected row belongs to: a concrete
// Application on a job board, or the job-less talent pool. Pool rows have no
// application id, so actions keyed by application id (drag, withdraw,
// evaluation) must check the second return value rather than trusting a
// string field.
type RowScope struct {
	applicationID string
	jobID         string
	pool          bool
}

// JobScoped returns a RowScope tied to a concrete Application.
func JobScoped(applicationID, jobID string) RowScope {
	return RowScope{applicationID: applicationID, jobID: jobID}
}

// PoolScoped returns the RowScope for talent-pool rows.
func PoolScoped() RowScope {
	return RowScope{pool: true}
}

// ApplicationID returns the Application id and whether one exists.
func (s RowScope) ApplicationID() (string, bool) {
	if s.pool {
		return "", false
	}
	return s.applicationID, true
}

// JobID returns the Job id and whether one exists.
func (s RowScope) JobID() (string, bool) {
	if s.pool {
		return "", false
	}
	return s.jobID, true
}

// IsPool reports whether the row belongs to the talent pool.
func (s RowScope) IsPool() bool {
	return s.pool
}

// ApplicationCandidate is the display-ready merge of a Candidate with its
// Application's pipeline fields, or with the virtual talent-pool state when
// no Application context applies. It is the only shape the projector emits.
type ApplicationCandidate struct {
	Candidate

	Scope          RowScope `json:"-"`
	Status         Status   `json:"status"`
	InterviewRound int      `json:"interviewRound"`
	InterviewScore *float64 `json:"interviewScore,omitempty"`
	RejectReason   string   `json:"rejectReason,omitempty"`
}

// MarshalJSON flattens the scope into the wire fields the board expects.
// Pool rows serialize with an empty applicationId.
func (ac ApplicationCandidate) MarshalJSON() ([]byte, error) {
	type plain ApplicationCandidate
	appID, _ := ac.Scope.ApplicationID()
	jobID, _ := ac.Scope.JobID()
	return json.Marshal(struct {
		plain
		ApplicationID string `json:"applicationId"`
		JobID         string `json:"jobId,omitempty"`
	}{plain(ac), appID, jobID})
}
