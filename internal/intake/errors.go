// Package intake decides how a prospective candidate enters the system:
// whether to create a new Candidate, reuse an existing one by email, and
// whether an Application for a target job may be minted.
package intake

import "fmt"

// ValidationError indicates the draft is missing required fields. The commit
// must be blocked with no partial writes.
type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("intake validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("intake validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// DuplicateInPipelineError is a hard block: the candidate already has an
// Application for the target job. No entities may be created; the caller
// should surface the existing Application instead.
type DuplicateInPipelineError struct {
	CandidateID   string
	JobID         string
	ApplicationID string
}

func (e *DuplicateInPipelineError) Error() string {
	return fmt.Sprintf("candidate %s is already in the pipeline for job %s (application %s)",
		e.CandidateID, e.JobID, e.ApplicationID)
}

// CrossJobConflictError is a soft block: the candidate is active in another
// job's pipeline. The caller must obtain explicit operator confirmation and
// retry with Confirmed set; proceeding then creates the Application despite
// the conflict.
type CrossJobConflictError struct {
	CandidateID   string
	JobID         string // job the candidate is already active in
	ApplicationID string
}

func (e *CrossJobConflictError) Error() string {
	return fmt.Sprintf("candidate %s is already active in job %s (application %s); confirmation required",
		e.CandidateID, e.JobID, e.ApplicationID)
}
