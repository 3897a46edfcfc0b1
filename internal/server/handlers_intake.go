package server

import (
	"encoding/json"
	"net/http"

	"github.com/ljylun/InterviewManagementMaster/internal/intake"
	"github.com/ljylun/InterviewManagementMaster/internal/store"
	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

// intakeRequest is the POST /intake body.
type intakeRequest struct {
	Draft types.CandidateDraft `json:"draft"`
	JobID string               `json:"jobId"`
	// Confirmed acknowledges a previously returned cross_job_conflict
	// error and lets the application be created anyway.
	Confirmed bool `json:"confirmed"`
}

// intakeResponse reports what the intake created or attached to.
type intakeResponse struct {
	Candidate      types.Candidate    `json:"candidate"`
	IsNewCandidate bool               `json:"isNewCandidate"`
	Application    *types.Application `json:"application,omitempty"`
}

// handleIntake runs the dedup-and-intake flow: resolve the draft against the
// current collections under the writer lock, then commit the outcome.
func (s *Server) handleIntake(w http.ResponseWriter, r *http.Request) {
	var req intakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := r.Context()

	if req.JobID != "" {
		job, err := s.store.GetJob(ctx, req.JobID)
		if err != nil {
			s.domainError(w, err)
			return
		}
		if job == nil {
			s.domainError(w, &store.NotFoundError{Kind: "job", ID: req.JobID})
			return
		}
	}

	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		s.domainError(w, err)
		return
	}

	outcome, err := intake.Resolve(snap.Candidates, snap.Applications, req.Draft,
		req.JobID, intake.Options{Confirmed: req.Confirmed}, s.now())
	if err != nil {
		s.domainError(w, err)
		return
	}

	if outcome.IsNewCandidate {
		if err := s.store.CreateCandidate(ctx, outcome.Candidate); err != nil {
			s.domainError(w, err)
			return
		}
	}
	if outcome.Application != nil {
		if err := s.store.CreateApplication(ctx, *outcome.Application); err != nil {
			s.domainError(w, err)
			return
		}
	}

	status := http.StatusOK
	if outcome.IsNewCandidate || outcome.Application != nil {
		status = http.StatusCreated
	}
	s.jsonResponse(w, status, intakeResponse{
		Candidate:      outcome.Candidate,
		IsNewCandidate: outcome.IsNewCandidate,
		Application:    outcome.Application,
	})
}
