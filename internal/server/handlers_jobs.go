package server

import (
	"net/http"

	"github.com/ljylun/InterviewManagementMaster/internal/projection"
	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

// jobCard is a job plus the derived count shown on its card.
type jobCard struct {
	types.Job
	PipelineCount int `json:"pipelineCount"`
}

// handleListJobs returns all jobs with their live pipeline counts.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Snapshot(r.Context())
	if err != nil {
		s.domainError(w, err)
		return
	}

	cards := make([]jobCard, 0, len(snap.Jobs))
	for _, job := range snap.Jobs {
		cards = append(cards, jobCard{
			Job:           job,
			PipelineCount: projection.JobPipelineCount(snap.Applications, job.ID),
		})
	}

	s.jsonResponse(w, http.StatusOK, cards)
}

// handleGetJob returns a single job with its pipeline count.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Snapshot(r.Context())
	if err != nil {
		s.domainError(w, err)
		return
	}

	id := r.PathValue("id")
	for _, job := range snap.Jobs {
		if job.ID == id {
			s.jsonResponse(w, http.StatusOK, jobCard{
				Job:           job,
				PipelineCount: projection.JobPipelineCount(snap.Applications, job.ID),
			})
			return
		}
	}

	s.errorResponse(w, http.StatusNotFound, "job not found: "+id)
}

// handleJobBoard returns the projected board rows for one job. The optional
// q parameter filters rows by name or role substring.
func (s *Server) handleJobBoard(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	snap, err := s.store.Snapshot(r.Context())
	if err != nil {
		s.domainError(w, err)
		return
	}

	found := false
	for _, job := range snap.Jobs {
		if job.ID == id {
			found = true
			break
		}
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "job not found: "+id)
		return
	}

	rows := projection.Project(snap.Candidates, snap.Applications,
		projection.Context{ActiveJobID: id}, r.URL.Query().Get("q"))

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"columns": types.BoardColumns,
		"rows":    rows,
	})
}
