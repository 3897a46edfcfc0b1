package server

import (
	"net/http"

	"github.com/ljylun/InterviewManagementMaster/internal/projection"
	"github.com/ljylun/InterviewManagementMaster/internal/store"
)

// handlePool returns the talent pool view: every candidate projected with the
// virtual TalentPool status. The optional q parameter filters by name or role.
func (s *Server) handlePool(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Snapshot(r.Context())
	if err != nil {
		s.domainError(w, err)
		return
	}

	rows := projection.Project(snap.Candidates, snap.Applications,
		projection.Context{PoolVisible: true}, r.URL.Query().Get("q"))

	s.jsonResponse(w, http.StatusOK, rows)
}

// handleListCandidates returns the raw candidate collection.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.store.ListCandidates(r.Context())
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, candidates)
}

// handleGetCandidate returns a single candidate profile.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	candidate, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		s.domainError(w, err)
		return
	}
	if candidate == nil {
		s.domainError(w, &store.NotFoundError{Kind: "candidate", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleCandidateHistory returns the candidate's applications across all
// jobs, newest data exactly as stored.
func (s *Server) handleCandidateHistory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	candidate, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		s.domainError(w, err)
		return
	}
	if candidate == nil {
		s.domainError(w, &store.NotFoundError{Kind: "candidate", ID: id})
		return
	}

	apps, err := s.store.ApplicationsByCandidate(r.Context(), id)
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, projection.CandidateHistory(apps, id))
}

// handleDeleteCandidate removes a candidate and cascades to all of their
// applications.
func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteCandidate(r.Context(), r.PathValue("id")); err != nil {
		s.domainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
