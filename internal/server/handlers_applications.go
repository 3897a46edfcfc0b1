package server

import (
	"encoding/json"
	"net/http"

	"github.com/ljylun/InterviewManagementMaster/internal/pipeline"
	"github.com/ljylun/InterviewManagementMaster/internal/store"
	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

// moveRequest is the POST /applications/{id}/move body.
type moveRequest struct {
	Status string `json:"status"`
}

// evaluationRequest is the POST /applications/{id}/evaluations body.
type evaluationRequest struct {
	Score           float64 `json:"score"`
	Decision        string  `json:"decision"`
	InterviewerName string  `json:"interviewerName"`
	Comment         string  `json:"comment"`
}

// handleMoveApplication drags an application card to another board column.
func (s *Server) handleMoveApplication(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := r.Context()

	id := r.PathValue("id")
	app, err := s.store.GetApplication(ctx, id)
	if err != nil {
		s.domainError(w, err)
		return
	}
	if app == nil {
		s.domainError(w, &store.NotFoundError{Kind: "application", ID: id})
		return
	}
	job, err := s.store.GetJob(ctx, app.JobID)
	if err != nil {
		s.domainError(w, err)
		return
	}
	if job == nil {
		s.domainError(w, &store.NotFoundError{Kind: "job", ID: app.JobID})
		return
	}

	movedApp, movedJob, err := pipeline.MoveBoard(*app, *job, types.Status(req.Status), s.now())
	if err != nil {
		s.domainError(w, err)
		return
	}

	if err := s.store.UpdateApplication(ctx, movedApp); err != nil {
		s.domainError(w, err)
		return
	}
	if movedJob.HiredCount != job.HiredCount {
		if err := s.store.UpdateJob(ctx, movedJob); err != nil {
			s.domainError(w, err)
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, movedApp)
}

// handleEvaluate records an interview scorecard and advances the pipeline
// according to the decision.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := r.Context()

	id := r.PathValue("id")
	app, err := s.store.GetApplication(ctx, id)
	if err != nil {
		s.domainError(w, err)
		return
	}
	if app == nil {
		s.domainError(w, &store.NotFoundError{Kind: "application", ID: id})
		return
	}

	evaluated, err := pipeline.ApplyEvaluation(*app, req.Score, types.Decision(req.Decision),
		pipeline.ReviewInput{InterviewerName: req.InterviewerName, Comment: req.Comment}, s.now())
	if err != nil {
		s.domainError(w, err)
		return
	}

	if err := s.store.UpdateApplication(ctx, evaluated); err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, evaluated)
}

// handleWithdrawApplication removes one application without touching the
// candidate; they remain visible in the talent pool.
func (s *Server) handleWithdrawApplication(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteApplication(r.Context(), r.PathValue("id")); err != nil {
		s.domainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
