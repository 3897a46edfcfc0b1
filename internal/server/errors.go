package server

import (
	"errors"
	"net/http"

	"github.com/ljylun/InterviewManagementMaster/internal/intake"
	"github.com/ljylun/InterviewManagementMaster/internal/pipeline"
	"github.com/ljylun/InterviewManagementMaster/internal/store"
)

// HTTPStatus maps domain errors to HTTP status codes.
func HTTPStatus(err error) int {
	var validationErr *intake.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var dupErr *intake.DuplicateInPipelineError
	if errors.As(err, &dupErr) {
		return http.StatusConflict
	}

	var conflictErr *intake.CrossJobConflictError
	if errors.As(err, &conflictErr) {
		return http.StatusConflict
	}

	var notFoundErr *store.NotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound
	}

	var statusErr *pipeline.InvalidStatusError
	if errors.As(err, &statusErr) {
		return http.StatusBadRequest
	}

	var decisionErr *pipeline.InvalidDecisionError
	if errors.As(err, &decisionErr) {
		return http.StatusBadRequest
	}

	var moveErr *pipeline.IllegalMoveError
	if errors.As(err, &moveErr) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

// errorCode returns a machine-readable code for errors the client is
// expected to branch on. Cross-job conflicts are recoverable by
// resubmitting with confirmed=true, duplicates are not.
func errorCode(err error) string {
	var dupErr *intake.DuplicateInPipelineError
	if errors.As(err, &dupErr) {
		return "duplicate_in_pipeline"
	}

	var conflictErr *intake.CrossJobConflictError
	if errors.As(err, &conflictErr) {
		return "cross_job_conflict"
	}

	return ""
}

// domainError writes a domain error as a JSON response with the mapped
// status and, where applicable, a machine-readable code.
func (s *Server) domainError(w http.ResponseWriter, err error) {
	body := map[string]string{"error": err.Error()}
	if code := errorCode(err); code != "" {
		body["code"] = code
	}
	s.jsonResponse(w, HTTPStatus(err), body)
}
