package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/ljylun/InterviewManagementMaster/internal/extraction"
	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

const maxResumeSize = 10 << 20 // 10 MB

// extractResponse carries the pre-filled draft back to the intake form.
// Warning is set when extraction degraded and the operator should review or
// fill the draft manually; the recovered resume text is still attached.
type extractResponse struct {
	Draft      *types.CandidateDraft `json:"draft,omitempty"`
	ResumeText string                `json:"resumeText,omitempty"`
	Warning    string                `json:"warning,omitempty"`
}

// handleExtract accepts a resume upload and returns an extracted candidate
// draft. Concurrent uploads sharing a session_id are collapsed into one
// extraction call. Extraction failure is not a request failure: the client
// gets a warning and whatever text was recovered locally.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if s.extractor == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Resume extraction is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing resume file: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeSize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read resume file: "+err.Error())
		return
	}

	mimeType := header.Header.Get("Content-Type")
	sessionID := r.FormValue("session_id")

	var result extraction.Result
	if sessionID != "" {
		result, err = s.extractor.ExtractSession(r.Context(), sessionID, data, mimeType)
	} else {
		result, err = s.extractor.Extract(r.Context(), data, mimeType)
	}

	resp := extractResponse{ResumeText: result.ResumeText}
	if result.Resume != nil {
		draft := result.Resume.Draft(result.ResumeText)
		resp.Draft = &draft
	}

	if err != nil {
		var extractErr *extraction.Error
		if errors.As(err, &extractErr) {
			resp.Warning = extractErr.Message
			s.jsonResponse(w, http.StatusOK, resp)
			return
		}
		s.domainError(w, err)
		return
	}

	if resp.Draft == nil {
		resp.Warning = "Automatic extraction is unavailable; fill the form manually"
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
