package extraction

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/singleflight"

	"github.com/ljylun/InterviewManagementMaster/internal/llm"
	"github.com/ljylun/InterviewManagementMaster/internal/schemas"
)

const extractionPrompt = `Analyze this resume and extract the following information into a structured JSON format. Be precise with dates and company names.

Return ONLY valid JSON matching this exact structure:
{
  "name": string (required) // Candidate full name
  "email": string (required) // Email address
  "phone": string // Phone number
  "education": string // Highest degree and university
  "experience_years": number (required) // Total years of professional experience
  "skills": []string (required) // List of top technical skills
  "summary": string // Brief professional summary extracted from the resume
  "work_experience": [{company, role, start_date, end_date, description}] // Ordered by most recent
}

IMPORTANT:
- Extract information directly from the resume, do not invent or summarize beyond it.
- Return ONLY the JSON object, no markdown, no explanation, no code blocks.`

// Result is what an upload session gets back. Resume is nil when the service
// is unavailable or failed; ResumeText is the locally recovered plain text,
// best effort in either case.
type Result struct {
	Resume     *ParsedResume
	ResumeText string
}

// Service runs resume extraction with per-session deduplication. A nil client
// means no API key is configured: extraction degrades to local text recovery
// and the operator fills the draft manually.
type Service struct {
	client llm.Client
	group  singleflight.Group
}

// NewService creates an extraction service. client may be nil.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// ExtractSession runs Extract with at most one in-flight request per upload
// session; concurrent calls for the same session share the first result.
func (s *Service) ExtractSession(ctx context.Context, sessionID string, data []byte, mimeType string) (Result, error) {
	v, err, _ := s.group.Do(sessionID, func() (any, error) {
		return s.Extract(ctx, data, mimeType)
	})
	result, _ := v.(Result)
	return result, err
}

// Extract parses the resume file. On any service failure the returned error
// wraps the cause and Result still carries whatever local text recovery
// produced, so the caller can continue with a manual draft.
func (s *Service) Extract(ctx context.Context, data []byte, mimeType string) (Result, error) {
	text, _ := ExtractText(data, mimeType) // best effort

	result := Result{ResumeText: text}
	if s.client == nil {
		return result, nil
	}

	raw, err := s.client.GenerateJSONFromFile(ctx, data, mimeType, extractionPrompt)
	if err != nil {
		return result, &Error{Message: "extraction service call failed", Cause: err}
	}

	if err := schemas.ValidateJSONString(schemas.ParsedResumeSchema(), raw); err != nil {
		return result, &Error{Message: "extraction output failed schema validation", Cause: err}
	}

	var parsed ParsedResume
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return result, &Error{Message: "extraction output is not valid JSON", Cause: err}
	}

	result.Resume = &parsed
	return result, nil
}
