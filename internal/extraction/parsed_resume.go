// Package extraction turns uploaded resume files into candidate drafts. The
// heavy lifting is delegated to the Gemini extraction service; this package
// owns prompt construction, schema validation of the response, local
// plain-text recovery, and the one-in-flight-per-session rule.
package extraction

import (
	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

// ParsedResume is the best-effort structured record returned by the
// extraction service.
type ParsedResume struct {
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone,omitempty"`
	Education       string           `json:"education,omitempty"`
	ExperienceYears float64          `json:"experience_years"`
	Skills          []string         `json:"skills"`
	Summary         string           `json:"summary,omitempty"`
	WorkExperience  []WorkExperience `json:"work_experience,omitempty"`
}

// WorkExperience is one employment entry in extraction output, most recent
// first.
type WorkExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Draft converts the parsed record into an intake draft. The most recent work
// experience supplies the current-role label when present.
func (p *ParsedResume) Draft(resumeText string) types.CandidateDraft {
	draft := types.CandidateDraft{
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		Education:  p.Education,
		Experience: int(p.ExperienceYears),
		Tags:       p.Skills,
		Summary:    p.Summary,
		ResumeText: resumeText,
	}
	if len(p.WorkExperience) > 0 {
		draft.Role = p.WorkExperience[0].Role
	}
	for _, w := range p.WorkExperience {
		draft.WorkExperience = append(draft.WorkExperience, types.WorkExperience{
			Company:     w.Company,
			Role:        w.Role,
			StartDate:   w.StartDate,
			EndDate:     w.EndDate,
			Description: w.Description,
		})
	}
	return draft
}
