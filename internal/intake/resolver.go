package intake

import (
	"errors"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

// defaultRole is assigned when a draft carries no current-role label.
const defaultRole = "Applicant"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Outcome describes the entities the caller must commit to the store.
// Resolve itself has no side effects.
type Outcome struct {
	Candidate      types.Candidate
	IsNewCandidate bool
	// Application is nil when the intake targeted no job; the candidate
	// enters (or stays in) the talent pool.
	Application *types.Application
}

// Options tunes conflict handling for a single resolve attempt.
type Options struct {
	// Confirmed acknowledges a previously returned CrossJobConflictError
	// and lets the Application be created despite the conflict.
	Confirmed bool
}

// Resolve runs the dedup-and-intake algorithm over the current collections.
// Email matching is exact and case-sensitive.
//
// targetJobID may be empty, in which case no Application is created. The
// returned Outcome lists the entities to create or attach; committing them is
// the caller's responsibility.
func Resolve(candidates []types.Candidate, applications []types.Application,
	draft types.CandidateDraft, targetJobID string, opts Options, now time.Time) (*Outcome, error) {

	if err := validate.Struct(draft); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, &ValidationError{Field: verrs[0].Field(), Message: "required field is missing", Cause: err}
		}
		return nil, &ValidationError{Message: err.Error(), Cause: err}
	}

	existing := findByEmail(candidates, draft.Email)

	if existing == nil {
		out := &Outcome{
			Candidate:      newCandidate(draft),
			IsNewCandidate: true,
		}
		if targetJobID != "" {
			out.Application = newApplication(out.Candidate.ID, targetJobID, now)
		}
		return out, nil
	}

	out := &Outcome{Candidate: *existing}

	if targetJobID == "" {
		return out, nil
	}

	for i := range applications {
		app := &applications[i]
		if app.CandidateID != existing.ID {
			continue
		}
		if app.JobID == targetJobID {
			return nil, &DuplicateInPipelineError{
				CandidateID:   existing.ID,
				JobID:         targetJobID,
				ApplicationID: app.ID,
			}
		}
	}

	if !opts.Confirmed {
		for i := range applications {
			app := &applications[i]
			if app.CandidateID == existing.ID && app.Status.IsActive() {
				return nil, &CrossJobConflictError{
					CandidateID:   existing.ID,
					JobID:         app.JobID,
					ApplicationID: app.ID,
				}
			}
		}
	}

	out.Application = newApplication(existing.ID, targetJobID, now)
	return out, nil
}

func findByEmail(candidates []types.Candidate, email string) *types.Candidate {
	for i := range candidates {
		if candidates[i].Email == email {
			return &candidates[i]
		}
	}
	return nil
}

func newCandidate(draft types.CandidateDraft) types.Candidate {
	c := types.Candidate{
		ID:             uuid.NewString(),
		Name:           draft.Name,
		Email:          draft.Email,
		Phone:          draft.Phone,
		Role:           draft.Role,
		Experience:     draft.Experience,
		Education:      draft.Education,
		Tags:           draft.Tags,
		ResumeURL:      draft.ResumeURL,
		ResumeText:     draft.ResumeText,
		WorkExperience: draft.WorkExperience,
		AvatarURL:      avatarURL(draft.Name),
	}
	if c.Role == "" {
		c.Role = defaultRole
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return c
}

func newApplication(candidateID, jobID string, now time.Time) *types.Application {
	return &types.Application{
		ID:             uuid.NewString(),
		JobID:          jobID,
		CandidateID:    candidateID,
		Status:         types.StatusNew,
		InterviewRound: 0,
		AppliedAt:      now,
		UpdatedAt:      now,
	}
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}
