// Package projection derives the display-ready pipeline rows from the
// canonical candidate and application collections. Everything here is a pure
// function over its inputs.
package projection

import (
	"strings"

	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

// Context selects which of the two views to project. ActiveJobID takes
// precedence; PoolVisible only matters when no job is active (the talent pool
// page may not be the one showing).
type Context struct {
	ActiveJobID string
	PoolVisible bool
}

// Project returns the filtered board rows for the given context.
//
// Job mode joins each of the job's applications to its candidate, silently
// dropping rows whose candidate no longer exists. Pool mode projects every
// candidate with the virtual TalentPool status and no application scope.
// In both modes query filters by case-insensitive substring containment over
// name or role; there is no fuzzy matching or ranking.
func Project(candidates []types.Candidate, applications []types.Application, ctx Context, query string) []types.ApplicationCandidate {
	if ctx.ActiveJobID != "" {
		return projectJob(candidates, applications, ctx.ActiveJobID, query)
	}
	if ctx.PoolVisible {
		return projectPool(candidates, query)
	}
	return []types.ApplicationCandidate{}
}

func projectJob(candidates []types.Candidate, applications []types.Application, jobID, query string) []types.ApplicationCandidate {
	byID := make(map[string]types.Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	rows := []types.ApplicationCandidate{}
	for _, app := range applications {
		if app.JobID != jobID {
			continue
		}
		candidate, ok := byID[app.CandidateID]
		if !ok {
			continue // dangling reference, dropped rather than raised
		}
		if !matches(candidate, query) {
			continue
		}
		rows = append(rows, types.ApplicationCandidate{
			Candidate:      candidate,
			Scope:          types.JobScoped(app.ID, app.JobID),
			Status:         app.Status,
			InterviewRound: app.InterviewRound,
			InterviewScore: app.Score,
			RejectReason:   app.RejectReason,
		})
	}
	return rows
}

func projectPool(candidates []types.Candidate, query string) []types.ApplicationCandidate {
	rows := []types.ApplicationCandidate{}
	for _, c := range candidates {
		if !matches(c, query) {
			continue
		}
		rows = append(rows, types.ApplicationCandidate{
			Candidate:      c,
			Scope:          types.PoolScoped(),
			Status:         types.StatusTalentPool,
			InterviewRound: 0,
		})
	}
	return rows
}

func matches(c types.Candidate, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Role), q)
}

// JobPipelineCount is the number shown on a job card: applications for the
// job that have not been rejected.
func JobPipelineCount(applications []types.Application, jobID string) int {
	n := 0
	for _, app := range applications {
		if app.JobID == jobID && app.Status != types.StatusRejected {
			n++
		}
	}
	return n
}

// CandidateHistory returns the candidate's applications across all jobs, for
// the profile view.
func CandidateHistory(applications []types.Application, candidateID string) []types.Application {
	history := []types.Application{}
	for _, app := range applications {
		if app.CandidateID == candidateID {
			history = append(history, app)
		}
	}
	return history
}
