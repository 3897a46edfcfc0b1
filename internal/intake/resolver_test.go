package intake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func alice() types.Candidate {
	return types.Candidate{
		ID:    "c1",
		Name:  "Alice Johnson",
		Email: "alice@x.com",
		Role:  "Senior Frontend Engineer",
	}
}

func TestResolveNewCandidateDefaults(t *testing.T) {
	draft := types.CandidateDraft{Name: "Jane Roe", Email: "jane@x.com"}

	out, err := Resolve(nil, nil, draft, "", Options{}, testNow)
	require.NoError(t, err)

	assert.True(t, out.IsNewCandidate)
	assert.NotEmpty(t, out.Candidate.ID)
	assert.Equal(t, "Applicant", out.Candidate.Role)
	assert.Empty(t, out.Candidate.Phone)
	assert.Zero(t, out.Candidate.Experience)
	assert.NotNil(t, out.Candidate.Tags)
	assert.Empty(t, out.Candidate.Tags)
	assert.Contains(t, out.Candidate.AvatarURL, "ui-avatars.com")
	assert.Contains(t, out.Candidate.AvatarURL, "Jane+Roe")
	assert.Nil(t, out.Application, "no application without a job context")
}

func TestResolveValidation(t *testing.T) {
	tests := []struct {
		name  string
		draft types.CandidateDraft
	}{
		{"missing name", types.CandidateDraft{Email: "a@x.com"}},
		{"missing email", types.CandidateDraft{Name: "A"}},
		{"empty draft", types.CandidateDraft{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Resolve(nil, nil, tt.draft, "j1", Options{}, testNow)
			assert.Nil(t, out)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestResolveDedupByEmail(t *testing.T) {
	existing := []types.Candidate{alice()}

	draft := types.CandidateDraft{Name: "Alice J.", Email: "alice@x.com"}
	out, err := Resolve(existing, nil, draft, "", Options{}, testNow)
	require.NoError(t, err)

	assert.False(t, out.IsNewCandidate)
	assert.Equal(t, "c1", out.Candidate.ID)
}

func TestResolveDedupIsCaseSensitive(t *testing.T) {
	existing := []types.Candidate{alice()}

	draft := types.CandidateDraft{Name: "Alice", Email: "Alice@X.com"}
	out, err := Resolve(existing, nil, draft, "", Options{}, testNow)
	require.NoError(t, err)

	assert.True(t, out.IsNewCandidate, "differently-cased email is treated as a new person")
	assert.NotEqual(t, "c1", out.Candidate.ID)
}

func TestResolveDedupIdempotence(t *testing.T) {
	draft := types.CandidateDraft{Name: "Jane Roe", Email: "jane@x.com"}

	first, err := Resolve(nil, nil, draft, "", Options{}, testNow)
	require.NoError(t, err)
	require.True(t, first.IsNewCandidate)

	second, err := Resolve([]types.Candidate{first.Candidate}, nil, draft, "", Options{}, testNow)
	require.NoError(t, err)
	assert.False(t, second.IsNewCandidate)
	assert.Equal(t, first.Candidate.ID, second.Candidate.ID)
}

func TestResolveDuplicateInPipeline(t *testing.T) {
	apps := []types.Application{
		{ID: "a1", JobID: "jobA", CandidateID: "c1", Status: types.StatusInterviewing},
	}
	draft := types.CandidateDraft{Name: "Alice", Email: "alice@x.com"}

	out, err := Resolve([]types.Candidate{alice()}, apps, draft, "jobA", Options{}, testNow)
	assert.Nil(t, out)

	var dup *DuplicateInPipelineError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "c1", dup.CandidateID)
	assert.Equal(t, "a1", dup.ApplicationID)

	// A duplicate beats a conflict even when Confirmed is set.
	out, err = Resolve([]types.Candidate{alice()}, apps, draft, "jobA", Options{Confirmed: true}, testNow)
	assert.Nil(t, out)
	assert.ErrorAs(t, err, &dup)
}

func TestResolveCrossJobConflict(t *testing.T) {
	apps := []types.Application{
		{ID: "a1", JobID: "jobA", CandidateID: "c1", Status: types.StatusInterviewing},
	}
	draft := types.CandidateDraft{Name: "Alice", Email: "alice@x.com"}

	// Unconfirmed intake into job B warns.
	out, err := Resolve([]types.Candidate{alice()}, apps, draft, "jobB", Options{}, testNow)
	assert.Nil(t, out)

	var conflict *CrossJobConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "c1", conflict.CandidateID)
	assert.Equal(t, "jobA", conflict.JobID)

	// Confirmation proceeds: a NEW application for job B, job A untouched
	// (Resolve never mutates its inputs).
	out, err = Resolve([]types.Candidate{alice()}, apps, draft, "jobB", Options{Confirmed: true}, testNow)
	require.NoError(t, err)
	require.NotNil(t, out.Application)
	assert.Equal(t, "jobB", out.Application.JobID)
	assert.Equal(t, types.StatusNew, out.Application.Status)
	assert.Equal(t, 0, out.Application.InterviewRound)
	assert.Equal(t, testNow, out.Application.AppliedAt)
	assert.Equal(t, types.StatusInterviewing, apps[0].Status)
}

func TestResolveNoConflictWhenOtherApplicationsClosed(t *testing.T) {
	tests := []struct {
		name   string
		status types.Status
	}{
		{"rejected elsewhere", types.StatusRejected},
		{"hired elsewhere", types.StatusHired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apps := []types.Application{
				{ID: "a1", JobID: "jobA", CandidateID: "c1", Status: tt.status},
			}
			draft := types.CandidateDraft{Name: "Alice", Email: "alice@x.com"}

			out, err := Resolve([]types.Candidate{alice()}, apps, draft, "jobB", Options{}, testNow)
			require.NoError(t, err)
			require.NotNil(t, out.Application)
			assert.Equal(t, "jobB", out.Application.JobID)
		})
	}
}

func TestResolveTalentPoolStatusStillConflicts(t *testing.T) {
	// TalentPool is a soft-exit, not terminal: the application is dormant but
	// open, so it still triggers the cross-job warning.
	apps := []types.Application{
		{ID: "a1", JobID: "jobA", CandidateID: "c1", Status: types.StatusTalentPool},
	}
	draft := types.CandidateDraft{Name: "Alice", Email: "alice@x.com"}

	_, err := Resolve([]types.Candidate{alice()}, apps, draft, "jobB", Options{}, testNow)
	var conflict *CrossJobConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestResolvePipelineUniqueness(t *testing.T) {
	// After any sequence of intakes, (candidate, job) has at most one application.
	candidates := []types.Candidate{}
	apps := []types.Application{}
	draft := types.CandidateDraft{Name: "Jane", Email: "jane@x.com"}

	for i := 0; i < 3; i++ {
		out, err := Resolve(candidates, apps, draft, "jobA", Options{Confirmed: true}, testNow)
		if err != nil {
			var dup *DuplicateInPipelineError
			require.ErrorAs(t, err, &dup)
			continue
		}
		if out.IsNewCandidate {
			candidates = append(candidates, out.Candidate)
		}
		if out.Application != nil {
			apps = append(apps, *out.Application)
		}
	}

	count := 0
	for _, a := range apps {
		if a.JobID == "jobA" && a.CandidateID == candidates[0].ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
