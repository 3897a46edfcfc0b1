package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

func seeded() *Memory {
	m := NewMemory()
	m.Seed()
	return m
}

func TestMemorySeedShape(t *testing.T) {
	ctx := context.Background()
	m := seeded()

	snap, err := m.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Jobs, 3)
	assert.Len(t, snap.Candidates, 4)
	assert.Len(t, snap.Applications, 4)

	job, err := m.GetJob(ctx, "j1")
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "Senior Frontend Engineer", job.Title)

	candidate, err := m.GetCandidate(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, "alice@example.com", candidate.Email)
	assert.Len(t, candidate.WorkExperience, 2)
}

func TestMemorySnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	m := seeded()

	snap, err := m.Snapshot(ctx)
	require.NoError(t, err)
	snap.Candidates[0].Name = "Mutated"
	snap.Applications[0].Status = types.StatusHired

	fresh, err := m.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", fresh.Candidates[0].Name)
	assert.Equal(t, types.StatusInterviewing, fresh.Applications[0].Status)
}

func TestMemoryCreateCandidatePrepends(t *testing.T) {
	ctx := context.Background()
	m := seeded()

	require.NoError(t, m.CreateCandidate(ctx, types.Candidate{ID: "c9", Name: "Newest"}))

	candidates, err := m.ListCandidates(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c9", candidates[0].ID)
}

func TestMemoryDeleteCandidateCascades(t *testing.T) {
	ctx := context.Background()
	m := seeded()

	require.NoError(t, m.DeleteCandidate(ctx, "c1"))

	candidate, err := m.GetCandidate(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, candidate)

	apps, err := m.ApplicationsByCandidate(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, apps, "applications referencing the candidate are removed")

	// Other candidates' applications survive.
	apps, err = m.ApplicationsByCandidate(ctx, "c2")
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestMemoryDeleteCandidateNotFound(t *testing.T) {
	m := seeded()

	err := m.DeleteCandidate(context.Background(), "nope")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "candidate", nf.Kind)
}

func TestMemoryWithdrawApplication(t *testing.T) {
	ctx := context.Background()
	m := seeded()

	require.NoError(t, m.DeleteApplication(ctx, "a1"))

	app, err := m.GetApplication(ctx, "a1")
	require.NoError(t, err)
	assert.Nil(t, app)

	// The candidate itself is untouched by a withdrawal.
	candidate, err := m.GetCandidate(ctx, "c1")
	require.NoError(t, err)
	assert.NotNil(t, candidate)
}

func TestMemoryUpdateApplication(t *testing.T) {
	ctx := context.Background()
	m := seeded()

	app, err := m.GetApplication(ctx, "a2")
	require.NoError(t, err)
	require.NotNil(t, app)

	app.Status = types.StatusScreened
	require.NoError(t, m.UpdateApplication(ctx, *app))

	got, err := m.GetApplication(ctx, "a2")
	require.NoError(t, err)
	assert.Equal(t, types.StatusScreened, got.Status)

	err = m.UpdateApplication(ctx, types.Application{ID: "missing"})
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestMemoryUpdateJob(t *testing.T) {
	ctx := context.Background()
	m := seeded()

	job, err := m.GetJob(ctx, "j1")
	require.NoError(t, err)
	job.HiredCount = 2
	require.NoError(t, m.UpdateJob(ctx, *job))

	got, err := m.GetJob(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.HiredCount)
}
