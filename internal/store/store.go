// Package store defines the entity store holding the canonical candidate,
// job, and application collections, plus the default in-memory backend.
package store

import (
	"context"
	"fmt"

	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

// Snapshot is a consistent copy of all three collections, the input shape the
// pure core functions (intake, projection) operate over.
type Snapshot struct {
	Candidates   []types.Candidate
	Jobs         []types.Job
	Applications []types.Application
}

// Store is the mutation surface for the canonical collections. The store does
// not enforce pipeline invariants; the intake resolver and state machine own
// those, and callers commit their outcomes here.
//
// Getters return (nil, nil) for a missing row; mutations on a missing row
// return a NotFoundError.
type Store interface {
	Snapshot(ctx context.Context) (Snapshot, error)

	ListJobs(ctx context.Context) ([]types.Job, error)
	GetJob(ctx context.Context, id string) (*types.Job, error)
	UpdateJob(ctx context.Context, job types.Job) error

	ListCandidates(ctx context.Context) ([]types.Candidate, error)
	GetCandidate(ctx context.Context, id string) (*types.Candidate, error)
	CreateCandidate(ctx context.Context, c types.Candidate) error
	// DeleteCandidate removes the candidate and cascades to every
	// application referencing it.
	DeleteCandidate(ctx context.Context, id string) error

	GetApplication(ctx context.Context, id string) (*types.Application, error)
	ApplicationsByCandidate(ctx context.Context, candidateID string) ([]types.Application, error)
	CreateApplication(ctx context.Context, a types.Application) error
	UpdateApplication(ctx context.Context, a types.Application) error
	// DeleteApplication withdraws a single application without touching the
	// candidate.
	DeleteApplication(ctx context.Context, id string) error
}

// NotFoundError indicates the referenced entity does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}
