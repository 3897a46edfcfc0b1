package store

import (
	"context"
	"sync"

	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

// Memory is the in-memory Store backend, the reference behavior for the
// process lifetime. All reads hand out copies so callers can never alias the
// canonical slices.
type Memory struct {
	mu           sync.RWMutex
	candidates   []types.Candidate
	jobs         []types.Job
	applications []types.Application
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		candidates:   []types.Candidate{},
		jobs:         []types.Job{},
		applications: []types.Application{},
	}
}

// Seed replaces the collections with the fixture dataset.
func (m *Memory) Seed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = seedJobs()
	m.candidates = seedCandidates()
	m.applications = seedApplications()
}

// Snapshot returns a copy of all three collections.
func (m *Memory) Snapshot(_ context.Context) (Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		Candidates:   append([]types.Candidate(nil), m.candidates...),
		Jobs:         append([]types.Job(nil), m.jobs...),
		Applications: append([]types.Application(nil), m.applications...),
	}, nil
}

// ListJobs returns all jobs.
func (m *Memory) ListJobs(_ context.Context) ([]types.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]types.Job(nil), m.jobs...), nil
}

// GetJob returns the job with the given id, or nil when absent.
func (m *Memory) GetJob(_ context.Context, id string) (*types.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, j := range m.jobs {
		if j.ID == id {
			job := j
			return &job, nil
		}
	}
	return nil, nil
}

// UpdateJob replaces the stored job with the same id.
func (m *Memory) UpdateJob(_ context.Context, job types.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.jobs {
		if m.jobs[i].ID == job.ID {
			m.jobs[i] = job
			return nil
		}
	}
	return &NotFoundError{Kind: "job", ID: job.ID}
}

// ListCandidates returns all candidates.
func (m *Memory) ListCandidates(_ context.Context) ([]types.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]types.Candidate(nil), m.candidates...), nil
}

// GetCandidate returns the candidate with the given id, or nil when absent.
func (m *Memory) GetCandidate(_ context.Context, id string) (*types.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.candidates {
		if c.ID == id {
			candidate := c
			return &candidate, nil
		}
	}
	return nil, nil
}

// CreateCandidate prepends a new candidate, newest first as the pool shows it.
func (m *Memory) CreateCandidate(_ context.Context, c types.Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.candidates = append([]types.Candidate{c}, m.candidates...)
	return nil
}

// DeleteCandidate removes the candidate and every application referencing it.
func (m *Memory) DeleteCandidate(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.candidates[:0]
	found := false
	for _, c := range m.candidates {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return &NotFoundError{Kind: "candidate", ID: id}
	}
	m.candidates = kept

	apps := m.applications[:0]
	for _, a := range m.applications {
		if a.CandidateID != id {
			apps = append(apps, a)
		}
	}
	m.applications = apps
	return nil
}

// GetApplication returns the application with the given id, or nil when absent.
func (m *Memory) GetApplication(_ context.Context, id string) (*types.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.applications {
		if a.ID == id {
			app := a
			return &app, nil
		}
	}
	return nil, nil
}

// ApplicationsByCandidate returns the candidate's applications across all jobs.
func (m *Memory) ApplicationsByCandidate(_ context.Context, candidateID string) ([]types.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	apps := []types.Application{}
	for _, a := range m.applications {
		if a.CandidateID == candidateID {
			apps = append(apps, a)
		}
	}
	return apps, nil
}

// CreateApplication appends a new application.
func (m *Memory) CreateApplication(_ context.Context, a types.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applications = append(m.applications, a)
	return nil
}

// UpdateApplication replaces the stored application with the same id.
func (m *Memory) UpdateApplication(_ context.Context, a types.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.applications {
		if m.applications[i].ID == a.ID {
			m.applications[i] = a
			return nil
		}
	}
	return &NotFoundError{Kind: "application", ID: a.ID}
}

// DeleteApplication withdraws a single application.
func (m *Memory) DeleteApplication(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.applications {
		if m.applications[i].ID == id {
			m.applications = append(m.applications[:i], m.applications[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "application", ID: id}
}
