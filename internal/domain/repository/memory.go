package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"jobtrack/internal/common"
	"jobtrack/internal/domain/model"
)

// MemoryUserRepository is a map-backed UserRepository. It mirrors the
// Postgres implementation's semantics (email uniqueness, not-found errors)
// and is used by tests.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]model.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
	}
	stored := *user
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.users[stored.ID] = stored
	return nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	found := u
	return &found, nil
}

// MemoryJobRepository is a map-backed JobRepository with the same filtering
// and ordering behavior as the Postgres implementation.
type MemoryJobRepository struct {
	mu    sync.RWMutex
	jobs  map[string]model.Job
	users *MemoryUserRepository // for owner embedding in ListAllWithOwners
}

func NewMemoryJobRepository(users *MemoryUserRepository) *MemoryJobRepository {
	return &MemoryJobRepository{jobs: make(map[string]model.Job), users: users}
}

func (r *MemoryJobRepository) Create(_ context.Context, job *model.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *job
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.jobs[stored.ID] = stored
	return nil
}

func (r *MemoryJobRepository) FindByID(_ context.Context, id string) (*model.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	found := j
	return &found, nil
}

func (r *MemoryJobRepository) ListByUser(_ context.Context, userID string, filter JobListFilter) ([]model.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	jobs := []model.Job{}
	for _, j := range r.jobs {
		if j.UserID != userID {
			continue
		}
		if filter.Status != "" && j.Status != filter.Status {
			continue
		}
		jobs = append(jobs, j)
	}
	sort.Slice(jobs, func(a, b int) bool {
		if filter.AscendingDate {
			return jobs[a].AppliedDate.Before(jobs[b].AppliedDate)
		}
		return jobs[a].AppliedDate.After(jobs[b].AppliedDate)
	})
	return jobs, nil
}

func (r *MemoryJobRepository) Update(_ context.Context, job *model.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.jobs[job.ID]
	if !ok {
		return common.ErrNotFound
	}
	updated := *job
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	r.jobs[job.ID] = updated
	return nil
}

func (r *MemoryJobRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *MemoryJobRepository) ListAllWithOwners(ctx context.Context) ([]model.Job, error) {
	r.mu.RLock()
	jobs := make([]model.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		jobs = append(jobs, j)
	}
	r.mu.RUnlock()

	sort.Slice(jobs, func(a, b int) bool {
		return jobs[a].CreatedAt.After(jobs[b].CreatedAt)
	})

	for i := range jobs {
		if r.users == nil {
			continue
		}
		owner, err := r.users.FindByID(ctx, jobs[i].UserID)
		if err != nil {
			continue
		}
		jobs[i].OwnerName = &owner.Name
		jobs[i].OwnerEmail = &owner.Email
	}
	return jobs, nil
}
