package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobtrack/internal/common"
	"jobtrack/internal/domain/model"
	"jobtrack/internal/domain/repository"

	"github.com/google/uuid"
)

type JobService struct {
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
	notifier Notifier
}

func NewJobService(jobRepo repository.JobRepository, userRepo repository.UserRepository, notifier Notifier) *JobService {
	return &JobService{jobRepo: jobRepo, userRepo: userRepo, notifier: notifier}
}

type CreateJobRequest struct {
	Company string          `json:"company" validate:"required"`
	Role    string          `json:"role" validate:"required"`
	Status  model.JobStatus `json:"status" validate:"omitempty,oneof=Applied Interview Offer Rejected Accepted"`
	Notes   string          `json:"notes"`
}

// UpdateJobRequest carries a partial update; nil fields are left untouched.
type UpdateJobRequest struct {
	Company     *string          `json:"company"`
	Role        *string          `json:"role"`
	Status      *model.JobStatus `json:"status"`
	Notes       *string          `json:"notes"`
	AppliedDate *time.Time       `json:"applied_date"`
}

// List returns the requester's jobs, optionally filtered by status and
// ordered by applied date ("date_asc" ascending, descending otherwise).
func (s *JobService) List(ctx context.Context, requesterID, status, sortBy string) ([]model.Job, error) {
	filter := repository.JobListFilter{AscendingDate: sortBy == "date_asc"}
	if status != "" {
		if !model.ValidJobStatus(model.JobStatus(status)) {
			return nil, fmt.Errorf("%w: unknown status %q", common.ErrValidation, status)
		}
		filter.Status = model.JobStatus(status)
	}
	jobs, err := s.jobRepo.ListByUser(ctx, requesterID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// Get fetches a single job. Ownership only: admins get no override here.
func (s *JobService) Get(ctx context.Context, requesterID, jobID string) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.UserID != requesterID {
		return nil, fmt.Errorf("not authorized to view this job: %w", common.ErrForbidden)
	}
	return job, nil
}

func (s *JobService) Create(ctx context.Context, requesterID string, req CreateJobRequest) (*model.Job, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrValidation, err.Error())
	}

	requester, err := s.userRepo.FindByID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requester: %w", err)
	}

	status := req.Status
	if status == "" {
		status = model.StatusApplied
	}

	job := &model.Job{
		ID:          uuid.NewString(),
		UserID:      requesterID,
		Company:     req.Company,
		Role:        req.Role,
		Status:      status,
		AppliedDate: time.Now(),
		Notes:       req.Notes,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	message := fmt.Sprintf("New application added for %s at %s.", job.Role, job.Company)
	s.notifier.Notify(requester.ID, "", message)
	s.notifier.Notify(requester.Email, "New Job Added", message)

	return job, nil
}

// Update applies a partial update. Ownership only, same as Get.
func (s *JobService) Update(ctx context.Context, requesterID, jobID string, req UpdateJobRequest) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.UserID != requesterID {
		return nil, fmt.Errorf("not authorized to update this job: %w", common.ErrForbidden)
	}

	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Role != nil {
		job.Role = *req.Role
	}
	if req.Status != nil {
		if !model.ValidJobStatus(*req.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", common.ErrValidation, *req.Status)
		}
		job.Status = *req.Status
	}
	if req.Notes != nil {
		job.Notes = *req.Notes
	}
	if req.AppliedDate != nil {
		job.AppliedDate = *req.AppliedDate
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	s.notifier.Notify(requesterID, "",
		fmt.Sprintf("Your application for %s at %s has been updated.", job.Role, job.Company))

	return job, nil
}

// Delete removes a job. Unlike Get/Update, admins may delete any user's job,
// and an unauthorized delete reports 401 rather than 403. Both quirks are
// kept for compatibility with existing clients.
func (s *JobService) Delete(ctx context.Context, requesterID, requesterRole, jobID string) error {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	if requesterRole != model.RoleAdmin && job.UserID != requesterID {
		return fmt.Errorf("user not authorized to delete this job: %w", common.ErrUnauthorized)
	}
	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

// AdminList returns every job across all users with owner name and email
// embedded, newest first.
func (s *JobService) AdminList(ctx context.Context, requesterRole string) ([]model.Job, error) {
	if requesterRole != model.RoleAdmin {
		return nil, fmt.Errorf("admin access required: %w", common.ErrForbidden)
	}
	jobs, err := s.jobRepo.ListAllWithOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all jobs: %w", err)
	}
	return jobs, nil
}
