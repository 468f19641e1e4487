package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jobtrack/internal/common"
	"jobtrack/internal/domain/model"
)

// JobListFilter narrows and orders ListByUser results. A zero Status means no
// status filtering; AscendingDate orders by applied date ascending instead of
// the default descending.
type JobListFilter struct {
	Status        model.JobStatus
	AscendingDate bool
}

type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id string) (*model.Job, error)
	ListByUser(ctx context.Context, userID string, filter JobListFilter) ([]model.Job, error)
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, id string) error
	ListAllWithOwners(ctx context.Context) ([]model.Job, error)
}

type pgJobRepository struct {
	db *sql.DB
}

func NewPgJobRepository(db *sql.DB) JobRepository {
	return &pgJobRepository{db: db}
}

func (r *pgJobRepository) Create(ctx context.Context, job *model.Job) error {
	query := `INSERT INTO jobs (id, user_id, company, role, status, applied_date, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		job.ID, job.UserID, job.Company, job.Role, job.Status, job.AppliedDate, job.Notes)
	if err != nil {
		return fmt.Errorf("pgJobRepository.Create: %w", err)
	}
	return nil
}

func (r *pgJobRepository) FindByID(ctx context.Context, id string) (*model.Job, error) {
	query := `SELECT id, user_id, company, role, status, applied_date, notes, created_at, updated_at
	          FROM jobs WHERE id = $1`
	job := &model.Job{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID, &job.UserID, &job.Company, &job.Role, &job.Status,
		&job.AppliedDate, &job.Notes, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgJobRepository.FindByID: %w", err)
	}
	return job, nil
}

func (r *pgJobRepository) ListByUser(ctx context.Context, userID string, filter JobListFilter) ([]model.Job, error) {
	query := `SELECT id, user_id, company, role, status, applied_date, notes, created_at, updated_at
	          FROM jobs WHERE user_id = $1`
	args := []interface{}{userID}
	if filter.Status != "" {
		query += ` AND status = $2`
		args = append(args, filter.Status)
	}
	if filter.AscendingDate {
		query += ` ORDER BY applied_date ASC`
	} else {
		query += ` ORDER BY applied_date DESC`
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgJobRepository.ListByUser: %w", err)
	}
	defer rows.Close()

	jobs := []model.Job{}
	for rows.Next() {
		var job model.Job
		if err := rows.Scan(
			&job.ID, &job.UserID, &job.Company, &job.Role, &job.Status,
			&job.AppliedDate, &job.Notes, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgJobRepository.ListByUser scan: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgJobRepository.ListByUser rows: %w", err)
	}
	return jobs, nil
}

func (r *pgJobRepository) Update(ctx context.Context, job *model.Job) error {
	query := `UPDATE jobs
	          SET company = $2, role = $3, status = $4, applied_date = $5, notes = $6, updated_at = now()
	          WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query,
		job.ID, job.Company, job.Role, job.Status, job.AppliedDate, job.Notes)
	if err != nil {
		return fmt.Errorf("pgJobRepository.Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgJobRepository.Update rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgJobRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgJobRepository.Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgJobRepository.Delete rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgJobRepository) ListAllWithOwners(ctx context.Context) ([]model.Job, error) {
	query := `SELECT j.id, j.user_id, j.company, j.role, j.status, j.applied_date, j.notes,
	                 j.created_at, j.updated_at, u.name, u.email
	          FROM jobs j
	          JOIN users u ON u.id = j.user_id
	          ORDER BY j.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgJobRepository.ListAllWithOwners: %w", err)
	}
	defer rows.Close()

	jobs := []model.Job{}
	for rows.Next() {
		var job model.Job
		var ownerName, ownerEmail string
		if err := rows.Scan(
			&job.ID, &job.UserID, &job.Company, &job.Role, &job.Status,
			&job.AppliedDate, &job.Notes, &job.CreatedAt, &job.UpdatedAt,
			&ownerName, &ownerEmail,
		); err != nil {
			return nil, fmt.Errorf("pgJobRepository.ListAllWithOwners scan: %w", err)
		}
		job.OwnerName = &ownerName
		job.OwnerEmail = &ownerEmail
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgJobRepository.ListAllWithOwners rows: %w", err)
	}
	return jobs, nil
}
