package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"forkful/internal/domain"
	"forkful/internal/port"
)

type importJobRepo struct {
	db *sqlx.DB
}

// NewImportJobRepository creates a PostgreSQL-backed import job repository.
func NewImportJobRepository(db *sqlx.DB) port.ImportJobRepository {
	return &importJobRepo{db: db}
}

func (r *importJobRepo) Create(ctx context.Context, job *domain.ImportJob) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO import_jobs (
			id, source_kind, source_url, identifier, raw_text, source_file_key,
			status, error, recipe_id, attempts, created_at, updated_at
		) VALUES (
			:id, :source_kind, :source_url, :identifier, :raw_text, :source_file_key,
			:status, :error, :recipe_id, :attempts, :created_at, :updated_at
		)`, job)
	if err != nil {
		return fmt.Errorf("importJobRepo.Create: %w", err)
	}
	return nil
}

func (r *importJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ImportJob, error) {
	var job domain.ImportJob
	err := r.db.GetContext(ctx, &job, `SELECT * FROM import_jobs WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrImportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("importJobRepo.GetByID: %w", err)
	}
	return &job, nil
}

// ClaimQueued atomically moves up to limit queued jobs to processing and
// returns them. SKIP LOCKED lets multiple workers poll without contention.
func (r *importJobRepo) ClaimQueued(ctx context.Context, limit int) ([]domain.ImportJob, error) {
	var jobs []domain.ImportJob
	err := r.db.SelectContext(ctx, &jobs, `
		UPDATE import_jobs SET status = $1, updated_at = $2
		WHERE id IN (
			SELECT id FROM import_jobs
			WHERE status = $3
			ORDER BY created_at
			LIMIT $4
			FOR UPDATE SKIP LOCKED
		)
		RETURNING *`,
		domain.ImportStatusProcessing, time.Now().UTC(), domain.ImportStatusQueued, limit)
	if err != nil {
		return nil, fmt.Errorf("importJobRepo.ClaimQueued: %w", err)
	}
	return jobs, nil
}

func (r *importJobRepo) Update(ctx context.Context, job *domain.ImportJob) error {
	job.UpdatedAt = time.Now().UTC()
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE import_jobs SET
			status = :status,
			error = :error,
			recipe_id = :recipe_id,
			attempts = :attempts,
			source_file_key = :source_file_key,
			updated_at = :updated_at
		WHERE id = :id`, job)
	if err != nil {
		return fmt.Errorf("importJobRepo.Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("importJobRepo.Update rows: %w", err)
	}
	if n == 0 {
		return domain.ErrImportNotFound
	}
	return nil
}

func (r *importJobRepo) List(ctx context.Context, offset, limit int) ([]domain.ImportJob, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM import_jobs`); err != nil {
		return nil, 0, fmt.Errorf("importJobRepo.List count: %w", err)
	}
	var jobs []domain.ImportJob
	err := r.db.SelectContext(ctx, &jobs,
		`SELECT * FROM import_jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("importJobRepo.List: %w", err)
	}
	return jobs, total, nil
}
