package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"gw-fraud-scoring/internal/custom_err"
	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/internal/storage"
)

type BatchJobRepository interface {
	Create(ctx context.Context, job *models.BatchJob) (*models.BatchJob, error)
	GetByID(ctx context.Context, id int64) (*models.BatchJob, error)
	Finish(ctx context.Context, job *models.BatchJob) error
	ListByCreator(ctx context.Context, createdBy string, limit int) ([]models.BatchJob, error)
}

type PgBatchJobRepository struct {
	db DBTX
}

func NewBatchJobRepository(db DBTX) *PgBatchJobRepository {
	return &PgBatchJobRepository{db: db}
}

func scanBatchJob(row pgx.Row) (*models.BatchJob, error) {
	var j models.BatchJob
	err := row.Scan(
		&j.ID,
		&j.Filename,
		&j.TotalRecords,
		&j.ProcessedRecords,
		&j.FailedRecords,
		&j.Status,
		&j.ErrorMessage,
		&j.StartedAt,
		&j.CompletedAt,
		&j.CreatedAt,
		&j.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *PgBatchJobRepository) Create(ctx context.Context, job *models.BatchJob) (*models.BatchJob, error) {
	const op = "storage.CreateBatchJob"

	created := *job
	err := r.db.QueryRow(ctx, storage.CreateBatchJobQuery,
		job.Filename, job.TotalRecords, job.Status, job.StartedAt, job.CreatedBy,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &created, nil
}

func (r *PgBatchJobRepository) GetByID(ctx context.Context, id int64) (*models.BatchJob, error) {
	const op = "storage.GetBatchJobByID"

	job, err := scanBatchJob(r.db.QueryRow(ctx, storage.GetBatchJobByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_err.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return job, nil
}

// Finish записывает итоговые счётчики и конечный статус загрузки
func (r *PgBatchJobRepository) Finish(ctx context.Context, job *models.BatchJob) error {
	const op = "storage.FinishBatchJob"

	tag, err := r.db.Exec(ctx, storage.FinishBatchJobQuery,
		job.ProcessedRecords, job.FailedRecords, job.Status, job.ErrorMessage, job.CompletedAt, job.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return custom_err.ErrNotFound
	}
	return nil
}

// ListByCreator загрузки пользователя, новые сначала
func (r *PgBatchJobRepository) ListByCreator(ctx context.Context, createdBy string, limit int) ([]models.BatchJob, error) {
	const op = "storage.ListBatchJobsByCreator"

	rows, err := r.db.Query(ctx, storage.ListBatchJobsByCreatorQuery, createdBy, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	jobs := make([]models.BatchJob, 0)
	for rows.Next() {
		job, err := scanBatchJob(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan error: %w", op, err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return jobs, nil
}
