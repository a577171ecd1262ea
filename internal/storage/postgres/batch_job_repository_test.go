package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gw-fraud-scoring/internal/custom_err"
	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/internal/storage"
)

var batchJobRowColumns = []string{
	"id", "filename", "total_records", "processed_records", "failed_records", "status",
	"error_message", "started_at", "completed_at", "created_at", "created_by",
}

func batchJobRow(rows *pgxmock.Rows, id int64, status models.BatchJobStatus, createdAt time.Time) *pgxmock.Rows {
	return rows.AddRow(
		id, "march.xlsx", 3, 2, 1, status,
		(*string)(nil), &createdAt, (*time.Time)(nil), createdAt, "analyst",
	)
}

func TestPgBatchJobRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	started := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(storage.CreateBatchJobQuery)).
		WithArgs("march.xlsx", 3, models.BatchProcessing, pgxmock.AnyArg(), "analyst").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), started))

	job, err := NewBatchJobRepository(mock).Create(context.Background(), &models.BatchJob{
		Filename:     "march.xlsx",
		TotalRecords: 3,
		Status:       models.BatchProcessing,
		StartedAt:    &started,
		CreatedBy:    "analyst",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), job.ID)
	assert.Equal(t, started, job.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgBatchJobRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ts := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(storage.GetBatchJobByIDQuery)).
		WithArgs(int64(11)).
		WillReturnRows(batchJobRow(pgxmock.NewRows(batchJobRowColumns), 11, models.BatchCompleted, ts))

	job, err := NewBatchJobRepository(mock).GetByID(context.Background(), 11)

	require.NoError(t, err)
	assert.Equal(t, models.BatchCompleted, job.Status)
	assert.Equal(t, 2, job.ProcessedRecords)
	assert.Equal(t, 1, job.FailedRecords)
	assert.Nil(t, job.ErrorMessage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgBatchJobRepository_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(storage.GetBatchJobByIDQuery)).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	job, err := NewBatchJobRepository(mock).GetByID(context.Background(), 404)

	assert.Nil(t, job)
	assert.ErrorIs(t, err, custom_err.ErrNotFound)
}

func TestPgBatchJobRepository_Finish(t *testing.T) {
	completed := time.Date(2025, 3, 10, 12, 5, 0, 0, time.UTC)
	job := &models.BatchJob{ID: 11, ProcessedRecords: 2, FailedRecords: 1, Status: models.BatchCompleted, CompletedAt: &completed}

	t.Run("updated", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(regexp.QuoteMeta(storage.FinishBatchJobQuery)).
			WithArgs(2, 1, models.BatchCompleted, pgxmock.AnyArg(), pgxmock.AnyArg(), int64(11)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, NewBatchJobRepository(mock).Finish(context.Background(), job))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing job", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(regexp.QuoteMeta(storage.FinishBatchJobQuery)).
			WithArgs(2, 1, models.BatchCompleted, pgxmock.AnyArg(), pgxmock.AnyArg(), int64(11)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err = NewBatchJobRepository(mock).Finish(context.Background(), job)
		assert.ErrorIs(t, err, custom_err.ErrNotFound)
	})
}

func TestPgBatchJobRepository_ListByCreator(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ts := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows(batchJobRowColumns)
	batchJobRow(rows, 12, models.BatchProcessing, ts)
	batchJobRow(rows, 11, models.BatchCompleted, ts.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(storage.ListBatchJobsByCreatorQuery)).
		WithArgs("analyst", 50).
		WillReturnRows(rows)

	jobs, err := NewBatchJobRepository(mock).ListByCreator(context.Background(), "analyst", 50)

	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, int64(12), jobs[0].ID)
	assert.Equal(t, "analyst", jobs[1].CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}
