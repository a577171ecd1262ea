package service

import (
	"context"
	"fmt"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"gw-fraud-scoring/internal/custom_err"
	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/internal/storage/postgres"
)

const batchHistoryLimit = 50

type Batches interface {
	Upload(ctx context.Context, createdBy string, req models.BatchUploadRequest) (*models.BatchJob, error)
	Status(ctx context.Context, batchID int64) (*models.BatchJob, error)
	History(ctx context.Context, createdBy string) ([]models.BatchJob, error)
	ReplayBatch(ctx context.Context, batchID int64) (*models.BatchReplayResponse, error)
}

type BatchSource interface {
	ListIDsByBatch(ctx context.Context, batchID int64) ([]int64, error)
	Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
}

// BatchService загрузка пачек транзакций с учётом прогресса и их повторный анализ
type BatchService struct {
	source      BatchSource
	jobs        postgres.BatchJobRepository
	analyzer    Analyzer
	concurrency int
	now         func() time.Time
	log         *slog.Logger
}

func NewBatchService(
	source BatchSource,
	jobs postgres.BatchJobRepository,
	analyzer Analyzer,
	concurrency int,
	log *slog.Logger,
) *BatchService {
	return &BatchService{
		source:      source,
		jobs:        jobs,
		analyzer:    analyzer,
		concurrency: max(concurrency, 1),
		now:         time.Now,
		log:         log,
	}
}

// recordRejected ошибки отдельной записи, которые не прерывают загрузку
func recordRejected(err error) bool {
	return errors.Is(err, custom_err.ErrDuplicateRequest) ||
		errors.Is(err, custom_err.ErrInvalidInput) ||
		errors.Is(err, custom_err.ErrInvalidAmount)
}

// Upload сохраняет транзакции под новым batch_id. Невалидные записи и дубликаты
// считаются в failed_records, сбой хранилища переводит загрузку в FAILED.
func (s *BatchService) Upload(ctx context.Context, createdBy string, req models.BatchUploadRequest) (*models.BatchJob, error) {
	const op = "service.UploadBatch"

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", custom_err.ErrInvalidInput, err.Error())
	}

	started := s.now()
	job, err := s.jobs.Create(ctx, &models.BatchJob{
		Filename:     req.Filename,
		TotalRecords: len(req.Transactions),
		Status:       models.BatchProcessing,
		StartedAt:    &started,
		CreatedBy:    createdBy,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("загрузка батча начата",
		slog.Int64("batch_id", job.ID),
		slog.String("filename", job.Filename),
		slog.Int("records", job.TotalRecords),
		slog.String("created_by", createdBy))

	var loadErr error
	for i, rec := range req.Transactions {
		batchID := job.ID
		rec.BatchID = &batchID

		err := rec.Validate()
		if err == nil {
			_, err = s.source.Create(ctx, rec.ToTransaction())
		} else {
			err = fmt.Errorf("%w: %s", custom_err.ErrInvalidInput, err.Error())
		}

		switch {
		case err == nil:
			job.ProcessedRecords++
		case recordRejected(err):
			job.FailedRecords++
			s.log.Warn("запись батча отклонена",
				slog.Int64("batch_id", job.ID),
				slog.Int("row", i),
				slog.String("transaction_id", rec.ExternalID),
				slog.String("error", err.Error()))
		default:
			loadErr = err
		}
		if loadErr != nil {
			break
		}
	}

	completed := s.now()
	job.CompletedAt = &completed
	job.Status = models.BatchCompleted
	if loadErr != nil {
		msg := loadErr.Error()
		job.Status = models.BatchFailed
		job.ErrorMessage = &msg
	}

	// итог пишется и после отмены запроса, иначе загрузка зависнет в PROCESSING
	if err := s.jobs.Finish(context.WithoutCancel(ctx), job); err != nil {
		return nil, fmt.Errorf("%s: finish: %w", op, err)
	}

	if loadErr != nil {
		s.log.Error("загрузка батча прервана",
			slog.Int64("batch_id", job.ID),
			slog.Int("processed", job.ProcessedRecords),
			slog.String("error", loadErr.Error()))
		return nil, fmt.Errorf("%s: %w", op, loadErr)
	}

	s.log.Info("загрузка батча завершена",
		slog.Int64("batch_id", job.ID),
		slog.Int("processed", job.ProcessedRecords),
		slog.Int("failed", job.FailedRecords))

	return job, nil
}

func (s *BatchService) Status(ctx context.Context, batchID int64) (*models.BatchJob, error) {
	const op = "service.BatchStatus"

	job, err := s.jobs.GetByID(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return job, nil
}

// History последние загрузки пользователя, новые сначала
func (s *BatchService) History(ctx context.Context, createdBy string) ([]models.BatchJob, error) {
	const op = "service.BatchHistory"

	jobs, err := s.jobs.ListByCreator(ctx, createdBy, batchHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return jobs, nil
}

// ReplayBatch ошибки отдельных транзакций считаются в Failed и не прерывают батч
func (s *BatchService) ReplayBatch(ctx context.Context, batchID int64) (*models.BatchReplayResponse, error) {
	const op = "service.ReplayBatch"

	ids, err := s.source.ListIDsByBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%s: batch %d: %w", op, batchID, custom_err.ErrNotFound)
	}

	s.log.Info("запуск повторного анализа батча",
		slog.Int64("batch_id", batchID),
		slog.Int("transactions", len(ids)),
		slog.Int("concurrency", s.concurrency))

	resp := &models.BatchReplayResponse{BatchID: batchID, Total: len(ids)}
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for _, id := range ids {
		g.Go(func() error {
			res, err := s.analyzer.Analyze(ctx, id, models.ReplayMode)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				resp.Failed++
				s.log.Warn("транзакция батча не проанализирована",
					slog.Int64("batch_id", batchID),
					slog.Int64("transaction_id", id),
					slog.String("error", err.Error()))
				return nil
			}

			resp.Analyzed++
			switch res.Decision {
			case models.DecisionBlock:
				resp.Blocked++
			case models.DecisionReview:
				resp.Review++
			case models.DecisionApprove:
				resp.Approved++
			}
			return nil
		})
	}
	_ = g.Wait()

	s.log.Info("повторный анализ батча завершён",
		slog.Int64("batch_id", batchID),
		slog.Int("analyzed", resp.Analyzed),
		slog.Int("blocked", resp.Blocked),
		slog.Int("review", resp.Review),
		slog.Int("approved", resp.Approved),
		slog.Int("failed", resp.Failed))

	return resp, nil
}
