package storage

import (
	"context"

	"gw-fraud-scoring/internal/custom_err"
	"gw-fraud-scoring/internal/models"
)

// AnalysisArchive хранилище истории анализов
type AnalysisArchive interface {
	Save(ctx context.Context, record *models.AnalysisRecord) error
	LatestByTransaction(ctx context.Context, transactionID int64) (*models.AnalysisRecord, error)
	Close() error
}

// NoOpArchive используется когда MongoDB отключена
type NoOpArchive struct{}

func (NoOpArchive) Save(context.Context, *models.AnalysisRecord) error { return nil }

func (NoOpArchive) LatestByTransaction(context.Context, int64) (*models.AnalysisRecord, error) {
	return nil, custom_err.ErrNotFound
}

func (NoOpArchive) Close() error { return nil }
