package models

import (
	"errors"
	"strings"
	"time"
)

// BatchJobStatus этап обработки загруженного батча
type BatchJobStatus string

const (
	BatchPending    BatchJobStatus = "PENDING"
	BatchProcessing BatchJobStatus = "PROCESSING"
	BatchCompleted  BatchJobStatus = "COMPLETED"
	BatchFailed     BatchJobStatus = "FAILED"
)

// MaxBatchRecords верхняя граница записей в одной загрузке
const MaxBatchRecords = 5000

// BatchJob запись о загрузке пачки транзакций
type BatchJob struct {
	ID               int64          `json:"id" db:"id"`
	Filename         string         `json:"filename" db:"filename"`
	TotalRecords     int            `json:"total_records" db:"total_records"`
	ProcessedRecords int            `json:"processed_records" db:"processed_records"`
	FailedRecords    int            `json:"failed_records" db:"failed_records"`
	Status           BatchJobStatus `json:"status" db:"status"`
	ErrorMessage     *string        `json:"error_message,omitempty" db:"error_message"`
	StartedAt        *time.Time     `json:"started_at,omitempty" db:"started_at"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	CreatedBy        string         `json:"created_by" db:"created_by"`
}

// BatchUploadRequest пачка транзакций под одним именем загрузки.
// batch_id внутри записей игнорируется, его назначает сервер.
type BatchUploadRequest struct {
	Filename     string                     `json:"filename"`
	Transactions []CreateTransactionRequest `json:"transactions"`
}

func (r BatchUploadRequest) Validate() error {
	if strings.TrimSpace(r.Filename) == "" {
		return errors.New("filename is required")
	}
	if len(r.Transactions) == 0 {
		return errors.New("transactions must not be empty")
	}
	if len(r.Transactions) > MaxBatchRecords {
		return errors.New("too many transactions in one batch")
	}
	return nil
}
