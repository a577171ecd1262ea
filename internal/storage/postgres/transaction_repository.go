package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"gw-fraud-scoring/internal/custom_err"
	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/internal/storage"
)

type TransactionRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Transaction, error)
	ListIDsByBatch(ctx context.Context, batchID int64) ([]int64, error)
	ListPage(ctx context.Context, limit, offset int) ([]models.Transaction, error)
	ListFraudulent(ctx context.Context, limit int) ([]models.Transaction, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)

	UpdateAnalysisTx(ctx context.Context, tx pgx.Tx, id, version int64, probability float64, status models.TransactionStatus) error
}

type PgTransactionRepository struct {
	db DBTX
}

func NewTransactionRepository(db DBTX) *PgTransactionRepository {
	return &PgTransactionRepository{db: db}
}

// withOffset возвращает момент времени в поясе, в котором клиент его прислал
func withOffset(ts time.Time, offsetSec int) time.Time {
	return ts.In(time.FixedZone("", offsetSec))
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var (
		t         models.Transaction
		offsetSec int
	)
	err := row.Scan(
		&t.ID,
		&t.ExternalID,
		&t.CustomerID,
		&t.RecipientID,
		&t.Amount,
		&t.Timestamp,
		&offsetSec,
		&t.GroundTruthFraud,
		&t.FraudProbability,
		&t.Status,
		&t.BatchID,
		&t.Version,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Timestamp = withOffset(t.Timestamp, offsetSec)
	return &t, nil
}

func (r *PgTransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	const op = "storage.GetTransactionByID"

	t, err := scanTransaction(r.db.QueryRow(ctx, storage.GetTransactionByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_err.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

func (r *PgTransactionRepository) list(ctx context.Context, op, query string, args ...any) ([]models.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	list := make([]models.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan error: %w", op, err)
		}
		list = append(list, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

func (r *PgTransactionRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.Transaction, error) {
	return r.list(ctx, "storage.ListTransactionsByCustomer", storage.ListTransactionsByCustomerQuery, customerID)
}

// ListPage страница общего списка, свежие сначала
func (r *PgTransactionRepository) ListPage(ctx context.Context, limit, offset int) ([]models.Transaction, error) {
	return r.list(ctx, "storage.ListTransactionsPage", storage.ListTransactionsPageQuery, limit, offset)
}

func (r *PgTransactionRepository) ListFraudulent(ctx context.Context, limit int) ([]models.Transaction, error) {
	return r.list(ctx, "storage.ListFraudulentTransactions", storage.ListFraudulentTransactionsQuery, limit)
}

func (r *PgTransactionRepository) Count(ctx context.Context) (int64, error) {
	const op = "storage.CountTransactions"

	var total int64
	if err := r.db.QueryRow(ctx, storage.CountTransactionsQuery).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

func (r *PgTransactionRepository) ListIDsByBatch(ctx context.Context, batchID int64) ([]int64, error) {
	const op = "storage.ListTransactionIDsByBatch"

	rows, err := r.db.Query(ctx, storage.ListTransactionIDsByBatchQuery, batchID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: scan error: %w", op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}

func (r *PgTransactionRepository) Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	const op = "storage.CreateTransaction"

	created := *t
	_, offsetSec := t.Timestamp.Zone()
	err := r.db.QueryRow(ctx, storage.CreateTransactionQuery,
		t.ExternalID, t.CustomerID, t.RecipientID, t.Amount, t.Timestamp, offsetSec,
		t.GroundTruthFraud, t.Status, t.BatchID,
	).Scan(&created.ID, &created.Version, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, custom_err.ErrDuplicateRequest
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &created, nil
}

// UpdateAnalysisTx блокирует строку и записывает результат анализа, если версия
// не изменилась с момента чтения транзакции. Иначе ErrConcurrentUpdate.
func (r *PgTransactionRepository) UpdateAnalysisTx(ctx context.Context, tx pgx.Tx, id, version int64, probability float64, status models.TransactionStatus) error {
	const op = "storage.UpdateAnalysisTx"

	var current int64
	if err := tx.QueryRow(ctx, storage.LockTransactionQuery, id).Scan(&current); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return custom_err.ErrNotFound
		}
		return fmt.Errorf("%s: lock: %w", op, err)
	}
	if current != version {
		return custom_err.ErrConcurrentUpdate
	}

	if _, err := tx.Exec(ctx, storage.UpdateTransactionAnalysisQuery, probability, status, id, version); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
