package service

import (
	"context"
	"fmt"
	"log/slog"

	"gw-fraud-scoring/internal/custom_err"
	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/internal/risk"
	"gw-fraud-scoring/internal/storage/postgres"
)

type Transactions interface {
	Create(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error)
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Transaction, error)
	ListPage(ctx context.Context, page, size int) (*models.TransactionPage, error)
	ListFraudulent(ctx context.Context) ([]models.Transaction, error)
	CustomerStats(ctx context.Context, customerID string) (*models.CustomerStats, error)
	BehaviorSummary(ctx context.Context, customerID string) (*models.BehaviorSummaryResponse, error)
}

const (
	DefaultPageSize = 100
	MaxPageSize     = 500

	fraudulentListLimit = 100
)

// TransactionService приём транзакций и чтение клиентских данных
type TransactionService struct {
	txRepo   postgres.TransactionRepository
	stats    *risk.StatsAggregator
	behavior *risk.BehaviorAnalyzer
	log      *slog.Logger
}

func NewTransactionService(
	txRepo postgres.TransactionRepository,
	behaviorRepo risk.BehaviorSource,
	riskCfg risk.Config,
	log *slog.Logger,
) *TransactionService {
	return &TransactionService{
		txRepo:   txRepo,
		stats:    risk.NewStatsAggregator(nil),
		behavior: risk.NewBehaviorAnalyzer(behaviorRepo, riskCfg, log),
		log:      log,
	}
}

// Create отклоняет отрицательные суммы до того, как транзакция попадёт в хранилище
func (s *TransactionService) Create(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	const op = "service.CreateTransaction"

	if err := req.Validate(); err != nil {
		if models.IsAmountError(err) {
			return nil, fmt.Errorf("%w: %s", custom_err.ErrInvalidAmount, err.Error())
		}
		return nil, fmt.Errorf("%w: %s", custom_err.ErrInvalidInput, err.Error())
	}

	created, err := s.txRepo.Create(ctx, req.ToTransaction())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("транзакция загружена",
		slog.String("op", op),
		slog.Int64("id", created.ID),
		slog.String("transaction_id", created.ExternalID),
		slog.String("customer_id", created.CustomerID))

	return created, nil
}

func (s *TransactionService) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	const op = "service.GetTransaction"

	tx, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tx, nil
}

func (s *TransactionService) ListByCustomer(ctx context.Context, customerID string) ([]models.Transaction, error) {
	const op = "service.ListByCustomer"

	history, err := s.txRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return history, nil
}

// ListPage страницы нумеруются с нуля
func (s *TransactionService) ListPage(ctx context.Context, page, size int) (*models.TransactionPage, error) {
	const op = "service.ListTransactionsPage"

	if page < 0 {
		return nil, fmt.Errorf("%w: page must not be negative", custom_err.ErrInvalidInput)
	}
	if size < 1 || size > MaxPageSize {
		return nil, fmt.Errorf("%w: size must be between 1 and %d", custom_err.ErrInvalidInput, MaxPageSize)
	}

	list, err := s.txRepo.ListPage(ctx, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	total, err := s.txRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TransactionPage{Page: page, Size: size, Total: total, Transactions: list}, nil
}

// ListFraudulent последние размеченные как мошеннические
func (s *TransactionService) ListFraudulent(ctx context.Context) ([]models.Transaction, error) {
	const op = "service.ListFraudulent"

	list, err := s.txRepo.ListFraudulent(ctx, fraudulentListLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// CustomerStats агрегаты по всей истории клиента на текущий момент
func (s *TransactionService) CustomerStats(ctx context.Context, customerID string) (*models.CustomerStats, error) {
	const op = "service.CustomerStats"

	history, err := s.txRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats := s.stats.Aggregate(customerID, history)
	return &stats, nil
}

func (s *TransactionService) BehaviorSummary(ctx context.Context, customerID string) (*models.BehaviorSummaryResponse, error) {
	return &models.BehaviorSummaryResponse{
		CustomerID: customerID,
		Summary:    s.behavior.Summary(ctx, customerID),
	}, nil
}
