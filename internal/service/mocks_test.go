package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"gw-fraud-scoring/internal/explainer"
	"gw-fraud-scoring/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Transaction, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) ListIDsByBatch(ctx context.Context, batchID int64) ([]int64, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockTransactionRepo) ListPage(ctx context.Context, limit, offset int) ([]models.Transaction, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) ListFraudulent(ctx context.Context, limit int) ([]models.Transaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) UpdateAnalysisTx(ctx context.Context, tx pgx.Tx, id, version int64, probability float64, status models.TransactionStatus) error {
	args := m.Called(ctx, tx, id, version, probability, status)
	return args.Error(0)
}

type MockBehaviorRepo struct {
	mock.Mock
}

func (m *MockBehaviorRepo) LatestByCustomer(ctx context.Context, customerID string) (*models.BehaviorPattern, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BehaviorPattern), args.Error(1)
}

type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(nil)
}

type MockExplainer struct {
	mock.Mock
}

func (m *MockExplainer) Explain(ctx context.Context, req explainer.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockExplainer) Recommend(ctx context.Context, req explainer.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type MockArchive struct {
	mock.Mock
}

func (m *MockArchive) Save(ctx context.Context, record *models.AnalysisRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockArchive) LatestByTransaction(ctx context.Context, transactionID int64) (*models.AnalysisRecord, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalysisRecord), args.Error(1)
}

func (m *MockArchive) Close() error {
	return m.Called().Error(0)
}

type MockKafkaProducer struct {
	mock.Mock
	mu     sync.Mutex
	events []models.DecisionEvent
}

func (m *MockKafkaProducer) SendDecisionEvent(ctx context.Context, event models.DecisionEvent) error {
	m.mu.Lock()
	m.events = append(m.events, event)
	m.mu.Unlock()
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockKafkaProducer) Close() error {
	return m.Called().Error(0)
}

func (m *MockKafkaProducer) Sent() []models.DecisionEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.DecisionEvent(nil), m.events...)
}

type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, transactionID int64, mode models.AnalysisMode) (*models.AnalysisResult, error) {
	args := m.Called(ctx, transactionID, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalysisResult), args.Error(1)
}

func (m *MockAnalyzer) LatestAnalysis(ctx context.Context, transactionID int64) (*models.AnalysisRecord, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalysisRecord), args.Error(1)
}

type MockStatisticsRepo struct {
	mock.Mock
}

func (m *MockStatisticsRepo) Totals(ctx context.Context, blockProbability, reviewProbability float64) (*models.DashboardTotals, error) {
	args := m.Called(ctx, blockProbability, reviewProbability)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardTotals), args.Error(1)
}

func (m *MockStatisticsRepo) TopRiskyCustomers(ctx context.Context, limit int) ([]models.RiskyCustomer, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RiskyCustomer), args.Error(1)
}

func (m *MockStatisticsRepo) DailyVolume(ctx context.Context) ([]models.DailyVolume, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyVolume), args.Error(1)
}

type MockBatchJobRepo struct {
	mock.Mock
}

func (m *MockBatchJobRepo) Create(ctx context.Context, job *models.BatchJob) (*models.BatchJob, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BatchJob), args.Error(1)
}

func (m *MockBatchJobRepo) GetByID(ctx context.Context, id int64) (*models.BatchJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BatchJob), args.Error(1)
}

func (m *MockBatchJobRepo) Finish(ctx context.Context, job *models.BatchJob) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockBatchJobRepo) ListByCreator(ctx context.Context, createdBy string, limit int) ([]models.BatchJob, error) {
	args := m.Called(ctx, createdBy, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BatchJob), args.Error(1)
}
