package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gw-fraud-scoring/internal/models"
)

type MockAuth struct {
	mock.Mock
}

func (m *MockAuth) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoginResponse), args.Error(1)
}

func (m *MockAuth) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JWTClaims), args.Error(1)
}

type MockTransactions struct {
	mock.Mock
}

func (m *MockTransactions) Create(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactions) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactions) ListByCustomer(ctx context.Context, customerID string) ([]models.Transaction, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactions) ListPage(ctx context.Context, page, size int) (*models.TransactionPage, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionPage), args.Error(1)
}

func (m *MockTransactions) ListFraudulent(ctx context.Context) ([]models.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactions) CustomerStats(ctx context.Context, customerID string) (*models.CustomerStats, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CustomerStats), args.Error(1)
}

func (m *MockTransactions) BehaviorSummary(ctx context.Context, customerID string) (*models.BehaviorSummaryResponse, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BehaviorSummaryResponse), args.Error(1)
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

type MockBatches struct {
	mock.Mock
}

func (m *MockBatches) Upload(ctx context.Context, createdBy string, req models.BatchUploadRequest) (*models.BatchJob, error) {
	args := m.Called(ctx, createdBy, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BatchJob), args.Error(1)
}

func (m *MockBatches) Status(ctx context.Context, batchID int64) (*models.BatchJob, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BatchJob), args.Error(1)
}

func (m *MockBatches) History(ctx context.Context, createdBy string) ([]models.BatchJob, error) {
	args := m.Called(ctx, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BatchJob), args.Error(1)
}

func (m *MockBatches) ReplayBatch(ctx context.Context, batchID int64) (*models.BatchReplayResponse, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BatchReplayResponse), args.Error(1)
}

type MockStatistics struct {
	mock.Mock
}

func (m *MockStatistics) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}

func (m *MockStatistics) CustomerAnalytics(ctx context.Context, customerID string) (*models.CustomerAnalytics, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CustomerAnalytics), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
