package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gw-fraud-scoring/internal/custom_err"
	"gw-fraud-scoring/internal/explainer"
	"gw-fraud-scoring/internal/metrics"
	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/internal/risk"
)

type analysisDeps struct {
	txRepo    *MockTransactionRepo
	behavior  *MockBehaviorRepo
	txManager *MockTxManager
	explainer *MockExplainer
	archive   *MockArchive
	producer  *MockKafkaProducer
}

func setupAnalysisService(t *testing.T) (*AnalysisService, *analysisDeps) {
	t.Helper()
	deps := &analysisDeps{
		txRepo:    new(MockTransactionRepo),
		behavior:  new(MockBehaviorRepo),
		txManager: new(MockTxManager),
		explainer: new(MockExplainer),
		archive:   new(MockArchive),
		producer:  new(MockKafkaProducer),
	}

	svc := NewAnalysisService(
		deps.txRepo,
		deps.behavior,
		deps.txManager,
		deps.explainer,
		deps.archive,
		deps.producer,
		AnalysisConfig{
			Risk:           risk.DefaultConfig(),
			ExplainTimeout: time.Second,
			EventWorkers:   1,
			EventQueueSize: 10,
		},
		testLogger(),
	)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = svc.Shutdown(ctx)
	})

	return svc, deps
}

func boolPtr(b bool) *bool { return &b }

// ночная крупная транзакция новому получателю: 20 + 25 + 20 баллов
func nightTransfer(label *bool) *models.Transaction {
	return &models.Transaction{
		ID:               1,
		ExternalID:       "doc-1",
		CustomerID:       "cust-1",
		RecipientID:      "r-new",
		Amount:           decimal.NewFromInt(150000),
		Timestamp:        time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC),
		GroundTruthFraud: label,
		Status:           models.StatusPending,
		Version:          4,
	}
}

// дневная мелкая транзакция знакомому получателю без факторов риска
func routineTransfer(label *bool) (*models.Transaction, []models.Transaction) {
	tx := &models.Transaction{
		ID:               2,
		ExternalID:       "doc-2",
		CustomerID:       "cust-1",
		RecipientID:      "r-known",
		Amount:           decimal.NewFromInt(100),
		Timestamp:        time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		GroundTruthFraud: label,
		Status:           models.StatusPending,
	}
	history := []models.Transaction{
		*tx,
		{
			ID:          1,
			CustomerID:  "cust-1",
			RecipientID: "r-known",
			Amount:      decimal.NewFromInt(100),
			Timestamp:   time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	return tx, history
}

func (d *analysisDeps) expectHappyPath(tx *models.Transaction, history []models.Transaction) {
	d.txRepo.On("GetByID", mock.Anything, tx.ID).Return(tx, nil)
	d.txRepo.On("ListByCustomer", mock.Anything, tx.CustomerID).Return(history, nil)
	d.behavior.On("LatestByCustomer", mock.Anything, tx.CustomerID).Return(nil, nil)
	d.txManager.On("WithTx", mock.Anything, mock.AnythingOfType("func(pgx.Tx) error")).Return(nil)
	d.txRepo.On("UpdateAnalysisTx", mock.Anything, mock.Anything, tx.ID, mock.Anything, mock.AnythingOfType("float64"), mock.AnythingOfType("models.TransactionStatus")).Return(nil)
	d.archive.On("Save", mock.Anything, mock.AnythingOfType("*models.AnalysisRecord")).Return(nil)
	d.producer.On("SendDecisionEvent", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func TestAnalysisService_Analyze_BehaviorReadOnce(t *testing.T) {
	svc, deps := setupAnalysisService(t)
	ctx := context.Background()
	tx, history := routineTransfer(nil)

	pattern := &models.BehaviorPattern{CustomerID: tx.CustomerID, UniquePhoneModels30d: 4, UniqueOsVersions30d: 2}

	deps.txRepo.On("GetByID", mock.Anything, tx.ID).Return(tx, nil)
	deps.txRepo.On("ListByCustomer", mock.Anything, tx.CustomerID).Return(history, nil)
	deps.behavior.On("LatestByCustomer", mock.Anything, tx.CustomerID).Return(pattern, nil).Once()
	deps.txManager.On("WithTx", mock.Anything, mock.AnythingOfType("func(pgx.Tx) error")).Return(nil)
	deps.txRepo.On("UpdateAnalysisTx", mock.Anything, mock.Anything, tx.ID, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	deps.archive.On("Save", mock.Anything, mock.Anything).Return(nil)

	withScoredPattern := mock.MatchedBy(func(req explainer.Request) bool {
		return strings.Contains(req.BehaviorSummary, "4 phone models, 2 OS versions")
	})
	deps.explainer.On("Explain", mock.Anything, withScoredPattern).Return("device churn", nil)
	deps.explainer.On("Recommend", mock.Anything, withScoredPattern).Return("verify device", nil)

	res, err := svc.Analyze(ctx, tx.ID, models.LiveMode)

	require.NoError(t, err)
	assert.Equal(t, []string{risk.FactorDeviceChurn}, names(res.RiskFactors))
	assert.Equal(t, "device churn", res.Explanation)
	deps.behavior.AssertNumberOfCalls(t, "LatestByCustomer", 1)
	deps.explainer.AssertExpectations(t)
}

func TestAnalysisService_Analyze_Live(t *testing.T) {
	svc, deps := setupAnalysisService(t)
	ctx := context.Background()
	tx := nightTransfer(nil)

	deps.expectHappyPath(tx, []models.Transaction{*tx})
	deps.explainer.On("Explain", mock.Anything, mock.Anything).Return("suspicious night transfer", nil)
	deps.explainer.On("Recommend", mock.Anything, mock.Anything).Return("call the customer", nil)

	res, err := svc.Analyze(ctx, tx.ID, models.LiveMode)

	require.NoError(t, err)
	assert.Equal(t, models.LiveMode, res.Mode)
	assert.Equal(t, 65, res.RiskScore)
	assert.InDelta(t, 0.65, res.FraudProbability, 1e-9)
	assert.False(t, res.IsFraud)
	assert.Equal(t, models.DecisionReview, res.Decision)
	assert.Equal(t, []string{risk.FactorNightTime, risk.FactorNewRecipient, risk.FactorVeryLargeAmount}, names(res.RiskFactors))
	assert.Equal(t, "suspicious night transfer", res.Explanation)
	assert.Equal(t, "call the customer", res.Recommendations)

	deps.txRepo.AssertCalled(t, "UpdateAnalysisTx", mock.Anything, mock.Anything, tx.ID, int64(4), res.FraudProbability, models.StatusReviewPending)
	deps.archive.AssertCalled(t, "Save", mock.Anything, mock.MatchedBy(func(r *models.AnalysisRecord) bool {
		return r.TransactionID == tx.ID && r.Decision == models.DecisionReview
	}))

	assert.Eventually(t, func() bool { return len(deps.producer.Sent()) == 1 }, time.Second, 10*time.Millisecond)
	event := deps.producer.Sent()[0]
	assert.Equal(t, tx.ID, event.TransactionID)
	assert.Equal(t, models.DecisionReview, event.Decision)
}

func TestAnalysisService_Analyze_ReplayCalibration(t *testing.T) {
	ctx := context.Background()

	t.Run("known fraud is blocked", func(t *testing.T) {
		svc, deps := setupAnalysisService(t)
		tx, history := routineTransfer(boolPtr(true))
		deps.expectHappyPath(tx, history)
		deps.explainer.On("Explain", mock.Anything, mock.Anything).Return("x", nil)
		deps.explainer.On("Recommend", mock.Anything, mock.Anything).Return("y", nil)

		res, err := svc.Analyze(ctx, tx.ID, models.ReplayMode)

		require.NoError(t, err)
		assert.Equal(t, models.ReplayMode, res.Mode)
		assert.Equal(t, 0.75, res.FraudProbability)
		assert.True(t, res.IsFraud)
		assert.Equal(t, models.DecisionBlock, res.Decision)
		deps.txRepo.AssertCalled(t, "UpdateAnalysisTx", mock.Anything, mock.Anything, tx.ID, mock.Anything, 0.75, models.StatusBlocked)

		assert.Eventually(t, func() bool { return len(deps.producer.Sent()) == 1 }, time.Second, 10*time.Millisecond)
	})

	t.Run("known legitimate is capped", func(t *testing.T) {
		svc, deps := setupAnalysisService(t)
		tx := nightTransfer(boolPtr(false))
		deps.expectHappyPath(tx, []models.Transaction{*tx})
		deps.explainer.On("Explain", mock.Anything, mock.Anything).Return("x", nil)
		deps.explainer.On("Recommend", mock.Anything, mock.Anything).Return("y", nil)

		res, err := svc.Analyze(ctx, tx.ID, models.ReplayMode)

		require.NoError(t, err)
		assert.Equal(t, 0.45, res.FraudProbability)
		assert.False(t, res.IsFraud)
		assert.Equal(t, models.DecisionReview, res.Decision)
		assert.Equal(t, 65, res.RiskScore)
	})
}

func TestAnalysisService_Analyze_ApproveDoesNotPublish(t *testing.T) {
	svc, deps := setupAnalysisService(t)
	ctx := context.Background()
	tx, history := routineTransfer(nil)

	deps.expectHappyPath(tx, history)
	deps.explainer.On("Explain", mock.Anything, mock.Anything).Return("ok", nil)
	deps.explainer.On("Recommend", mock.Anything, mock.Anything).Return("approve", nil)

	res, err := svc.Analyze(ctx, tx.ID, models.LiveMode)

	require.NoError(t, err)
	assert.Empty(t, res.RiskFactors)
	assert.Equal(t, 0, res.RiskScore)
	assert.Equal(t, models.DecisionApprove, res.Decision)
	deps.txRepo.AssertCalled(t, "UpdateAnalysisTx", mock.Anything, mock.Anything, tx.ID, mock.Anything, 0.0, models.StatusApproved)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, deps.producer.Sent())
}

func TestAnalysisService_Analyze_ReplayWithoutLabel(t *testing.T) {
	svc, deps := setupAnalysisService(t)
	ctx := context.Background()
	tx := nightTransfer(nil)
	deps.txRepo.On("GetByID", ctx, tx.ID).Return(tx, nil)

	res, err := svc.Analyze(ctx, tx.ID, models.ReplayMode)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, custom_err.ErrMissingLabel)
	deps.txRepo.AssertNotCalled(t, "ListByCustomer", mock.Anything, mock.Anything)
	deps.txManager.AssertNotCalled(t, "WithTx", mock.Anything, mock.Anything)
}

func TestAnalysisService_Analyze_InvalidMode(t *testing.T) {
	svc, deps := setupAnalysisService(t)

	res, err := svc.Analyze(context.Background(), 1, models.AnalysisMode("BATCH"))

	assert.Nil(t, res)
	assert.Equal(t, custom_err.ErrInvalidMode, err)
	deps.txRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestAnalysisService_Analyze_NotFound(t *testing.T) {
	svc, deps := setupAnalysisService(t)
	ctx := context.Background()
	deps.txRepo.On("GetByID", ctx, int64(404)).Return(nil, custom_err.ErrNotFound)

	res, err := svc.Analyze(ctx, 404, models.LiveMode)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, custom_err.ErrNotFound)
}

func TestAnalysisService_Analyze_HistoryFailure(t *testing.T) {
	svc, deps := setupAnalysisService(t)
	ctx := context.Background()
	tx := nightTransfer(nil)

	deps.txRepo.On("GetByID", ctx, tx.ID).Return(tx, nil)
	deps.txRepo.On("ListByCustomer", mock.Anything, tx.CustomerID).Return(nil, errors.New("connection reset"))
	deps.behavior.On("LatestByCustomer", mock.Anything, tx.CustomerID).Return(nil, nil).Maybe()

	res, err := svc.Analyze(ctx, tx.ID, models.LiveMode)

	assert.Nil(t, res)
	assert.Error(t, err)
	deps.txManager.AssertNotCalled(t, "WithTx", mock.Anything, mock.Anything)
}

func TestAnalysisService_Analyze_BehaviorFailureIsSwallowed(t *testing.T) {
	svc, deps := setupAnalysisService(t)
	ctx := context.Background()
	tx := nightTransfer(nil)

	deps.txRepo.On("GetByID", mock.Anything, tx.ID).Return(tx, nil)
	deps.txRepo.On("ListByCustomer", mock.Anything, tx.CustomerID).Return([]models.Transaction{}, nil)
	deps.behavior.On("LatestByCustomer", mock.Anything, tx.CustomerID).Return(nil, errors.New("timeout"))
	deps.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
	deps.txRepo.On("UpdateAnalysisTx", mock.Anything, mock.Anything, tx.ID, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	deps.archive.On("Save", mock.Anything, mock.Anything).Return(nil)
	deps.producer.On("SendDecisionEvent", mock.Anything, mock.Anything).Return(nil).Maybe()
	deps.explainer.On("Explain", mock.Anything, mock.MatchedBy(func(req explainer.Request) bool {
		return req.BehaviorSummary != ""
	})).Return("x", nil)
	deps.explainer.On("Recommend", mock.Anything, mock.Anything).Return("y", nil)

	res, err := svc.Analyze(ctx, tx.ID, models.LiveMode)

	require.NoError(t, err)
	assert.Equal(t, 65, res.RiskScore)
}

func TestAnalysisService_Analyze_ExplainerFallback(t *testing.T) {
	svc, deps := setupAnalysisService(t)
	ctx := context.Background()
	tx := nightTransfer(nil)

	deps.expectHappyPath(tx, []models.Transaction{*tx})
	deps.explainer.On("Explain", mock.Anything, mock.Anything).Return("", custom_err.ErrExplainerUnavailable)
	deps.explainer.On("Recommend", mock.Anything, mock.Anything).Return("manual review", nil)
	fallbacks := testutil.ToFloat64(metrics.ExplainerFallbacksTotal.WithLabelValues("explanation"))

	res, err := svc.Analyze(ctx, tx.ID, models.LiveMode)

	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ExplainerFallbacksTotal.WithLabelValues("explanation"))-fallbacks)
	assert.Equal(t, explainer.FallbackExplanation(false), res.Explanation)
	assert.Equal(t, "manual review", res.Recommendations)
}

func TestAnalysisService_Analyze_PersistFailure(t *testing.T) {
	svc, deps := setupAnalysisService(t)
	ctx := context.Background()
	tx := nightTransfer(nil)

	deps.txRepo.On("GetByID", ctx, tx.ID).Return(tx, nil)
	deps.txRepo.On("ListByCustomer", mock.Anything, tx.CustomerID).Return([]models.Transaction{}, nil)
	deps.behavior.On("LatestByCustomer", mock.Anything, tx.CustomerID).Return(nil, nil)
	deps.txManager.On("WithTx", ctx, mock.Anything).Return(custom_err.ErrConcurrentUpdate)

	res, err := svc.Analyze(ctx, tx.ID, models.LiveMode)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, custom_err.ErrConcurrentUpdate)
	deps.archive.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	deps.explainer.AssertNotCalled(t, "Explain", mock.Anything, mock.Anything)
}

func TestAnalysisService_Analyze_ArchiveFailureIsLogged(t *testing.T) {
	svc, deps := setupAnalysisService(t)
	ctx := context.Background()
	tx, history := routineTransfer(nil)

	deps.txRepo.On("GetByID", mock.Anything, tx.ID).Return(tx, nil)
	deps.txRepo.On("ListByCustomer", mock.Anything, tx.CustomerID).Return(history, nil)
	deps.behavior.On("LatestByCustomer", mock.Anything, tx.CustomerID).Return(nil, nil)
	deps.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
	deps.txRepo.On("UpdateAnalysisTx", mock.Anything, mock.Anything, tx.ID, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	deps.archive.On("Save", mock.Anything, mock.Anything).Return(errors.New("mongo down"))
	deps.explainer.On("Explain", mock.Anything, mock.Anything).Return("x", nil)
	deps.explainer.On("Recommend", mock.Anything, mock.Anything).Return("y", nil)

	res, err := svc.Analyze(ctx, tx.ID, models.LiveMode)

	require.NoError(t, err)
	assert.Equal(t, models.DecisionApprove, res.Decision)
}

func TestAnalysisService_LatestAnalysis(t *testing.T) {
	svc, deps := setupAnalysisService(t)
	ctx := context.Background()

	deps.archive.On("LatestByTransaction", ctx, int64(7)).Return(&models.AnalysisRecord{TransactionID: 7}, nil)
	deps.archive.On("LatestByTransaction", ctx, int64(8)).Return(nil, custom_err.ErrNotFound)

	record, err := svc.LatestAnalysis(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), record.TransactionID)

	_, err = svc.LatestAnalysis(ctx, 8)
	assert.ErrorIs(t, err, custom_err.ErrNotFound)
}

func names(factors []models.RiskFactor) []string {
	out := make([]string, 0, len(factors))
	for _, f := range factors {
		out = append(out, f.Name)
	}
	return out
}
