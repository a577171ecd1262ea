package risk

import (
	"context"
	"log/slog"
	"os"

	"github.com/stretchr/testify/mock"

	"gw-fraud-scoring/internal/models"
)

type MockBehaviorSource struct {
	mock.Mock
}

func (m *MockBehaviorSource) LatestByCustomer(ctx context.Context, customerID string) (*models.BehaviorPattern, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BehaviorPattern), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func f64(v float64) *float64 {
	return &v
}
