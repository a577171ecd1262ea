package risk

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gw-fraud-scoring/internal/models"
)

func factorNames(factors []models.RiskFactor) []string {
	names := make([]string, 0, len(factors))
	for _, f := range factors {
		names = append(names, f.Name)
	}
	return names
}

func TestEvaluatePattern_Thresholds(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		pattern models.BehaviorPattern
		want    []string
		scores  []int
	}{
		{
			name:    "quiet customer",
			pattern: models.BehaviorPattern{UniqueOsVersions30d: 3, UniquePhoneModels30d: 3},
			want:    []string{},
			scores:  []int{},
		},
		{
			name:    "os churn with one phone",
			pattern: models.BehaviorPattern{UniqueOsVersions30d: 5, UniquePhoneModels30d: 1},
			want:    []string{FactorDeviceChurn},
			scores:  []int{30},
		},
		{
			name:    "phone churn is capped",
			pattern: models.BehaviorPattern{UniqueOsVersions30d: 1, UniquePhoneModels30d: 4},
			want:    []string{FactorDeviceChurn},
			scores:  []int{35},
		},
		{
			name:    "login spike at the limit does not fire",
			pattern: models.BehaviorPattern{LoginFreqChangeRatio: f64(0.5)},
			want:    []string{},
			scores:  []int{},
		},
		{
			name: "all signals",
			pattern: models.BehaviorPattern{
				UniqueOsVersions30d:  4,
				UniquePhoneModels30d: 2,
				LoginFreqChangeRatio: f64(0.75),
				BurstinessScore:      f64(0.31),
				IntervalZscore:       f64(-2.5),
			},
			want:   []string{FactorDeviceChurn, FactorLoginSpike, FactorBurstiness, FactorIntervalAnomaly},
			scores: []int{35, 20, 15, 15},
		},
		{
			name:    "z-score at the limit does not fire",
			pattern: models.BehaviorPattern{IntervalZscore: f64(2.0)},
			want:    []string{},
			scores:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factors := EvaluatePattern(&tt.pattern, cfg)

			assert.Equal(t, tt.want, factorNames(factors))
			for i, f := range factors {
				assert.Equal(t, tt.scores[i], f.Score)
				assert.InDelta(t, float64(tt.scores[i])/100, f.Weight, 1e-9)
			}
		})
	}
}

func TestEvaluatePattern_DescriptionsCarryMetrics(t *testing.T) {
	p := &models.BehaviorPattern{
		UniqueOsVersions30d:  6,
		UniquePhoneModels30d: 2,
		LoginFreqChangeRatio: f64(0.8),
		BurstinessScore:      f64(0.45),
		IntervalZscore:       f64(3.25),
	}

	factors := EvaluatePattern(p, DefaultConfig())
	require.Len(t, factors, 4)

	assert.Contains(t, factors[0].Description, "2 different phone models and 6 OS versions")
	assert.Contains(t, factors[1].Description, "80%")
	assert.Contains(t, factors[2].Description, "0.45")
	assert.Contains(t, factors[3].Description, "3.25")
}

func TestBehaviorAnalyzer_Analyze_NoPattern(t *testing.T) {
	source := new(MockBehaviorSource)
	ctx := context.Background()
	source.On("LatestByCustomer", ctx, "cust-1").Return(nil, nil)

	analyzer := NewBehaviorAnalyzer(source, DefaultConfig(), testLogger())

	pattern, factors, err := analyzer.Analyze(ctx, "cust-1", time.Now())

	assert.NoError(t, err)
	assert.Nil(t, pattern)
	assert.NotNil(t, factors)
	assert.Empty(t, factors)
	source.AssertExpectations(t)
}

func TestBehaviorAnalyzer_Analyze_LookupError(t *testing.T) {
	source := new(MockBehaviorSource)
	ctx := context.Background()
	source.On("LatestByCustomer", ctx, "cust-1").Return(nil, errors.New("connection refused"))

	analyzer := NewBehaviorAnalyzer(source, DefaultConfig(), testLogger())

	pattern, factors, err := analyzer.Analyze(ctx, "cust-1", time.Now())

	assert.Error(t, err)
	assert.Nil(t, pattern)
	assert.Nil(t, factors)
}

func TestBehaviorAnalyzer_Analyze_UsesLatestPattern(t *testing.T) {
	source := new(MockBehaviorSource)
	ctx := context.Background()
	source.On("LatestByCustomer", ctx, "cust-1").Return(&models.BehaviorPattern{
		CustomerID:      "cust-1",
		BurstinessScore: f64(0.9),
	}, nil)

	analyzer := NewBehaviorAnalyzer(source, DefaultConfig(), testLogger())

	pattern, factors, err := analyzer.Analyze(ctx, "cust-1", time.Now())

	require.NoError(t, err)
	require.NotNil(t, pattern)
	assert.Equal(t, "cust-1", pattern.CustomerID)
	assert.Equal(t, []string{FactorBurstiness}, factorNames(factors))
}

func TestBehaviorAnalyzer_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("no data", func(t *testing.T) {
		source := new(MockBehaviorSource)
		source.On("LatestByCustomer", ctx, "cust-1").Return(nil, nil)
		analyzer := NewBehaviorAnalyzer(source, DefaultConfig(), testLogger())

		assert.Equal(t, noBehaviorDataSummary, analyzer.Summary(ctx, "cust-1"))
	})

	t.Run("lookup failure renders no data", func(t *testing.T) {
		source := new(MockBehaviorSource)
		source.On("LatestByCustomer", ctx, "cust-1").Return(nil, errors.New("timeout"))
		analyzer := NewBehaviorAnalyzer(source, DefaultConfig(), testLogger())

		assert.Equal(t, noBehaviorDataSummary, analyzer.Summary(ctx, "cust-1"))
	})

	t.Run("missing ratios are zero-filled", func(t *testing.T) {
		source := new(MockBehaviorSource)
		source.On("LatestByCustomer", ctx, "cust-1").Return(&models.BehaviorPattern{
			UniquePhoneModels30d: 2,
			UniqueOsVersions30d:  1,
			LoginsLast7d:         12,
			LoginsLast30d:        40,
		}, nil)
		analyzer := NewBehaviorAnalyzer(source, DefaultConfig(), testLogger())

		summary := analyzer.Summary(ctx, "cust-1")

		assert.Contains(t, summary, "2 phone models, 1 OS versions")
		assert.Contains(t, summary, "12 logins in 7 days, 40 in 30 days")
		assert.Contains(t, summary, "Login frequency change: 0%")
		assert.Contains(t, summary, "Burstiness score: 0.00")
		assert.Contains(t, summary, "Interval z-score: 0.00")
	})
}
