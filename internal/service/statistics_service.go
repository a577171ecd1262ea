package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/internal/risk"
	"gw-fraud-scoring/internal/storage/postgres"
)

const topRiskyCustomersLimit = 10

type Statistics interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
	CustomerAnalytics(ctx context.Context, customerID string) (*models.CustomerAnalytics, error)
}

// StatisticsService сводки для дашборда и карточки клиента
type StatisticsService struct {
	stats    postgres.StatisticsRepository
	txRepo   postgres.TransactionRepository
	behavior risk.BehaviorSource
	riskCfg  risk.Config
	log      *slog.Logger
}

func NewStatisticsService(
	stats postgres.StatisticsRepository,
	txRepo postgres.TransactionRepository,
	behavior risk.BehaviorSource,
	riskCfg risk.Config,
	log *slog.Logger,
) *StatisticsService {
	return &StatisticsService{
		stats:    stats,
		txRepo:   txRepo,
		behavior: behavior,
		riskCfg:  riskCfg,
		log:      log,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(part) * 100 / float64(total))
}

func avgAmount(sum decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(count)).Round(2)
}

// Dashboard решения считаются по сохранённой вероятности с текущими порогами,
// транзакции без анализа попадают в approved
func (s *StatisticsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	const op = "service.Dashboard"

	totals, err := s.stats.Totals(ctx, s.riskCfg.BlockProbability, s.riskCfg.ReviewProbability)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	risky, err := s.stats.TopRiskyCustomers(ctx, topRiskyCustomersLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range risky {
		risky[i].FraudRate = percent(risky[i].FraudCount, risky[i].TransactionCount)
		risky[i].AvgRiskScore = round2(risky[i].AvgRiskScore)
	}

	days, err := s.stats.DailyVolume(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	fraudTrend := make([]models.TrendPoint, 0, len(days))
	amountTrend := make([]models.AmountTrendPoint, 0, len(days))
	for _, d := range days {
		fraudTrend = append(fraudTrend, models.TrendPoint{Date: d.Date, Count: d.FraudCount})
		amountTrend = append(amountTrend, models.AmountTrendPoint{Date: d.Date, Amount: d.TotalAmount, Count: d.Count})
	}

	return &models.DashboardStats{
		TotalTransactions:      totals.Total,
		FraudTransactions:      totals.Fraud,
		LegitimateTransactions: totals.Total - totals.Fraud,
		FraudRate:              percent(totals.Fraud, totals.Total),
		TotalAmount:            totals.TotalAmount,
		FraudAmount:            totals.FraudAmount,
		AvgTransactionAmount:   avgAmount(totals.TotalAmount, totals.Total),
		BlockedTransactions:    totals.Blocked,
		ReviewTransactions:     totals.Review,
		ApprovedTransactions:   totals.Total - totals.Blocked - totals.Review,
		TopRiskyCustomers:      risky,
		FraudTrend:             fraudTrend,
		AmountTrend:            amountTrend,
	}, nil
}

// CustomerAnalytics даты берутся в поясе, в котором клиент прислал транзакцию
func (s *StatisticsService) CustomerAnalytics(ctx context.Context, customerID string) (*models.CustomerAnalytics, error) {
	const op = "service.CustomerAnalytics"

	history, err := s.txRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pattern, err := s.behavior.LatestByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%s: behavior: %w", op, err)
	}

	out := &models.CustomerAnalytics{
		CustomerID:          customerID,
		TotalTransactions:   len(history),
		TotalAmount:         decimal.Zero,
		TransactionTimeline: make([]models.TimelineEntry, 0, len(history)),
		AmountTimeline:      make([]models.AmountTimelinePoint, 0),
	}

	if pattern != nil {
		out.DeviceChanges = pattern.UniquePhoneModels30d
		out.OsVersionChanges = pattern.UniqueOsVersions30d
		out.LoginsLast7Days = pattern.LoginsLast7d
		out.LoginsLast30Days = pattern.LoginsLast30d
		out.LoginFrequencyChange = pattern.LoginFreqChangeRatio
	}

	ordered := make([]models.Transaction, len(history))
	copy(ordered, history)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Timestamp.Equal(ordered[j].Timestamp) {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	byDay := make(map[string]int)
	for _, tx := range ordered {
		fraud := tx.IsKnownFraud()
		if fraud {
			out.FraudTransactions++
		}
		out.TotalAmount = out.TotalAmount.Add(tx.Amount)

		var score float64
		if tx.FraudProbability != nil {
			score = round2(*tx.FraudProbability * 100)
		}
		out.TransactionTimeline = append(out.TransactionTimeline, models.TimelineEntry{
			TransactionID: tx.ID,
			Date:          tx.Timestamp.Format("2006-01-02 15:04:05"),
			Amount:        tx.Amount,
			IsFraud:       fraud,
			RecipientID:   tx.RecipientID,
			RiskScore:     score,
		})

		day := tx.Timestamp.Format("2006-01-02")
		idx, ok := byDay[day]
		if !ok {
			idx = len(out.AmountTimeline)
			byDay[day] = idx
			out.AmountTimeline = append(out.AmountTimeline, models.AmountTimelinePoint{Date: day, Amount: decimal.Zero})
		}
		point := &out.AmountTimeline[idx]
		point.Amount = point.Amount.Add(tx.Amount)
		point.IsFraud = point.IsFraud || fraud
		point.TransactionCount++
	}

	// дни разных поясов могут идти не по порядку
	sort.SliceStable(out.AmountTimeline, func(i, j int) bool {
		return out.AmountTimeline[i].Date < out.AmountTimeline[j].Date
	})

	out.AvgAmount = avgAmount(out.TotalAmount, int64(len(history)))

	s.log.Debug("аналитика клиента собрана",
		slog.String("op", op),
		slog.String("customer_id", customerID),
		slog.Int("transactions", len(history)),
		slog.Bool("has_behavior", pattern != nil))

	return out, nil
}
