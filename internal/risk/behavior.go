package risk

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"gw-fraud-scoring/internal/models"
)

type BehaviorSource interface {
	// LatestByCustomer возвращает nil, nil если у клиента нет записей
	LatestByCustomer(ctx context.Context, customerID string) (*models.BehaviorPattern, error)
}

const (
	FactorDeviceChurn     = "Frequent device changes"
	FactorLoginSpike      = "Login frequency spike"
	FactorBurstiness      = "Bursty activity"
	FactorIntervalAnomaly = "Anomalous login intervals"
)

const noBehaviorDataSummary = "No behavioral data for customer"

type behaviorRule struct {
	name  string
	check func(p *models.BehaviorPattern, cfg Config) (models.RiskFactor, bool)
}

// behaviorRules проверяются независимо, в этом порядке
var behaviorRules = []behaviorRule{
	{name: FactorDeviceChurn, check: deviceChurn},
	{name: FactorLoginSpike, check: loginSpike},
	{name: FactorBurstiness, check: burstiness},
	{name: FactorIntervalAnomaly, check: intervalAnomaly},
}

type BehaviorAnalyzer struct {
	source BehaviorSource
	cfg    Config
	log    *slog.Logger
}

func NewBehaviorAnalyzer(source BehaviorSource, cfg Config, log *slog.Logger) *BehaviorAnalyzer {
	return &BehaviorAnalyzer{source: source, cfg: cfg, log: log}
}

// Analyze возвращает последний снимок поведения клиента и его факторы риска.
// Если снимка нет, возвращается nil и пустой список факторов без ошибки.
func (a *BehaviorAnalyzer) Analyze(ctx context.Context, customerID string, date time.Time) (*models.BehaviorPattern, []models.RiskFactor, error) {
	const op = "risk.BehaviorAnalyzer.Analyze"

	pattern, err := a.source.LatestByCustomer(ctx, customerID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	if pattern == nil {
		a.log.Debug("нет поведенческих данных",
			slog.String("customer_id", customerID),
			slog.Time("date", date))
		return nil, []models.RiskFactor{}, nil
	}

	return pattern, EvaluatePattern(pattern, a.cfg), nil
}

// EvaluatePattern применяет поведенческие правила к одному снимку
func EvaluatePattern(p *models.BehaviorPattern, cfg Config) []models.RiskFactor {
	factors := make([]models.RiskFactor, 0, len(behaviorRules))
	for _, rule := range behaviorRules {
		if f, ok := rule.check(p, cfg); ok {
			factors = append(factors, f)
		}
	}
	return factors
}

// Summary текстовая сводка последнего снимка для сервиса объяснений
func (a *BehaviorAnalyzer) Summary(ctx context.Context, customerID string) string {
	pattern, err := a.source.LatestByCustomer(ctx, customerID)
	if err != nil {
		a.log.Warn("не удалось получить сводку поведения",
			slog.String("customer_id", customerID),
			slog.String("error", err.Error()))
		return noBehaviorDataSummary
	}
	return SummarizePattern(pattern)
}

// SummarizePattern рендерит снимок, nil даёт сводку "нет данных"
func SummarizePattern(p *models.BehaviorPattern) string {
	if p == nil {
		return noBehaviorDataSummary
	}

	var b strings.Builder
	b.WriteString("Customer behavioral data:\n")
	fmt.Fprintf(&b, "- Devices in 30 days: %d phone models, %d OS versions\n",
		p.UniquePhoneModels30d, p.UniqueOsVersions30d)
	fmt.Fprintf(&b, "- Activity: %d logins in 7 days, %d in 30 days\n",
		p.LoginsLast7d, p.LoginsLast30d)
	fmt.Fprintf(&b, "- Login frequency change: %.0f%%\n", models.ValueOrZero(p.LoginFreqChangeRatio)*100)
	fmt.Fprintf(&b, "- Burstiness score: %.2f\n", models.ValueOrZero(p.BurstinessScore))
	fmt.Fprintf(&b, "- Interval z-score: %.2f\n", models.ValueOrZero(p.IntervalZscore))
	return b.String()
}

func deviceChurn(p *models.BehaviorPattern, cfg Config) (models.RiskFactor, bool) {
	if p.UniqueOsVersions30d <= cfg.MaxDevices30d && p.UniquePhoneModels30d <= cfg.MaxDevices30d {
		return models.RiskFactor{}, false
	}
	score := min(cfg.DeviceBaseScore+cfg.DevicePerModelScore*p.UniquePhoneModels30d, cfg.DeviceMaxScore)
	return models.NewRiskFactor(FactorDeviceChurn,
		fmt.Sprintf("%d different phone models and %d OS versions used in 30 days",
			p.UniquePhoneModels30d, p.UniqueOsVersions30d),
		score), true
}

func loginSpike(p *models.BehaviorPattern, cfg Config) (models.RiskFactor, bool) {
	if p.LoginFreqChangeRatio == nil || *p.LoginFreqChangeRatio <= cfg.LoginFreqChangeLimit {
		return models.RiskFactor{}, false
	}
	return models.NewRiskFactor(FactorLoginSpike,
		fmt.Sprintf("Login frequency grew by %.0f%% over the last 7 days", *p.LoginFreqChangeRatio*100),
		cfg.LoginSpikeScore), true
}

func burstiness(p *models.BehaviorPattern, cfg Config) (models.RiskFactor, bool) {
	if p.BurstinessScore == nil || *p.BurstinessScore <= cfg.BurstinessLimit {
		return models.RiskFactor{}, false
	}
	return models.NewRiskFactor(FactorBurstiness,
		fmt.Sprintf("Bursty login activity detected (score: %.2f)", *p.BurstinessScore),
		cfg.BurstinessScore), true
}

func intervalAnomaly(p *models.BehaviorPattern, cfg Config) (models.RiskFactor, bool) {
	if p.IntervalZscore == nil || math.Abs(*p.IntervalZscore) <= cfg.IntervalZscoreLimit {
		return models.RiskFactor{}, false
	}
	return models.NewRiskFactor(FactorIntervalAnomaly,
		fmt.Sprintf("Intervals between sessions deviate from the norm (z-score: %.2f)", *p.IntervalZscore),
		cfg.IntervalScore), true
}
