package risk

import (
	"math"
	"time"

	"gw-fraud-scoring/internal/models"
)

// Scorer суммирует факторы транзакционных и поведенческих правил
// в балл, вероятность и предварительное решение
type Scorer struct {
	cfg   Config
	rules []Rule
	now   func() time.Time
}

func NewScorer(cfg Config, now func() time.Time) *Scorer {
	if now == nil {
		now = time.Now
	}
	return &Scorer{cfg: cfg, rules: DefaultRules(), now: now}
}

// WithRules подменяет набор правил, конфиг остаётся прежним
func (s *Scorer) WithRules(rules []Rule) *Scorer {
	return &Scorer{cfg: s.cfg, rules: rules, now: s.now}
}

func (s *Scorer) Score(in Input, behavior []models.RiskFactor) *models.AnalysisResult {
	factors := make([]models.RiskFactor, 0, len(s.rules)+len(behavior))
	for _, rule := range s.rules {
		if f, ok := rule.Check(in, s.cfg); ok {
			factors = append(factors, f)
		}
	}
	factors = append(factors, behavior...)

	total := 0
	for _, f := range factors {
		total += f.Score
	}

	probability := Probability(total)

	return &models.AnalysisResult{
		TransactionID:    in.Transaction.ID,
		CustomerID:       in.Transaction.CustomerID,
		FraudProbability: probability,
		IsFraud:          probability >= s.cfg.FraudProbability,
		Decision:         s.Decide(probability, total),
		RiskScore:        total,
		RiskFactors:      factors,
		Mode:             models.LiveMode,
		AnalyzedAt:       s.now(),
	}
}

// Probability нормирует сырой балл в [0, 1]
func Probability(score int) float64 {
	if score <= 0 {
		return 0
	}
	return math.Min(float64(score)/100.0, 1.0)
}

// Decide учитывает и ограниченную вероятность, и неограниченный сырой балл
func (s *Scorer) Decide(probability float64, score int) models.Decision {
	switch {
	case probability >= s.cfg.BlockProbability || score >= s.cfg.BlockScore:
		return models.DecisionBlock
	case probability >= s.cfg.ReviewProbability || score >= s.cfg.ReviewScore:
		return models.DecisionReview
	default:
		return models.DecisionApprove
	}
}
