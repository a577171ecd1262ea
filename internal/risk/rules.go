package risk

import (
	"fmt"
	"math"

	"gw-fraud-scoring/internal/models"
)

const (
	FactorAbnormalAmount  = "Abnormal amount"
	FactorNightTime       = "Night-time transaction"
	FactorNewRecipient    = "New recipient"
	FactorHighFrequency   = "High transaction frequency"
	FactorUnusual24h      = "Unusual 24h activity"
	FactorVeryLargeAmount = "Very large amount"
)

// Input всё, что может учитывать правило по транзакции
type Input struct {
	Transaction  *models.Transaction
	Stats        models.CustomerStats
	NewRecipient bool
}

// Rule превращает один предикат над Input не более чем в один фактор риска
type Rule struct {
	Name  string
	Check func(in Input, cfg Config) (models.RiskFactor, bool)
}

// DefaultRules набор правил в порядке вывода факторов
func DefaultRules() []Rule {
	return []Rule{
		{Name: FactorAbnormalAmount, Check: abnormalAmount},
		{Name: FactorNightTime, Check: nightTime},
		{Name: FactorNewRecipient, Check: newRecipient},
		{Name: "Frequency", Check: frequency},
		{Name: FactorVeryLargeAmount, Check: veryLargeAmount},
	}
}

func abnormalAmount(in Input, cfg Config) (models.RiskFactor, bool) {
	if in.Stats.TotalTransactions == 0 || in.Stats.AvgAmount.IsZero() {
		return models.RiskFactor{}, false
	}

	ratio, _ := in.Transaction.Amount.DivRound(in.Stats.AvgAmount, 2).Float64()
	if ratio < cfg.AmountMultiplier {
		return models.RiskFactor{}, false
	}

	raw := float64(cfg.AmountBaseScore) + (ratio-cfg.AmountMultiplier)*cfg.AmountStepScore
	score := int(math.Min(raw, float64(cfg.AmountMaxScore)))

	return models.NewRiskFactor(FactorAbnormalAmount,
		fmt.Sprintf("Amount %s is %.1f times the average (%s)",
			in.Transaction.Amount.StringFixed(2), ratio, in.Stats.AvgAmount.StringFixed(2)),
		score), true
}

func nightTime(in Input, cfg Config) (models.RiskFactor, bool) {
	hour := in.Transaction.Timestamp.Hour()
	if hour < cfg.NightStartHour || hour >= cfg.NightEndHour {
		return models.RiskFactor{}, false
	}
	return models.NewRiskFactor(FactorNightTime,
		fmt.Sprintf("Transaction made at %02d:00 (night time)", hour),
		cfg.NightScore), true
}

func newRecipient(in Input, cfg Config) (models.RiskFactor, bool) {
	if !in.NewRecipient {
		return models.RiskFactor{}, false
	}
	return models.NewRiskFactor(FactorNewRecipient,
		"Customer has never transferred funds to this recipient before",
		cfg.NewRecipientScore), true
}

// frequency даёт не больше одного фактора, часовая проверка важнее суточной
func frequency(in Input, cfg Config) (models.RiskFactor, bool) {
	if in.Stats.Count1h > cfg.MaxTransactionsPerHour {
		return models.NewRiskFactor(FactorHighFrequency,
			fmt.Sprintf("%d transactions in the last hour (usually up to %d)",
				in.Stats.Count1h, cfg.MaxTransactionsPerHour),
			cfg.HourlyFrequencyScore), true
	}
	if in.Stats.Count24h > cfg.MaxTransactionsPerDay {
		return models.NewRiskFactor(FactorUnusual24h,
			fmt.Sprintf("%d transactions in the last 24 hours (usually up to %d)",
				in.Stats.Count24h, cfg.MaxTransactionsPerDay),
			cfg.DailyFrequencyScore), true
	}
	return models.RiskFactor{}, false
}

func veryLargeAmount(in Input, cfg Config) (models.RiskFactor, bool) {
	if !in.Transaction.Amount.GreaterThan(cfg.LargeAmountThreshold) {
		return models.RiskFactor{}, false
	}
	return models.NewRiskFactor(FactorVeryLargeAmount,
		fmt.Sprintf("Amount %s exceeds the threshold %s",
			in.Transaction.Amount.StringFixed(2), cfg.LargeAmountThreshold.StringFixed(2)),
		cfg.LargeAmountScore), true
}
