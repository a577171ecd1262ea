package risk

import (
	"time"

	"gw-fraud-scoring/internal/models"

	"github.com/shopspring/decimal"
)

// StatsAggregator строит CustomerStats по истории транзакций клиента.
// Часовые и суточные счётчики считаются от текущего времени на момент вызова.
type StatsAggregator struct {
	now func() time.Time
}

func NewStatsAggregator(now func() time.Time) *StatsAggregator {
	if now == nil {
		now = time.Now
	}
	return &StatsAggregator{now: now}
}

func (a *StatsAggregator) Aggregate(customerID string, history []models.Transaction) models.CustomerStats {
	stats := models.CustomerStats{
		CustomerID: customerID,
		AvgAmount:  decimal.Zero,
		MinAmount:  decimal.Zero,
		MaxAmount:  decimal.Zero,
	}
	if len(history) == 0 {
		return stats
	}

	now := a.now()
	hourAgo := now.Add(-time.Hour)
	dayAgo := now.Add(-24 * time.Hour)

	total := decimal.Zero
	minAmount := history[0].Amount
	maxAmount := history[0].Amount
	recipients := make(map[string]struct{}, len(history))
	var last time.Time

	for _, t := range history {
		total = total.Add(t.Amount)
		if t.Amount.LessThan(minAmount) {
			minAmount = t.Amount
		}
		if t.Amount.GreaterThan(maxAmount) {
			maxAmount = t.Amount
		}
		if t.Timestamp.After(hourAgo) {
			stats.Count1h++
		}
		if t.Timestamp.After(dayAgo) {
			stats.Count24h++
		}
		recipients[t.RecipientID] = struct{}{}
		if t.Timestamp.After(last) {
			last = t.Timestamp
		}
	}

	stats.TotalTransactions = len(history)
	// DivRound округляет половину от нуля, для неотрицательных сумм это half-up
	stats.AvgAmount = total.DivRound(decimal.NewFromInt(int64(len(history))), 2)
	stats.MinAmount = minAmount
	stats.MaxAmount = maxAmount
	stats.UniqueRecipients = len(recipients)
	stats.LastTransactionAt = &last

	return stats
}

// IsNewRecipient true, если клиент ещё не переводил этому получателю.
// Пустая история всегда даёт true.
func IsNewRecipient(history []models.Transaction, recipientID string) bool {
	for _, t := range history {
		if t.RecipientID == recipientID {
			return false
		}
	}
	return true
}

// PriorHistory исключает оцениваемую транзакцию из истории клиента
func PriorHistory(history []models.Transaction, txID int64) []models.Transaction {
	prior := make([]models.Transaction, 0, len(history))
	for _, t := range history {
		if t.ID == txID {
			continue
		}
		prior = append(prior, t)
	}
	return prior
}
