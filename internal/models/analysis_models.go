package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Decision итоговое решение по транзакции
type Decision string

const (
	DecisionBlock   Decision = "BLOCK"
	DecisionReview  Decision = "REVIEW"
	DecisionApprove Decision = "APPROVE"
)

// Status переводит решение в статус, который сохраняется в хранилище
func (d Decision) Status() TransactionStatus {
	switch d {
	case DecisionBlock:
		return StatusBlocked
	case DecisionReview:
		return StatusReviewPending
	case DecisionApprove:
		return StatusApproved
	default:
		return StatusAnalyzed
	}
}

// AnalysisMode режим анализа: живой трафик или повтор исторических данных
type AnalysisMode string

const (
	LiveMode   AnalysisMode = "LIVE"
	ReplayMode AnalysisMode = "REPLAY"
)

func (m AnalysisMode) IsValid() bool {
	return m == LiveMode || m == ReplayMode
}

// RiskFactor одна обнаруженная аномалия
type RiskFactor struct {
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Score       int     `json:"score" bson:"score"`
	Weight      float64 `json:"weight" bson:"weight"`
}

func NewRiskFactor(name, description string, score int) RiskFactor {
	return RiskFactor{
		Name:        name,
		Description: description,
		Score:       score,
		Weight:      float64(score) / 100.0,
	}
}

// CustomerStats агрегаты по истории клиента, пересчитываются на каждый вызов
type CustomerStats struct {
	CustomerID        string          `json:"customer_id"`
	TotalTransactions int             `json:"total_transactions"`
	AvgAmount         decimal.Decimal `json:"avg_amount" swaggertype:"string"`
	MinAmount         decimal.Decimal `json:"min_amount" swaggertype:"string"`
	MaxAmount         decimal.Decimal `json:"max_amount" swaggertype:"string"`
	Count1h           int             `json:"count_1h"`
	Count24h          int             `json:"count_24h"`
	UniqueRecipients  int             `json:"unique_recipients"`
	LastTransactionAt *time.Time      `json:"last_transaction_at,omitempty"`
}

// AnalysisResult результат анализа одной транзакции
type AnalysisResult struct {
	TransactionID    int64        `json:"transaction_id"`
	CustomerID       string       `json:"customer_id"`
	FraudProbability float64      `json:"fraud_probability"`
	IsFraud          bool         `json:"is_fraud"`
	Decision         Decision     `json:"decision"`
	RiskScore        int          `json:"risk_score"`
	RiskFactors      []RiskFactor `json:"risk_factors"`
	Mode             AnalysisMode `json:"mode"`
	Explanation      string       `json:"explanation,omitempty"`
	Recommendations  string       `json:"recommendations,omitempty"`
	AnalyzedAt       time.Time    `json:"analyzed_at"`
}

// BatchReplayResponse сводка по повторному анализу батча
type BatchReplayResponse struct {
	BatchID  int64 `json:"batch_id"`
	Total    int   `json:"total"`
	Analyzed int   `json:"analyzed"`
	Blocked  int   `json:"blocked"`
	Review   int   `json:"review"`
	Approved int   `json:"approved"`
	Failed   int   `json:"failed"`
}

// BehaviorSummaryResponse текстовая сводка поведения клиента
type BehaviorSummaryResponse struct {
	CustomerID string `json:"customer_id"`
	Summary    string `json:"summary"`
}
