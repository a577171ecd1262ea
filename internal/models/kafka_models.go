package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// событие о решении BLOCK/REVIEW для downstream-сервисов
type DecisionEvent struct {
	EventID          uuid.UUID    `json:"event_id"`          // Уникальный ID события
	TransactionID    int64        `json:"transaction_id"`    // ID транзакции
	ExternalID       string       `json:"external_id"`       // Номер документа
	CustomerID       string       `json:"customer_id"`       // ID клиента
	Decision         Decision     `json:"decision"`          // Решение
	FraudProbability float64      `json:"fraud_probability"` // Вероятность мошенничества
	RiskScore        int          `json:"risk_score"`        // Сумма баллов
	Mode             AnalysisMode `json:"mode"`              // LIVE или REPLAY
	Factors          []string     `json:"factors"`           // Названия сработавших факторов
	Timestamp        time.Time    `json:"timestamp"`         // Время анализа
}

func NewDecisionEvent(tx *Transaction, res *AnalysisResult) DecisionEvent {
	names := make([]string, 0, len(res.RiskFactors))
	for _, f := range res.RiskFactors {
		names = append(names, f.Name)
	}
	return DecisionEvent{
		EventID:          uuid.New(),
		TransactionID:    tx.ID,
		ExternalID:       tx.ExternalID,
		CustomerID:       tx.CustomerID,
		Decision:         res.Decision,
		FraudProbability: res.FraudProbability,
		RiskScore:        res.RiskScore,
		Mode:             res.Mode,
		Factors:          names,
		Timestamp:        res.AnalyzedAt,
	}
}

// BehaviorPatternMessage снимок поведения из топика behavior-patterns.
// Дата приходит либо как YYYY-MM-DD, либо в RFC3339.
type BehaviorPatternMessage struct {
	CustomerID           string `json:"customer_id"`
	Date                 string `json:"date"`
	UniqueOsVersions30d  int    `json:"unique_os_versions_30d"`
	UniquePhoneModels30d int    `json:"unique_phone_models_30d"`
	LatestPhoneModel     string `json:"latest_phone_model"`
	LatestOsVersion      string `json:"latest_os_version"`
	LoginsLast7d         int    `json:"logins_last_7d"`
	LoginsLast30d        int    `json:"logins_last_30d"`

	AvgLoginsPerDay7d      *float64 `json:"avg_logins_per_day_7d"`
	AvgLoginsPerDay30d     *float64 `json:"avg_logins_per_day_30d"`
	LoginFreqChangeRatio   *float64 `json:"login_freq_change_ratio"`
	LoginRatio7d30d        *float64 `json:"login_ratio_7d_30d"`
	AvgSessionIntervalSec  *float64 `json:"avg_session_interval_sec"`
	SessionIntervalStd     *float64 `json:"session_interval_std"`
	SessionIntervalVar     *float64 `json:"session_interval_variance"`
	ExpWeightedAvgInterval *float64 `json:"exp_weighted_avg_interval"`
	BurstinessScore        *float64 `json:"burstiness_score"`
	FanoFactor             *float64 `json:"fano_factor"`
	IntervalZscore         *float64 `json:"interval_zscore"`
}

func parseObservationDate(s string) (time.Time, error) {
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return ts, nil
}

// ToPattern конвертирует и валидирует сообщение
func (m BehaviorPatternMessage) ToPattern() (*BehaviorPattern, error) {
	var date time.Time
	if m.Date != "" {
		d, err := parseObservationDate(m.Date)
		if err != nil {
			return nil, err
		}
		date = d
	}

	p := &BehaviorPattern{
		CustomerID:             m.CustomerID,
		Date:                   date,
		UniqueOsVersions30d:    m.UniqueOsVersions30d,
		UniquePhoneModels30d:   m.UniquePhoneModels30d,
		LatestPhoneModel:       m.LatestPhoneModel,
		LatestOsVersion:        m.LatestOsVersion,
		LoginsLast7d:           m.LoginsLast7d,
		LoginsLast30d:          m.LoginsLast30d,
		AvgLoginsPerDay7d:      m.AvgLoginsPerDay7d,
		AvgLoginsPerDay30d:     m.AvgLoginsPerDay30d,
		LoginFreqChangeRatio:   m.LoginFreqChangeRatio,
		LoginRatio7d30d:        m.LoginRatio7d30d,
		AvgSessionIntervalSec:  m.AvgSessionIntervalSec,
		SessionIntervalStd:     m.SessionIntervalStd,
		SessionIntervalVar:     m.SessionIntervalVar,
		ExpWeightedAvgInterval: m.ExpWeightedAvgInterval,
		BurstinessScore:        m.BurstinessScore,
		FanoFactor:             m.FanoFactor,
		IntervalZscore:         m.IntervalZscore,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
