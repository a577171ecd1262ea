package models

import (
	"errors"
	"time"
)

// BehaviorPattern дневной снимок поведения клиента (устройства и логины).
// Поля-отношения могут отсутствовать во входных данных, поэтому указатели.
type BehaviorPattern struct {
	ID                   int64     `json:"id" db:"id"`
	CustomerID           string    `json:"customer_id" db:"customer_id"`
	Date                 time.Time `json:"date" db:"trans_date"`
	UniqueOsVersions30d  int       `json:"unique_os_versions_30d" db:"unique_os_versions_30d"`
	UniquePhoneModels30d int       `json:"unique_phone_models_30d" db:"unique_phone_models_30d"`
	LatestPhoneModel     string    `json:"latest_phone_model,omitempty" db:"latest_phone_model"`
	LatestOsVersion      string    `json:"latest_os_version,omitempty" db:"latest_os_version"`
	LoginsLast7d         int       `json:"logins_last_7d" db:"logins_last_7_days"`
	LoginsLast30d        int       `json:"logins_last_30d" db:"logins_last_30_days"`

	AvgLoginsPerDay7d      *float64 `json:"avg_logins_per_day_7d,omitempty" db:"avg_logins_per_day_7d"`
	AvgLoginsPerDay30d     *float64 `json:"avg_logins_per_day_30d,omitempty" db:"avg_logins_per_day_30d"`
	LoginFreqChangeRatio   *float64 `json:"login_freq_change_ratio,omitempty" db:"login_freq_change_ratio"`
	LoginRatio7d30d        *float64 `json:"login_ratio_7d_30d,omitempty" db:"login_ratio_7d_30d"`
	AvgSessionIntervalSec  *float64 `json:"avg_session_interval_sec,omitempty" db:"avg_session_interval_sec"`
	SessionIntervalStd     *float64 `json:"session_interval_std,omitempty" db:"session_interval_std"`
	SessionIntervalVar     *float64 `json:"session_interval_variance,omitempty" db:"session_interval_variance"`
	ExpWeightedAvgInterval *float64 `json:"exp_weighted_avg_interval,omitempty" db:"exp_weighted_avg_interval"`
	BurstinessScore        *float64 `json:"burstiness_score,omitempty" db:"burstiness_score"`
	FanoFactor             *float64 `json:"fano_factor,omitempty" db:"fano_factor"`
	IntervalZscore         *float64 `json:"interval_zscore,omitempty" db:"interval_zscore"`
}

func (p BehaviorPattern) Validate() error {
	if p.CustomerID == "" {
		return errors.New("customer_id is required")
	}
	if p.Date.IsZero() {
		return errors.New("date is required")
	}
	if p.UniqueOsVersions30d < 0 || p.UniquePhoneModels30d < 0 || p.LoginsLast7d < 0 || p.LoginsLast30d < 0 {
		return errors.New("counters must not be negative")
	}
	return nil
}

// ValueOrZero разыменовывает nullable метрику
func ValueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
