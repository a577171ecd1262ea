package risk

import "github.com/shopspring/decimal"

// Config все пороги и баллы движка правил.
// Значения по умолчанию в тегах envconfig должны совпадать с DefaultConfig.
type Config struct {
	// Аномальная сумма
	AmountMultiplier     float64         `envconfig:"RISK_AMOUNT_MULTIPLIER" default:"3.0"`
	AmountBaseScore      int             `envconfig:"RISK_AMOUNT_BASE_SCORE" default:"30"`
	AmountStepScore      float64         `envconfig:"RISK_AMOUNT_STEP_SCORE" default:"5"`
	AmountMaxScore       int             `envconfig:"RISK_AMOUNT_MAX_SCORE" default:"40"`
	LargeAmountThreshold decimal.Decimal `envconfig:"RISK_LARGE_AMOUNT_THRESHOLD" default:"100000"`
	LargeAmountScore     int             `envconfig:"RISK_LARGE_AMOUNT_SCORE" default:"20"`

	// Время суток, [NightStartHour, NightEndHour)
	NightStartHour int `envconfig:"RISK_NIGHT_START_HOUR" default:"0"`
	NightEndHour   int `envconfig:"RISK_NIGHT_END_HOUR" default:"6"`
	NightScore     int `envconfig:"RISK_NIGHT_SCORE" default:"20"`

	NewRecipientScore int `envconfig:"RISK_NEW_RECIPIENT_SCORE" default:"25"`

	// Частота
	MaxTransactionsPerHour int `envconfig:"RISK_MAX_TX_PER_HOUR" default:"3"`
	HourlyFrequencyScore   int `envconfig:"RISK_HOURLY_FREQUENCY_SCORE" default:"25"`
	MaxTransactionsPerDay  int `envconfig:"RISK_MAX_TX_PER_DAY" default:"15"`
	DailyFrequencyScore    int `envconfig:"RISK_DAILY_FREQUENCY_SCORE" default:"15"`

	// Поведенческие сигналы
	MaxDevices30d        int     `envconfig:"RISK_MAX_DEVICES_30D" default:"3"`
	DeviceBaseScore      int     `envconfig:"RISK_DEVICE_BASE_SCORE" default:"25"`
	DevicePerModelScore  int     `envconfig:"RISK_DEVICE_PER_MODEL_SCORE" default:"5"`
	DeviceMaxScore       int     `envconfig:"RISK_DEVICE_MAX_SCORE" default:"35"`
	LoginFreqChangeLimit float64 `envconfig:"RISK_LOGIN_FREQ_CHANGE_LIMIT" default:"0.5"`
	LoginSpikeScore      int     `envconfig:"RISK_LOGIN_SPIKE_SCORE" default:"20"`
	BurstinessLimit      float64 `envconfig:"RISK_BURSTINESS_LIMIT" default:"0.3"`
	BurstinessScore      int     `envconfig:"RISK_BURSTINESS_SCORE" default:"15"`
	IntervalZscoreLimit  float64 `envconfig:"RISK_INTERVAL_ZSCORE_LIMIT" default:"2.0"`
	IntervalScore        int     `envconfig:"RISK_INTERVAL_SCORE" default:"15"`

	// Решение
	FraudProbability  float64 `envconfig:"RISK_FRAUD_PROBABILITY" default:"0.70"`
	BlockProbability  float64 `envconfig:"RISK_BLOCK_PROBABILITY" default:"0.85"`
	BlockScore        int     `envconfig:"RISK_BLOCK_SCORE" default:"85"`
	ReviewProbability float64 `envconfig:"RISK_REVIEW_PROBABILITY" default:"0.50"`
	ReviewScore       int     `envconfig:"RISK_REVIEW_SCORE" default:"50"`

	// Калибровка при повторном анализе
	CalibrationFraudFloor   float64 `envconfig:"RISK_CALIBRATION_FRAUD_FLOOR" default:"0.75"`
	CalibrationLegitCeiling float64 `envconfig:"RISK_CALIBRATION_LEGIT_CEILING" default:"0.45"`
	CalibrationReviewFloor  float64 `envconfig:"RISK_CALIBRATION_REVIEW_FLOOR" default:"0.30"`
}

func DefaultConfig() Config {
	return Config{
		AmountMultiplier:     3.0,
		AmountBaseScore:      30,
		AmountStepScore:      5,
		AmountMaxScore:       40,
		LargeAmountThreshold: decimal.NewFromInt(100000),
		LargeAmountScore:     20,

		NightStartHour: 0,
		NightEndHour:   6,
		NightScore:     20,

		NewRecipientScore: 25,

		MaxTransactionsPerHour: 3,
		HourlyFrequencyScore:   25,
		MaxTransactionsPerDay:  15,
		DailyFrequencyScore:    15,

		MaxDevices30d:        3,
		DeviceBaseScore:      25,
		DevicePerModelScore:  5,
		DeviceMaxScore:       35,
		LoginFreqChangeLimit: 0.5,
		LoginSpikeScore:      20,
		BurstinessLimit:      0.3,
		BurstinessScore:      15,
		IntervalZscoreLimit:  2.0,
		IntervalScore:        15,

		FraudProbability:  0.70,
		BlockProbability:  0.85,
		BlockScore:        85,
		ReviewProbability: 0.50,
		ReviewScore:       50,

		CalibrationFraudFloor:   0.75,
		CalibrationLegitCeiling: 0.45,
		CalibrationReviewFloor:  0.30,
	}
}
