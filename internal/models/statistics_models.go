package models

import (
	"github.com/shopspring/decimal"
)

// DashboardTotals агрегаты по всем транзакциям, считаются одним запросом
type DashboardTotals struct {
	Total       int64           `json:"total"`
	Fraud       int64           `json:"fraud"`
	TotalAmount decimal.Decimal `json:"total_amount" swaggertype:"string"`
	FraudAmount decimal.Decimal `json:"fraud_amount" swaggertype:"string"`
	Blocked     int64           `json:"blocked"`
	Review      int64           `json:"review"`
}

// RiskyCustomer клиент, у которого есть хотя бы одна мошенническая транзакция
type RiskyCustomer struct {
	CustomerID       string          `json:"customer_id"`
	TransactionCount int64           `json:"transaction_count"`
	FraudCount       int64           `json:"fraud_count"`
	FraudRate        float64         `json:"fraud_rate"`
	TotalAmount      decimal.Decimal `json:"total_amount" swaggertype:"string"`
	AvgRiskScore     float64         `json:"avg_risk_score"`
}

// DailyVolume объём операций за календарный день клиента
type DailyVolume struct {
	Date        string          `json:"date"`
	Count       int64           `json:"count"`
	FraudCount  int64           `json:"fraud_count"`
	TotalAmount decimal.Decimal `json:"total_amount" swaggertype:"string"`
}

// TrendPoint точка графика мошеннических операций по дням
type TrendPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// AmountTrendPoint точка графика оборота по дням
type AmountTrendPoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`
	Count  int64           `json:"count"`
}

// DashboardStats сводка для главной страницы аналитика
type DashboardStats struct {
	TotalTransactions      int64              `json:"total_transactions"`
	FraudTransactions      int64              `json:"fraud_transactions"`
	LegitimateTransactions int64              `json:"legitimate_transactions"`
	FraudRate              float64            `json:"fraud_rate"`
	TotalAmount            decimal.Decimal    `json:"total_amount" swaggertype:"string"`
	FraudAmount            decimal.Decimal    `json:"fraud_amount" swaggertype:"string"`
	AvgTransactionAmount   decimal.Decimal    `json:"avg_transaction_amount" swaggertype:"string"`
	BlockedTransactions    int64              `json:"blocked_transactions"`
	ReviewTransactions     int64              `json:"review_transactions"`
	ApprovedTransactions   int64              `json:"approved_transactions"`
	TopRiskyCustomers      []RiskyCustomer    `json:"top_risky_customers"`
	FraudTrend             []TrendPoint       `json:"fraud_trend"`
	AmountTrend            []AmountTrendPoint `json:"amount_trend"`
}

// TimelineEntry транзакция на временной шкале клиента
type TimelineEntry struct {
	TransactionID int64           `json:"transaction_id"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string"`
	IsFraud       bool            `json:"is_fraud"`
	RecipientID   string          `json:"recipient_id"`
	RiskScore     float64         `json:"risk_score"`
}

// AmountTimelinePoint дневной оборот клиента
type AmountTimelinePoint struct {
	Date             string          `json:"date"`
	Amount           decimal.Decimal `json:"amount" swaggertype:"string"`
	IsFraud          bool            `json:"is_fraud"`
	TransactionCount int             `json:"transaction_count"`
}

// CustomerAnalytics подробная аналитика по одному клиенту
type CustomerAnalytics struct {
	CustomerID           string                `json:"customer_id"`
	TotalTransactions    int                   `json:"total_transactions"`
	FraudTransactions    int                   `json:"fraud_transactions"`
	TotalAmount          decimal.Decimal       `json:"total_amount" swaggertype:"string"`
	AvgAmount            decimal.Decimal       `json:"avg_amount" swaggertype:"string"`
	DeviceChanges        int                   `json:"device_changes"`
	OsVersionChanges     int                   `json:"os_version_changes"`
	LoginsLast7Days      int                   `json:"logins_last_7_days"`
	LoginsLast30Days     int                   `json:"logins_last_30_days"`
	LoginFrequencyChange *float64              `json:"login_frequency_change,omitempty"`
	TransactionTimeline  []TimelineEntry       `json:"transaction_timeline"`
	AmountTimeline       []AmountTimelinePoint `json:"amount_timeline"`
}

// TransactionPage страница общего списка транзакций
type TransactionPage struct {
	Page         int           `json:"page"`
	Size         int           `json:"size"`
	Total        int64         `json:"total"`
	Transactions []Transaction `json:"transactions"`
}
