package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus статус транзакции в хранилище
type TransactionStatus string

const (
	StatusPending       TransactionStatus = "PENDING"
	StatusAnalyzed      TransactionStatus = "ANALYZED"
	StatusBlocked       TransactionStatus = "BLOCKED"
	StatusApproved      TransactionStatus = "APPROVED"
	StatusReviewPending TransactionStatus = "REVIEW"
)

// Transaction представляет финансовую операцию клиента
type Transaction struct {
	ID               int64             `json:"id" db:"id"`
	ExternalID       string            `json:"transaction_id" db:"transaction_id"`
	CustomerID       string            `json:"customer_id" db:"customer_id"`
	RecipientID      string            `json:"recipient_id" db:"recipient_id"`
	Amount           decimal.Decimal   `json:"amount" db:"amount"`
	Timestamp        time.Time         `json:"timestamp" db:"transaction_datetime"`
	GroundTruthFraud *bool             `json:"ground_truth_fraud,omitempty" db:"is_fraud"`
	FraudProbability *float64          `json:"fraud_probability,omitempty" db:"fraud_probability"`
	Status           TransactionStatus `json:"status" db:"status"`
	BatchID          *int64            `json:"batch_id,omitempty" db:"batch_id"`
	Version          int64             `json:"version" db:"version"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt        *time.Time        `json:"updated_at,omitempty" db:"updated_at"`
}

// IsKnownFraud true только если метка присутствует и равна fraud.
func (t *Transaction) IsKnownFraud() bool {
	return t.GroundTruthFraud != nil && *t.GroundTruthFraud
}

// CreateTransactionRequest запрос на загрузку транзакции
type CreateTransactionRequest struct {
	ExternalID       string          `json:"transaction_id"`
	CustomerID       string          `json:"customer_id"`
	RecipientID      string          `json:"recipient_id"`
	Amount           decimal.Decimal `json:"amount" swaggertype:"string" example:"1500.00"`
	Timestamp        time.Time       `json:"timestamp"`
	GroundTruthFraud *bool           `json:"ground_truth_fraud,omitempty"`
	BatchID          *int64          `json:"batch_id,omitempty"`
}

var (
	errNegativeAmount = errors.New("amount must not be negative")
)

func (r CreateTransactionRequest) Validate() error {
	if strings.TrimSpace(r.ExternalID) == "" {
		return errors.New("transaction_id is required")
	}
	if strings.TrimSpace(r.CustomerID) == "" {
		return errors.New("customer_id is required")
	}
	if strings.TrimSpace(r.RecipientID) == "" {
		return errors.New("recipient_id is required")
	}
	if r.Amount.IsNegative() {
		return errNegativeAmount
	}
	if r.Timestamp.IsZero() {
		return errors.New("timestamp is required")
	}
	return nil
}

// IsAmountError сообщает, что запрос отклонён из-за суммы
func IsAmountError(err error) bool {
	return errors.Is(err, errNegativeAmount)
}

func (r CreateTransactionRequest) ToTransaction() *Transaction {
	return &Transaction{
		ExternalID:       r.ExternalID,
		CustomerID:       r.CustomerID,
		RecipientID:      r.RecipientID,
		Amount:           r.Amount,
		Timestamp:        r.Timestamp,
		GroundTruthFraud: r.GroundTruthFraud,
		Status:           StatusPending,
		BatchID:          r.BatchID,
	}
}
