package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord архивная запись завершённого анализа
type AnalysisRecord struct {
	AnalysisID       string       `bson:"analysis_id" json:"analysis_id"`
	TransactionID    int64        `bson:"transaction_id" json:"transaction_id"`
	ExternalID       string       `bson:"external_id" json:"external_id"`
	CustomerID       string       `bson:"customer_id" json:"customer_id"`
	Mode             AnalysisMode `bson:"mode" json:"mode"`
	Decision         Decision     `bson:"decision" json:"decision"`
	FraudProbability float64      `bson:"fraud_probability" json:"fraud_probability"`
	IsFraud          bool         `bson:"is_fraud" json:"is_fraud"`
	RiskScore        int          `bson:"risk_score" json:"risk_score"`
	RiskFactors      []RiskFactor `bson:"risk_factors" json:"risk_factors"`
	Explanation      string       `bson:"explanation" json:"explanation"`
	Recommendations  string       `bson:"recommendations" json:"recommendations"`
	AnalyzedAt       time.Time    `bson:"analyzed_at" json:"analyzed_at"`
	ArchivedAt       time.Time    `bson:"archived_at" json:"archived_at"`
}

func NewAnalysisRecord(tx *Transaction, res *AnalysisResult) *AnalysisRecord {
	return &AnalysisRecord{
		AnalysisID:       uuid.NewString(),
		TransactionID:    res.TransactionID,
		ExternalID:       tx.ExternalID,
		CustomerID:       res.CustomerID,
		Mode:             res.Mode,
		Decision:         res.Decision,
		FraudProbability: res.FraudProbability,
		IsFraud:          res.IsFraud,
		RiskScore:        res.RiskScore,
		RiskFactors:      res.RiskFactors,
		Explanation:      res.Explanation,
		Recommendations:  res.Recommendations,
		AnalyzedAt:       res.AnalyzedAt,
	}
}
