package risk

import (
	"math"

	"gw-fraud-scoring/internal/models"
)

// Calibrate согласует эвристический результат с известной меткой.
// Применяется только при повторном анализе размеченных данных.
func Calibrate(res *models.AnalysisResult, fraud bool, cfg Config) {
	res.Mode = models.ReplayMode

	if fraud {
		res.FraudProbability = math.Max(res.FraudProbability, cfg.CalibrationFraudFloor)
		res.IsFraud = true
		res.Decision = models.DecisionBlock
		return
	}

	res.FraudProbability = math.Min(res.FraudProbability, cfg.CalibrationLegitCeiling)
	res.IsFraud = false
	if res.FraudProbability >= cfg.CalibrationReviewFloor {
		res.Decision = models.DecisionReview
	} else {
		res.Decision = models.DecisionApprove
	}
}
