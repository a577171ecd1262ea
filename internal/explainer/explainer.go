// Package explainer turns an analysis result into analyst-facing text
// through an OpenAI-compatible chat-completions API.
package explainer

import (
	"context"

	"gw-fraud-scoring/internal/custom_err"
	"gw-fraud-scoring/internal/models"
)

// Request всё, что нужно для построения промпта
type Request struct {
	Transaction     *models.Transaction
	Result          *models.AnalysisResult
	BehaviorSummary string
}

type Explainer interface {
	Explain(ctx context.Context, req Request) (string, error)
	Recommend(ctx context.Context, req Request) (string, error)
}

// NoOp используется когда API-ключ не задан
type NoOp struct{}

func (NoOp) Explain(context.Context, Request) (string, error) {
	return "", custom_err.ErrExplainerUnavailable
}

func (NoOp) Recommend(context.Context, Request) (string, error) {
	return "", custom_err.ErrExplainerUnavailable
}

const (
	fraudExplanation = "This transaction is marked as fraudulent in historical data. " +
		"The detected risk factors confirm the operation is suspicious."
	legitExplanation = "This transaction is legitimate according to historical data. " +
		"The detected risk factors are not critical."

	fraudRecommendations = "1. Block the transaction immediately\n" +
		"2. Send an SMS notification to the customer\n" +
		"3. Temporarily freeze the card\n" +
		"4. Contact the customer for confirmation"
	legitRecommendations = "1. Approve the transaction\n" +
		"2. Keep monitoring customer activity\n" +
		"3. Refresh the customer behavior profile"
)

// FallbackExplanation зависит только от известной метки fraud
func FallbackExplanation(knownFraud bool) string {
	if knownFraud {
		return fraudExplanation
	}
	return legitExplanation
}

func FallbackRecommendations(knownFraud bool) string {
	if knownFraud {
		return fraudRecommendations
	}
	return legitRecommendations
}
