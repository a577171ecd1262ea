package explainer

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a bank anti-fraud expert. Answer briefly and clearly."

func verdict(isFraud bool) string {
	if isFraud {
		return "suspicious"
	}
	return "safe"
}

func riskFactorLines(req Request) string {
	if len(req.Result.RiskFactors) == 0 {
		return "No risk factors"
	}

	lines := make([]string, 0, len(req.Result.RiskFactors))
	for _, f := range req.Result.RiskFactors {
		lines = append(lines, fmt.Sprintf("- %s: %s (weight: %.0f%%)", f.Name, f.Description, f.Weight*100))
	}
	return strings.Join(lines, "\n")
}

func buildExplanationPrompt(req Request) string {
	tx, res := req.Transaction, req.Result

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this transaction and explain why it is %s.\n\n", verdict(res.IsFraud))

	b.WriteString("Transaction:\n")
	fmt.Fprintf(&b, "- Amount: %s\n", tx.Amount.StringFixed(2))
	fmt.Fprintf(&b, "- Time: %s\n", tx.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "- Customer: %s\n", tx.CustomerID)
	fmt.Fprintf(&b, "- Recipient: %s\n\n", tx.RecipientID)

	b.WriteString("Analysis result:\n")
	fmt.Fprintf(&b, "- Fraud probability: %.0f%%\n", res.FraudProbability*100)
	fmt.Fprintf(&b, "- Risk score: %d/100\n", res.RiskScore)
	fmt.Fprintf(&b, "- Decision: %s\n\n", res.Decision)

	b.WriteString("Risk factors:\n")
	b.WriteString(riskFactorLines(req))
	b.WriteString("\n\n")

	if req.BehaviorSummary != "" {
		b.WriteString(req.BehaviorSummary)
		b.WriteString("\n")
	}

	b.WriteString("Explain in 2-3 sentences, taking into account both financial behavior " +
		"and login patterns (device changes, login frequency).")
	return b.String()
}

func buildRecommendationPrompt(req Request) string {
	return fmt.Sprintf(`Based on the transaction analysis (fraud probability: %.0f%%, decision: %s)
give the bank concrete recommendations.

What to do:
1. Action on the transaction (block/approve/manual review)
2. Action on the customer (SMS, call, card freeze)
3. Next steps

Answer briefly, 3-4 points.`, req.Result.FraudProbability*100, req.Result.Decision)
}
