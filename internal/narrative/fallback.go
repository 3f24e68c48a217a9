package narrative

import (
	"fmt"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
)

// Fallback builds the rule-based analysis used when no generator is
// configured or the generator fails. It covers the same sections as the
// generated text with generic but accurate content.
func Fallback(profile model.UserProfile, result model.RecommendationResult) Analysis {
	return Analysis{
		Sections: Sections{
			RiskAssessment: fmt.Sprintf(
				"Based on your age (%d) and income (₹%.0f), you appear to be a %s risk investor.",
				profile.Age, profile.AnnualIncome, result.RiskProfile),
			PortfolioAllocation: "We recommend a diversified approach across multiple fund categories to balance risk and returns.",
			FundAnalysis:        "The recommended funds have been selected based on their track record, AUM, and risk-adjusted returns.",
			InvestmentStrategy:  "Consider starting with SIP (Systematic Investment Plan) for better rupee cost averaging.",
			RiskWarnings:        "Past performance does not guarantee future returns. Please consult a financial advisor before investing.",
			NextSteps:           "Review the fund details, understand the risks, and start with small investments to test your comfort level.",
			FullAnalysis:        "Please review the detailed fund recommendations below.",
		},
		SuggestedAllocations: SuggestedAllocations(profile, result),
		Summary:              Summary(profile, result),
		KeyInsights: []string{
			"Diversification is key to managing investment risk",
			"Consider your investment horizon when selecting funds",
			"Regular monitoring and rebalancing is important",
			"Start with SIP for better risk management",
			"Consult a financial advisor for personalized advice",
		},
	}
}
