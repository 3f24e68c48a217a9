// Package narrative produces the free-text advisory sections layered on top
// of the engine's numeric output. The text is additive: a complete
// recommendation is always produced without it, and any generator failure
// degrades to the rule-based fallback.
package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
)

// Sections are the structured parts of the advisory text.
type Sections struct {
	RiskAssessment      string `json:"risk_assessment"`
	PortfolioAllocation string `json:"portfolio_allocation"`
	FundAnalysis        string `json:"fund_analysis"`
	InvestmentStrategy  string `json:"investment_strategy"`
	RiskWarnings        string `json:"risk_warnings"`
	NextSteps           string `json:"next_steps"`
	FullAnalysis        string `json:"full_analysis"`
}

// SuggestedAllocation is the rupee split of the investment amount for one
// recommended category.
type SuggestedAllocation struct {
	Percentage float64            `json:"percentage"`
	Amount     float64            `json:"amount"`
	Funds      []model.ScoredFund `json:"funds"`
}

// Analysis is the full narrative bundle returned with an advice response.
type Analysis struct {
	Sections             Sections                               `json:"sections"`
	SuggestedAllocations map[model.Category]SuggestedAllocation `json:"suggested_allocations"`
	Summary              string                                 `json:"summary"`
	KeyInsights          []string                               `json:"key_insights"`
}

// Generator produces an Analysis for a profile and its recommendation.
type Generator interface {
	Generate(ctx context.Context, profile model.UserProfile, result model.RecommendationResult) (Analysis, error)
}

// SuggestedAllocations splits the investment amount across the recommended
// categories according to the allocation plan. Pure; shared by the Gemini
// generator and the fallback.
func SuggestedAllocations(profile model.UserProfile, result model.RecommendationResult) map[model.Category]SuggestedAllocation {
	out := make(map[model.Category]SuggestedAllocation)
	for category, pct := range result.Allocation {
		if pct <= 0 {
			continue
		}
		out[category] = SuggestedAllocation{
			Percentage: pct,
			Amount:     pct / 100 * profile.InvestmentAmount,
			Funds:      result.Recommendations[category],
		}
	}
	return out
}

// Summary produces the short recap shown above the detailed sections.
func Summary(profile model.UserProfile, result model.RecommendationResult) string {
	var categories []string
	for _, c := range model.Categories() {
		if result.Allocation[c] > 0 {
			categories = append(categories, c.Title())
		}
	}

	return fmt.Sprintf(
		"Based on your profile (Age: %d, Income: ₹%.0f), we've identified you as a %s risk investor. "+
			"For your investment of ₹%.0f, we recommend a diversified portfolio across %d fund categories: %s.",
		profile.Age, profile.AnnualIncome, result.RiskProfile,
		profile.InvestmentAmount, len(categories), strings.Join(categories, ", "))
}
