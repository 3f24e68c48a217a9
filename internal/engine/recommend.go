package engine

import "github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"

// fundsPerCategory is the number of funds recommended within each allocated
// category.
const fundsPerCategory = 2

// FundSource supplies candidate funds per category. The catalog satisfies
// this; tests use small in-memory fixtures.
type FundSource interface {
	FundsByCategory(category model.Category) []model.FundRecord
}

// Recommend composes the full recommendation pipeline: risk classification,
// allocation plan, per-category fund selection by category-relative score,
// and the analytics bundle over the resulting selection.
//
// The computation is pure and single-pass over the source's records; it
// either fails on profile validation or returns a complete result, never a
// partial one.
func Recommend(profile model.UserProfile, source FundSource) (model.RecommendationResult, error) {
	risk, err := ClassifyRisk(profile)
	if err != nil {
		return model.RecommendationResult{}, err
	}

	allocation := PlanAllocation(risk)

	selection := make(map[model.Category][]model.ScoredFund)
	for _, category := range model.Categories() {
		if allocation[category] <= 0 {
			continue
		}
		ranked := RankByRelativeScore(source.FundsByCategory(category))
		if len(ranked) > fundsPerCategory {
			ranked = ranked[:fundsPerCategory]
		}
		if len(ranked) > 0 {
			selection[category] = ranked
		}
	}

	return model.RecommendationResult{
		RiskProfile:     risk,
		Allocation:      allocation,
		Recommendations: selection,
		Analysis:        Analyze(profile, selection),
	}, nil
}
