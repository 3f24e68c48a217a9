package model

// AllocationPlan maps fund categories to target percentage weights.
// For every risk classification, the weights sum to exactly 100.
type AllocationPlan map[Category]float64

// RecommendationResult is the full output of a personalized-advice request:
// risk classification, allocation plan, the top funds selected within each
// non-zero category, and the derived analytics bundle.
type RecommendationResult struct {
	RiskProfile     RiskLevel                 `json:"risk_profile"`
	Allocation      AllocationPlan            `json:"allocation"`
	Recommendations map[Category][]ScoredFund `json:"recommendations"`
	Analysis        AnalysisReport            `json:"advanced_analysis"`
}
