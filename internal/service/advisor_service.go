package service

import (
	"context"
	"log"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/catalog"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/engine"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/growurl"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/narrative"
)

// topFundsLimit is the number of funds returned by a top-of-category
// listing.
const topFundsLimit = 5

// AdvisorService exposes the recommendation engine over the current catalog
// snapshot and layers the optional narrative on top.
type AdvisorService struct {
	store     *catalog.Store
	generator narrative.Generator
}

// NewAdvisorService creates an AdvisorService. generator may be nil, in
// which case narratives always use the rule-based fallback.
func NewAdvisorService(store *catalog.Store, generator narrative.Generator) *AdvisorService {
	return &AdvisorService{
		store:     store,
		generator: generator,
	}
}

// Recommend runs the full recommendation pipeline for a profile against the
// current catalog snapshot and attaches display links to the selected funds.
// The result is always complete or the error is a validation failure; there
// are no partial results.
func (s *AdvisorService) Recommend(profile model.UserProfile) (model.RecommendationResult, error) {
	result, err := engine.Recommend(profile, s.store.Get())
	if err != nil {
		return model.RecommendationResult{}, err
	}

	for category, funds := range result.Recommendations {
		for i := range funds {
			funds[i].GrowURL = growurl.ForFund(funds[i].Name)
		}
		result.Recommendations[category] = funds
	}

	return result, nil
}

// Narrative produces the advisory text for a recommendation. Generator
// failures degrade to the rule-based fallback; this method never fails.
func (s *AdvisorService) Narrative(ctx context.Context, profile model.UserProfile, result model.RecommendationResult) narrative.Analysis {
	if s.generator == nil {
		return narrative.Fallback(profile, result)
	}

	analysis, err := s.generator.Generate(ctx, profile, result)
	if err != nil {
		log.Printf("narrative generation failed, using fallback: %v", err)
		return narrative.Fallback(profile, result)
	}
	return analysis
}

// TopFunds returns the top funds of a category by composite score. Unknown
// category strings fall back to large cap, matching the documented
// default-mapping policy.
func (s *AdvisorService) TopFunds(categoryName string) []model.ScoredFund {
	category, err := model.ParseCategory(categoryName)
	if err != nil {
		log.Printf("top funds: %v, falling back to %s", err, model.CategoryLargeCap)
		category = model.CategoryLargeCap
	}

	ranked := engine.RankByCompositeScore(s.store.Get().FundsByCategory(category))
	if len(ranked) > topFundsLimit {
		ranked = ranked[:topFundsLimit]
	}

	for i := range ranked {
		ranked[i].GrowURL = growurl.ForFund(ranked[i].Name)
	}
	return ranked
}

// FundDetails looks up a single fund by its catalog id.
// Returns apperrors.ErrFundNotFound for unknown ids.
func (s *AdvisorService) FundDetails(fundID string) (model.FundRecord, error) {
	return s.store.Get().FundByID(fundID)
}

// CategoryInfo describes a fund category's typical characteristics.
type CategoryInfo struct {
	Category       model.Category `json:"category"`
	Description    string         `json:"description"`
	RiskLevel      string         `json:"risk_level"`
	ExpectedReturn string         `json:"expected_return"`
	SuitableFor    string         `json:"suitable_for"`
}

// categoryInfos is static reference metadata served alongside listings.
var categoryInfos = map[model.Category]CategoryInfo{
	model.CategoryLargeCap: {
		Description:    "Funds that invest primarily in large-cap stocks (top 100 companies by market cap)",
		RiskLevel:      "Low to Moderate",
		ExpectedReturn: "8-12%",
		SuitableFor:    "Conservative investors, retirees, short-term goals",
	},
	model.CategoryMidCap: {
		Description:    "Funds that invest in mid-cap stocks (101st to 250th companies by market cap)",
		RiskLevel:      "Moderate",
		ExpectedReturn: "10-15%",
		SuitableFor:    "Moderate risk investors, medium-term goals",
	},
	model.CategoryFlexiCap: {
		Description:    "Funds with flexible allocation across large, mid, and small-cap stocks",
		RiskLevel:      "Moderate to High",
		ExpectedReturn: "12-18%",
		SuitableFor:    "Investors seeking flexibility and professional management",
	},
	model.CategorySmallCap: {
		Description:    "Funds that invest in small-cap stocks (beyond top 250 companies)",
		RiskLevel:      "High",
		ExpectedReturn: "15-25%",
		SuitableFor:    "Aggressive investors, long-term goals, high risk tolerance",
	},
	model.CategoryMultiCap: {
		Description:    "Funds that invest across all market caps with professional allocation",
		RiskLevel:      "Moderate",
		ExpectedReturn: "10-16%",
		SuitableFor:    "Balanced investors, diversified approach",
	},
}

// Categories returns the category reference metadata in canonical order.
func (s *AdvisorService) Categories() []CategoryInfo {
	infos := make([]CategoryInfo, 0, len(categoryInfos))
	for _, c := range model.Categories() {
		info := categoryInfos[c]
		info.Category = c
		infos = append(infos, info)
	}
	return infos
}
