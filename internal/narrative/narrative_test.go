package narrative_test

import (
	"strings"
	"testing"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/engine"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/narrative"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/testutil"
)

func recommendationFixture(t *testing.T, profile model.UserProfile) model.RecommendationResult {
	t.Helper()

	result, err := engine.Recommend(profile, fixtureSource{})
	if err != nil {
		t.Fatalf("Failed to build recommendation fixture: %v", err)
	}
	return result
}

type fixtureSource struct{}

func (fixtureSource) FundsByCategory(category model.Category) []model.FundRecord {
	var funds []model.FundRecord
	for _, f := range testutil.SampleFunds() {
		if f.Category == category {
			funds = append(funds, f)
		}
	}
	return funds
}

func TestSuggestedAllocations(t *testing.T) {
	profile := testutil.AggressiveProfile()
	result := recommendationFixture(t, profile)

	allocations := narrative.SuggestedAllocations(profile, result)

	if len(allocations) != 5 {
		t.Fatalf("Expected 5 allocations, got %d", len(allocations))
	}

	var total float64
	for category, alloc := range allocations {
		if alloc.Percentage != result.Allocation[category] {
			t.Errorf("Expected %v%% for %s, got %v", result.Allocation[category], category, alloc.Percentage)
		}
		if alloc.Amount != alloc.Percentage/100*profile.InvestmentAmount {
			t.Errorf("Amount does not match percentage for %s: %v", category, alloc.Amount)
		}
		if len(alloc.Funds) == 0 {
			t.Errorf("Expected funds attached for %s", category)
		}
		total += alloc.Amount
	}
	if total != profile.InvestmentAmount {
		t.Errorf("Expected allocations to sum to the investment amount, got %v", total)
	}
}

func TestSuggestedAllocations_SkipsZeroCategories(t *testing.T) {
	profile := testutil.ConservativeProfile()
	profile.RiskTolerance = model.RiskLow
	result := recommendationFixture(t, profile)

	allocations := narrative.SuggestedAllocations(profile, result)

	if _, ok := allocations[model.CategorySmallCap]; ok {
		t.Error("Expected no small cap allocation for a low risk plan")
	}
	if len(allocations) != 3 {
		t.Errorf("Expected 3 allocations, got %d", len(allocations))
	}
}

func TestSummary(t *testing.T) {
	profile := testutil.AggressiveProfile()
	result := recommendationFixture(t, profile)

	summary := narrative.Summary(profile, result)

	if !strings.Contains(summary, "Age: 28") {
		t.Errorf("Expected the age in the summary: %s", summary)
	}
	if !strings.Contains(summary, "high risk investor") {
		t.Errorf("Expected the risk profile in the summary: %s", summary)
	}
	if !strings.Contains(summary, "5 fund categories") {
		t.Errorf("Expected the category count in the summary: %s", summary)
	}
	if !strings.Contains(summary, "Large Cap") {
		t.Errorf("Expected category titles in the summary: %s", summary)
	}
}

func TestFallback(t *testing.T) {
	profile := testutil.AggressiveProfile()
	result := recommendationFixture(t, profile)

	analysis := narrative.Fallback(profile, result)

	t.Run("covers every section", func(t *testing.T) {
		sections := analysis.Sections
		for name, text := range map[string]string{
			"risk_assessment":      sections.RiskAssessment,
			"portfolio_allocation": sections.PortfolioAllocation,
			"fund_analysis":        sections.FundAnalysis,
			"investment_strategy":  sections.InvestmentStrategy,
			"risk_warnings":        sections.RiskWarnings,
			"next_steps":           sections.NextSteps,
			"full_analysis":        sections.FullAnalysis,
		} {
			if text == "" {
				t.Errorf("Expected text for section %s", name)
			}
		}
	})

	t.Run("risk assessment reflects the classification", func(t *testing.T) {
		if !strings.Contains(analysis.Sections.RiskAssessment, "high risk investor") {
			t.Errorf("Unexpected risk assessment: %s", analysis.Sections.RiskAssessment)
		}
	})

	t.Run("carries allocations, summary and insights", func(t *testing.T) {
		if len(analysis.SuggestedAllocations) != len(result.Recommendations) {
			t.Errorf("Expected %d allocations, got %d", len(result.Recommendations), len(analysis.SuggestedAllocations))
		}
		if analysis.Summary == "" {
			t.Error("Expected a summary")
		}
		if len(analysis.KeyInsights) != 5 {
			t.Errorf("Expected 5 key insights, got %d", len(analysis.KeyInsights))
		}
	})
}
