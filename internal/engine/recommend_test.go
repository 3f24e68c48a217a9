package engine_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/apperrors"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/catalog"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/engine"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/testutil"
)

func TestRecommend(t *testing.T) {
	source := catalog.New(testutil.SampleFunds())

	t.Run("high risk profile uses every category", func(t *testing.T) {
		profile := testutil.AggressiveProfile()

		result, err := engine.Recommend(profile, source)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if result.RiskProfile != model.RiskHigh {
			t.Errorf("Expected high risk profile, got %s", result.RiskProfile)
		}
		if result.Allocation[model.CategoryLargeCap] != 25 {
			t.Errorf("Expected 25%% large cap, got %v", result.Allocation[model.CategoryLargeCap])
		}
		if len(result.Recommendations) != 5 {
			t.Errorf("Expected recommendations in 5 categories, got %d", len(result.Recommendations))
		}
	})

	t.Run("low risk profile skips zero allocation categories", func(t *testing.T) {
		profile := testutil.ConservativeProfile()
		profile.RiskTolerance = model.RiskLow

		result, err := engine.Recommend(profile, source)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if result.RiskProfile != model.RiskLow {
			t.Errorf("Expected low risk profile, got %s", result.RiskProfile)
		}
		if _, ok := result.Recommendations[model.CategorySmallCap]; ok {
			t.Error("Expected no small cap recommendations for low risk")
		}
		if _, ok := result.Recommendations[model.CategoryMultiCap]; ok {
			t.Error("Expected no multi cap recommendations for low risk")
		}
		if len(result.Recommendations) != 3 {
			t.Errorf("Expected recommendations in 3 categories, got %d", len(result.Recommendations))
		}
	})

	t.Run("selects the two best funds per category", func(t *testing.T) {
		result, err := engine.Recommend(testutil.AggressiveProfile(), source)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		for category, funds := range result.Recommendations {
			if len(funds) != 2 {
				t.Fatalf("Expected 2 funds for %s, got %d", category, len(funds))
			}
			if !strings.Contains(funds[0].Name, "Leader") {
				t.Errorf("Expected the dominant fund first in %s, got %s", category, funds[0].Name)
			}
			if funds[0].Rank != 1 || funds[1].Rank != 2 {
				t.Errorf("Unexpected ranks in %s: %d, %d", category, funds[0].Rank, funds[1].Rank)
			}
		}
	})

	t.Run("attaches the analytics bundle", func(t *testing.T) {
		result, err := engine.Recommend(testutil.AggressiveProfile(), source)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if result.Analysis.Diversification.TotalFunds != 10 {
			t.Errorf("Expected 10 funds in diversification, got %d", result.Analysis.Diversification.TotalFunds)
		}
		if result.Analysis.Projections.MonthlySIP != 25000 {
			t.Errorf("Expected projection for the profile SIP, got %v", result.Analysis.Projections.MonthlySIP)
		}
	})

	t.Run("skips categories with no candidate funds", func(t *testing.T) {
		// Large cap only: every other allocated category has no funds.
		sparse := catalog.New([]model.FundRecord{
			testutil.NewFund().WithCategory(model.CategoryLargeCap).Record(),
		})

		result, err := engine.Recommend(testutil.AggressiveProfile(), sparse)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if len(result.Recommendations) != 1 {
			t.Errorf("Expected only large cap recommendations, got %d categories", len(result.Recommendations))
		}
		if len(result.Recommendations[model.CategoryLargeCap]) != 1 {
			t.Errorf("Expected the single candidate, got %d", len(result.Recommendations[model.CategoryLargeCap]))
		}
	})

	t.Run("propagates profile validation errors", func(t *testing.T) {
		profile := testutil.AggressiveProfile()
		profile.Age = 0

		_, err := engine.Recommend(profile, source)
		if !errors.Is(err, apperrors.ErrInvalidAge) {
			t.Errorf("Expected ErrInvalidAge, got %v", err)
		}
	})
}
