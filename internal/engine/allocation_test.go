package engine_test

import (
	"testing"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/engine"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
)

func TestPlanAllocation(t *testing.T) {
	t.Run("every plan sums to 100 percent", func(t *testing.T) {
		for _, risk := range []model.RiskLevel{model.RiskLow, model.RiskModerate, model.RiskHigh} {
			plan := engine.PlanAllocation(risk)

			var total float64
			for _, pct := range plan {
				total += pct
			}
			if total != 100 {
				t.Errorf("Expected %s plan to sum to 100, got %v", risk, total)
			}
		}
	})

	t.Run("low risk plan excludes small and multi cap", func(t *testing.T) {
		plan := engine.PlanAllocation(model.RiskLow)

		if plan[model.CategoryLargeCap] != 50 {
			t.Errorf("Expected 50%% large cap, got %v", plan[model.CategoryLargeCap])
		}
		if plan[model.CategorySmallCap] != 0 {
			t.Errorf("Expected 0%% small cap, got %v", plan[model.CategorySmallCap])
		}
		if plan[model.CategoryMultiCap] != 0 {
			t.Errorf("Expected 0%% multi cap, got %v", plan[model.CategoryMultiCap])
		}
	})

	t.Run("high risk plan spreads across all categories", func(t *testing.T) {
		plan := engine.PlanAllocation(model.RiskHigh)

		expected := model.AllocationPlan{
			model.CategoryLargeCap: 25,
			model.CategoryMidCap:   20,
			model.CategoryFlexiCap: 20,
			model.CategorySmallCap: 20,
			model.CategoryMultiCap: 15,
		}
		for category, pct := range expected {
			if plan[category] != pct {
				t.Errorf("Expected %v%% for %s, got %v", pct, category, plan[category])
			}
		}
	})

	t.Run("unknown risk level falls back to moderate plan", func(t *testing.T) {
		plan := engine.PlanAllocation(model.RiskLevel("aggressive"))
		moderate := engine.PlanAllocation(model.RiskModerate)

		for category, pct := range moderate {
			if plan[category] != pct {
				t.Errorf("Expected moderate fallback for %s, got %v", category, plan[category])
			}
		}
	})

	t.Run("returned plan is a copy", func(t *testing.T) {
		plan := engine.PlanAllocation(model.RiskModerate)
		plan[model.CategoryLargeCap] = 99

		again := engine.PlanAllocation(model.RiskModerate)
		if again[model.CategoryLargeCap] != 35 {
			t.Errorf("Mutating a plan leaked into the table: got %v", again[model.CategoryLargeCap])
		}
	})
}
