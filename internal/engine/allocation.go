package engine

import "github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"

// Allocation tables per risk classification. Policy constants, not derived
// at runtime; each row sums to exactly 100.
var allocationTable = map[model.RiskLevel]model.AllocationPlan{
	model.RiskLow: {
		model.CategoryLargeCap: 50,
		model.CategoryMidCap:   30,
		model.CategoryFlexiCap: 20,
		model.CategorySmallCap: 0,
		model.CategoryMultiCap: 0,
	},
	model.RiskModerate: {
		model.CategoryLargeCap: 35,
		model.CategoryMidCap:   25,
		model.CategoryFlexiCap: 25,
		model.CategorySmallCap: 10,
		model.CategoryMultiCap: 5,
	},
	model.RiskHigh: {
		model.CategoryLargeCap: 25,
		model.CategoryMidCap:   20,
		model.CategoryFlexiCap: 20,
		model.CategorySmallCap: 20,
		model.CategoryMultiCap: 15,
	},
}

// PlanAllocation returns the target category weights for a risk
// classification. Unknown levels fall back to the moderate row.
// The returned plan is a copy; callers may modify it freely.
func PlanAllocation(risk model.RiskLevel) model.AllocationPlan {
	row, ok := allocationTable[risk]
	if !ok {
		row = allocationTable[model.RiskModerate]
	}

	plan := make(model.AllocationPlan, len(row))
	for category, pct := range row {
		plan[category] = pct
	}
	return plan
}
