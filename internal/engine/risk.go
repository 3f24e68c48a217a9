package engine

import (
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/apperrors"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
)

// Risk signal thresholds. These bands are policy constants; together with a
// declared-tolerance override they fully determine the classification.
const (
	ageBandYoung = 30 // below: high risk capacity
	ageBandOld   = 50 // at or above: low risk capacity

	incomeBandLow  = 500_000   // below: low income signal
	incomeBandHigh = 1_500_000 // at or above: high income signal

	investRatioConservative = 0.5 // above: investing most of income, go low
	investRatioModerate     = 0.2 // above: moderate; at or below: high
)

// ClassifyRisk derives a risk classification from the investor's profile.
//
// Three signals are derived (age band, income band, investment-to-income
// intensity) and combined by majority vote, unless the declared tolerance is
// an explicit "low" or "high", which overrides unconditionally. A declared
// "moderate" (or absent) tolerance defers to the derived signals.
//
// The function is deterministic and total over valid profiles; it fails only
// for age<=0, income<0, or a negative investment amount.
func ClassifyRisk(profile model.UserProfile) (model.RiskLevel, error) {
	if profile.Age <= 0 {
		return "", apperrors.ErrInvalidAge
	}
	if profile.AnnualIncome < 0 {
		return "", apperrors.ErrNegativeIncome
	}
	if profile.InvestmentAmount < 0 {
		return "", apperrors.ErrNegativeAmount
	}

	var ageRisk model.RiskLevel
	switch {
	case profile.Age < ageBandYoung:
		ageRisk = model.RiskHigh
	case profile.Age < ageBandOld:
		ageRisk = model.RiskModerate
	default:
		ageRisk = model.RiskLow
	}

	var incomeRisk model.RiskLevel
	switch {
	case profile.AnnualIncome < incomeBandLow:
		incomeRisk = model.RiskLow
	case profile.AnnualIncome < incomeBandHigh:
		incomeRisk = model.RiskModerate
	default:
		incomeRisk = model.RiskHigh
	}

	// Zero income means the ratio guard kicks in: ratio 0, highest
	// affordability tier, never a division by zero.
	var ratio float64
	if profile.AnnualIncome > 0 {
		ratio = profile.InvestmentAmount / profile.AnnualIncome
	}

	var intensityRisk model.RiskLevel
	switch {
	case ratio > investRatioConservative:
		intensityRisk = model.RiskLow
	case ratio > investRatioModerate:
		intensityRisk = model.RiskModerate
	default:
		intensityRisk = model.RiskHigh
	}

	switch profile.RiskTolerance {
	case model.RiskLow, model.RiskHigh:
		return profile.RiskTolerance, nil
	}

	counts := map[model.RiskLevel]int{}
	for _, r := range []model.RiskLevel{ageRisk, incomeRisk, intensityRisk} {
		counts[r]++
	}

	switch {
	case counts[model.RiskHigh] >= 2:
		return model.RiskHigh, nil
	case counts[model.RiskLow] >= 2:
		return model.RiskLow, nil
	default:
		return model.RiskModerate, nil
	}
}
