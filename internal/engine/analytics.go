package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
)

// Analytics policy constants.
const (
	// assumedAnnualReturn is the fixed growth assumption for SIP
	// projections, in percent.
	assumedAnnualReturn = 12.0

	// baselineExpenseRatio is the low-cost reference ratio, in percent,
	// that expense-impact savings are measured against.
	baselineExpenseRatio = 1.5

	// defaultHorizonYears applies when the horizon string matches no bucket.
	defaultHorizonYears = 7
)

// Analyze computes the full analytics bundle for a fund selection and user
// profile. Every sub-analysis is pure; an empty selection produces neutral
// zero values rather than errors.
func Analyze(profile model.UserProfile, selection map[model.Category][]model.ScoredFund) model.AnalysisReport {
	return model.AnalysisReport{
		Projections:     ProjectSIP(profile),
		Diversification: DiversificationScore(selection),
		ExpenseImpact:   ExpenseImpact(profile, selection),
		Volatility:      AnalyzeVolatility(selection),
		PeerComparison:  PeerComparison(selection),
		RiskWarnings:    RiskWarnings(profile, selection),
	}
}

// HorizonYears maps the free-form horizon bucket string to a year count.
// Unrecognized strings fall back to the seven-year default.
func HorizonYears(horizon string) int {
	switch {
	case strings.Contains(horizon, "1-3"):
		return 2
	case strings.Contains(horizon, "3-5"):
		return 4
	case strings.Contains(horizon, "5-10"):
		return 7
	case strings.Contains(horizon, "10-15"):
		return 12
	case strings.Contains(horizon, "15+"):
		return 20
	}
	return defaultHorizonYears
}

// ProjectSIP computes the SIP growth projection. A zero monthly contribution
// yields an empty projection.
//
// The future value applies the annual rate with a months exponent and a
// trailing annuity-due factor:
//
//	sip * (((1+R)^(12y) - 1) / R) * (1+R), R = annual rate / 100
//
// The convention is unusual but user-visible, so it is reproduced as-is
// rather than re-derived.
func ProjectSIP(profile model.UserProfile) model.Projection {
	if profile.MonthlySIP <= 0 {
		return model.Projection{}
	}

	years := HorizonYears(profile.InvestmentHorizon)
	r := assumedAnnualReturn / 100

	return model.Projection{
		MonthlySIP:      profile.MonthlySIP,
		TotalInvestment: profile.MonthlySIP * 12 * float64(years),
		ProjectedValue:  profile.MonthlySIP * ((math.Pow(1+r, float64(years*12)) - 1) / r) * (1 + r),
		ExpectedReturn:  assumedAnnualReturn,
		TimePeriodYears: years,
	}
}

// DiversificationScore scores the selection's spread: up to 100 points for
// category coverage (20 per category) and up to 50 for fund count (10 per
// fund), 150 max.
func DiversificationScore(selection map[model.Category][]model.ScoredFund) model.Diversification {
	categories := len(selection)
	totalFunds := 0
	for _, funds := range selection {
		totalFunds += len(funds)
	}

	categoryScore := min(categories*20, 100)
	fundScore := min(totalFunds*10, 50)
	total := categoryScore + fundScore

	return model.Diversification{
		Score:      total,
		Categories: categories,
		TotalFunds: totalFunds,
		Assessment: diversificationAssessment(total),
	}
}

func diversificationAssessment(score int) string {
	switch {
	case score >= 120:
		return "Excellent - Well diversified across categories"
	case score >= 100:
		return "Good - Balanced diversification"
	case score >= 80:
		return "Moderate - Some concentration risk"
	default:
		return "Limited - Consider adding more categories"
	}
}

// ExpenseImpact estimates fee drag over the investment horizon and the
// potential savings against the baseline ratio. Returns the zero value for
// an empty selection.
func ExpenseImpact(profile model.UserProfile, selection map[model.Category][]model.ScoredFund) model.ExpenseImpact {
	var totalRatio float64
	var count int
	for _, funds := range selection {
		for _, f := range funds {
			totalRatio += f.ExpenseRatio
			count++
		}
	}
	if count == 0 {
		return model.ExpenseImpact{}
	}

	avgExpense := totalRatio / float64(count)
	years := float64(HorizonYears(profile.InvestmentHorizon))

	annualExpense := (avgExpense / 100) * profile.InvestmentAmount
	totalExpense := annualExpense * years

	baselineAnnual := (baselineExpenseRatio / 100) * profile.InvestmentAmount
	savings := totalExpense - baselineAnnual*years

	return model.ExpenseImpact{
		AverageExpenseRatio:    avgExpense,
		TotalExpenseOverPeriod: totalExpense,
		PotentialSavings:       savings,
		ImpactAssessment:       expenseAssessment(avgExpense),
	}
}

func expenseAssessment(avgExpense float64) string {
	switch {
	case avgExpense <= 1.5:
		return "Excellent - Low cost funds"
	case avgExpense <= 2.0:
		return "Good - Reasonable costs"
	case avgExpense <= 2.5:
		return "Moderate - Higher than average costs"
	default:
		return "High - Consider lower cost alternatives"
	}
}

// AnalyzeVolatility counts funds per volatility rank and assesses the share
// of high-volatility holdings. Returns the zero value for an empty
// selection.
func AnalyzeVolatility(selection map[model.Category][]model.ScoredFund) model.VolatilityAnalysis {
	var breakdown model.VolatilityBreakdown
	total := 0
	for _, funds := range selection {
		for _, f := range funds {
			switch f.VolatilityRank {
			case model.RiskLow:
				breakdown.Low++
			case model.RiskHigh:
				breakdown.High++
			default:
				breakdown.Moderate++
			}
			total++
		}
	}
	if total == 0 {
		return model.VolatilityAnalysis{}
	}

	highPct := float64(breakdown.High) / float64(total) * 100

	return model.VolatilityAnalysis{
		Breakdown:                breakdown,
		HighVolatilityPercentage: highPct,
		RiskAssessment:           volatilityAssessment(highPct),
	}
}

func volatilityAssessment(highPct float64) string {
	switch {
	case highPct == 0:
		return "Low volatility portfolio - Stable returns expected"
	case highPct <= 25:
		return "Moderate volatility - Some fluctuation expected"
	case highPct <= 50:
		return "Higher volatility - Significant fluctuations possible"
	default:
		return "High volatility - Be prepared for large swings"
	}
}

// PeerComparison builds a comparison entry for the top-ranked fund in each
// category of the selection.
func PeerComparison(selection map[model.Category][]model.ScoredFund) map[model.Category]model.PeerComparison {
	comparisons := make(map[model.Category]model.PeerComparison)
	for category, funds := range selection {
		if len(funds) == 0 {
			continue
		}
		top := funds[0]
		comparisons[category] = model.PeerComparison{
			FundName:             top.Name,
			PeerRank:             top.PeerRank,
			RiskAdjustedReturn:   top.RiskAdjustedReturn,
			ESGScore:             top.ESGScore,
			DiversificationScore: top.DiversificationScore,
			WhyBetter:            whyBetter(top.FundRecord),
		}
	}
	return comparisons
}

// whyBetter joins the threshold-rule reasons a fund stands out, or falls
// back to a neutral phrase when none match.
func whyBetter(f model.FundRecord) string {
	var reasons []string

	if f.PeerRank > 0 && f.PeerRank <= 3 {
		reasons = append(reasons, fmt.Sprintf("Top %d in its category", f.PeerRank))
	}
	if f.RiskAdjustedReturn > 8 {
		reasons = append(reasons, "Excellent risk-adjusted returns")
	}
	if f.ESGScore > 7 {
		reasons = append(reasons, "Strong ESG compliance")
	}
	if f.DiversificationScore > 80 {
		reasons = append(reasons, "Well-diversified portfolio")
	}
	if f.ExpenseRatio < 2 {
		reasons = append(reasons, "Competitive expense ratio")
	}

	if len(reasons) == 0 {
		return "Balanced performance across key metrics"
	}
	return strings.Join(reasons, "; ")
}

// RiskWarnings emits a warning per high-volatility fund, per fund with a
// standard deviation above 20%, and per small-cap selection when the
// investor declared a low risk tolerance.
func RiskWarnings(profile model.UserProfile, selection map[model.Category][]model.ScoredFund) []string {
	var warnings []string

	for _, category := range orderedCategories(selection) {
		for _, f := range selection[category] {
			if f.VolatilityRank == model.RiskHigh {
				warnings = append(warnings, fmt.Sprintf(
					"%s is a high-volatility fund. Be prepared for significant price fluctuations.", f.Name))
			}
			if f.StdDev > 20 {
				warnings = append(warnings, fmt.Sprintf(
					"%s has high standard deviation (%.1f%%). Higher risk of losses.", f.Name, f.StdDev))
			}
			if category == model.CategorySmallCap && profile.RiskTolerance == model.RiskLow {
				warnings = append(warnings, fmt.Sprintf(
					"%s is a small-cap fund, which may not suit conservative investors.", f.Name))
			}
		}
	}

	return warnings
}

// orderedCategories returns the selection's categories in canonical order,
// so that warning output is deterministic across requests.
func orderedCategories(selection map[model.Category][]model.ScoredFund) []model.Category {
	ordered := make([]model.Category, 0, len(selection))
	for _, category := range model.Categories() {
		if _, ok := selection[category]; ok {
			ordered = append(ordered, category)
		}
	}
	return ordered
}
