package model

// AnalysisReport aggregates the derived analytics for a specific fund
// selection and user profile. Built per request, discarded after the
// response is written.
type AnalysisReport struct {
	Projections     Projection                  `json:"projections"`
	Diversification Diversification             `json:"diversification_score"`
	ExpenseImpact   ExpenseImpact               `json:"expense_impact"`
	Volatility      VolatilityAnalysis          `json:"volatility_analysis"`
	PeerComparison  map[Category]PeerComparison `json:"peer_comparison"`
	RiskWarnings    []string                    `json:"risk_warnings"`
}

// Projection is the SIP growth projection. The zero value means no monthly
// contribution was declared; an empty projection is a valid result.
type Projection struct {
	MonthlySIP      float64 `json:"monthly_sip"`
	TotalInvestment float64 `json:"total_investment"`
	ProjectedValue  float64 `json:"projected_value"`
	ExpectedReturn  float64 `json:"expected_return"`
	TimePeriodYears int     `json:"time_period"`
}

// Diversification scores how spread the selection is across categories and
// funds. Score tops out at 150 (100 category + 50 fund).
type Diversification struct {
	Score      int    `json:"score"`
	Categories int    `json:"categories"`
	TotalFunds int    `json:"total_funds"`
	Assessment string `json:"assessment"`
}

// ExpenseImpact estimates the fee drag of the selection over the investment
// horizon, compared against a fixed low-cost baseline.
type ExpenseImpact struct {
	AverageExpenseRatio    float64 `json:"average_expense_ratio"`
	TotalExpenseOverPeriod float64 `json:"total_expense_over_period"`
	PotentialSavings       float64 `json:"potential_savings"`
	ImpactAssessment       string  `json:"impact_assessment"`
}

// VolatilityBreakdown counts selected funds per volatility rank.
type VolatilityBreakdown struct {
	Low      int `json:"low"`
	Moderate int `json:"moderate"`
	High     int `json:"high"`
}

// VolatilityAnalysis summarizes the volatility exposure of the selection.
type VolatilityAnalysis struct {
	Breakdown                VolatilityBreakdown `json:"volatility_breakdown"`
	HighVolatilityPercentage float64             `json:"high_volatility_percentage"`
	RiskAssessment           string              `json:"risk_assessment"`
}

// PeerComparison describes why the top fund of a category stands out against
// its peers.
type PeerComparison struct {
	FundName             string  `json:"fund_name"`
	PeerRank             int     `json:"peer_rank"`
	RiskAdjustedReturn   float64 `json:"risk_adjusted_return"`
	ESGScore             float64 `json:"esg_score"`
	DiversificationScore float64 `json:"diversification_score"`
	WhyBetter            string  `json:"why_better"`
}
