package model

// UserProfile is the investor's declared financial profile as submitted with
// an advice request. It is request-scoped and never persisted.
type UserProfile struct {
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	AnnualIncome     float64   `json:"annual_income"`
	InvestmentAmount float64   `json:"investment_amount"`
	RiskTolerance    RiskLevel `json:"risk_tolerance"`

	InvestmentGoal    string  `json:"investment_goal"`
	InvestmentHorizon string  `json:"investment_horizon"`
	MonthlySIP        float64 `json:"monthly_sip"`

	ExistingInvestments float64 `json:"existing_investments"`
	TaxBracket          int     `json:"tax_bracket"`
	EmergencyFund       string  `json:"emergency_fund"`
	FundTypePreference  string  `json:"fund_type_preference"`
	ESGPreference       string  `json:"esg_preference"`
	DividendPreference  string  `json:"dividend_preference"`
	LumpsumInvestment   float64 `json:"lumpsum_investment"`
	SIPInvestment       float64 `json:"sip_investment"`
}
