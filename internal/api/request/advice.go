package request

import "github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"

// AnalyzeRequest is the body of POST /api/advice/analyze. Required numeric
// fields are pointers so that absent and zero can be told apart during
// validation.
type AnalyzeRequest struct {
	Name             string   `json:"name"`
	Age              *int     `json:"age"`
	AnnualIncome     *float64 `json:"annual_income"`
	InvestmentAmount *float64 `json:"investment_amount"`
	RiskTolerance    string   `json:"risk_tolerance"`

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

// ToProfile converts a validated request into the engine's UserProfile,
// filling the documented defaults for optional fields.
func (r AnalyzeRequest) ToProfile() model.UserProfile {
	profile := model.UserProfile{
		Name:                r.Name,
		RiskTolerance:       model.ParseRiskLevel(r.RiskTolerance),
		InvestmentGoal:      defaultString(r.InvestmentGoal, "wealth_creation"),
		InvestmentHorizon:   defaultString(r.InvestmentHorizon, "5-10 years"),
		MonthlySIP:          r.MonthlySIP,
		ExistingInvestments: r.ExistingInvestments,
		TaxBracket:          r.TaxBracket,
		EmergencyFund:       defaultString(r.EmergencyFund, "yes"),
		FundTypePreference:  defaultString(r.FundTypePreference, "direct"),
		ESGPreference:       defaultString(r.ESGPreference, "no_preference"),
		DividendPreference:  defaultString(r.DividendPreference, "growth"),
		LumpsumInvestment:   r.LumpsumInvestment,
		SIPInvestment:       r.SIPInvestment,
	}
	if r.Age != nil {
		profile.Age = *r.Age
	}
	if r.AnnualIncome != nil {
		profile.AnnualIncome = *r.AnnualIncome
	}
	if r.InvestmentAmount != nil {
		profile.InvestmentAmount = *r.InvestmentAmount
	}
	if r.TaxBracket == 0 {
		profile.TaxBracket = 20
	}
	return profile
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// TopFundsRequest is the body of POST /api/fund/top.
type TopFundsRequest struct {
	Category string `json:"category"`
}

// NarrativeKeyRequest is the body of PUT /api/developer/narrative-key.
type NarrativeKeyRequest struct {
	APIKey string `json:"api_key"`
}
