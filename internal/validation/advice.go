package validation

import "github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/api/request"

// ValidateAnalyzeRequest checks the advice request's required and numeric
// fields. Domain rules (age>0, income>=0) are re-checked by the engine; this
// catches missing fields before a profile is even built.
func ValidateAnalyzeRequest(req request.AnalyzeRequest) error {
	errors := make(map[string]string)

	switch {
	case req.Age == nil:
		errors["age"] = "age is required"
	case *req.Age <= 0:
		errors["age"] = "age must be greater than zero"
	}

	switch {
	case req.AnnualIncome == nil:
		errors["annual_income"] = "annual income is required"
	case *req.AnnualIncome < 0:
		errors["annual_income"] = "annual income cannot be negative"
	}

	switch {
	case req.InvestmentAmount == nil:
		errors["investment_amount"] = "investment amount is required"
	case *req.InvestmentAmount < 0:
		errors["investment_amount"] = "investment amount cannot be negative"
	}

	if req.MonthlySIP < 0 {
		errors["monthly_sip"] = "monthly SIP cannot be negative"
	}
	if req.ExistingInvestments < 0 {
		errors["existing_investments"] = "existing investments cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
