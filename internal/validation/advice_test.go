package validation_test

import (
	"errors"
	"testing"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/api/request"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/validation"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestValidateAnalyzeRequest(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := request.AnalyzeRequest{
			Age:              intPtr(30),
			AnnualIncome:     floatPtr(800000),
			InvestmentAmount: floatPtr(100000),
		}

		if err := validation.ValidateAnalyzeRequest(req); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("missing required fields are reported per field", func(t *testing.T) {
		err := validation.ValidateAnalyzeRequest(request.AnalyzeRequest{})

		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("Expected a validation error, got %v", err)
		}
		for _, field := range []string{"age", "annual_income", "investment_amount"} {
			if _, ok := verr.Fields[field]; !ok {
				t.Errorf("Expected a message for %s, got %v", field, verr.Fields)
			}
		}
	})

	t.Run("zero age is rejected", func(t *testing.T) {
		req := request.AnalyzeRequest{
			Age:              intPtr(0),
			AnnualIncome:     floatPtr(800000),
			InvestmentAmount: floatPtr(100000),
		}

		err := validation.ValidateAnalyzeRequest(req)

		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("Expected a validation error, got %v", err)
		}
		if _, ok := verr.Fields["age"]; !ok {
			t.Errorf("Expected an age message, got %v", verr.Fields)
		}
	})

	t.Run("negative optional amounts are rejected", func(t *testing.T) {
		req := request.AnalyzeRequest{
			Age:                 intPtr(30),
			AnnualIncome:        floatPtr(800000),
			InvestmentAmount:    floatPtr(100000),
			MonthlySIP:          -1,
			ExistingInvestments: -500,
		}

		err := validation.ValidateAnalyzeRequest(req)

		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("Expected a validation error, got %v", err)
		}
		if len(verr.Fields) != 2 {
			t.Errorf("Expected 2 field messages, got %v", verr.Fields)
		}
	})

	t.Run("error text joins field messages", func(t *testing.T) {
		err := validation.ValidateAnalyzeRequest(request.AnalyzeRequest{
			Age:              intPtr(30),
			AnnualIncome:     floatPtr(800000),
			InvestmentAmount: nil,
		})

		if err == nil || err.Error() != "investment_amount: investment amount is required" {
			t.Errorf("Unexpected error text: %v", err)
		}
	})
}
