package testutil

import (
	"database/sql"
	"testing"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
)

// FundBuilder provides a fluent interface for creating test funds.
//
// Example usage:
//
//	// In-memory record for engine and catalog tests
//	fund := testutil.NewFund().WithCategory(model.CategoryMidCap).Record()
//
//	// Persisted row for repository and service tests
//	fund := testutil.NewFund().
//	    WithName("Custom Fund").
//	    WithExpenseRatio(0.9).
//	    Build(t, db)
type FundBuilder struct {
	record    model.FundRecord
	sortOrder int
}

// NewFund creates a FundBuilder with sensible defaults. The defaults
// describe a mid-sized large cap fund that passes catalog validation.
func NewFund() *FundBuilder {
	return &FundBuilder{
		record: model.FundRecord{
			ID:                   MakeID(),
			Name:                 MakeFundName("Test Fund"),
			FundManager:          "Test Manager",
			Category:             model.CategoryLargeCap,
			AUMCr:                12000,
			ExpenseRatio:         1.2,
			SIP5YrReturn:         14.5,
			SIP10YrReturn:        13.0,
			Alpha:                2.0,
			Beta:                 0.95,
			StdDev:               14.0,
			SharpeRatio:          1.1,
			SortinoRatio:         1.4,
			NAV:                  250.0,
			MinInvestment:        500,
			ESGScore:             6.5,
			VolatilityRank:       model.RiskModerate,
			PeerRank:             5,
			RiskAdjustedReturn:   7.5,
			DiversificationScore: 75,
		},
	}
}

// WithID sets a custom ID.
func (b *FundBuilder) WithID(id string) *FundBuilder {
	b.record.ID = id
	return b
}

// WithName sets a custom name.
func (b *FundBuilder) WithName(name string) *FundBuilder {
	b.record.Name = name
	return b
}

// WithCategory sets the fund category.
func (b *FundBuilder) WithCategory(category model.Category) *FundBuilder {
	b.record.Category = category
	return b
}

// WithAUM sets the assets under management in crores.
func (b *FundBuilder) WithAUM(aumCr float64) *FundBuilder {
	b.record.AUMCr = aumCr
	return b
}

// WithExpenseRatio sets the expense ratio percentage.
func (b *FundBuilder) WithExpenseRatio(ratio float64) *FundBuilder {
	b.record.ExpenseRatio = ratio
	return b
}

// WithReturns sets the 5 and 10 year SIP returns.
func (b *FundBuilder) WithReturns(fiveYr, tenYr float64) *FundBuilder {
	b.record.SIP5YrReturn = fiveYr
	b.record.SIP10YrReturn = tenYr
	return b
}

// WithRiskMetrics sets alpha, standard deviation, sharpe and sortino ratios.
func (b *FundBuilder) WithRiskMetrics(alpha, stdDev, sharpe, sortino float64) *FundBuilder {
	b.record.Alpha = alpha
	b.record.StdDev = stdDev
	b.record.SharpeRatio = sharpe
	b.record.SortinoRatio = sortino
	return b
}

// WithVolatilityRank sets the volatility band.
func (b *FundBuilder) WithVolatilityRank(rank model.RiskLevel) *FundBuilder {
	b.record.VolatilityRank = rank
	return b
}

// WithPeerRank sets the peer ranking position.
func (b *FundBuilder) WithPeerRank(rank int) *FundBuilder {
	b.record.PeerRank = rank
	return b
}

// WithESGScore sets the ESG score.
func (b *FundBuilder) WithESGScore(score float64) *FundBuilder {
	b.record.ESGScore = score
	return b
}

// WithRiskAdjustedReturn sets the risk adjusted return.
func (b *FundBuilder) WithRiskAdjustedReturn(rar float64) *FundBuilder {
	b.record.RiskAdjustedReturn = rar
	return b
}

// WithDiversificationScore sets the diversification score.
func (b *FundBuilder) WithDiversificationScore(score float64) *FundBuilder {
	b.record.DiversificationScore = score
	return b
}

// WithSchemeCode sets the AMFI scheme code.
func (b *FundBuilder) WithSchemeCode(code string) *FundBuilder {
	b.record.SchemeCode = code
	return b
}

// WithSortOrder sets the catalog ordering position within the category.
func (b *FundBuilder) WithSortOrder(order int) *FundBuilder {
	b.sortOrder = order
	return b
}

// Record returns the built record without persisting it. Useful for
// engine and catalog tests that need no database.
func (b *FundBuilder) Record() model.FundRecord {
	return b.record
}

// Build inserts the fund into the database and returns the record.
func (b *FundBuilder) Build(t *testing.T, db *sql.DB) model.FundRecord {
	t.Helper()

	query := `
		INSERT INTO fund (
			id, name, fund_manager, category, sort_order,
			aum_cr, expense_ratio, sip_5yr_return, sip_10yr_return,
			alpha, beta, std_dev, sharpe_ratio, sortino_ratio,
			nav, min_investment, esg_score, volatility_rank, peer_rank,
			risk_adjusted_return, diversification_score, scheme_code
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var schemeCode any
	if b.record.SchemeCode != "" {
		schemeCode = b.record.SchemeCode
	}

	_, err := db.Exec(query,
		b.record.ID, b.record.Name, b.record.FundManager, string(b.record.Category), b.sortOrder,
		b.record.AUMCr, b.record.ExpenseRatio, b.record.SIP5YrReturn, b.record.SIP10YrReturn,
		b.record.Alpha, b.record.Beta, b.record.StdDev, b.record.SharpeRatio, b.record.SortinoRatio,
		b.record.NAV, b.record.MinInvestment, b.record.ESGScore, string(b.record.VolatilityRank), b.record.PeerRank,
		b.record.RiskAdjustedReturn, b.record.DiversificationScore, schemeCode,
	)
	if err != nil {
		t.Fatalf("Failed to create test fund: %v", err)
	}

	return b.record
}

// SampleFunds returns an in-memory catalog covering every category with two
// funds each. Within each category the first fund dominates the second on
// every scored metric, so ranking assertions are unambiguous.
func SampleFunds() []model.FundRecord {
	funds := make([]model.FundRecord, 0, len(model.Categories())*2)
	for i, category := range model.Categories() {
		leader := NewFund().
			WithID(string(category) + "-1").
			WithName(MakeFundName(category.Title() + " Leader")).
			WithCategory(category).
			WithAUM(15000 + float64(i)*1000).
			WithExpenseRatio(0.8).
			WithReturns(18, 16).
			WithRiskMetrics(3.5, 13, 1.4, 1.8).
			WithPeerRank(1).
			WithESGScore(8.0).
			WithRiskAdjustedReturn(9.5).
			WithDiversificationScore(85).
			Record()
		laggard := NewFund().
			WithID(string(category) + "-2").
			WithName(MakeFundName(category.Title() + " Laggard")).
			WithCategory(category).
			WithAUM(4000 + float64(i)*500).
			WithExpenseRatio(2.1).
			WithReturns(11, 10).
			WithRiskMetrics(0.5, 19, 0.7, 0.9).
			WithPeerRank(8).
			WithESGScore(5.0).
			WithRiskAdjustedReturn(4.5).
			WithDiversificationScore(55).
			Record()
		funds = append(funds, leader, laggard)
	}
	return funds
}

// CreateFund creates a fund with the given category and default values.
func CreateFund(t *testing.T, db *sql.DB, category model.Category) model.FundRecord {
	t.Helper()
	return NewFund().WithCategory(category).Build(t, db)
}
