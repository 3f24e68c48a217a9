package repository

import (
	"database/sql"
	"fmt"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
)

// FundRepository provides data access methods for the fund table.
// It only reads: the table is the catalog's source of record, written by
// migrations (and, in deployments with a data pipeline, by imports).
type FundRepository struct {
	db *sql.DB
}

// NewFundRepository creates a new FundRepository with the provided database
// connection.
func NewFundRepository(db *sql.DB) *FundRepository {
	return &FundRepository{db: db}
}

// GetAllFunds retrieves every fund ordered by category and catalog order.
// The order is significant: it is the stable-sort tie-break for equal-score
// funds.
func (r *FundRepository) GetAllFunds() ([]model.FundRecord, error) {
	query := `
		SELECT id, name, fund_manager, category, aum_cr, expense_ratio,
		       sip_5yr_return, sip_10yr_return, alpha, beta, std_dev,
		       sharpe_ratio, sortino_ratio, nav, min_investment, esg_score,
		       volatility_rank, peer_rank, risk_adjusted_return,
		       diversification_score, scheme_code
		FROM fund
		ORDER BY category, sort_order
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund table: %w", err)
	}
	defer rows.Close()

	funds := []model.FundRecord{}

	for rows.Next() {
		var f model.FundRecord
		var category, volatility string
		var schemeCode sql.NullString

		err := rows.Scan(
			&f.ID,
			&f.Name,
			&f.FundManager,
			&category,
			&f.AUMCr,
			&f.ExpenseRatio,
			&f.SIP5YrReturn,
			&f.SIP10YrReturn,
			&f.Alpha,
			&f.Beta,
			&f.StdDev,
			&f.SharpeRatio,
			&f.SortinoRatio,
			&f.NAV,
			&f.MinInvestment,
			&f.ESGScore,
			&volatility,
			&f.PeerRank,
			&f.RiskAdjustedReturn,
			&f.DiversificationScore,
			&schemeCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fund table results: %w", err)
		}

		f.Category, err = model.ParseCategory(category)
		if err != nil {
			return nil, fmt.Errorf("fund %s: %w", f.ID, err)
		}
		f.VolatilityRank = model.ParseRiskLevel(volatility)
		f.SchemeCode = schemeCode.String

		funds = append(funds, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund table: %w", err)
	}

	return funds, nil
}
