package model

// FundRecord holds the metrics for a single mutual fund as loaded from the
// catalog. Records are immutable once loaded; request-scoped computations
// wrap them in ScoredFund projections instead of mutating them.
type FundRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	FundManager string   `json:"fund_manager"`
	Category    Category `json:"category"`

	AUMCr          float64   `json:"aum_cr"`
	ExpenseRatio   float64   `json:"expense_ratio"`
	SIP5YrReturn   float64   `json:"sip_5yr_return"`
	SIP10YrReturn  float64   `json:"sip_10yr_return"`
	Alpha          float64   `json:"alpha"`
	Beta           float64   `json:"beta"`
	StdDev         float64   `json:"std_dev"`
	SharpeRatio    float64   `json:"sharpe_ratio"`
	SortinoRatio   float64   `json:"sortino_ratio"`
	NAV            float64   `json:"nav"`
	MinInvestment  float64   `json:"min_investment"`
	ESGScore       float64   `json:"esg_score"`
	VolatilityRank RiskLevel `json:"volatility_rank"`
	PeerRank       int       `json:"peer_rank"`

	RiskAdjustedReturn   float64 `json:"risk_adjusted_return"`
	DiversificationScore float64 `json:"diversification_score"`

	// SchemeCode is the AMFI scheme code used to overlay live NAVs during
	// catalog refresh. Empty for funds without a feed mapping.
	SchemeCode string `json:"scheme_code,omitempty"`
}

// ScoredFund pairs a catalog record with its computed score and rank for the
// current request. It is a read-only projection: the embedded record is a
// copy, so the shared catalog is never touched.
type ScoredFund struct {
	FundRecord

	Score   float64 `json:"score"`
	Rank    int     `json:"rank"`
	GrowURL string  `json:"grow_url,omitempty"`
}
