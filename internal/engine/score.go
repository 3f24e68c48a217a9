package engine

import (
	"math"
	"sort"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
)

// scoreWeights holds the per-metric weights of a scoring mode. Each table
// sums to 1.0; the weights define the user-visible ranking and must not be
// tuned casually.
type scoreWeights struct {
	AUM     float64
	Expense float64
	Ret5Yr  float64
	Ret10Yr float64
	Alpha   float64
	Sharpe  float64
	Sortino float64
}

// relativeWeights drives per-category recommendation selection (sub-scores
// normalized to [0,1]).
var relativeWeights = scoreWeights{
	AUM:     0.15,
	Expense: 0.10,
	Ret5Yr:  0.25,
	Ret10Yr: 0.20,
	Alpha:   0.10,
	Sharpe:  0.10,
	Sortino: 0.10,
}

// compositeWeights drives the "top funds of category" listing (sub-scores on
// a 0-100 scale).
var compositeWeights = scoreWeights{
	AUM:     0.15,
	Expense: 0.10,
	Ret5Yr:  0.20,
	Ret10Yr: 0.20,
	Alpha:   0.15,
	Sharpe:  0.10,
	Sortino: 0.10,
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// RelativeScore computes the category-relative score of a fund on a 0-1
// scale: a weighted sum of normalized AUM, expense ratio (lower is better),
// SIP returns, alpha, Sharpe and Sortino ratios.
func RelativeScore(f model.FundRecord) float64 {
	aum := math.Min(f.AUMCr/20000, 1.0)
	expense := math.Max(0, (3.0-f.ExpenseRatio)/2.0)
	ret5 := math.Min(f.SIP5YrReturn/20, 1.0)
	ret10 := math.Min(f.SIP10YrReturn/20, 1.0)
	alpha := clamp(f.Alpha/5, 0, 1)
	sharpe := clamp(f.SharpeRatio/2, 0, 1)
	sortino := clamp(f.SortinoRatio/2, 0, 1)

	w := relativeWeights
	return w.AUM*aum +
		w.Expense*expense +
		w.Ret5Yr*ret5 +
		w.Ret10Yr*ret10 +
		w.Alpha*alpha +
		w.Sharpe*sharpe +
		w.Sortino*sortino
}

// CompositeScore computes the 0-100 composite score used for "best of
// category" listings, rounded to two decimal places.
func CompositeScore(f model.FundRecord) float64 {
	aum := math.Min(f.AUMCr/1000, 100)
	expense := math.Max(0, 100-f.ExpenseRatio*10)
	ret5 := math.Min(f.SIP5YrReturn, 100)
	ret10 := math.Min(f.SIP10YrReturn, 100)
	alpha := clamp(f.Alpha+50, 0, 100)
	sharpe := clamp(f.SharpeRatio*20, 0, 100)
	sortino := clamp(f.SortinoRatio*20, 0, 100)

	w := compositeWeights
	score := aum*w.AUM +
		expense*w.Expense +
		ret5*w.Ret5Yr +
		ret10*w.Ret10Yr +
		alpha*w.Alpha +
		sharpe*w.Sharpe +
		sortino*w.Sortino

	return math.Round(score*100) / 100
}

// rank scores every fund with the given function and returns projections
// ordered by descending score. The sort is stable: funds with equal scores
// keep their catalog order. Rank positions start at 1.
func rank(funds []model.FundRecord, score func(model.FundRecord) float64) []model.ScoredFund {
	scored := make([]model.ScoredFund, 0, len(funds))
	for _, f := range funds {
		scored = append(scored, model.ScoredFund{
			FundRecord: f,
			Score:      score(f),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}

// RankByRelativeScore orders funds by the category-relative score, used for
// recommendation selection within an allocation.
func RankByRelativeScore(funds []model.FundRecord) []model.ScoredFund {
	return rank(funds, RelativeScore)
}

// RankByCompositeScore orders funds by the 0-100 composite score, used for
// top-funds listings.
func RankByCompositeScore(funds []model.FundRecord) []model.ScoredFund {
	return rank(funds, CompositeScore)
}
