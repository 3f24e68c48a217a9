package engine_test

import (
	"math"
	"testing"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/engine"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/testutil"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRelativeScore(t *testing.T) {
	t.Run("computes weighted normalized score", func(t *testing.T) {
		fund := testutil.NewFund().
			WithAUM(12000).
			WithExpenseRatio(1.2).
			WithReturns(14.5, 13.0).
			WithRiskMetrics(2.0, 14.0, 1.1, 1.4).
			Record()

		// 0.15*0.6 + 0.10*0.9 + 0.25*0.725 + 0.20*0.65 +
		// 0.10*0.4 + 0.10*0.55 + 0.10*0.7
		if got := engine.RelativeScore(fund); !almostEqual(got, 0.65625) {
			t.Errorf("Expected score 0.65625, got %v", got)
		}
	})

	t.Run("caps AUM and return contributions", func(t *testing.T) {
		huge := testutil.NewFund().
			WithAUM(80000).
			WithReturns(45, 40).
			Record()
		capped := testutil.NewFund().
			WithAUM(20000).
			WithReturns(20, 20).
			Record()

		if got, want := engine.RelativeScore(huge), engine.RelativeScore(capped); !almostEqual(got, want) {
			t.Errorf("Expected capped metrics to score equally, got %v and %v", got, want)
		}
	})

	t.Run("negative alpha contributes nothing", func(t *testing.T) {
		flat := testutil.NewFund().WithRiskMetrics(0, 14, 1.1, 1.4).Record()
		negative := testutil.NewFund().WithRiskMetrics(-3, 14, 1.1, 1.4).Record()

		if got, want := engine.RelativeScore(negative), engine.RelativeScore(flat); !almostEqual(got, want) {
			t.Errorf("Expected negative alpha to floor at zero, got %v and %v", got, want)
		}
	})

	t.Run("expense ratio above 3 contributes nothing", func(t *testing.T) {
		atThree := testutil.NewFund().WithExpenseRatio(3.0).Record()
		aboveThree := testutil.NewFund().WithExpenseRatio(3.5).Record()

		if got, want := engine.RelativeScore(aboveThree), engine.RelativeScore(atThree); !almostEqual(got, want) {
			t.Errorf("Expected expense contribution to floor at zero, got %v and %v", got, want)
		}
	})
}

func TestCompositeScore(t *testing.T) {
	t.Run("computes weighted 0-100 score rounded to two decimals", func(t *testing.T) {
		fund := testutil.NewFund().
			WithAUM(12000).
			WithExpenseRatio(1.2).
			WithReturns(14.5, 13.0).
			WithRiskMetrics(2.0, 14.0, 1.1, 1.4).
			Record()

		// 12*0.15 + 88*0.10 + 14.5*0.20 + 13*0.20 + 52*0.15 + 22*0.10 + 28*0.10
		if got := engine.CompositeScore(fund); got != 28.9 {
			t.Errorf("Expected score 28.9, got %v", got)
		}
	})

	t.Run("zero metrics still earn expense and alpha floors", func(t *testing.T) {
		fund := model.FundRecord{}

		// Expense term 100*0.10, alpha term 50*0.15.
		if got := engine.CompositeScore(fund); got != 17.5 {
			t.Errorf("Expected score 17.5, got %v", got)
		}
	})
}

func TestRanking(t *testing.T) {
	t.Run("orders by descending score with ranks from 1", func(t *testing.T) {
		funds := []model.FundRecord{
			testutil.NewFund().WithID("weak").WithAUM(2000).WithReturns(8, 7).Record(),
			testutil.NewFund().WithID("strong").WithAUM(18000).WithReturns(19, 17).Record(),
			testutil.NewFund().WithID("middling").WithAUM(9000).WithReturns(13, 12).Record(),
		}

		ranked := engine.RankByRelativeScore(funds)

		if len(ranked) != 3 {
			t.Fatalf("Expected 3 scored funds, got %d", len(ranked))
		}
		if ranked[0].ID != "strong" || ranked[1].ID != "middling" || ranked[2].ID != "weak" {
			t.Errorf("Unexpected order: %s, %s, %s", ranked[0].ID, ranked[1].ID, ranked[2].ID)
		}
		for i, f := range ranked {
			if f.Rank != i+1 {
				t.Errorf("Expected rank %d at position %d, got %d", i+1, i, f.Rank)
			}
		}
		if ranked[0].Score < ranked[1].Score || ranked[1].Score < ranked[2].Score {
			t.Error("Scores are not non-increasing")
		}
	})

	t.Run("equal scores keep input order", func(t *testing.T) {
		// Builder defaults give both funds identical metrics.
		first := testutil.NewFund().WithID("first").Record()
		second := testutil.NewFund().WithID("second").Record()

		ranked := engine.RankByRelativeScore([]model.FundRecord{first, second})

		if ranked[0].ID != "first" || ranked[1].ID != "second" {
			t.Errorf("Stable sort violated: got %s then %s", ranked[0].ID, ranked[1].ID)
		}
	})

	t.Run("composite ranking does not mutate input", func(t *testing.T) {
		funds := []model.FundRecord{
			testutil.NewFund().WithID("a").Record(),
			testutil.NewFund().WithID("b").WithAUM(50000).Record(),
		}

		engine.RankByCompositeScore(funds)

		if funds[0].ID != "a" || funds[1].ID != "b" {
			t.Error("Input slice was reordered")
		}
	})

	t.Run("empty input yields empty ranking", func(t *testing.T) {
		if got := engine.RankByCompositeScore(nil); len(got) != 0 {
			t.Errorf("Expected empty ranking, got %d entries", len(got))
		}
	})
}
