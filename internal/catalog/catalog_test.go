package catalog_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/apperrors"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/catalog"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/testutil"
)

func TestCatalog(t *testing.T) {
	t.Run("indexes funds by category preserving input order", func(t *testing.T) {
		first := testutil.NewFund().WithID("lc-1").WithCategory(model.CategoryLargeCap).Record()
		second := testutil.NewFund().WithID("lc-2").WithCategory(model.CategoryLargeCap).Record()
		other := testutil.NewFund().WithID("mc-1").WithCategory(model.CategoryMidCap).Record()

		c := catalog.New([]model.FundRecord{first, second, other})

		largeCaps := c.FundsByCategory(model.CategoryLargeCap)
		if len(largeCaps) != 2 {
			t.Fatalf("Expected 2 large cap funds, got %d", len(largeCaps))
		}
		if largeCaps[0].ID != "lc-1" || largeCaps[1].ID != "lc-2" {
			t.Errorf("Input order not preserved: %s, %s", largeCaps[0].ID, largeCaps[1].ID)
		}
		if c.Size() != 3 {
			t.Errorf("Expected size 3, got %d", c.Size())
		}
	})

	t.Run("unknown category yields empty slice", func(t *testing.T) {
		c := catalog.New(nil)

		if funds := c.FundsByCategory(model.CategorySmallCap); len(funds) != 0 {
			t.Errorf("Expected no funds, got %d", len(funds))
		}
	})

	t.Run("looks up funds by id", func(t *testing.T) {
		fund := testutil.NewFund().WithID("known").Record()
		c := catalog.New([]model.FundRecord{fund})

		got, err := c.FundByID("known")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got.ID != "known" {
			t.Errorf("Expected fund 'known', got %s", got.ID)
		}

		_, err = c.FundByID("missing")
		if !errors.Is(err, apperrors.ErrFundNotFound) {
			t.Errorf("Expected ErrFundNotFound, got %v", err)
		}
	})

	t.Run("records load timestamp", func(t *testing.T) {
		c := catalog.New(nil)

		if c.LoadedAt().IsZero() {
			t.Error("Expected a load timestamp")
		}
	})
}

func TestStore(t *testing.T) {
	t.Run("swap publishes a new snapshot", func(t *testing.T) {
		store := catalog.NewStore(catalog.New(nil))

		if store.Get().Size() != 0 {
			t.Fatalf("Expected empty initial catalog, got %d", store.Get().Size())
		}

		store.Swap(catalog.New(testutil.SampleFunds()))

		if got := store.Get().Size(); got != len(testutil.SampleFunds()) {
			t.Errorf("Expected swapped catalog size, got %d", got)
		}
	})

	t.Run("held snapshot survives a swap", func(t *testing.T) {
		fund := testutil.NewFund().WithID("original").Record()
		store := catalog.NewStore(catalog.New([]model.FundRecord{fund}))

		held := store.Get()
		store.Swap(catalog.New(nil))

		if _, err := held.FundByID("original"); err != nil {
			t.Errorf("Held snapshot lost its funds after swap: %v", err)
		}
		if store.Get().Size() != 0 {
			t.Errorf("Expected new snapshot to be empty, got %d", store.Get().Size())
		}
	})

	t.Run("concurrent readers never observe a partial catalog", func(t *testing.T) {
		funds := testutil.SampleFunds()
		store := catalog.NewStore(catalog.New(funds))

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c := store.Get()
					if size := c.Size(); size != len(funds) && size != 0 {
						t.Errorf("Observed partial catalog of size %d", size)
						return
					}
				}
			}()
		}
		for i := 0; i < 50; i++ {
			store.Swap(catalog.New(funds))
		}
		store.Swap(catalog.New(nil))
		wg.Wait()
	})
}
