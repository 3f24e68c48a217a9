package service_test

import (
	"testing"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/catalog"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/service"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/testutil"
)

func TestSystemService(t *testing.T) {
	t.Run("health check passes on an open database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ss := service.NewSystemService(db, testutil.NewTestCatalogStore(t, nil))

		if err := ss.CheckHealth(); err != nil {
			t.Errorf("Expected healthy, got %v", err)
		}
	})

	t.Run("health check fails on a closed database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ss := service.NewSystemService(db, testutil.NewTestCatalogStore(t, nil))

		db.Close()

		if err := ss.CheckHealth(); err == nil {
			t.Error("Expected an error on a closed database")
		}
	})

	t.Run("catalog status reflects the published snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		store := testutil.NewTestCatalogStore(t, testutil.SampleFunds())
		ss := service.NewSystemService(db, store)

		size, loadedAt := ss.CatalogStatus()

		if size != len(testutil.SampleFunds()) {
			t.Errorf("Expected snapshot size %d, got %d", len(testutil.SampleFunds()), size)
		}
		if loadedAt.IsZero() {
			t.Error("Expected a load timestamp")
		}

		store.Swap(catalog.New(nil))

		size, _ = ss.CatalogStatus()
		if size != 0 {
			t.Errorf("Expected swapped snapshot size 0, got %d", size)
		}
	})
}
