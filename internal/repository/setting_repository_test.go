package repository_test

import (
	"errors"
	"testing"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/apperrors"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/repository"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/testutil"
)

func TestSettingRepository(t *testing.T) {
	t.Run("plaintext setting round-trips", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := testutil.NewTestSettingRepository(t, db)

		if err := repo.Set("feature_flag", "enabled", false); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		value, err := repo.Get("feature_flag")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if value != "enabled" {
			t.Errorf("Expected 'enabled', got %q", value)
		}
	})

	t.Run("encrypted setting round-trips without plaintext at rest", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := testutil.NewTestSettingRepository(t, db)

		const secret = "gm-api-key-12345"
		if err := repo.Set("narrative_api_key", secret, true); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		var stored string
		if err := db.QueryRow(`SELECT value FROM setting WHERE name = 'narrative_api_key'`).Scan(&stored); err != nil {
			t.Fatalf("Failed to read raw value: %v", err)
		}
		if stored == secret {
			t.Error("Secret was stored as plaintext")
		}

		value, err := repo.Get("narrative_api_key")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if value != secret {
			t.Errorf("Expected decrypted secret, got %q", value)
		}
	})

	t.Run("set replaces the previous value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := testutil.NewTestSettingRepository(t, db)

		if err := repo.Set("narrative_api_key", "old", true); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if err := repo.Set("narrative_api_key", "new", true); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		testutil.AssertRowCount(t, db, "setting", 1)

		value, err := repo.Get("narrative_api_key")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if value != "new" {
			t.Errorf("Expected replaced value, got %q", value)
		}
	})

	t.Run("missing setting returns ErrSettingNotFound", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := testutil.NewTestSettingRepository(t, db)

		_, err := repo.Get("nonexistent")
		if !errors.Is(err, apperrors.ErrSettingNotFound) {
			t.Errorf("Expected ErrSettingNotFound, got %v", err)
		}
	})

	t.Run("encrypted set fails without a fernet key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo, err := repository.NewSettingRepository(db, "")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if err := repo.Set("narrative_api_key", "secret", true); err == nil {
			t.Error("Expected an error when no key is configured")
		}
	})

	t.Run("invalid fernet key fails construction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		if _, err := repository.NewSettingRepository(db, "not-a-key"); err == nil {
			t.Error("Expected an error for an invalid key")
		}
	})
}
