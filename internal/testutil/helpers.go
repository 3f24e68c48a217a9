package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/catalog"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/narrative"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/repository"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/service"
)

// NewTestCatalogStore builds a catalog store published with the given funds.
// Use SampleFunds() when any reasonable catalog will do.
func NewTestCatalogStore(t *testing.T, funds []model.FundRecord) *catalog.Store {
	t.Helper()

	return catalog.NewStore(catalog.New(funds))
}

// NewTestCatalogService creates a CatalogService backed by the given
// database. fetcher may be nil to disable the NAV overlay.
func NewTestCatalogService(t *testing.T, db *sql.DB, fetcher service.NAVFetcher) *service.CatalogService {
	t.Helper()

	fundRepo := repository.NewFundRepository(db)
	return service.NewCatalogService(fundRepo, fetcher)
}

// NewTestAdvisorService creates an AdvisorService over an in-memory catalog
// of the given funds, with no narrative generator so analysis falls back to
// template output.
func NewTestAdvisorService(t *testing.T, funds []model.FundRecord) *service.AdvisorService {
	t.Helper()

	return service.NewAdvisorService(NewTestCatalogStore(t, funds), nil)
}

// NewTestAdvisorServiceWithGenerator creates an AdvisorService with an
// explicit narrative generator, typically a MockGenerator.
func NewTestAdvisorServiceWithGenerator(t *testing.T, funds []model.FundRecord, generator narrative.Generator) *service.AdvisorService {
	t.Helper()

	return service.NewAdvisorService(NewTestCatalogStore(t, funds), generator)
}

// NewTestSettingRepository creates a SettingRepository with a fixed fernet
// key so encrypted settings can round-trip in tests.
func NewTestSettingRepository(t *testing.T, db *sql.DB) *repository.SettingRepository {
	t.Helper()

	// Base64 of 32 zero bytes, a valid fernet key for tests only.
	const testFernetKey = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="

	repo, err := repository.NewSettingRepository(db, testFernetKey)
	if err != nil {
		t.Fatalf("Failed to create test setting repository: %v", err)
	}
	return repo
}

// ConservativeProfile returns a profile that classifies as low risk:
// older investor, modest income, small investment relative to income.
func ConservativeProfile() model.UserProfile {
	return model.UserProfile{
		Name:              "Test Conservative",
		Age:               56,
		AnnualIncome:      400000,
		InvestmentAmount:  40000,
		RiskTolerance:     model.RiskModerate,
		InvestmentGoal:    "retirement",
		InvestmentHorizon: "5-10 years",
		MonthlySIP:        3000,
		TaxBracket:        20,
	}
}

// AggressiveProfile returns a profile that classifies as high risk:
// young investor, high income, large investment relative to income.
func AggressiveProfile() model.UserProfile {
	return model.UserProfile{
		Name:              "Test Aggressive",
		Age:               28,
		AnnualIncome:      1800000,
		InvestmentAmount:  1200000,
		RiskTolerance:     model.RiskHigh,
		InvestmentGoal:    "wealth_creation",
		InvestmentHorizon: "10-15 years",
		MonthlySIP:        25000,
		TaxBracket:        30,
	}
}

// MakeID generates a UUID string for use in tests.
func MakeID() string {
	return uuid.New().String()
}

// MakeFundName generates a unique fund name for testing.
//
// Example usage:
//
//	name := testutil.MakeFundName("Tech Fund")
//	// Returns: "Tech Fund XYZ789"
func MakeFundName(base string) string {
	if base == "" {
		base = "Fund"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
