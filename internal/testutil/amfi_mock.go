package testutil

import (
	"context"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/amfi"
)

// MockNAVFetcher is a mock implementation of service.NAVFetcher for testing.
// It returns predefined NAV data instead of hitting the AMFI feed.
type MockNAVFetcher struct {
	// MockNAVs is the NAV map to return from FetchNAVs
	MockNAVs map[string]amfi.NAV
	// MockError is the error to return from FetchNAVs
	MockError error
	// FetchCount tracks how many times FetchNAVs was called
	FetchCount int
}

// NewMockNAVFetcher creates a mock fetcher returning an empty NAV map.
func NewMockNAVFetcher() *MockNAVFetcher {
	return &MockNAVFetcher{
		MockNAVs: map[string]amfi.NAV{},
	}
}

// FetchNAVs returns the configured MockNAVs and MockError.
func (m *MockNAVFetcher) FetchNAVs(_ context.Context) (map[string]amfi.NAV, error) {
	m.FetchCount++
	if m.MockError != nil {
		return nil, m.MockError
	}
	return m.MockNAVs, nil
}

// WithNAV adds a NAV entry for the given scheme code.
func (m *MockNAVFetcher) WithNAV(schemeCode string, nav float64) *MockNAVFetcher {
	if m.MockNAVs == nil {
		m.MockNAVs = map[string]amfi.NAV{}
	}
	m.MockNAVs[schemeCode] = amfi.NAV{
		SchemeCode: schemeCode,
		SchemeName: "Test Scheme " + schemeCode,
		NAV:        nav,
		Date:       "01-Sep-2026",
	}
	return m
}

// WithError configures the mock to return the specified error.
func (m *MockNAVFetcher) WithError(err error) *MockNAVFetcher {
	m.MockError = err
	return m
}
