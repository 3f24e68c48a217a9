package testutil

import (
	"context"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/narrative"
)

// MockGenerator is a mock implementation of narrative.Generator for testing.
// It returns a predefined analysis instead of calling the Gemini API.
type MockGenerator struct {
	// MockAnalysis is the analysis to return from Generate
	MockAnalysis narrative.Analysis
	// MockError is the error to return from Generate
	MockError error
	// GenerateCount tracks how many times Generate was called
	GenerateCount int
}

// NewMockGenerator creates a mock generator returning a minimal analysis.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{
		MockAnalysis: narrative.Analysis{
			Summary:     "Mock analysis summary",
			KeyInsights: []string{"Mock insight"},
		},
	}
}

// Generate returns the configured MockAnalysis and MockError.
func (m *MockGenerator) Generate(_ context.Context, _ model.UserProfile, _ model.RecommendationResult) (narrative.Analysis, error) {
	m.GenerateCount++
	if m.MockError != nil {
		return narrative.Analysis{}, m.MockError
	}
	return m.MockAnalysis, nil
}

// WithError configures the mock to return the specified error.
func (m *MockGenerator) WithError(err error) *MockGenerator {
	m.MockError = err
	return m
}
