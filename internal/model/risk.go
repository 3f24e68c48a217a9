package model

// RiskLevel is a three-step risk scale used both for fund volatility ranks
// and for investor risk classifications.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// ParseRiskLevel converts a string to a RiskLevel.
// Anything unrecognized (including empty) maps to moderate, which is the
// neutral default for both declared tolerance and volatility ranks.
func ParseRiskLevel(s string) RiskLevel {
	switch RiskLevel(s) {
	case RiskLow, RiskHigh:
		return RiskLevel(s)
	}
	return RiskModerate
}
