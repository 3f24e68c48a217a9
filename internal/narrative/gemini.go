package narrative

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/apperrors"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
)

const systemPrompt = `You are an expert financial advisor specializing in mutual fund investments in India.
You provide personalized, well-reasoned investment advice based on user profiles and fund data.
Always consider risk tolerance, investment horizon, and financial goals.
Be conservative and emphasize the importance of diversification.`

// sectionMarkers are the headings the model is asked to emit; responses are
// split back into Sections on these.
var sectionMarkers = []string{
	"RISK ASSESSMENT:",
	"PORTFOLIO ALLOCATION:",
	"FUND SELECTION ANALYSIS:",
	"INVESTMENT STRATEGY:",
	"RISK WARNINGS:",
	"NEXT STEPS:",
}

// Gemini generates advisory text with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini generator. The API key may come from the
// settings store or the environment.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client, model: modelName}, nil
}

// Generate asks the model for the advisory sections and parses them into an
// Analysis. The suggested allocations and summary are computed locally, not
// by the model.
func (g *Gemini) Generate(ctx context.Context, profile model.UserProfile, result model.RecommendationResult) (Analysis, error) {
	prompt := buildPrompt(profile, result)

	temperature := float32(0.7)
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(systemPrompt+"\n\n"+prompt),
		&genai.GenerateContentConfig{
			Temperature:     &temperature,
			MaxOutputTokens: 1500,
		})
	if err != nil {
		return Analysis{}, fmt.Errorf("narrative generation failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return Analysis{}, fmt.Errorf("%w: model returned no text", apperrors.ErrNarrativeUnavailable)
	}

	return Analysis{
		Sections: Sections{
			RiskAssessment:      extractSection(text, "RISK ASSESSMENT:"),
			PortfolioAllocation: extractSection(text, "PORTFOLIO ALLOCATION:"),
			FundAnalysis:        extractSection(text, "FUND SELECTION ANALYSIS:"),
			InvestmentStrategy:  extractSection(text, "INVESTMENT STRATEGY:"),
			RiskWarnings:        extractSection(text, "RISK WARNINGS:"),
			NextSteps:           extractSection(text, "NEXT STEPS:"),
			FullAnalysis:        text,
		},
		SuggestedAllocations: SuggestedAllocations(profile, result),
		Summary:              Summary(profile, result),
		KeyInsights:          extractKeyInsights(text),
	}, nil
}

// buildPrompt lays out the profile, the recommended funds with their
// metrics, and the analytics bundle, then asks for the fixed sections.
func buildPrompt(profile model.UserProfile, result model.RecommendationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "User Profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", profile.Name)
	fmt.Fprintf(&b, "- Age: %d years\n", profile.Age)
	fmt.Fprintf(&b, "- Annual Income: ₹%.0f\n", profile.AnnualIncome)
	fmt.Fprintf(&b, "- Investment Amount: ₹%.0f\n", profile.InvestmentAmount)
	fmt.Fprintf(&b, "- Risk Appetite: %s\n", profile.RiskTolerance)
	fmt.Fprintf(&b, "- Investment Goal: %s\n", profile.InvestmentGoal)
	fmt.Fprintf(&b, "- Investment Horizon: %s years\n", profile.InvestmentHorizon)
	fmt.Fprintf(&b, "- Monthly SIP Budget: ₹%.0f\n", profile.MonthlySIP)
	fmt.Fprintf(&b, "- Existing Investments: ₹%.0f\n", profile.ExistingInvestments)
	fmt.Fprintf(&b, "- Tax Bracket: %d%%\n", profile.TaxBracket)
	fmt.Fprintf(&b, "- Emergency Fund: %s\n", profile.EmergencyFund)
	fmt.Fprintf(&b, "- ESG Preference: %s\n", profile.ESGPreference)
	fmt.Fprintf(&b, "- Dividend vs Growth: %s\n", profile.DividendPreference)

	fmt.Fprintf(&b, "\nRecommended Funds:\n")
	for _, category := range model.Categories() {
		funds := result.Recommendations[category]
		if len(funds) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", category.Title())
		for i, f := range funds {
			fmt.Fprintf(&b, "%d. %s (manager %s, AUM ₹%.1f Cr, expense %.2f%%, 5Y SIP %.1f%%, 10Y SIP %.1f%%, "+
				"alpha %.1f, Sharpe %.2f, Sortino %.2f, ESG %.1f/10, volatility %s, peer rank %d)\n",
				i+1, f.Name, f.FundManager, f.AUMCr, f.ExpenseRatio, f.SIP5YrReturn, f.SIP10YrReturn,
				f.Alpha, f.SharpeRatio, f.SortinoRatio, f.ESGScore, f.VolatilityRank, f.PeerRank)
		}
	}

	analysis := result.Analysis
	if analysis.Projections.MonthlySIP > 0 {
		fmt.Fprintf(&b, "\nInvestment Projections:\n- Monthly SIP: ₹%.0f\n- Total Investment: ₹%.0f\n- Projected Value: ₹%.0f\n- Expected Return: %.1f%%\n- Time Period: %d years\n",
			analysis.Projections.MonthlySIP, analysis.Projections.TotalInvestment,
			analysis.Projections.ProjectedValue, analysis.Projections.ExpectedReturn,
			analysis.Projections.TimePeriodYears)
	}
	fmt.Fprintf(&b, "\nPortfolio Diversification:\n- Score: %d/150\n- Categories: %d\n- Total Funds: %d\n- Assessment: %s\n",
		analysis.Diversification.Score, analysis.Diversification.Categories,
		analysis.Diversification.TotalFunds, analysis.Diversification.Assessment)
	fmt.Fprintf(&b, "\nExpense Impact Analysis:\n- Average Expense Ratio: %.2f%%\n- Total Expense Over Period: ₹%.0f\n- Potential Savings: ₹%.0f\n- Assessment: %s\n",
		analysis.ExpenseImpact.AverageExpenseRatio, analysis.ExpenseImpact.TotalExpenseOverPeriod,
		analysis.ExpenseImpact.PotentialSavings, analysis.ExpenseImpact.ImpactAssessment)
	fmt.Fprintf(&b, "\nVolatility Analysis:\n- Breakdown: Low: %d, Moderate: %d, High: %d\n- High Volatility Percentage: %.1f%%\n- Risk Assessment: %s\n",
		analysis.Volatility.Breakdown.Low, analysis.Volatility.Breakdown.Moderate,
		analysis.Volatility.Breakdown.High, analysis.Volatility.HighVolatilityPercentage,
		analysis.Volatility.RiskAssessment)

	if len(analysis.RiskWarnings) > 0 {
		fmt.Fprintf(&b, "\nRisk Warnings:\n")
		for _, w := range analysis.RiskWarnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	fmt.Fprintf(&b, "\nProvide a comprehensive analysis under exactly these headings:\n")
	for _, marker := range sectionMarkers {
		fmt.Fprintf(&b, "%s\n", marker)
	}
	fmt.Fprintf(&b, "\nProvide actionable, personalized advice that helps the user make informed investment decisions.\n")

	return b.String()
}

// extractSection returns the text between a section marker and the next one.
func extractSection(text, marker string) string {
	start := strings.Index(text, marker)
	if start == -1 {
		return ""
	}
	start += len(marker)

	end := len(text)
	for _, other := range sectionMarkers {
		if other == marker {
			continue
		}
		if idx := strings.Index(text[start:], other); idx != -1 && start+idx < end {
			end = start + idx
		}
	}

	return strings.TrimSpace(text[start:end])
}

// insightPhrases flag lines in the generated text worth surfacing as key
// insights.
var insightPhrases = []string{
	"important to note",
	"key consideration",
	"recommend",
	"suggest",
	"consider",
	"highlight",
	"crucial",
	"essential",
}

// extractKeyInsights pulls up to five substantial lines containing insight
// phrases from the generated text.
func extractKeyInsights(text string) []string {
	var insights []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= 20 {
			continue
		}
		lower := strings.ToLower(line)
		for _, phrase := range insightPhrases {
			if strings.Contains(lower, phrase) {
				insights = append(insights, line)
				break
			}
		}
		if len(insights) == 5 {
			break
		}
	}
	return insights
}
