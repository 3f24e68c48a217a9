package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/api/request"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/api/response"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/narrative"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/service"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/validation"
)

// AdviceHandler handles personalized-advice HTTP requests. It parses and
// validates the request, delegates to the advisor service, and shapes the
// combined engine + narrative response.
type AdviceHandler struct {
	advisorService *service.AdvisorService
}

// NewAdviceHandler creates a new AdviceHandler with the provided service
// dependency.
func NewAdviceHandler(advisorService *service.AdvisorService) *AdviceHandler {
	return &AdviceHandler{
		advisorService: advisorService,
	}
}

// AnalyzeResponse is the body of a successful advice request.
type AnalyzeResponse struct {
	Recommendations model.RecommendationResult `json:"recommendations"`
	LLMAnalysis     narrative.Analysis         `json:"llm_analysis"`
	UserInfo        model.UserProfile          `json:"user_info"`
}

// Analyze handles POST requests for personalized fund recommendations.
//
// Endpoint: POST /api/advice/analyze
// Response: 200 OK with AnalyzeResponse
// Error: 400 Bad Request on malformed body or validation failure
func (h *AdviceHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req request.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateAnalyzeRequest(req); err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", vErr.Fields)
			return
		}
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	profile := req.ToProfile()

	result, err := h.advisorService.Recommend(profile)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "failed to build recommendations", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, AnalyzeResponse{
		Recommendations: result,
		LLMAnalysis:     h.advisorService.Narrative(r.Context(), profile, result),
		UserInfo:        profile,
	})
}
