package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/api/request"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/api/response"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/apperrors"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/service"
)

// FundHandler handles HTTP requests for fund lookup and listing endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the advisor service.
type FundHandler struct {
	advisorService *service.AdvisorService
}

// NewFundHandler creates a new FundHandler with the provided service
// dependency.
func NewFundHandler(advisorService *service.AdvisorService) *FundHandler {
	return &FundHandler{
		advisorService: advisorService,
	}
}

// TopFunds handles POST requests for a category's top funds by composite
// score.
//
// Endpoint: POST /api/fund/top
// Response: 200 OK with array of ScoredFund (top 5)
func (h *FundHandler) TopFunds(w http.ResponseWriter, r *http.Request) {
	var req request.TopFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, h.advisorService.TopFunds(req.Category))
}

// FundDetails handles GET requests for a single fund's catalog record.
//
// Endpoint: GET /api/fund/{fundID}
// Response: 200 OK with FundRecord
// Error: 404 Not Found for unknown ids
func (h *FundHandler) FundDetails(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundID")

	fund, err := h.advisorService.FundDetails(fundID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, "fund not found", fundID)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve fund", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, fund)
}

// Categories handles GET requests for the category reference metadata.
//
// Endpoint: GET /api/fund/categories
// Response: 200 OK with array of CategoryInfo
func (h *FundHandler) Categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.advisorService.Categories())
}
