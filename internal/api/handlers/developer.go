package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/api/request"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/api/response"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/repository"
)

// NarrativeKeySetting is the settings-store key holding the narrative
// generator's API key.
const NarrativeKeySetting = "narrative_api_key"

// DeveloperHandler handles operational endpoints that are not part of the
// advisory surface.
type DeveloperHandler struct {
	settingRepo *repository.SettingRepository
}

// NewDeveloperHandler creates a new DeveloperHandler.
func NewDeveloperHandler(settingRepo *repository.SettingRepository) *DeveloperHandler {
	return &DeveloperHandler{
		settingRepo: settingRepo,
	}
}

// SetNarrativeKey handles PUT requests to store the narrative API key.
// The key is fernet-encrypted at rest and picked up on the next restart.
//
// Endpoint: PUT /api/developer/narrative-key
// Response: 204 No Content
// Error: 400 Bad Request on empty key, 500 when storing fails
func (h *DeveloperHandler) SetNarrativeKey(w http.ResponseWriter, r *http.Request) {
	var req request.NarrativeKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.APIKey) == "" {
		response.RespondError(w, http.StatusBadRequest, "api_key is required", nil)
		return
	}

	if err := h.settingRepo.Set(NarrativeKeySetting, req.APIKey, true); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to store narrative key", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
