package assistant

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/auth"
	"github.com/mal4crypt/genova-health/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateInsights(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req InsightRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	insights, err := h.service.GenerateInsights(r.Context(), userID, req)
	if err != nil {
		log.WithError(err).Error("Failed to generate insights")
		http.Error(w, "failed to generate insights", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, InsightResponse{Insights: insights})
}
