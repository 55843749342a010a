package rating

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/auth"
	"github.com/mal4crypt/genova-health/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateRatingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	patientUserID := uuid.MustParse(claims.UserID)
	rt, err := h.service.Create(r.Context(), patientUserID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidScore), errors.Is(err, ErrNotRateable):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrAppointmentUnknown):
			http.Error(w, "appointment not found", http.StatusNotFound)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			log.WithError(err).Error("Failed to create rating")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, rt)
}

func (h *Handler) ListByDoctor(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	doctorID, err := uuid.Parse(chi.URLParam(r, "doctorID"))
	if err != nil {
		http.Error(w, "invalid doctor id", http.StatusBadRequest)
		return
	}

	ratings, err := h.service.ListByDoctor(r.Context(), doctorID)
	if err != nil {
		log.WithError(err).Error("Failed to list ratings")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, ratings)
}
