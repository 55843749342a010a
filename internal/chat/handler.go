package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/mal4crypt/genova-health/internal/auth"
	"github.com/mal4crypt/genova-health/internal/config"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin is enforced by the CORS middleware in front of the router.
		return true
	},
}

type Handler struct {
	service Service
	hub     *Hub
}

func NewHandler(service Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// History returns the persisted messages of an appointment room,
// oldest first. Accepts an optional ?limit= query parameter.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
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

	appointmentID, err := uuid.Parse(chi.URLParam(r, "appointmentId"))
	if err != nil {
		http.Error(w, "invalid appointment id", http.StatusBadRequest)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	msgs, err := h.service.History(r.Context(), userID, appointmentID, limit)
	if err != nil {
		h.writeError(w, err)
		if !isKnown(err) {
			log.WithError(err).Error("Failed to load chat history")
		}
		return
	}

	config.JSON(w, http.StatusOK, msgs)
}

// Join upgrades the request to a websocket connection scoped to one
// appointment room. Incoming frames are {"body": "..."} payloads; every
// persisted message is broadcast back to the room as JSON.
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
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

	appointmentID, err := uuid.Parse(chi.URLParam(r, "appointmentId"))
	if err != nil {
		http.Error(w, "invalid appointment id", http.StatusBadRequest)
		return
	}

	if _, err := h.service.Authorize(r.Context(), userID, appointmentID); err != nil {
		h.writeError(w, err)
		if !isKnown(err) {
			log.WithError(err).Error("Failed to authorize chat participant")
		}
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("Failed to upgrade websocket connection")
		return
	}

	c := &client{
		hub:    h.hub,
		room:   appointmentID,
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 64),
	}
	h.hub.register(c)

	// The request context is canceled once the connection is hijacked,
	// so keep its values but detach the lifetime.
	ctx := context.WithoutCancel(r.Context())
	go c.writePump()
	go c.readPump(func(senderID uuid.UUID, raw []byte) {
		var dto SendMessageDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return
		}
		msg, err := h.service.SendMessage(ctx, senderID, appointmentID, dto)
		if err != nil {
			config.WithContext(ctx).WithError(err).Warn("Dropped chat message")
			return
		}
		payload, err := json.Marshal(msg)
		if err != nil {
			return
		}
		h.hub.Broadcast(appointmentID, payload)
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrAppointmentUnknown):
		http.Error(w, "appointment not found", http.StatusNotFound)
	case errors.Is(err, ErrNotParticipant):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrEmptyBody):
		http.Error(w, "message body is required", http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func isKnown(err error) bool {
	return errors.Is(err, ErrAppointmentUnknown) ||
		errors.Is(err, ErrNotParticipant) ||
		errors.Is(err, ErrEmptyBody)
}
