package chat

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{appointmentId}/messages", h.History)
	r.Get("/{appointmentId}/ws", h.Join)
	return r
}
