package payment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateIntent)
	r.Get("/", h.List)
	r.Post("/{id}/confirm", h.Confirm)

	return r
}
