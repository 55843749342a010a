package patient

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Put("/me", h.Upsert)
	r.Get("/me", h.GetMe)

	return r
}
