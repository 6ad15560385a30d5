package history

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	return r
}

func LogRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.LogSession)
	return r
}
