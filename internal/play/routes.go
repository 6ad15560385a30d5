package play

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Start)
	r.Get("/", h.Current)
	r.Post("/select", h.Select)
	r.Post("/submit", h.Submit)
	r.Post("/advance", h.Advance)
	return r
}
