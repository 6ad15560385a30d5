package study

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SummaryRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Summarize)
	return r
}

func FlashcardRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Flashcards)
	return r
}
