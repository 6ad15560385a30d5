package study

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/saulo-duarte/studylens/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req TextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return "", false
	}
	if strings.TrimSpace(req.Text) == "" {
		config.Error(w, http.StatusBadRequest, "text is required")
		return "", false
	}
	return req.Text, true
}

// Summarize godoc
// @Summary      Summarize text
// @Description  Two or three short bullet points.
// @Tags         study
// @Accept       json
// @Produce      json
// @Param        body  body      TextRequest  true  "Source text"
// @Success      200   {object}  SummaryResponse
// @Failure      400   {object}  config.ErrorResponse
// @Failure      500   {object}  config.ErrorResponse
// @Router       /summary [post]
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	text, ok := decodeText(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summarize(r.Context(), text)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to summarize")
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, SummaryResponse{Summary: summary})
}

// Flashcards godoc
// @Summary      Generate flashcards
// @Description  Eight to twelve question/answer cards, parsed, with the raw model text.
// @Tags         study
// @Accept       json
// @Produce      json
// @Param        body  body      TextRequest  true  "Source text"
// @Success      200   {object}  FlashcardsResponse
// @Failure      400   {object}  config.ErrorResponse
// @Failure      500   {object}  config.ErrorResponse
// @Router       /flashcards [post]
func (h *Handler) Flashcards(w http.ResponseWriter, r *http.Request) {
	text, ok := decodeText(w, r)
	if !ok {
		return
	}

	cards, raw, err := h.service.Flashcards(r.Context(), text)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to generate flashcards")
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, FlashcardsResponse{Flashcards: cards, Raw: raw})
}
