package history

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/studylens/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// LogSession godoc
// @Summary      Record a study session
// @Description  Appends a session log entry. Persistence failures are logged and never reported.
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        body  body      LogSessionRequest  true  "Session flags"
// @Success      200   {object}  LogSessionResponse
// @Failure      400   {object}  config.ErrorResponse
// @Router       /log-session [post]
func (h *Handler) LogSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req LogSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid log-session body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.service.Record(r.Context(), Entry{
		TopicTitle:    req.TopicTitle,
		HasSummary:    req.HasSummary,
		HasFlashcards: req.HasFlashcards,
		HasQuiz:       req.HasQuiz,
		QuizScore:     req.QuizScore,
	})

	config.JSON(w, http.StatusOK, LogSessionResponse{OK: true})
}

// List godoc
// @Summary      Recent study sessions
// @Tags         history
// @Produce      json
// @Success      200  {object}  HistoryResponse
// @Failure      500  {object}  config.ErrorResponse
// @Router       /history [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	entries, err := h.service.Recent(r.Context(), DefaultLimit)
	if err != nil {
		log.WithError(err).Error("Failed to load history")
		config.Error(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	config.JSON(w, http.StatusOK, HistoryResponse{History: entries})
}
