package quizgen

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/saulo-duarte/studylens/internal/config"
)

type Handler struct {
	service Service
	tracker *Tracker
}

func NewHandler(s Service, tracker *Tracker) *Handler {
	return &Handler{service: s, tracker: tracker}
}

// GenerateQuiz godoc
// @Summary      Generate a multiple-choice quiz
// @Description  Asks the model for count questions (clamped to 1-20) about the text.
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        body  body      QuizRequest  true  "Source text and question count"
// @Success      200   {object}  QuizResponse
// @Failure      400   {object}  config.ErrorResponse
// @Failure      409   {object}  config.ErrorResponse
// @Failure      500   {object}  config.ErrorResponse
// @Router       /quiz [post]
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid quiz request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		config.Error(w, http.StatusBadRequest, "text is required")
		return
	}

	ctx, genID, done := h.tracker.Begin(r.Context(), config.DefaultUser)
	defer done()
	w.Header().Set("X-Generation-ID", genID.String())

	questions, err := h.service.GenerateQuiz(ctx, req.Text, req.RequestedCount())
	if err != nil {
		if Superseded(ctx) {
			h.tracker.LogSuperseded(log, config.DefaultUser, genID)
			config.Error(w, http.StatusConflict, ErrSuperseded.Error())
			return
		}
		log.WithError(err).WithField("generation_id", genID).Error("Failed to generate quiz")
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, QuizResponse{Quiz: questions})
}
