package play

import (
	"encoding/gob"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"github.com/saulo-duarte/studylens/internal/config"
	"github.com/saulo-duarte/studylens/internal/quizgen"
	"github.com/saulo-duarte/studylens/internal/session"
)

const (
	cookieName = "studylens_play"
	cursorKey  = "cursor"
)

func init() {
	gob.Register(Cursor{})
}

type Handler struct {
	service Service
	tracker *quizgen.Tracker
	store   sessions.Store
}

func NewHandler(s Service, tracker *quizgen.Tracker, store sessions.Store) *Handler {
	return &Handler{service: s, tracker: tracker, store: store}
}

// NewCookieStore returns the encrypted store that holds play cursors.
func NewCookieStore(hashKey, blockKey []byte) *sessions.CookieStore {
	store := sessions.NewCookieStore(hashKey, blockKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Start godoc
// @Summary      Start a play session
// @Description  Generates a quiz and walks it one question at a time. The answer key stays on the server.
// @Tags         play
// @Accept       json
// @Produce      json
// @Param        body  body      quizgen.QuizRequest  true  "Source text and question count"
// @Success      200   {object}  View
// @Failure      400   {object}  config.ErrorResponse
// @Failure      409   {object}  config.ErrorResponse
// @Failure      500   {object}  config.ErrorResponse
// @Router       /play [post]
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req quizgen.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid play request body")
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

	res, err := h.service.Start(ctx, req.Text, req.RequestedCount())
	if quizgen.Superseded(ctx) {
		h.tracker.LogSuperseded(log, config.DefaultUser, genID)
		config.Error(w, http.StatusConflict, quizgen.ErrSuperseded.Error())
		return
	}
	if err != nil {
		log.WithError(err).Error("Failed to start play session")
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respond(w, r, res)
}

// Current godoc
// @Summary      Current play state
// @Description  Always returns the latest state and refreshes the cookie.
// @Tags         play
// @Produce      json
// @Success      200  {object}  View
// @Failure      404  {object}  config.ErrorResponse
// @Router       /play [get]
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	cur, ok := h.cursor(w, r)
	if !ok {
		return
	}
	res, err := h.service.View(r.Context(), cur)
	h.finish(w, r, res, err)
}

// Select godoc
// @Summary      Select an option
// @Tags         play
// @Accept       json
// @Produce      json
// @Param        body  body      SelectRequest  true  "Option index 0-3"
// @Success      200   {object}  View
// @Failure      400   {object}  config.ErrorResponse
// @Failure      404   {object}  config.ErrorResponse
// @Failure      409   {object}  config.ErrorResponse
// @Router       /play/select [post]
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Option == nil {
		config.Error(w, http.StatusBadRequest, "option is required")
		return
	}

	cur, ok := h.cursor(w, r)
	if !ok {
		return
	}
	res, err := h.service.Select(r.Context(), cur, *req.Option)
	h.finish(w, r, res, err)
}

// Submit godoc
// @Summary      Submit the selected option
// @Tags         play
// @Produce      json
// @Success      200  {object}  View
// @Failure      404  {object}  config.ErrorResponse
// @Failure      409  {object}  config.ErrorResponse
// @Router       /play/submit [post]
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	cur, ok := h.cursor(w, r)
	if !ok {
		return
	}
	res, err := h.service.Submit(r.Context(), cur)
	h.finish(w, r, res, err)
}

// Advance godoc
// @Summary      Move to the next question
// @Tags         play
// @Produce      json
// @Success      200  {object}  View
// @Failure      404  {object}  config.ErrorResponse
// @Failure      409  {object}  config.ErrorResponse
// @Router       /play/advance [post]
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	cur, ok := h.cursor(w, r)
	if !ok {
		return
	}
	res, err := h.service.Advance(r.Context(), cur)
	h.finish(w, r, res, err)
}

func (h *Handler) cursor(w http.ResponseWriter, r *http.Request) (Cursor, bool) {
	sess, err := h.store.Get(r, cookieName)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Debug("Unreadable play cookie")
	}

	cur, ok := sess.Values[cursorKey].(Cursor)
	if !ok {
		config.Error(w, http.StatusNotFound, ErrNoActiveQuiz.Error())
		return Cursor{}, false
	}
	return cur, true
}

func (h *Handler) finish(w http.ResponseWriter, r *http.Request, res *Result, err error) {
	if err == nil {
		h.respond(w, r, res)
		return
	}

	log := config.WithContext(r.Context())
	var stateErr *session.StateError
	switch {
	case errors.Is(err, ErrNoActiveQuiz):
		h.clear(w, r)
		config.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrStaleCursor):
		config.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrInvalidOption):
		config.Error(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &stateErr):
		log.WithField("op", stateErr.Op).Info("Rejected out-of-sequence play action")
		config.Error(w, http.StatusConflict, err.Error())
	default:
		log.WithError(err).Error("Play action failed")
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, res *Result) {
	sess, _ := h.store.Get(r, cookieName)
	sess.Values[cursorKey] = res.Cursor
	if err := sess.Save(r, w); err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to save play cookie")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	config.JSON(w, http.StatusOK, res.View)
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.store.Get(r, cookieName)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Failed to clear play cookie")
	}
}
