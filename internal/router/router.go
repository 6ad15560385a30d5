package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/samber/lo"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/studylens/internal/config"
	"github.com/saulo-duarte/studylens/internal/history"
	"github.com/saulo-duarte/studylens/internal/play"
	"github.com/saulo-duarte/studylens/internal/quizgen"
	"github.com/saulo-duarte/studylens/internal/study"
)

type RouterConfig struct {
	AllowedOrigins []string

	QuizHandler    *quizgen.Handler
	StudyHandler   *study.Handler
	HistoryHandler *history.Handler
	PlayHandler    *play.Handler
}

type healthResponse struct {
	Status string `json:"status"`
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Generation-ID"},
		AllowCredentials: allowCredentials(cfg.AllowedOrigins),
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, healthResponse{Status: "ok"})
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Mount("/quiz", quizgen.Routes(cfg.QuizHandler))
	r.Mount("/summary", study.SummaryRoutes(cfg.StudyHandler))
	r.Mount("/flashcards", study.FlashcardRoutes(cfg.StudyHandler))
	r.Mount("/log-session", history.LogRoutes(cfg.HistoryHandler))
	r.Mount("/history", history.Routes(cfg.HistoryHandler))
	r.Mount("/play", play.Routes(cfg.PlayHandler))
	return r
}

// allowCredentials is off for a wildcard origin, so cookies only flow to
// origins that were listed explicitly.
func allowCredentials(origins []string) bool {
	return len(origins) > 0 && !lo.ContainsBy(origins, func(o string) bool {
		return strings.Contains(o, "*")
	})
}
