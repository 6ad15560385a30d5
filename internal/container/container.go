package container

import (
	"context"
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/saulo-duarte/studylens/internal/completion"
	"github.com/saulo-duarte/studylens/internal/config"
	"github.com/saulo-duarte/studylens/internal/history"
	"github.com/saulo-duarte/studylens/internal/play"
	"github.com/saulo-duarte/studylens/internal/quizgen"
	"github.com/saulo-duarte/studylens/internal/router"
	"github.com/saulo-duarte/studylens/internal/study"
)

type Container struct {
	Settings *config.Settings

	QuizGenContainer *quizgen.QuizGenContainer
	StudyContainer   *study.StudyContainer
	HistoryContainer *history.HistoryContainer
	PlayContainer    *play.PlayContainer
}

func New() *Container {
	config.Init()
	settings := config.Load()
	config.InitSessionKey()

	ctx := context.Background()

	var db *gorm.DB
	if settings.PersistenceEnabled() {
		if err := config.Connect(ctx, settings.DBDriver, settings.DatabaseDSN); err != nil {
			log.Fatalf("failed to connect to DB: %v", err)
		}
		if err := config.DB.AutoMigrate(&history.SessionLog{}, &play.StoredQuiz{}); err != nil {
			log.Fatalf("failed to migrate DB: %v", err)
		}
		db = config.DB
	} else {
		config.Logger.Warn("DATABASE_DSN not set, history is disabled and quizzes are kept in memory")
	}

	gateway, err := completion.NewFromSettings(ctx, settings)
	if err != nil {
		log.Fatalf("failed to create completion gateway: %v", err)
	}

	return build(settings, db, gateway)
}

func build(settings *config.Settings, db *gorm.DB, gateway completion.Gateway) *Container {
	quizGenContainer := quizgen.NewQuizGenContainer(gateway)
	studyContainer := study.NewStudyContainer(gateway)
	historyContainer := history.NewHistoryContainer(db)

	hashKey, blockKey := config.SessionKeys()
	playContainer := play.NewPlayContainer(
		db,
		quizGenContainer.Service,
		quizGenContainer.Tracker,
		historyContainer.Service,
		play.NewCookieStore(hashKey, blockKey),
	)

	return &Container{
		Settings:         settings,
		QuizGenContainer: quizGenContainer,
		StudyContainer:   studyContainer,
		HistoryContainer: historyContainer,
		PlayContainer:    playContainer,
	}
}

// Router returns the HTTP handler serving every endpoint.
func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		AllowedOrigins: c.Settings.AllowedOrigins,
		QuizHandler:    c.QuizGenContainer.Handler,
		StudyHandler:   c.StudyContainer.Handler,
		HistoryHandler: c.HistoryContainer.Handler,
		PlayHandler:    c.PlayContainer.Handler,
	})
}
