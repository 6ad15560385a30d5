package play

import (
	"github.com/gorilla/sessions"
	"gorm.io/gorm"

	"github.com/saulo-duarte/studylens/internal/history"
	"github.com/saulo-duarte/studylens/internal/quizgen"
)

type PlayContainer struct {
	Handler *Handler
	Service Service
}

// NewPlayContainer stores quizzes in db, or in memory when db is nil.
func NewPlayContainer(db *gorm.DB, generator quizgen.Service, tracker *quizgen.Tracker, hist history.Service, store sessions.Store) *PlayContainer {
	var repo Repository
	if db == nil {
		repo = NewMemoryRepository()
	} else {
		repo = NewRepository(db)
	}

	service := NewService(generator, repo, hist)

	return &PlayContainer{
		Handler: NewHandler(service, tracker, store),
		Service: service,
	}
}
