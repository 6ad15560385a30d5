package quizgen

import "github.com/saulo-duarte/studylens/internal/completion"

type QuizGenContainer struct {
	Handler *Handler
	Service Service
	// Tracker is shared by every endpoint that generates a quiz.
	Tracker *Tracker
}

func NewQuizGenContainer(gateway completion.Gateway) *QuizGenContainer {
	service := NewService(gateway)
	tracker := NewTracker()
	handler := NewHandler(service, tracker)

	return &QuizGenContainer{
		Handler: handler,
		Service: service,
		Tracker: tracker,
	}
}
