package study

import "github.com/saulo-duarte/studylens/internal/completion"

type StudyContainer struct {
	Handler *Handler
	Service Service
}

func NewStudyContainer(gateway completion.Gateway) *StudyContainer {
	service := NewService(gateway)

	return &StudyContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
