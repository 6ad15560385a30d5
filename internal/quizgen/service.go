package quizgen

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/studylens/internal/completion"
	"github.com/saulo-duarte/studylens/internal/config"
	"github.com/saulo-duarte/studylens/internal/quiz"
)

type Service interface {
	GenerateQuiz(ctx context.Context, sourceText string, count int) (quiz.Quiz, error)
}

type service struct {
	gateway completion.Gateway
}

func NewService(gateway completion.Gateway) Service {
	return &service{gateway: gateway}
}

func (s *service) GenerateQuiz(ctx context.Context, sourceText string, count int) (quiz.Quiz, error) {
	log := config.WithContext(ctx)

	n := ClampCount(count)
	if n != count {
		log.WithFields(logrus.Fields{"requested": count, "effective": n}).Debug("Question count clamped")
	}

	raw, err := s.gateway.Complete(ctx, []completion.Message{
		completion.System(BuildSystemPrompt(n)),
		completion.User(sourceText),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate quiz: %w", err)
	}
	log.Debugf("[QUIZ] Raw model response:\n%s", raw)

	extraction, err := Extract(raw)
	if err != nil {
		log.WithError(err).Errorf("[QUIZ] Failed to extract quiz. Raw response:\n%s", raw)
		return nil, err
	}

	for _, issue := range extraction.Issues {
		log.WithFields(logrus.Fields{
			"index":    issue.Index,
			"problems": issue.Problems,
		}).Warn("[QUIZ] Model returned a malformed question")
	}

	qz := extraction.Quiz
	if len(qz) > n {
		log.WithFields(logrus.Fields{"returned": len(qz), "requested": n}).Warn("[QUIZ] Model returned extra questions, truncating")
		qz = qz[:n]
	}

	log.Infof("[QUIZ] Generated %d questions", len(qz))
	return qz, nil
}
