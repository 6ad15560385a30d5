package study

import (
	"context"
	"fmt"
	"strings"

	"github.com/saulo-duarte/studylens/internal/completion"
	"github.com/saulo-duarte/studylens/internal/config"
)

type Service interface {
	Summarize(ctx context.Context, sourceText string) (string, error)
	Flashcards(ctx context.Context, sourceText string) ([]Flashcard, string, error)
}

type service struct {
	gateway completion.Gateway
}

func NewService(gateway completion.Gateway) Service {
	return &service{gateway: gateway}
}

func (s *service) Summarize(ctx context.Context, sourceText string) (string, error) {
	raw, err := s.gateway.Complete(ctx, []completion.Message{
		completion.System(summaryPrompt),
		completion.User(sourceText),
	})
	if err != nil {
		return "", fmt.Errorf("failed to summarize: %w", err)
	}

	config.WithContext(ctx).Debugf("[SUMMARY] Raw model response:\n%s", raw)
	return strings.TrimSpace(raw), nil
}

func (s *service) Flashcards(ctx context.Context, sourceText string) ([]Flashcard, string, error) {
	log := config.WithContext(ctx)

	raw, err := s.gateway.Complete(ctx, []completion.Message{
		completion.System(flashcardsPrompt),
		completion.User(sourceText),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate flashcards: %w", err)
	}

	cards := ParseFlashcards(raw)
	if len(cards) == 0 {
		log.Warnf("[FLASHCARDS] No Q:/A: pairs found. Raw response:\n%s", raw)
	} else {
		log.Infof("[FLASHCARDS] Parsed %d cards", len(cards))
	}
	return cards, strings.TrimSpace(raw), nil
}
