package history

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/studylens/internal/config"
)

const (
	DefaultLimit   = 20
	maxTitleLength = 80
	untitled       = "Untitled session"
)

// LoggingError wraps a persistence failure of the session log. It is logged
// and never returned to the artifact flow.
type LoggingError struct {
	Op  string
	Err error
}

func (e *LoggingError) Error() string {
	return fmt.Sprintf("session log %s: %v", e.Op, e.Err)
}

func (e *LoggingError) Unwrap() error {
	return e.Err
}

type Entry struct {
	TopicTitle    string
	HasSummary    bool
	HasFlashcards bool
	HasQuiz       bool
	QuizScore     *int
}

type Service interface {
	// Record appends an entry. Failures are logged and swallowed.
	Record(ctx context.Context, entry Entry)
	Recent(ctx context.Context, limit int) ([]EntryResponse, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Record(ctx context.Context, entry Entry) {
	log := config.WithContext(ctx)

	row := &SessionLog{
		ID:            uuid.New(),
		UserID:        config.DefaultUser,
		TopicTitle:    TitleFrom(entry.TopicTitle),
		HasSummary:    entry.HasSummary,
		HasFlashcards: entry.HasFlashcards,
		HasQuiz:       entry.HasQuiz,
		QuizScore:     entry.QuizScore,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.repo.Append(ctx, row); err != nil {
		log.WithError(&LoggingError{Op: "append", Err: err}).Warn("Failed to record session log")
		return
	}

	log.WithFields(logrus.Fields{
		"session_log_id": row.ID,
		"has_quiz":       row.HasQuiz,
	}).Info("Session log recorded")
}

func (s *service) Recent(ctx context.Context, limit int) ([]EntryResponse, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.repo.Recent(ctx, config.DefaultUser, limit)
	if err != nil {
		return nil, &LoggingError{Op: "recent", Err: err}
	}

	return lo.Map(rows, func(row SessionLog, _ int) EntryResponse {
		return EntryResponse{
			TopicTitle:    row.TopicTitle,
			HasSummary:    row.HasSummary,
			HasFlashcards: row.HasFlashcards,
			HasQuiz:       row.HasQuiz,
			QuizScore:     row.QuizScore,
			CreatedAt:     row.CreatedAt,
		}
	}), nil
}

// TitleFrom derives a one-line topic title from free text.
func TitleFrom(text string) string {
	title := strings.Join(strings.Fields(text), " ")
	if title == "" {
		return untitled
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		runes := []rune(title)
		title = strings.TrimSpace(string(runes[:maxTitleLength-1])) + "…"
	}
	return title
}

type noopService struct{}

// NewNoopService is used when no database is configured.
func NewNoopService() Service {
	return noopService{}
}

func (noopService) Record(ctx context.Context, entry Entry) {
	config.WithContext(ctx).Debug("Persistence disabled, session log dropped")
}

func (noopService) Recent(context.Context, int) ([]EntryResponse, error) {
	return []EntryResponse{}, nil
}
