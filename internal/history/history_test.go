package history_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saulo-duarte/studylens/internal/config"
	"github.com/saulo-duarte/studylens/internal/history"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&history.SessionLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func intPtr(v int) *int { return &v }

func TestRepositoryRecent(t *testing.T) {
	db := openTestDB(t)
	repo := history.NewRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		err := repo.Append(ctx, &history.SessionLog{
			ID:         uuid.New(),
			UserID:     config.DefaultUser,
			TopicTitle: title,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %s: %v", title, err)
		}
	}
	if err := repo.Append(ctx, &history.SessionLog{
		ID: uuid.New(), UserID: "someone_else", TopicTitle: "other", CreatedAt: base.Add(time.Hour),
	}); err != nil {
		t.Fatalf("append other: %v", err)
	}

	rows, err := repo.Recent(ctx, config.DefaultUser, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].TopicTitle != "third" || rows[1].TopicTitle != "second" {
		t.Errorf("expected most recent first, got %q, %q", rows[0].TopicTitle, rows[1].TopicTitle)
	}
}

type failingRepo struct{}

func (failingRepo) Append(context.Context, *history.SessionLog) error {
	return errors.New("disk full")
}

func (failingRepo) Recent(context.Context, string, int) ([]history.SessionLog, error) {
	return nil, errors.New("disk full")
}

func TestServiceRecord(t *testing.T) {
	t.Run("PersistsEntry", func(t *testing.T) {
		svc := history.NewService(history.NewRepository(openTestDB(t)))
		ctx := context.Background()

		svc.Record(ctx, history.Entry{TopicTitle: "  Photosynthesis\n basics ", HasQuiz: true, QuizScore: intPtr(3)})

		entries, err := svc.Recent(ctx, 0)
		if err != nil {
			t.Fatalf("recent: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		got := entries[0]
		if got.TopicTitle != "Photosynthesis basics" || !got.HasQuiz || got.QuizScore == nil || *got.QuizScore != 3 {
			t.Errorf("unexpected entry %+v", got)
		}
	})

	t.Run("FailureIsSwallowed", func(t *testing.T) {
		svc := history.NewService(failingRepo{})
		svc.Record(context.Background(), history.Entry{TopicTitle: "x"})

		_, err := svc.Recent(context.Background(), 5)
		var logErr *history.LoggingError
		if !errors.As(err, &logErr) || logErr.Op != "recent" {
			t.Errorf("expected LoggingError from Recent, got %v", err)
		}
	})

	t.Run("Noop", func(t *testing.T) {
		svc := history.NewNoopService()
		svc.Record(context.Background(), history.Entry{TopicTitle: "x"})

		entries, err := svc.Recent(context.Background(), 5)
		if err != nil || entries == nil || len(entries) != 0 {
			t.Errorf("expected empty non-nil list, got %v, %v", entries, err)
		}
	})
}

func TestTitleFrom(t *testing.T) {
	if got := history.TitleFrom("   "); got != "Untitled session" {
		t.Errorf("blank text: got %q", got)
	}
	long := strings.Repeat("word ", 40)
	got := history.TitleFrom(long)
	if n := len([]rune(got)); n > 80 {
		t.Errorf("title too long: %d runes", n)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis, got %q", got)
	}
}

func TestHandlers(t *testing.T) {
	c := history.NewHistoryContainer(openTestDB(t))
	logH := history.LogRoutes(c.Handler)
	listH := history.Routes(c.Handler)

	t.Run("LogSession", func(t *testing.T) {
		body := `{"topicTitle":"Cells","hasSummary":true,"hasFlashcards":false,"hasQuiz":true,"quizScore":4}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		rec := httptest.NewRecorder()
		logH.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var resp history.LogSessionResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil || !resp.OK {
			t.Errorf("expected ok:true, got %+v (%v)", resp, err)
		}
	})

	t.Run("BadBody", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		logH.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("History", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		listH.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var resp history.HistoryResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.History) != 1 || resp.History[0].TopicTitle != "Cells" || !resp.History[0].HasSummary {
			t.Errorf("unexpected history %+v", resp.History)
		}
	})

	t.Run("NoDatabaseStillAnswersOK", func(t *testing.T) {
		h := history.LogRoutes(history.NewHistoryContainer(nil).Handler)
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"topicTitle":"x"}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})
}
