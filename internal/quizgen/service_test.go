package quizgen_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/saulo-duarte/studylens/internal/completion"
	"github.com/saulo-duarte/studylens/internal/quizgen"
	"github.com/saulo-duarte/studylens/internal/session"
)

type gatewayFunc func(ctx context.Context, messages []completion.Message) (string, error)

func (f gatewayFunc) Complete(ctx context.Context, messages []completion.Message) (string, error) {
	return f(ctx, messages)
}

func questionsJSON(correct ...int) string {
	parts := make([]string, 0, len(correct))
	for i, c := range correct {
		parts = append(parts, fmt.Sprintf(
			`{"question": "Q%d", "options": ["A", "B", "C", "D"], "correct_index": %d}`, i+1, c))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func TestGenerateQuiz(t *testing.T) {
	t.Run("PromptAndLength", func(t *testing.T) {
		for _, count := range []int{1, 7, 20} {
			var got []completion.Message
			gw := gatewayFunc(func(_ context.Context, m []completion.Message) (string, error) {
				got = m
				correct := make([]int, count)
				return questionsJSON(correct...), nil
			})

			qz, err := quizgen.NewService(gw).GenerateQuiz(context.Background(), "photosynthesis notes", count)
			if err != nil {
				t.Fatalf("count %d: GenerateQuiz failed: %v", count, err)
			}
			if len(qz) != count {
				t.Errorf("count %d: got %d questions", count, len(qz))
			}
			if len(got) != 2 || got[0].Role != completion.RoleSystem || got[1].Role != completion.RoleUser {
				t.Fatalf("unexpected messages %+v", got)
			}
			if !strings.Contains(got[0].Content, fmt.Sprintf("exactly %d objects", count)) {
				t.Errorf("system prompt does not fix the count: %s", got[0].Content)
			}
			if got[1].Content != "photosynthesis notes" {
				t.Errorf("user payload should be the source text, got %q", got[1].Content)
			}
		}
	})

	t.Run("ClampsRequestedCount", func(t *testing.T) {
		cases := map[int]string{0: "exactly 1 objects", -4: "exactly 1 objects", 99: "exactly 20 objects"}
		for count, want := range cases {
			var prompt string
			gw := gatewayFunc(func(_ context.Context, m []completion.Message) (string, error) {
				prompt = m[0].Content
				return questionsJSON(0), nil
			})
			if _, err := quizgen.NewService(gw).GenerateQuiz(context.Background(), "text", count); err != nil {
				t.Fatalf("GenerateQuiz failed: %v", err)
			}
			if !strings.Contains(prompt, want) {
				t.Errorf("count %d: prompt should contain %q", count, want)
			}
		}
	})

	t.Run("TruncatesExtraQuestions", func(t *testing.T) {
		gw := gatewayFunc(func(context.Context, []completion.Message) (string, error) {
			return questionsJSON(0, 1, 2, 3), nil
		})
		qz, err := quizgen.NewService(gw).GenerateQuiz(context.Background(), "text", 2)
		if err != nil {
			t.Fatalf("GenerateQuiz failed: %v", err)
		}
		if len(qz) != 2 {
			t.Errorf("expected 2 questions, got %d", len(qz))
		}
	})

	t.Run("UpstreamError", func(t *testing.T) {
		upErr := &completion.UpstreamError{Provider: "perplexity", StatusCode: 429, Body: "rate limited"}
		gw := gatewayFunc(func(context.Context, []completion.Message) (string, error) {
			return "", upErr
		})
		_, err := quizgen.NewService(gw).GenerateQuiz(context.Background(), "text", 3)

		var got *completion.UpstreamError
		if !errors.As(err, &got) || got.StatusCode != 429 {
			t.Errorf("expected wrapped UpstreamError, got %v", err)
		}
	})

	t.Run("ExtractionError", func(t *testing.T) {
		gw := gatewayFunc(func(context.Context, []completion.Message) (string, error) {
			return "Sorry, I can't help with that.", nil
		})
		_, err := quizgen.NewService(gw).GenerateQuiz(context.Background(), "text", 3)
		if !quizgen.IsExtractionKind(err, quizgen.MalformedJSON) {
			t.Errorf("expected MalformedJSON, got %v", err)
		}
	})
}

func TestGenerateAndPlay(t *testing.T) {
	gw := gatewayFunc(func(context.Context, []completion.Message) (string, error) {
		return "Sure! Here is your quiz:\n" + questionsJSON(1, 1, 2) + "\nGood luck!", nil
	})

	qz, err := quizgen.NewService(gw).GenerateQuiz(context.Background(), "source text", 3)
	if err != nil {
		t.Fatalf("GenerateQuiz failed: %v", err)
	}

	s, err := session.New(qz)
	if err != nil {
		t.Fatalf("session.New failed: %v", err)
	}

	// A is wrong for the first question, B and C are right for the rest.
	for _, answer := range []int{0, 1, 2} {
		if s, err = s.Select(answer); err != nil {
			t.Fatalf("Select: %v", err)
		}
		if s, _, err = s.Submit(); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if s, err = s.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	if s.State() != session.Finished {
		t.Fatalf("expected Finished, got %s", s.State())
	}
	if s.Progress().Score != 2 {
		t.Errorf("expected final score 2, got %d", s.Progress().Score)
	}
}
