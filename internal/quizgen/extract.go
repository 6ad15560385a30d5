package quizgen

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/saulo-duarte/studylens/internal/quiz"
)

// ItemIssue lists why one extracted question is not gradable.
type ItemIssue struct {
	Index    int
	Problems []string
}

type Extraction struct {
	Quiz   quiz.Quiz
	Issues []ItemIssue
}

type wireQuestion struct {
	Question     string            `json:"question"`
	Options      []json.RawMessage `json:"options"`
	CorrectIndex json.RawMessage   `json:"correct_index"`
}

// SliceJSONArray cuts the text between the first '[' and the last ']'.
// Models wrap the array in prose or code fences; this does not scan JSON, so
// a ']' in trailing prose ends up inside the slice and breaks parsing.
func SliceJSONArray(raw string) string {
	text := strings.TrimSpace(raw)
	first := strings.Index(text, "[")
	last := strings.LastIndex(text, "]")
	if first != -1 && last > first {
		return text[first : last+1]
	}
	return text
}

// Extract turns raw model output into a quiz. Items that break the question
// contract are kept and reported in Issues; they grade as incorrect.
func Extract(raw string) (*Extraction, error) {
	text := SliceJSONArray(raw)

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ExtractionError{Kind: EmptyOrInvalidShape, Err: err}
		}
		return nil, &ExtractionError{Kind: MalformedJSON, Err: err}
	}
	if len(items) == 0 {
		return nil, &ExtractionError{Kind: EmptyOrInvalidShape}
	}

	out := &Extraction{Quiz: make(quiz.Quiz, 0, len(items))}
	for i, item := range items {
		q, problems := decodeQuestion(item)
		out.Quiz = append(out.Quiz, q)
		if len(problems) > 0 {
			out.Issues = append(out.Issues, ItemIssue{Index: i, Problems: problems})
		}
	}
	return out, nil
}

func decodeQuestion(item json.RawMessage) (quiz.Question, []string) {
	problems := validateItem(item)

	var w wireQuestion
	if err := json.Unmarshal(item, &w); err != nil {
		if len(problems) == 0 {
			problems = []string{err.Error()}
		}
		return quiz.Question{CorrectIndex: -1}, problems
	}

	q := quiz.Question{
		Text:         strings.TrimSpace(w.Question),
		Options:      make([]string, 0, len(w.Options)),
		CorrectIndex: parseIndex(w.CorrectIndex),
	}
	for _, opt := range w.Options {
		var s string
		if err := json.Unmarshal(opt, &s); err != nil {
			s = string(opt)
		}
		q.Options = append(q.Options, s)
	}

	if len(problems) == 0 && !q.Gradable() {
		problems = []string{"question is not gradable"}
	}
	return q, problems
}

func parseIndex(raw json.RawMessage) int {
	if len(raw) == 0 {
		return -1
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n != math.Trunc(n) {
			return -1
		}
		return int(n)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return i
		}
	}
	return -1
}
