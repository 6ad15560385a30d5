package quizgen

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/saulo-duarte/studylens/internal/quiz"
)

const DefaultCount = 5

// Count is the requested number of questions as sent by the client. Missing,
// null or non-numeric values fall back to DefaultCount; numbers and numeric
// strings are truncated to an integer. Range clamping happens in the service.
type Count int

func (c *Count) UnmarshalJSON(b []byte) error {
	*c = DefaultCount

	raw := bytes.TrimSpace(b)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		*c = truncate(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*c = truncate(f)
		}
	}
	return nil
}

func truncate(f float64) Count {
	if math.IsNaN(f) {
		return DefaultCount
	}
	if f > math.MaxInt32 {
		return Count(math.MaxInt32)
	}
	if f < math.MinInt32 {
		return Count(math.MinInt32)
	}
	return Count(int(f))
}

type QuizRequest struct {
	Text  string `json:"text"`
	Count *Count `json:"count,omitempty"`
}

// RequestedCount returns the count the client asked for, DefaultCount when absent.
func (r QuizRequest) RequestedCount() int {
	if r.Count == nil {
		return DefaultCount
	}
	return int(*r.Count)
}

type QuizResponse struct {
	Quiz quiz.Quiz `json:"quiz"`
}
