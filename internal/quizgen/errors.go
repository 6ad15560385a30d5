package quizgen

import (
	"errors"
	"fmt"
)

type ExtractionKind string

const (
	MalformedJSON       ExtractionKind = "malformed_json"
	EmptyOrInvalidShape ExtractionKind = "empty_or_invalid_shape"
)

// ExtractionError reports model output that could not be turned into a quiz.
type ExtractionError struct {
	Kind ExtractionKind
	Err  error
}

func (e *ExtractionError) Error() string {
	switch e.Kind {
	case MalformedJSON:
		return fmt.Sprintf("failed to parse quiz JSON from model output: %v", e.Err)
	default:
		if e.Err != nil {
			return fmt.Sprintf("quiz JSON is empty or invalid: %v", e.Err)
		}
		return "quiz JSON is empty or invalid"
	}
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// IsExtractionKind reports whether err is an ExtractionError of the given kind.
func IsExtractionKind(err error, kind ExtractionKind) bool {
	var extErr *ExtractionError
	return errors.As(err, &extErr) && extErr.Kind == kind
}

var ErrSuperseded = errors.New("superseded by a newer quiz request")
