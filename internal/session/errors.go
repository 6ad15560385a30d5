package session

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyQuiz       = errors.New("quiz has no questions")
	ErrNoSelection     = errors.New("no option selected")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrOutOfSequence   = errors.New("operation not allowed in current state")
	ErrInvalidOption   = errors.New("option index out of range")
	ErrInvalidSnapshot = errors.New("invalid session snapshot")
)

// StateError is returned when an operation is not valid in the session's
// current state. It matches the sentinel errors above with errors.Is.
type StateError struct {
	Op    string
	State State
	Err   error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s in state %s: %v", e.Op, e.State, e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}
