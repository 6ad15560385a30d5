// Package session walks a user through a generated quiz one question at a
// time. A Session is a value: every operation returns the next Session and
// leaves the receiver untouched, so independent sessions never share state.
package session

import (
	"github.com/saulo-duarte/studylens/internal/quiz"
)

type State string

const (
	AwaitingSelection State = "awaiting_selection"
	Selected          State = "selected"
	Answered          State = "answered"
	Finished          State = "finished"
)

const noSelection = -1

type Session struct {
	quiz     quiz.Quiz
	index    int
	score    int
	answered bool
	selected int
	finished bool
}

// Grade is the outcome of submitting an answer. CorrectIndex is only
// meaningful when Revealed is true; ungradable questions never reveal it.
type Grade struct {
	Correct      bool `json:"correct"`
	CorrectIndex int  `json:"correct_index"`
	Revealed     bool `json:"revealed"`
}

type Progress struct {
	Index int   `json:"index"`
	Total int   `json:"total"`
	Score int   `json:"score"`
	State State `json:"state"`
}

func New(qz quiz.Quiz) (Session, error) {
	if len(qz) == 0 {
		return Session{}, ErrEmptyQuiz
	}
	return Session{quiz: cloneQuiz(qz), selected: noSelection}, nil
}

func (s Session) State() State {
	switch {
	case s.finished:
		return Finished
	case s.answered:
		return Answered
	case s.selected != noSelection:
		return Selected
	default:
		return AwaitingSelection
	}
}

// Select records the chosen option for the current question. Choosing again
// before submitting replaces the previous choice.
func (s Session) Select(option int) (Session, error) {
	switch s.State() {
	case Finished:
		return s, s.fail("select", ErrOutOfSequence)
	case Answered:
		return s, s.fail("select", ErrAlreadyAnswered)
	}
	if option < 0 || option >= quiz.OptionCount {
		return s, s.fail("select", ErrInvalidOption)
	}

	s.selected = option
	return s, nil
}

// Submit grades the selected option. The score moves at most once per question.
func (s Session) Submit() (Session, Grade, error) {
	switch s.State() {
	case Finished:
		return s, Grade{}, s.fail("submit", ErrOutOfSequence)
	case Answered:
		return s, Grade{}, s.fail("submit", ErrAlreadyAnswered)
	case AwaitingSelection:
		return s, Grade{}, s.fail("submit", ErrNoSelection)
	}

	g := grade(s.quiz[s.index], s.selected)
	if g.Correct {
		s.score++
	}
	s.answered = true
	return s, g, nil
}

// Advance moves past an answered question. After the last question the
// session is Finished and its score no longer changes.
func (s Session) Advance() (Session, error) {
	if s.State() != Answered {
		return s, s.fail("advance", ErrOutOfSequence)
	}

	if s.index == len(s.quiz)-1 {
		s.finished = true
		return s, nil
	}

	s.index++
	s.answered = false
	s.selected = noSelection
	return s, nil
}

func (s Session) Current() quiz.Question {
	if len(s.quiz) == 0 {
		return quiz.Question{}
	}
	return s.quiz[s.index]
}

func (s Session) Progress() Progress {
	return Progress{
		Index: s.index,
		Total: len(s.quiz),
		Score: s.score,
		State: s.State(),
	}
}

// Selection returns the selected option for the current question, if any.
func (s Session) Selection() (int, bool) {
	return s.selected, s.selected != noSelection
}

// LastGrade returns the grade of the current question once it is answered.
func (s Session) LastGrade() (Grade, bool) {
	if !s.answered || len(s.quiz) == 0 {
		return Grade{}, false
	}
	return grade(s.quiz[s.index], s.selected), true
}

func (s Session) fail(op string, err error) error {
	return &StateError{Op: op, State: s.State(), Err: err}
}

func grade(q quiz.Question, selected int) Grade {
	if !q.Gradable() {
		return Grade{Correct: false, CorrectIndex: noSelection, Revealed: false}
	}
	return Grade{
		Correct:      selected == q.CorrectIndex,
		CorrectIndex: q.CorrectIndex,
		Revealed:     true,
	}
}

func cloneQuiz(qz quiz.Quiz) quiz.Quiz {
	out := make(quiz.Quiz, len(qz))
	for i, q := range qz {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
