package session

import (
	"fmt"

	"github.com/saulo-duarte/studylens/internal/quiz"
)

// Snapshot is the serializable form of a Session, without its quiz.
type Snapshot struct {
	Index    int  `json:"index"`
	Score    int  `json:"score"`
	Answered bool `json:"answered"`
	Selected int  `json:"selected"`
	Finished bool `json:"finished"`
}

func (s Session) Snapshot() Snapshot {
	return Snapshot{
		Index:    s.index,
		Score:    s.score,
		Answered: s.answered,
		Selected: s.selected,
		Finished: s.finished,
	}
}

// Restore rebuilds a Session from a snapshot and the quiz it was taken on,
// rejecting snapshots that break the session invariants.
func Restore(qz quiz.Quiz, snap Snapshot) (Session, error) {
	s, err := New(qz)
	if err != nil {
		return Session{}, err
	}

	answeredCount := snap.Index
	if snap.Answered {
		answeredCount++
	}

	switch {
	case snap.Index < 0 || snap.Index >= len(qz):
		return Session{}, fmt.Errorf("%w: index %d outside quiz of %d", ErrInvalidSnapshot, snap.Index, len(qz))
	case snap.Score < 0 || snap.Score > answeredCount:
		return Session{}, fmt.Errorf("%w: score %d with %d answered", ErrInvalidSnapshot, snap.Score, answeredCount)
	case snap.Selected < noSelection || snap.Selected >= quiz.OptionCount:
		return Session{}, fmt.Errorf("%w: selected option %d", ErrInvalidSnapshot, snap.Selected)
	case snap.Answered && snap.Selected == noSelection:
		return Session{}, fmt.Errorf("%w: answered without selection", ErrInvalidSnapshot)
	case snap.Finished && (!snap.Answered || snap.Index != len(qz)-1):
		return Session{}, fmt.Errorf("%w: finished before last answer", ErrInvalidSnapshot)
	}

	s.index = snap.Index
	s.score = snap.Score
	s.answered = snap.Answered
	s.selected = snap.Selected
	s.finished = snap.Finished
	return s, nil
}
