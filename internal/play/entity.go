package play

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/saulo-duarte/studylens/internal/quiz"
	"github.com/saulo-duarte/studylens/internal/session"
)

// StoredQuiz is a generated quiz together with the authoritative state of
// its play session. Version increases on every accepted action.
type StoredQuiz struct {
	ID         uuid.UUID                            `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string                               `gorm:"type:text;not null;index" json:"-"`
	TopicTitle string                               `gorm:"type:text;not null" json:"topicTitle"`
	Questions  datatypes.JSON                       `gorm:"not null" json:"questions"`
	State      datatypes.JSONType[session.Snapshot] `gorm:"not null" json:"state"`
	Version    int                                  `gorm:"not null" json:"version"`
	CreatedAt  time.Time                            `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time                            `gorm:"autoUpdateTime" json:"updatedAt"`
}

func newStoredQuiz(title string, qz quiz.Quiz, sess session.Session) (*StoredQuiz, error) {
	raw, err := json.Marshal(qz)
	if err != nil {
		return nil, err
	}
	return &StoredQuiz{
		ID:         uuid.New(),
		TopicTitle: title,
		Questions:  datatypes.JSON(raw),
		State:      datatypes.NewJSONType(sess.Snapshot()),
		Version:    1,
	}, nil
}

func (s *StoredQuiz) Quiz() (quiz.Quiz, error) {
	var qz quiz.Quiz
	if err := json.Unmarshal(s.Questions, &qz); err != nil {
		return nil, fmt.Errorf("decode stored quiz %s: %w", s.ID, err)
	}
	return qz, nil
}

// Cursor is what the client holds between requests: which quiz it plays and
// the state version it last saw.
type Cursor struct {
	QuizID  uuid.UUID
	Version int
}
