package history

import (
	"time"

	"github.com/google/uuid"
)

type SessionLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        string    `gorm:"type:text;not null;index:idx_session_logs_user_created,priority:1" json:"-"`
	TopicTitle    string    `gorm:"type:text;not null" json:"topicTitle"`
	HasSummary    bool      `gorm:"not null;default:false" json:"hasSummary"`
	HasFlashcards bool      `gorm:"not null;default:false" json:"hasFlashcards"`
	HasQuiz       bool      `gorm:"not null;default:false" json:"hasQuiz"`
	QuizScore     *int      `json:"quizScore"`
	CreatedAt     time.Time `gorm:"not null;index:idx_session_logs_user_created,priority:2,sort:desc" json:"createdAt"`
}
