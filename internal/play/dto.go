package play

import (
	"github.com/google/uuid"

	"github.com/saulo-duarte/studylens/internal/quiz"
	"github.com/saulo-duarte/studylens/internal/session"
)

type SelectRequest struct {
	Option *int `json:"option"`
}

// QuestionView is a question without its answer key.
type QuestionView struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Letters []string `json:"letters"`
}

type View struct {
	QuizID     uuid.UUID        `json:"quizId"`
	TopicTitle string           `json:"topicTitle"`
	Progress   session.Progress `json:"progress"`
	Question   *QuestionView    `json:"question,omitempty"`
	Selected   *int             `json:"selected"`
	Grade      *session.Grade   `json:"grade,omitempty"`
}

func newView(stored *StoredQuiz, s session.Session) View {
	v := View{
		QuizID:     stored.ID,
		TopicTitle: stored.TopicTitle,
		Progress:   s.Progress(),
	}

	if s.State() != session.Finished {
		q := s.Current()
		letters := make([]string, len(q.Options))
		for i := range q.Options {
			letters[i] = quiz.Letter(i)
		}
		v.Question = &QuestionView{
			Text:    q.Text,
			Options: append([]string(nil), q.Options...),
			Letters: letters,
		}
	}

	if sel, ok := s.Selection(); ok && s.State() != session.Finished {
		v.Selected = &sel
	}
	if g, ok := s.LastGrade(); ok && s.State() == session.Answered {
		v.Grade = &g
	}
	return v
}
