package history

import "time"

type LogSessionRequest struct {
	TopicTitle    string `json:"topicTitle"`
	HasSummary    bool   `json:"hasSummary"`
	HasFlashcards bool   `json:"hasFlashcards"`
	HasQuiz       bool   `json:"hasQuiz"`
	QuizScore     *int   `json:"quizScore"`
}

type EntryResponse struct {
	TopicTitle    string    `json:"topicTitle"`
	HasSummary    bool      `json:"hasSummary"`
	HasFlashcards bool      `json:"hasFlashcards"`
	HasQuiz       bool      `json:"hasQuiz"`
	QuizScore     *int      `json:"quizScore"`
	CreatedAt     time.Time `json:"createdAt"`
}

type LogSessionResponse struct {
	OK bool `json:"ok"`
}

type HistoryResponse struct {
	History []EntryResponse `json:"history"`
}
