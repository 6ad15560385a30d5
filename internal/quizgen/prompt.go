package quizgen

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/saulo-duarte/studylens/internal/quiz"
)

const systemPromptTemplate = `
You are an AI quiz generator.

From the content, create %d multiple-choice questions.

Output JSON ONLY, no explanation, no markdown. The JSON must be:

[
  {
    "question": "Question text here",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correct_index": 0
  }
]

Rules:
- Return a JSON array of exactly %d objects.
- Exactly 4 options per question.
- "correct_index" is 0, 1, 2, or 3 for A, B, C, D respectively.
- Do NOT include any text outside the JSON.
`

// ClampCount forces the requested question count into [1, 20].
func ClampCount(count int) int {
	return lo.Clamp(count, quiz.MinQuestions, quiz.MaxQuestions)
}

func BuildSystemPrompt(count int) string {
	return fmt.Sprintf(systemPromptTemplate, count, count)
}
