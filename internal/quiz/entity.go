// Package quiz holds the question types shared by generation and grading.
package quiz

const (
	OptionCount  = 4
	MinQuestions = 1
	MaxQuestions = 20
)

// Question is one multiple-choice item. Questions that do not meet the
// contract are kept but are not gradable.
type Question struct {
	Text         string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// Gradable reports whether the question can be graded: non-empty text,
// exactly OptionCount options and a correct index inside them.
func (q Question) Gradable() bool {
	return q.Text != "" &&
		len(q.Options) == OptionCount &&
		q.CorrectIndex >= 0 && q.CorrectIndex < OptionCount
}

type Quiz []Question

// Letter returns the A-D label of an option index.
func Letter(index int) string {
	if index < 0 || index >= 26 {
		return "?"
	}
	return string(rune('A' + index))
}
