package study

import (
	"bufio"
	"strings"
)

// ParseFlashcards reads "Q:"/"A:" blocks. Continuation lines are appended to
// whichever side was last opened; cards missing either side are dropped.
func ParseFlashcards(raw string) []Flashcard {
	cards := []Flashcard{}
	var (
		current Flashcard
		side    *string
	)

	flush := func() {
		current.Question = strings.TrimSpace(current.Question)
		current.Answer = strings.TrimSpace(current.Answer)
		if current.Question != "" && current.Answer != "" {
			cards = append(cards, current)
		}
		current = Flashcard{}
		side = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		marker := strings.TrimLeft(line, "*-#0123456789. ")

		switch {
		case hasPrefixFold(marker, "Q:"):
			flush()
			current.Question = strings.TrimLeft(marker[2:], "* ")
			side = &current.Question
		case hasPrefixFold(marker, "A:"):
			current.Answer = strings.TrimLeft(marker[2:], "* ")
			side = &current.Answer
		case line == "":
			continue
		case side != nil:
			*side += " " + line
		}
	}
	flush()

	return cards
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
