package study

type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type TextRequest struct {
	Text string `json:"text"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type FlashcardsResponse struct {
	Flashcards []Flashcard `json:"flashcards"`
	Raw        string      `json:"raw"`
}
