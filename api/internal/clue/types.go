package clue

// Result is the strict JSON object the text model must return.
type Result struct {
	Definition   string `json:"definition"`
	SentenceClue string `json:"sentenceClue"`
	ImagePrompt  string `json:"imagePrompt,omitempty"`
}
