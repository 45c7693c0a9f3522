package clue

import "fmt"

const systemPrompt = `You generate clues for a word guessing game.
For the given word return STRICTLY one JSON object with exactly these keys:
- "definition": a short dictionary-style definition of the word. Do not use the word itself.
- "sentenceClue": one example sentence using the word, with the word replaced by "____".
- "imagePrompt": a short scene description for illustrating the word, without naming it.
Output only the JSON object. Any text outside JSON is an error.`

func SystemPrompt() string { return systemPrompt }

// UserPrompt carries the (already uppercased) word.
func UserPrompt(word string) string {
	return fmt.Sprintf("WORD: %s. Return strictly the JSON object described above.", word)
}
