package clue

import (
	"encoding/json"
	"strings"

	"github.com/nayanapsychologist-spec/games/api/internal/util"
)

// ParseReply interprets the model's free-form reply as a Result. Every
// failure is a *FormatError carrying the raw text.
func ParseReply(raw string) (Result, error) {
	txt := util.StripCodeFences(strings.TrimSpace(raw))
	if txt == "" {
		return Result{}, &FormatError{Raw: raw, Reason: "empty response"}
	}

	var r Result
	if err := json.Unmarshal([]byte(txt), &r); err != nil {
		return Result{}, &FormatError{Raw: raw, Reason: "bad JSON", Err: err}
	}

	var missing []string
	if strings.TrimSpace(r.Definition) == "" {
		missing = append(missing, "definition")
	}
	if strings.TrimSpace(r.SentenceClue) == "" {
		missing = append(missing, "sentenceClue")
	}
	if len(missing) > 0 {
		return Result{}, &FormatError{Raw: raw, Reason: "missing required fields: " + strings.Join(missing, ", ")}
	}
	return r, nil
}
