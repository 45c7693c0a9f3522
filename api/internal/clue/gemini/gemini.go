package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/nayanapsychologist-spec/games/api/internal/clue"
)

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

// Clue asks Gemini for the clue object. The model is pinned to JSON output
// via ResponseMIMEType; the reply is still parsed defensively.
func (e *Engine) Clue(ctx context.Context, word string) (clue.Result, error) {
	if e.APIKey == "" {
		return clue.Result{}, &clue.CallError{Provider: "gemini", Err: errors.New("GEMINI_API_KEY is empty")}
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return clue.Result{}, &clue.CallError{Provider: "gemini", Err: err}
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(clue.SystemPrompt())},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(clue.UserPrompt(word)))
	if err != nil {
		return clue.Result{}, &clue.CallError{Provider: "gemini", Err: err}
	}
	return clue.ParseReply(firstText(resp))
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
