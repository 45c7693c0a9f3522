package gpt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nayanapsychologist-spec/games/api/internal/clue"
)

const defaultBaseURL = "https://api.openai.com"

type Engine struct {
	APIKey string
	Model  string
	// BaseURL is overridable for tests; defaults to the public API.
	BaseURL string
	httpc   *http.Client
}

func New(key, model string) *Engine {
	return &Engine{
		APIKey:  strings.TrimSpace(key),
		Model:   strings.TrimSpace(model),
		BaseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

func (e *Engine) Name() string     { return "gpt" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Clue(ctx context.Context, word string) (clue.Result, error) {
	if e.APIKey == "" {
		return clue.Result{}, &clue.CallError{Provider: "gpt", Err: errors.New("OPENAI_API_KEY is empty")}
	}

	body := map[string]any{
		"model": e.Model,
		"messages": []any{
			map[string]any{"role": "system", "content": clue.SystemPrompt()},
			map[string]any{"role": "user", "content": clue.UserPrompt(word)},
		},
		"temperature":     0,
		"response_format": map[string]any{"type": "json_object"},
	}
	payload, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST",
		strings.TrimRight(e.BaseURL, "/")+"/v1/chat/completions", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return clue.Result{}, &clue.CallError{Provider: "gpt", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return clue.Result{}, &clue.CallError{
			Provider: "gpt",
			Err:      fmt.Errorf("clue %d: %s", resp.StatusCode, strings.TrimSpace(string(x))),
		}
	}

	var raw struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return clue.Result{}, &clue.CallError{Provider: "gpt", Err: err}
	}
	if len(raw.Choices) == 0 {
		return clue.Result{}, &clue.FormatError{Reason: "empty response"}
	}
	return clue.ParseReply(raw.Choices[0].Message.Content)
}
