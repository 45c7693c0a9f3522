package gpt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nayanapsychologist-spec/games/api/internal/clue"
)

func newTestEngine(t *testing.T, handler http.HandlerFunc) *Engine {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	e := New("test-key", "gpt-4o-mini")
	e.BaseURL = srv.URL
	return e
}

func chatReply(content string) []byte {
	b, _ := json.Marshal(map[string]any{
		"choices": []any{
			map[string]any{"message": map[string]any{"content": content}},
		},
	})
	return b
}

func TestClue(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "gpt-4o-mini", body["model"])

			_, _ = w.Write(chatReply(`{"definition":"a source of light","sentenceClue":"Turn on the ____.","imagePrompt":"a glowing bulb"}`))
		})

		r, err := e.Clue(context.Background(), "LIGHT")
		require.NoError(t, err)
		assert.Equal(t, "a source of light", r.Definition)
	})

	t.Run("word reaches the prompt uppercased", func(t *testing.T) {
		var userContent string
		e := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Messages []struct {
					Role    string `json:"role"`
					Content string `json:"content"`
				} `json:"messages"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Len(t, body.Messages, 2)
			userContent = body.Messages[1].Content
			_, _ = w.Write(chatReply(`{"definition":"d","sentenceClue":"s"}`))
		})

		_, err := e.Clue(context.Background(), "LIGHT")
		require.NoError(t, err)
		assert.Contains(t, userContent, "LIGHT")
	})

	t.Run("non-JSON content is a FormatError with raw text", func(t *testing.T) {
		e := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(chatReply("I'd rather chat about the weather."))
		})

		_, err := e.Clue(context.Background(), "CAT")
		var fe *clue.FormatError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "I'd rather chat about the weather.", fe.Raw)
	})

	t.Run("upstream 500 is a CallError", func(t *testing.T) {
		e := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		_, err := e.Clue(context.Background(), "CAT")
		var ce *clue.CallError
		require.ErrorAs(t, err, &ce)
		assert.Contains(t, ce.Error(), "500")
	})

	t.Run("empty key fails before any call", func(t *testing.T) {
		e := New("", "gpt-4o-mini")
		_, err := e.Clue(context.Background(), "CAT")
		var ce *clue.CallError
		require.ErrorAs(t, err, &ce)
	})
}
