package dalle

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nayanapsychologist-spec/games/api/internal/image"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *Generator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	g := New("test-key", "dall-e-3")
	g.BaseURL = srv.URL
	return g
}

func TestGenerate(t *testing.T) {
	t.Run("decodes b64_json payload", func(t *testing.T) {
		g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/images/generations", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "a glowing bulb", body["prompt"])
			assert.Equal(t, "1024x1024", body["size"])
			assert.Equal(t, "b64_json", body["response_format"])

			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": []any{map[string]any{"b64_json": base64.StdEncoding.EncodeToString(pngHeader)}},
			})
		})

		b, mime, err := g.Generate(context.Background(), image.Params{Prompt: "a glowing bulb", AspectRatio: "1:1"})
		require.NoError(t, err)
		assert.Equal(t, pngHeader, b)
		assert.Equal(t, "image/png", mime)
	})

	t.Run("empty data is an error", func(t *testing.T) {
		g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
		})
		_, _, err := g.Generate(context.Background(), image.Params{Prompt: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no image payload")
	})

	t.Run("upstream error surfaces status and body", func(t *testing.T) {
		g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		})
		_, _, err := g.Generate(context.Background(), image.Params{Prompt: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
		assert.Contains(t, err.Error(), "quota exceeded")
	})
}

func TestSizeFor(t *testing.T) {
	assert.Equal(t, "1792x1024", sizeFor("16:9"))
	assert.Equal(t, "1024x1792", sizeFor("9:16"))
	assert.Equal(t, "1024x1024", sizeFor("1:1"))
	assert.Equal(t, "1024x1024", sizeFor(""))
}
