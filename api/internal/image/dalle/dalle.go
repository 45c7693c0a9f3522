package dalle

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nayanapsychologist-spec/games/api/internal/image"
	"github.com/nayanapsychologist-spec/games/api/internal/util"
)

const defaultBaseURL = "https://api.openai.com"

type Generator struct {
	APIKey string
	Model  string
	// BaseURL is overridable for tests; defaults to the public API.
	BaseURL string
	httpc   *http.Client
}

func New(key, model string) *Generator {
	return &Generator{
		APIKey:  strings.TrimSpace(key),
		Model:   strings.TrimSpace(model),
		BaseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

func (g *Generator) Generate(ctx context.Context, p image.Params) ([]byte, string, error) {
	if g.APIKey == "" {
		return nil, "", errors.New("OPENAI_API_KEY is empty")
	}

	body := map[string]any{
		"model":           g.Model,
		"prompt":          p.Prompt,
		"n":               1,
		"size":            sizeFor(p.AspectRatio),
		"response_format": "b64_json",
	}
	payload, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST",
		strings.TrimRight(g.BaseURL, "/")+"/v1/images/generations", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.APIKey)

	resp, err := g.httpc.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return nil, "", fmt.Errorf("dalle %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var raw struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, "", err
	}
	if len(raw.Data) == 0 || raw.Data[0].B64JSON == "" {
		return nil, "", errors.New("dalle: no image payload")
	}

	b, err := base64.StdEncoding.DecodeString(raw.Data[0].B64JSON)
	if err != nil {
		return nil, "", fmt.Errorf("dalle: bad base64: %w", err)
	}
	mime := util.SniffMimeHTTP(b)
	if mime == "application/octet-stream" {
		mime = "image/png" // the images API returns PNG
	}
	return b, mime, nil
}

func sizeFor(aspect string) string {
	switch aspect {
	case "16:9":
		return "1792x1024"
	case "9:16":
		return "1024x1792"
	default:
		return "1024x1024"
	}
}
