package fusionbrain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/nayanapsychologist-spec/games/api/internal/image"
	"github.com/nayanapsychologist-spec/games/api/internal/util"
)

const defaultBaseURL = "https://api-key.fusionbrain.ai"

// Generator talks to the FusionBrain (Kandinsky) pipeline API: start a
// generation, then poll its status until the image is ready.
type Generator struct {
	APIKey    string
	SecretKey string
	// BaseURL is overridable for tests; defaults to the public API.
	BaseURL string

	CheckInterval time.Duration
	MaxAttempts   int

	httpc *http.Client
}

func New(apiKey, secretKey string) *Generator {
	return &Generator{
		APIKey:        strings.TrimSpace(apiKey),
		SecretKey:     strings.TrimSpace(secretKey),
		BaseURL:       defaultBaseURL,
		CheckInterval: 3 * time.Second,
		MaxAttempts:   20,
		httpc:         &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *Generator) Generate(ctx context.Context, p image.Params) ([]byte, string, error) {
	if g.APIKey == "" || g.SecretKey == "" {
		return nil, "", errors.New("FB_API_KEY / FB_SECRET_KEY are empty")
	}

	pipelineID, err := g.pipelineID(ctx)
	if err != nil {
		return nil, "", err
	}
	uuid, err := g.run(ctx, pipelineID, p)
	if err != nil {
		return nil, "", err
	}

	for attempt := 0; attempt < g.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, "", ctx.Err()
		case <-time.After(g.CheckInterval):
		}

		status, files, errDesc, err := g.status(ctx, uuid)
		if err != nil {
			return nil, "", err
		}
		switch status {
		case "DONE":
			if len(files) == 0 {
				return nil, "", errors.New("fusionbrain: done without files")
			}
			b, _, err := util.DecodeBase64MaybeDataURL(files[0])
			if err != nil {
				return nil, "", fmt.Errorf("fusionbrain: bad base64: %w", err)
			}
			mime := util.SniffMimeHTTP(b)
			if mime == "application/octet-stream" {
				mime = "image/png"
			}
			return b, mime, nil
		case "FAIL":
			return nil, "", fmt.Errorf("fusionbrain: generation failed: %s", errDesc)
		}
		// INITIAL / PROCESSING: keep polling.
	}
	return nil, "", errors.New("fusionbrain: generation timed out")
}

func (g *Generator) run(ctx context.Context, pipelineID string, p image.Params) (string, error) {
	w, h := dimensionsFor(p.AspectRatio)
	params := map[string]any{
		"type":      "GENERATE",
		"width":     w,
		"height":    h,
		"numImages": 1,
		"generateParams": map[string]string{
			"query": p.Prompt,
		},
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return "", err
	}

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if err := mw.WriteField("pipeline_id", pipelineID); err != nil {
		return "", err
	}
	if err := mw.WriteField("params", string(paramsJSON)); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.BaseURL+"/key/api/v1/pipeline/run", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	g.auth(req)

	resp, err := g.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("fusionbrain run %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var out struct {
		UUID string `json:"uuid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.UUID == "" {
		return "", errors.New("fusionbrain: run returned no uuid")
	}
	return out.UUID, nil
}

func (g *Generator) status(ctx context.Context, uuid string) (string, []string, string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", g.BaseURL+"/key/api/v1/pipeline/status/"+uuid, nil)
	if err != nil {
		return "", nil, "", err
	}
	g.auth(req)

	resp, err := g.httpc.Do(req)
	if err != nil {
		return "", nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return "", nil, "", fmt.Errorf("fusionbrain status %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var out struct {
		Status           string `json:"status"`
		ErrorDescription string `json:"errorDescription"`
		Result           struct {
			Files []string `json:"files"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", nil, "", err
	}
	return out.Status, out.Result.Files, out.ErrorDescription, nil
}

func (g *Generator) pipelineID(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", g.BaseURL+"/key/api/v1/pipelines", nil)
	if err != nil {
		return "", err
	}
	g.auth(req)

	resp, err := g.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("fusionbrain pipelines %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var pipelines []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&pipelines); err != nil {
		return "", err
	}
	if len(pipelines) == 0 {
		return "", errors.New("fusionbrain: no pipelines available")
	}
	return pipelines[0].ID, nil
}

func (g *Generator) auth(req *http.Request) {
	req.Header.Set("X-Key", "Key "+g.APIKey)
	req.Header.Set("X-Secret", "Secret "+g.SecretKey)
}

func dimensionsFor(aspect string) (int, int) {
	switch aspect {
	case "16:9":
		return 1344, 768
	case "9:16":
		return 768, 1344
	default:
		return 1024, 1024
	}
}
