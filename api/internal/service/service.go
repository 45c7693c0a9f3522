package service

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"strings"

	"github.com/nayanapsychologist-spec/games/api/internal/clue"
	"github.com/nayanapsychologist-spec/games/api/internal/image"
	"github.com/nayanapsychologist-spec/games/api/internal/util"
)

// ErrMissingWord is the validation failure for an absent/blank word.
var ErrMissingWord = errors.New("Missing word parameter")

// Service holds the collaborators for one process. Constructed once at
// startup and passed into every surface (HTTP, Lambda, Telegram).
type Service struct {
	Engine clue.Engine
	// Images is optional; nil disables illustrations entirely.
	Images image.Generator
	// Placeholder replaces the data URL when image generation fails.
	Placeholder string
}

type Result struct {
	OriginalWord string `json:"originalWord"`
	Definition   string `json:"definition"`
	SentenceClue string `json:"sentenceClue"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

// Generate runs the whole pipeline for one word: clue first, illustration
// second. The text step is all-or-nothing; the image step degrades to the
// placeholder URL so a lost picture never voids a usable clue.
func (s *Service) Generate(ctx context.Context, word string) (Result, error) {
	w := strings.ToUpper(strings.TrimSpace(word))
	if w == "" {
		return Result{}, ErrMissingWord
	}

	cr, err := s.Engine.Clue(ctx, w)
	if err != nil {
		return Result{}, err
	}
	out := Result{
		OriginalWord: w,
		Definition:   cr.Definition,
		SentenceClue: cr.SentenceClue,
	}
	if s.Images == nil {
		return out, nil
	}

	prompt := strings.TrimSpace(cr.ImagePrompt)
	if prompt == "" {
		prompt = w
	}
	img, mime, err := s.Images.Generate(ctx, image.Params{Prompt: prompt, AspectRatio: "1:1"})
	if err != nil || len(img) == 0 {
		if err != nil {
			log.Printf("image generation failed for %q: %v", w, err)
		}
		out.ImageURL = s.Placeholder
		return out, nil
	}
	out.ImageURL = util.MakeDataURL(mime, base64.StdEncoding.EncodeToString(img))
	return out, nil
}
