package service

import (
	"github.com/nayanapsychologist-spec/games/api/internal/clue"
	"github.com/nayanapsychologist-spec/games/api/internal/clue/gemini"
	"github.com/nayanapsychologist-spec/games/api/internal/clue/gpt"
	"github.com/nayanapsychologist-spec/games/api/internal/config"
	"github.com/nayanapsychologist-spec/games/api/internal/image"
	"github.com/nayanapsychologist-spec/games/api/internal/image/dalle"
	"github.com/nayanapsychologist-spec/games/api/internal/image/fusionbrain"
)

// FromConfig wires the configured engines into a ready Service. Shared by
// every entrypoint so they cannot drift apart.
func FromConfig(cfg *config.Config) (*Service, error) {
	engines := &clue.Engines{
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		OpenAI: gpt.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
	}
	eng, err := engines.GetEngine(cfg.ClueProvider)
	if err != nil {
		return nil, err
	}

	var gen image.Generator
	switch cfg.ImageProvider {
	case "dalle":
		gen = dalle.New(cfg.OpenAIAPIKey, cfg.ImageModel)
	case "fusionbrain":
		gen = fusionbrain.New(cfg.FBAPIKey, cfg.FBSecretKey)
	}

	return &Service{
		Engine:      eng,
		Images:      gen,
		Placeholder: cfg.PlaceholderImageURL,
	}, nil
}
