package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Text-generation provider: "gemini" | "gpt"
	ClueProvider string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	// Image-generation provider: "dalle" | "fusionbrain" | "none"
	ImageProvider string
	ImageModel    string
	FBAPIKey      string
	FBSecretKey   string

	// Returned instead of a data URL when image generation fails.
	PlaceholderImageURL string

	// Bot only.
	TelegramBotToken string
	WebhookURL       string
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

// Load reads the process configuration once. Credentials are required only
// for the providers actually selected; a missing credential is a startup
// error, not a per-request one.
func Load() (*Config, error) {
	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8000"),

		ClueProvider: strings.ToLower(getEnv("CLUE_PROVIDER", "gemini")),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		ImageProvider: strings.ToLower(getEnv("IMAGE_PROVIDER", "dalle")),
		ImageModel:    getEnv("IMAGE_MODEL", "dall-e-3"),
		FBAPIKey:      os.Getenv("FB_API_KEY"),
		FBSecretKey:   os.Getenv("FB_SECRET_KEY"),

		PlaceholderImageURL: getEnv("PLACEHOLDER_IMAGE_URL", "https://placehold.co/600x400?text=No+Image"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		WebhookURL:       os.Getenv("WEBHOOK_URL"),
	}

	switch cfg.ClueProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("missing required env GEMINI_API_KEY")
		}
	case "gpt":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("missing required env OPENAI_API_KEY")
		}
	default:
		return nil, fmt.Errorf("unknown CLUE_PROVIDER %q (want gemini or gpt)", cfg.ClueProvider)
	}

	switch cfg.ImageProvider {
	case "dalle":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("missing required env OPENAI_API_KEY (needed by IMAGE_PROVIDER=dalle)")
		}
	case "fusionbrain":
		if cfg.FBAPIKey == "" || cfg.FBSecretKey == "" {
			return nil, fmt.Errorf("missing required env FB_API_KEY / FB_SECRET_KEY")
		}
	case "none":
	default:
		return nil, fmt.Errorf("unknown IMAGE_PROVIDER %q (want dalle, fusionbrain or none)", cfg.ImageProvider)
	}

	return cfg, nil
}
