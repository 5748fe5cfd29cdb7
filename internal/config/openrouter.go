package config

import (
	"os"
	"sync"
)

type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

var (
	openRouterConfig *OpenRouterConfig
	openRouterOnce   sync.Once
)

func LoadOpenRouterConfig() *OpenRouterConfig {
	openRouterOnce.Do(func() {
		model := os.Getenv("OPENROUTER_MODEL")
		if model == "" {
			model = "openai/gpt-4o-mini"
		}
		openRouterConfig = &OpenRouterConfig{
			APIKey:  os.Getenv("OPENROUTER_API_KEY"),
			BaseURL: "https://openrouter.ai/api/v1",
			Model:   model,
		}
	})
	return openRouterConfig
}
