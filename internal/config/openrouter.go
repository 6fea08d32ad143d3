package config

import (
	"os"
	"sync"
	"time"
)

type OpenRouterConfig struct {
	APIKey         string
	Model          string
	BaseURL        string
	RequestTimeout time.Duration
}

var (
	openRouterConfig *OpenRouterConfig
	openRouterOnce   sync.Once
)

func LoadOpenRouterConfig() *OpenRouterConfig {
	openRouterOnce.Do(func() {
		openRouterConfig = &OpenRouterConfig{
			APIKey:         os.Getenv("OPENROUTER_API_KEY"),
			Model:          getEnv("OPENROUTER_MODEL", "openai/gpt-4o-mini"),
			BaseURL:        getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			RequestTimeout: aiTimeout(),
		}
	})
	return openRouterConfig
}
