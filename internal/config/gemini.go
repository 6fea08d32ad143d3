package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

type GeminiConfig struct {
	APIKey         string
	Model          string
	RequestTimeout time.Duration
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		geminiConfig = &GeminiConfig{
			APIKey:         os.Getenv("GEMINI_API_KEY"),
			Model:          getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			RequestTimeout: aiTimeout(),
		}
	})
	return geminiConfig
}

// aiTimeout is shared by every AI provider; expiry counts as a failed call.
func aiTimeout() time.Duration {
	secs, err := strconv.Atoi(os.Getenv("AI_TIMEOUT_SECONDS"))
	if err != nil || secs <= 0 {
		return 60 * time.Second
	}
	return time.Duration(secs) * time.Second
}
