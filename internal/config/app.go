package config

import (
	"log"
	"os"
	"sync"
)

type AppConfig struct {
	Name          string
	Env           string
	Port          string
	BaseURL       string
	AIProvider    string
	StorageDriver string
	UploadDir     string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		appConfig = &AppConfig{
			Name:          getEnv("APP_NAME", "cv-optimizer"),
			Env:           env,
			Port:          getEnv("APP_PORT", ":8080"),
			BaseURL:       os.Getenv("APP_URL"),
			AIProvider:    getEnv("AI_PROVIDER", "gemini"),
			StorageDriver: getEnv("STORAGE_DRIVER", "postgres"),
			UploadDir:     getEnv("UPLOAD_DIR", "./uploads/cv"),
		}
	})
	return appConfig
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
