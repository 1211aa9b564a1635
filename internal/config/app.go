package config

import (
	"log"
	"os"
	"sync"
)

type AppConfig struct {
	Name        string
	Env         string
	Port        string
	BaseURL     string
	ATSProvider string // "gemini" or "openrouter"
	CompanyName string
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
		provider := os.Getenv("ATS_PROVIDER")
		if provider == "" {
			provider = "gemini"
		}
		company := os.Getenv("COMPANY_NAME")
		if company == "" {
			company = "Your Company Name"
		}
		appConfig = &AppConfig{
			Name:        os.Getenv("APP_NAME"),
			Env:         env,
			Port:        os.Getenv("APP_PORT"),
			BaseURL:     os.Getenv("APP_URL"),
			ATSProvider: provider,
			CompanyName: company,
		}
	})
	return appConfig
}
