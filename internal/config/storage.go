package config

import (
	"os"
	"sync"
)

type StorageConfig struct {
	TokensFile     string
	ApplicantsFile string
	ExcelFile      string
	ResumeDir      string
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		storageConfig = &StorageConfig{
			TokensFile:     envOr("TOKENS_FILE", "tokens.json"),
			ApplicantsFile: envOr("APPLICANTS_FILE", "applicants.json"),
			ExcelFile:      envOr("EXCEL_FILE", "applicants.xlsx"),
			ResumeDir:      envOr("RESUME_DIR", "resumes"),
		}
	})
	return storageConfig
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
