package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hiredeck/ats-service/internal/config"
	"github.com/hiredeck/ats-service/internal/model"
	"github.com/hiredeck/ats-service/internal/util"
)

// FileRepository is the durable mirror of the in-memory store: two JSON
// files, loaded once at startup and rewritten wholesale on every mutation.
// All writes go through a temp file plus rename so a failed write leaves
// the previous copy intact.
type FileRepository struct {
	tokensPath     string
	applicantsPath string
}

func NewFileRepository(cfg *config.StorageConfig) *FileRepository {
	return &FileRepository{
		tokensPath:     cfg.TokensFile,
		applicantsPath: cfg.ApplicantsFile,
	}
}

func (r *FileRepository) LoadTokens() (map[string]model.JobPosting, error) {
	tokens := map[string]model.JobPosting{}
	if err := loadJSON(r.tokensPath, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *FileRepository) SaveTokens(tokens map[string]model.JobPosting) error {
	return saveJSON(r.tokensPath, tokens)
}

func (r *FileRepository) LoadApplicants() (map[string][]*model.ApplicantRecord, error) {
	applicants := map[string][]*model.ApplicantRecord{}
	if err := loadJSON(r.applicantsPath, &applicants); err != nil {
		return nil, err
	}
	return applicants, nil
}

func (r *FileRepository) SaveApplicants(applicants map[string][]*model.ApplicantRecord) error {
	return saveJSON(r.applicantsPath, applicants)
}

// loadJSON fills dst from path; a missing file just means an empty store.
func loadJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func saveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	return util.WriteFileAtomic(path, data, 0644)
}
