package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hiredeck/ats-service/internal/ats"
	"github.com/hiredeck/ats-service/internal/model"
)

// ErrNotFound covers unknown job tokens and, for status updates, an email
// with no matching applicant under the token. Handlers map it to 404.
var ErrNotFound = errors.New("not found")

// Repository is the durable mirror of the store.
type Repository interface {
	LoadTokens() (map[string]model.JobPosting, error)
	SaveTokens(map[string]model.JobPosting) error
	LoadApplicants() (map[string][]*model.ApplicantRecord, error)
	SaveApplicants(map[string][]*model.ApplicantRecord) error
}

// Scorer rates a resume against a job description and returns the raw
// model output. Tolerating whatever shape it returns is the normalizer's
// job, not the scorer's.
type Scorer interface {
	Score(ctx context.Context, resumeText, jobDescription string) (string, error)
}

// Exporter rewrites the tabular view of the full applicant collection.
type Exporter interface {
	Export(map[string][]*model.ApplicantRecord) error
}

// Profile carries the candidate-supplied fields of a submission.
type Profile struct {
	Name       string
	Email      string
	Education  string
	College    string
	Passout    int
	ResumeFile string
}

// Store owns the token registry and the per-token applicant lists. The
// mutex covers every read-modify-write-persist sequence; Fiber runs
// handlers on parallel goroutines and the files are whole-file rewrites.
type Store struct {
	mu         sync.Mutex
	tokens     map[string]model.JobPosting
	applicants map[string][]*model.ApplicantRecord
	repo       Repository
	scorer     Scorer
	exporter   Exporter
}

// New loads the persisted state once and returns the process-wide store.
func New(repo Repository, scorer Scorer, exporter Exporter) (*Store, error) {
	tokens, err := repo.LoadTokens()
	if err != nil {
		return nil, fmt.Errorf("failed to load token registry: %w", err)
	}
	applicants, err := repo.LoadApplicants()
	if err != nil {
		return nil, fmt.Errorf("failed to load applicants: %w", err)
	}
	return &Store{
		tokens:     tokens,
		applicants: applicants,
		repo:       repo,
		scorer:     scorer,
		exporter:   exporter,
	}, nil
}

func shortID() string {
	return uuid.NewString()[:8]
}

// CreateJob registers a new job posting and returns its shareable token.
func (s *Store) CreateJob(jd, designation string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := shortID()
	s.tokens[token] = model.JobPosting{JD: jd, Designation: designation}
	if err := s.repo.SaveTokens(s.tokens); err != nil {
		delete(s.tokens, token)
		return "", err
	}
	return token, nil
}

// Job looks up a posting by token.
func (s *Store) Job(token string) (model.JobPosting, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.tokens[token]
	return job, ok
}

// Tokens returns the full registry, for the HR portal listing.
func (s *Store) Tokens() map[string]model.JobPosting {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]model.JobPosting, len(s.tokens))
	for k, v := range s.tokens {
		out[k] = v
	}
	return out
}

// SubmitApplication scores the resume against the token's job description,
// normalizes the result, appends the record and persists both the
// canonical store and the export table. The scoring call runs outside the
// mutation lock; a scorer failure is logged and degrades to an empty raw
// response so the record still carries a well-formed ATS result.
func (s *Store) SubmitApplication(ctx context.Context, token string, p Profile, resumeText string) (*model.ApplicantRecord, error) {
	job, ok := s.Job(token)
	if !ok {
		return nil, fmt.Errorf("job token %s: %w", token, ErrNotFound)
	}

	raw := ""
	if s.scorer != nil {
		scored, err := s.scorer.Score(ctx, resumeText, job.JD)
		if err != nil {
			log.Printf("ATS scoring failed for token %s: %v", token, err)
		} else {
			raw = scored
		}
	}
	result := ats.NormalizeText(raw)
	encoded, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ATS result: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[token]; !ok {
		return nil, fmt.Errorf("job token %s: %w", token, ErrNotFound)
	}

	rec := &model.ApplicantRecord{
		ID:         shortID(),
		JobToken:   token,
		CreatedAt:  time.Now().Format("2006-01-02 15:04"),
		Name:       p.Name,
		Email:      p.Email,
		Education:  p.Education,
		College:    p.College,
		Passout:    p.Passout,
		ATSResult:  encoded,
		Status:     "Pending",
		ResumeFile: p.ResumeFile,
	}
	s.applicants[token] = append(s.applicants[token], rec)

	if err := s.persistLocked(); err != nil {
		apps := s.applicants[token]
		s.applicants[token] = apps[:len(apps)-1]
		return nil, err
	}
	return rec, nil
}

// ListApplicants returns the token's applicants in submission order, each
// with its ATS result already re-normalized into the canonical shape.
// Records written by an older, looser normalization still come out clean.
func (s *Store) ListApplicants(token string) []model.ApplicantRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ApplicantRecord, 0, len(s.applicants[token]))
	for _, rec := range s.applicants[token] {
		c := *rec
		if encoded, err := json.Marshal(ats.Normalize(rec.ATSResult)); err == nil {
			c.ATSResult = encoded
		}
		out = append(out, c)
	}
	return out
}

// UpdateStatus mutates one applicant's status in place and persists.
// Notification dispatch is the caller's concern; a failed email never
// rolls this back.
func (s *Store) UpdateStatus(token, email, status string) (*model.ApplicantRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, ok := s.applicants[token]
	if !ok {
		return nil, fmt.Errorf("no applicants for token %s: %w", token, ErrNotFound)
	}
	for _, rec := range apps {
		if rec.Email == email {
			prev := rec.Status
			rec.Status = status
			if err := s.persistLocked(); err != nil {
				rec.Status = prev
				return nil, err
			}
			c := *rec
			return &c, nil
		}
	}
	return nil, fmt.Errorf("applicant %s under token %s: %w", email, token, ErrNotFound)
}

// ApplicantCount reports the total number of records across all tokens.
func (s *Store) ApplicantCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, apps := range s.applicants {
		n += len(apps)
	}
	return n
}

// persistLocked rewrites the canonical JSON store and then the export
// table. Callers hold the mutex.
func (s *Store) persistLocked() error {
	if err := s.repo.SaveApplicants(s.applicants); err != nil {
		return fmt.Errorf("failed to persist applicants: %w", err)
	}
	if s.exporter != nil {
		if err := s.exporter.Export(s.applicants); err != nil {
			return fmt.Errorf("failed to write export table: %w", err)
		}
	}
	return nil
}
