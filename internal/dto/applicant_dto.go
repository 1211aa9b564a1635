package dto

import (
	"github.com/hiredeck/ats-service/internal/ats"
	"github.com/hiredeck/ats-service/internal/model"
)

// ApplicantDTO is the wire shape of an applicant record. The ATS result is
// always the canonical three-field object, regardless of what the store
// has persisted.
type ApplicantDTO struct {
	ID         string     `json:"id"`
	JobToken   string     `json:"job_token"`
	CreatedAt  string     `json:"created_at"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Education  string     `json:"education"`
	College    string     `json:"college"`
	Passout    int        `json:"passout"`
	ATSResult  ats.Result `json:"ats_result"`
	Status     string     `json:"status"`
	ResumeFile string     `json:"resume_file"`
}

func FromRecord(rec model.ApplicantRecord) ApplicantDTO {
	return ApplicantDTO{
		ID:         rec.ID,
		JobToken:   rec.JobToken,
		CreatedAt:  rec.CreatedAt,
		Name:       rec.Name,
		Email:      rec.Email,
		Education:  rec.Education,
		College:    rec.College,
		Passout:    rec.Passout,
		ATSResult:  ats.Normalize(rec.ATSResult),
		Status:     rec.Status,
		ResumeFile: rec.ResumeFile,
	}
}
