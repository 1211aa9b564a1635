package model

import "encoding/json"

// ApplicantRecord is one submission under a job token. ATSResult holds
// whatever the scorer produced at ingestion time; readers must not assume
// it is already canonical and should re-normalize before exposing it.
type ApplicantRecord struct {
	ID         string          `json:"id"`
	JobToken   string          `json:"job_token"`
	CreatedAt  string          `json:"created_at"` // "2006-01-02 15:04", local time
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Education  string          `json:"education"`
	College    string          `json:"college"`
	Passout    int             `json:"passout"`
	ATSResult  json.RawMessage `json:"ats_result"`
	Status     string          `json:"status"`
	ResumeFile string          `json:"resume_file"`
}
