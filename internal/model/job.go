package model

// JobPosting is what HR registers for a job token: the job description
// shared with the scorer plus the public title. The JSON keys mirror the
// tokens.json registry layout.
type JobPosting struct {
	JD          string `json:"JD"`
	Designation string `json:"designation"`
}
