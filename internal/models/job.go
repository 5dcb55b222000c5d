package models

import "time"

// JobStatus is the posting state of a job.
type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
)

// Eligibility is the rule set a student profile must satisfy to apply.
type Eligibility struct {
	MinCGPA              float64 `json:"min_cgpa"`
	Batch                []int   `json:"batch"`
	RequiresVerification bool    `json:"requires_verification"`
}

// AdmitsBatch reports whether the graduation year is in the admissible set.
func (e Eligibility) AdmitsBatch(year int) bool {
	for _, b := range e.Batch {
		if b == year {
			return true
		}
	}
	return false
}

// Job is a posting owned by a recruiter. Exactly one of Stipend (monthly,
// internships) and Salary (annual, full-time) is set.
type Job struct {
	ID                 string      `json:"id"`
	RecruiterID        string      `json:"recruiter_id"`
	RecruiterName      string      `json:"recruiter_name"`
	CompanyName        string      `json:"company_name"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	Skills             []string    `json:"skills"`
	Eligibility        Eligibility `json:"eligibility"`
	Location           string      `json:"location"`
	Remote             bool        `json:"remote"`
	Stipend            *int64      `json:"stipend,omitempty"`
	Salary             *int64      `json:"salary,omitempty"`
	Status             JobStatus   `json:"status"`
	Deadline           time.Time   `json:"deadline"`
	CreatedAt          time.Time   `json:"created_at"`
	ScreeningQuestions []string    `json:"screening_questions,omitempty"`
}

// JobFilter captures browse filters for the open jobs list.
type JobFilter struct {
	Search   string
	Location string
	Skill    string
	Status   *JobStatus
}
