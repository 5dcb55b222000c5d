package models

import "time"

// Stage is an application's position in the hiring pipeline.
type Stage string

const (
	StageApplied     Stage = "applied"
	StageShortlisted Stage = "shortlisted"
	StageInterview   Stage = "interview"
	StageOffered     Stage = "offered"
	StageRejected    Stage = "rejected"
)

// Stages lists all pipeline stages in funnel order.
var Stages = []Stage{StageApplied, StageShortlisted, StageInterview, StageOffered, StageRejected}

// Valid reports whether the stage is a known pipeline stage.
func (s Stage) Valid() bool {
	for _, stage := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// Terminal reports whether the stage ends the active pipeline. Transitions
// out of a terminal stage are still permitted; the recruiter has full manual
// control.
func (s Stage) Terminal() bool {
	return s == StageOffered || s == StageRejected
}

// Scores holds optional interview scores, each in the 0-100 range.
type Scores struct {
	Aptitude      *int `json:"aptitude,omitempty"`
	Tech          *int `json:"tech,omitempty"`
	Communication *int `json:"communication,omitempty"`
}

// ReviewNote is an immutable reviewer annotation on an application.
type ReviewNote struct {
	Note      string    `json:"note"`
	Reviewer  string    `json:"reviewer"`
	Timestamp time.Time `json:"timestamp"`
}

// Application links one student to one job. At most one application exists
// per (job, student) pair; applications are never deleted.
type Application struct {
	ID            string       `json:"id"`
	JobID         string       `json:"job_id"`
	StudentID     string       `json:"student_id"`
	StudentName   string       `json:"student_name"`
	StudentEmail  string       `json:"student_email"`
	CoverLetter   string       `json:"cover_letter"`
	ResumeURL     string       `json:"resume_url"`
	Stage         Stage        `json:"stage"`
	Scores        Scores       `json:"scores"`
	ReviewerNotes []ReviewNote `json:"reviewer_notes"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
