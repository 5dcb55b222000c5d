package models

// Project is a portfolio entry on a student profile.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// VerifiedFields tracks per-document verification flags. The id_proof
// document type has no flag here and never affects Verified.
type VerifiedFields struct {
	Transcript  bool `json:"transcript"`
	Certificate bool `json:"certificate"`
}

// StudentProfile holds academic attributes for a user with the student role,
// keyed by the owning user id. Verified is derived: it is true exactly when
// both transcript and certificate are verified.
type StudentProfile struct {
	UserID         string         `json:"user_id"`
	Program        string         `json:"program"`
	GraduationYear int            `json:"graduation_year"`
	CGPA           float64        `json:"cgpa"`
	Skills         []string       `json:"skills"`
	Projects       []Project      `json:"projects"`
	ResumeURL      string         `json:"resume_url"`
	Verified       bool           `json:"verified"`
	VerifiedFields VerifiedFields `json:"verified_fields"`
}

// RecomputeVerified refreshes the derived Verified flag from the per-field
// verification state.
func (p *StudentProfile) RecomputeVerified() {
	p.Verified = p.VerifiedFields.Transcript && p.VerifiedFields.Certificate
}
