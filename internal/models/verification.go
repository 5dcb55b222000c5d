package models

import "time"

// DocumentType identifies a verifiable document.
type DocumentType string

const (
	DocTranscript  DocumentType = "transcript"
	DocCertificate DocumentType = "certificate"
	DocIDProof     DocumentType = "id_proof"
)

// Valid reports whether the document type is known.
func (d DocumentType) Valid() bool {
	switch d {
	case DocTranscript, DocCertificate, DocIDProof:
		return true
	}
	return false
}

// VerificationStatus is the review state of a submitted document.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// Verification is one document submission attempt. Approved and rejected are
// terminal; a resubmission creates a new record. At most one pending record
// exists per (student, document type).
type Verification struct {
	ID           string             `json:"id"`
	StudentID    string             `json:"student_id"`
	StudentName  string             `json:"student_name"`
	DocumentType DocumentType       `json:"document_type"`
	FileURL      string             `json:"file_url"`
	FileName     string             `json:"file_name"`
	Status       VerificationStatus `json:"status"`
	Remarks      string             `json:"remarks,omitempty"`
	SubmittedAt  time.Time          `json:"submitted_at"`
	ReviewedAt   *time.Time         `json:"reviewed_at,omitempty"`
	ReviewedBy   string             `json:"reviewed_by,omitempty"`
}
