package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushire/placement-api/internal/models"
	"github.com/campushire/placement-api/internal/store"
	appErrors "github.com/campushire/placement-api/pkg/errors"
)

// SubmitVerificationRequest is the student payload for submitting a document.
type SubmitVerificationRequest struct {
	DocumentType models.DocumentType `json:"document_type" validate:"required,oneof=transcript certificate id_proof"`
	FileURL      string              `json:"file_url" validate:"required,url"`
	FileName     string              `json:"file_name" validate:"required"`
}

// ReviewVerificationRequest carries the reviewer's remark.
type ReviewVerificationRequest struct {
	Remarks string `json:"remarks"`
}

const defaultApprovalRemark = "Document verified and approved"

// VerificationService manages the document review workflow and its effect on
// profile verification flags.
type VerificationService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewVerificationService creates an instance of VerificationService.
func NewVerificationService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *VerificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &VerificationService{store: st, validator: validate, logger: logger}
}

// Submit records a new pending verification. At most one pending submission
// may exist per (student, document type); earlier approved or rejected
// records remain as history.
func (s *VerificationService) Submit(ctx context.Context, student models.User, req SubmitVerificationRequest) (*models.Verification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid verification payload")
	}

	for _, existing := range s.store.VerificationsByStudent(student.ID) {
		if existing.DocumentType == req.DocumentType && existing.Status == models.VerificationPending {
			return nil, appErrors.Clone(appErrors.ErrPendingVerification, "")
		}
	}

	ver := s.store.AddVerification(ctx, models.Verification{
		StudentID:    student.ID,
		StudentName:  student.Name,
		DocumentType: req.DocumentType,
		FileURL:      req.FileURL,
		FileName:     req.FileName,
		Status:       models.VerificationPending,
	})

	s.logger.Info("verification submitted",
		zap.String("verification_id", ver.ID),
		zap.String("student_id", student.ID),
		zap.String("document_type", string(req.DocumentType)))
	return &ver, nil
}

// Approve marks a pending submission approved and propagates the result into
// the student's profile: transcript and certificate set their flag and the
// derived verified status is recomputed. The id_proof type has no profile
// flag and leaves the profile untouched. Approval is irreversible.
func (s *VerificationService) Approve(ctx context.Context, reviewer models.User, verID string, req ReviewVerificationRequest) (*models.Verification, error) {
	ver, err := s.pending(verID)
	if err != nil {
		return nil, err
	}

	remarks := strings.TrimSpace(req.Remarks)
	if remarks == "" {
		remarks = defaultApprovalRemark
	}

	now := time.Now().UTC()
	ver.Status = models.VerificationApproved
	ver.Remarks = remarks
	ver.ReviewedAt = &now
	ver.ReviewedBy = reviewer.Name
	s.store.UpdateVerification(ctx, *ver)

	if profile, ok := s.store.ProfileByUserID(ver.StudentID); ok {
		switch ver.DocumentType {
		case models.DocTranscript:
			profile.VerifiedFields.Transcript = true
		case models.DocCertificate:
			profile.VerifiedFields.Certificate = true
		}
		profile.RecomputeVerified()
		s.store.UpdateProfile(ctx, profile)
	}

	s.logger.Info("verification approved",
		zap.String("verification_id", verID),
		zap.String("reviewer", reviewer.ID))
	return ver, nil
}

// Reject marks a pending submission rejected. A remark is mandatory; the
// student's profile flags are never altered by a rejection.
func (s *VerificationService) Reject(ctx context.Context, reviewer models.User, verID string, req ReviewVerificationRequest) (*models.Verification, error) {
	if strings.TrimSpace(req.Remarks) == "" {
		return nil, appErrors.Clone(appErrors.ErrRemarkRequired, "")
	}

	ver, err := s.pending(verID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ver.Status = models.VerificationRejected
	ver.Remarks = req.Remarks
	ver.ReviewedAt = &now
	ver.ReviewedBy = reviewer.Name
	s.store.UpdateVerification(ctx, *ver)

	s.logger.Info("verification rejected",
		zap.String("verification_id", verID),
		zap.String("reviewer", reviewer.ID))
	return ver, nil
}

// ListByStudent returns a student's own submissions.
func (s *VerificationService) ListByStudent(ctx context.Context, studentID string) []models.Verification {
	return s.store.VerificationsByStudent(studentID)
}

// Queue returns all submissions, optionally filtered by status.
func (s *VerificationService) Queue(ctx context.Context, status *models.VerificationStatus) []models.Verification {
	verifications := s.store.Verifications()
	if status == nil {
		return verifications
	}
	out := verifications[:0]
	for _, v := range verifications {
		if v.Status == *status {
			out = append(out, v)
		}
	}
	return out
}

func (s *VerificationService) pending(verID string) (*models.Verification, error) {
	ver, ok := s.store.VerificationByID(verID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "verification not found")
	}
	if ver.Status != models.VerificationPending {
		return nil, appErrors.Clone(appErrors.ErrVerificationReviewed, "")
	}
	return &ver, nil
}
