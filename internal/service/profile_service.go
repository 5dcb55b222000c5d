package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushire/placement-api/internal/models"
	"github.com/campushire/placement-api/internal/store"
	appErrors "github.com/campushire/placement-api/pkg/errors"
)

// UpdateProfileRequest is the student payload for editing academic details.
// Verification flags are deliberately absent: only the verification workflow
// mutates them.
type UpdateProfileRequest struct {
	Program        string           `json:"program" validate:"required"`
	GraduationYear int              `json:"graduation_year" validate:"required,gte=2000,lte=2100"`
	CGPA           float64          `json:"cgpa" validate:"gte=0,lte=10"`
	Skills         []string         `json:"skills"`
	Projects       []models.Project `json:"projects"`
	ResumeURL      string           `json:"resume_url"`
}

// ProfileService manages student profiles.
type ProfileService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfileService creates an instance of ProfileService.
func NewProfileService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ProfileService{store: st, validator: validate, logger: logger}
}

// Get returns the profile owned by userID.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.StudentProfile, error) {
	profile, ok := s.store.ProfileByUserID(userID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
	}
	return &profile, nil
}

// Update replaces the editable fields of an existing profile. There is no
// implicit create: registration is the only operation that creates profiles.
func (s *ProfileService) Update(ctx context.Context, userID string, req UpdateProfileRequest) (*models.StudentProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}

	profile, ok := s.store.ProfileByUserID(userID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
	}

	profile.Program = req.Program
	profile.GraduationYear = req.GraduationYear
	profile.CGPA = req.CGPA
	profile.Skills = req.Skills
	profile.Projects = req.Projects
	profile.ResumeURL = req.ResumeURL

	s.store.UpdateProfile(ctx, profile)
	s.logger.Info("profile updated", zap.String("user_id", userID))
	return &profile, nil
}
