package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/placement-api/internal/models"
	appErrors "github.com/campushire/placement-api/pkg/errors"
)

func TestGetProfile(t *testing.T) {
	st := newTestStore(t)
	svc := NewProfileService(st, nil, nil)

	profile, err := svc.Get(context.Background(), "student1")
	require.NoError(t, err)
	assert.Equal(t, 8.5, profile.CGPA)
	assert.True(t, profile.Verified)
}

func TestGetProfileMissing(t *testing.T) {
	st := newTestStore(t)
	svc := NewProfileService(st, nil, nil)

	_, err := svc.Get(context.Background(), "recruiter1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestUpdateProfilePreservesVerification(t *testing.T) {
	st := newTestStore(t)
	svc := NewProfileService(st, nil, nil)

	updated, err := svc.Update(context.Background(), "student1", UpdateProfileRequest{
		Program:        "B.Tech Computer Science",
		GraduationYear: 2025,
		CGPA:           9.0,
		Skills:         []string{"Go", "PostgreSQL"},
		Projects:       []models.Project{},
		ResumeURL:      "https://example.com/resume/alice-v2.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, 9.0, updated.CGPA)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, updated.Skills)
	// a profile edit never touches the verification state
	assert.True(t, updated.Verified)
	assert.True(t, updated.VerifiedFields.Transcript)
	assert.True(t, updated.VerifiedFields.Certificate)
}

func TestUpdateProfileNoImplicitCreate(t *testing.T) {
	st := newTestStore(t)
	svc := NewProfileService(st, nil, nil)

	_, err := svc.Update(context.Background(), "ghost", UpdateProfileRequest{
		Program:        "B.Tech",
		GraduationYear: 2026,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestUpdateProfileValidatesCGPA(t *testing.T) {
	st := newTestStore(t)
	svc := NewProfileService(st, nil, nil)

	_, err := svc.Update(context.Background(), "student1", UpdateProfileRequest{
		Program:        "B.Tech",
		GraduationYear: 2025,
		CGPA:           10.5,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
