package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/placement-api/internal/models"
	appErrors "github.com/campushire/placement-api/pkg/errors"
)

func TestListUsersByRole(t *testing.T) {
	st := newTestStore(t)
	svc := NewUserService(st, nil, nil)

	role := models.RoleStudent
	students := svc.List(context.Background(), models.UserFilter{Role: &role})
	require.Len(t, students, 3)
	for _, u := range students {
		assert.Equal(t, models.RoleStudent, u.Role)
	}
}

func TestListUsersNewestFirst(t *testing.T) {
	st := newTestStore(t)
	svc := NewUserService(st, nil, nil)

	users := svc.List(context.Background(), models.UserFilter{})
	require.Len(t, users, 7)
	for i := 1; i < len(users); i++ {
		assert.False(t, users[i-1].CreatedAt.Before(users[i].CreatedAt))
	}
}

func TestListUsersSearchMatchesNameAndEmail(t *testing.T) {
	st := newTestStore(t)
	svc := NewUserService(st, nil, nil)

	byName := svc.List(context.Background(), models.UserFilter{Search: "alice"})
	require.Len(t, byName, 1)
	assert.Equal(t, "student1", byName[0].ID)

	byEmail := svc.List(context.Background(), models.UserFilter{Search: "techcorp"})
	require.Len(t, byEmail, 1)
	assert.Equal(t, "recruiter1", byEmail[0].ID)
}

func TestSetActiveDeactivates(t *testing.T) {
	st := newTestStore(t)
	svc := NewUserService(st, nil, nil)

	user, err := svc.SetActive(context.Background(), "student1", false)
	require.NoError(t, err)
	assert.False(t, user.Active)

	stored := seededUser(t, st, "student1")
	assert.False(t, stored.Active)
}

func TestSetActiveUnknownUser(t *testing.T) {
	st := newTestStore(t)
	svc := NewUserService(st, nil, nil)

	_, err := svc.SetActive(context.Background(), "ghost", false)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestChangeRole(t *testing.T) {
	st := newTestStore(t)
	svc := NewUserService(st, nil, nil)

	user, err := svc.ChangeRole(context.Background(), "faculty1", ChangeRoleRequest{Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestChangeRoleRejectsUnknownRole(t *testing.T) {
	st := newTestStore(t)
	svc := NewUserService(st, nil, nil)

	_, err := svc.ChangeRole(context.Background(), "faculty1", ChangeRoleRequest{Role: models.Role("superuser")})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
