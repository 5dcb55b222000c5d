package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/campushire/placement-api/pkg/errors"
)

func TestAddDepartment(t *testing.T) {
	st := newTestStore(t)
	svc := NewCatalogService(st, nil, nil)

	dept, err := svc.AddDepartment(context.Background(), AddDepartmentRequest{Name: "Civil Engineering", Code: "CE"})
	require.NoError(t, err)
	assert.NotEmpty(t, dept.ID)
	assert.Len(t, svc.Departments(context.Background()), 6)
}

func TestAddDepartmentDuplicateCode(t *testing.T) {
	st := newTestStore(t)
	svc := NewCatalogService(st, nil, nil)

	_, err := svc.AddDepartment(context.Background(), AddDepartmentRequest{Name: "Something Else", Code: "CS"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
	assert.Len(t, svc.Departments(context.Background()), 5)
}

func TestAddSkill(t *testing.T) {
	st := newTestStore(t)
	svc := NewCatalogService(st, nil, nil)

	skill, err := svc.AddSkill(context.Background(), AddSkillRequest{Name: "Rust", Category: "Programming"})
	require.NoError(t, err)
	assert.Equal(t, "Rust", skill.Name)
	assert.Len(t, svc.Skills(context.Background()), 13)
}

func TestAddSkillCaseInsensitiveDuplicate(t *testing.T) {
	st := newTestStore(t)
	svc := NewCatalogService(st, nil, nil)

	// "React" is seeded; "react" collides ignoring case
	_, err := svc.AddSkill(context.Background(), AddSkillRequest{Name: "react", Category: "Frontend"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
	assert.Len(t, svc.Skills(context.Background()), 12)
}
