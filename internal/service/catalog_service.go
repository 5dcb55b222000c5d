package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushire/placement-api/internal/models"
	"github.com/campushire/placement-api/internal/store"
	appErrors "github.com/campushire/placement-api/pkg/errors"
)

// AddDepartmentRequest is the admin payload for adding a department.
type AddDepartmentRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

// AddSkillRequest is the admin payload for adding a skill.
type AddSkillRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// CatalogService manages the department and skill reference lists. Both are
// append-only: no edit or delete exists in the current scope.
type CatalogService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCatalogService creates an instance of CatalogService.
func NewCatalogService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CatalogService{store: st, validator: validate, logger: logger}
}

// Departments returns all departments.
func (s *CatalogService) Departments(ctx context.Context) []models.Department {
	return s.store.Departments()
}

// Skills returns all skills.
func (s *CatalogService) Skills(ctx context.Context) []models.Skill {
	return s.store.Skills()
}

// AddDepartment appends a department. Codes are unique.
func (s *CatalogService) AddDepartment(ctx context.Context, req AddDepartmentRequest) (*models.Department, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid department payload")
	}

	code := strings.TrimSpace(req.Code)
	for _, d := range s.store.Departments() {
		if d.Code == code {
			return nil, appErrors.Clone(appErrors.ErrConflict, "department code already exists")
		}
	}

	dept := s.store.AddDepartment(ctx, models.Department{Name: strings.TrimSpace(req.Name), Code: code})
	s.logger.Info("department added", zap.String("code", code))
	return &dept, nil
}

// AddSkill appends a skill. Names are unique case-insensitively: adding
// "react" when "React" exists is rejected.
func (s *CatalogService) AddSkill(ctx context.Context, req AddSkillRequest) (*models.Skill, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid skill payload")
	}

	name := strings.TrimSpace(req.Name)
	for _, existing := range s.store.Skills() {
		if strings.EqualFold(existing.Name, name) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "skill already exists")
		}
	}

	skill := s.store.AddSkill(ctx, models.Skill{Name: name, Category: strings.TrimSpace(req.Category)})
	s.logger.Info("skill added", zap.String("name", name))
	return &skill, nil
}
