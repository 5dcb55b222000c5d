package service

import (
	"context"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushire/placement-api/internal/models"
	"github.com/campushire/placement-api/internal/store"
	appErrors "github.com/campushire/placement-api/pkg/errors"
)

// ChangeRoleRequest is the admin payload for reassigning a user's role.
type ChangeRoleRequest struct {
	Role models.Role `json:"role" validate:"required,oneof=student recruiter faculty admin"`
}

// UserService handles admin user management. Users are never deleted;
// deactivation is the only removal mechanism.
type UserService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService creates an instance of UserService.
func NewUserService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &UserService{store: st, validator: validate, logger: logger}
}

// List returns users matching the filter, newest first.
func (s *UserService) List(ctx context.Context, filter models.UserFilter) []models.User {
	users := s.store.Users()

	out := users[:0]
	for _, u := range users {
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		if filter.Active != nil && u.Active != *filter.Active {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(u.Name), needle) && !strings.Contains(strings.ToLower(u.Email), needle) {
				continue
			}
		}
		out = append(out, u)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Get returns a single user.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, ok := s.store.UserByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	return &user, nil
}

// SetActive toggles the account's active flag.
func (s *UserService) SetActive(ctx context.Context, id string, active bool) (*models.User, error) {
	user, ok := s.store.UserByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}

	user.Active = active
	s.store.UpdateUser(ctx, user)
	s.logger.Info("user active flag changed", zap.String("user_id", id), zap.Bool("active", active))
	return &user, nil
}

// ChangeRole reassigns the user's role.
func (s *UserService) ChangeRole(ctx context.Context, id string, req ChangeRoleRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid role")
	}

	user, ok := s.store.UserByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}

	user.Role = req.Role
	s.store.UpdateUser(ctx, user)
	s.logger.Info("user role changed", zap.String("user_id", id), zap.String("role", string(req.Role)))
	return &user, nil
}
