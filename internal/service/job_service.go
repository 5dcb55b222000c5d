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

// JobRequest is the recruiter payload for creating or updating a posting.
// Exactly one of stipend and salary must be set.
type JobRequest struct {
	CompanyName          string   `json:"company_name" validate:"required"`
	Title                string   `json:"title" validate:"required"`
	Description          string   `json:"description" validate:"required"`
	Skills               []string `json:"skills"`
	MinCGPA              float64  `json:"min_cgpa" validate:"gte=0,lte=10"`
	Batch                []int    `json:"batch" validate:"required,min=1,dive,gte=2000,lte=2100"`
	RequiresVerification bool     `json:"requires_verification"`
	Location             string   `json:"location" validate:"required"`
	Remote               bool     `json:"remote"`
	Stipend              *int64   `json:"stipend" validate:"omitempty,gt=0"`
	Salary               *int64   `json:"salary" validate:"omitempty,gt=0"`
	Deadline             string   `json:"deadline" validate:"required"`
	ScreeningQuestions   []string `json:"screening_questions"`
}

// JobService manages postings and their lifecycle.
type JobService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewJobService creates an instance of JobService.
func NewJobService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *JobService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &JobService{store: st, validator: validate, logger: logger}
}

func (s *JobService) buildJob(req JobRequest) (models.Job, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Job{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid job payload")
	}
	if (req.Stipend == nil) == (req.Salary == nil) {
		return models.Job{}, appErrors.Clone(appErrors.ErrValidation, "exactly one of stipend or salary must be set")
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		return models.Job{}, appErrors.Clone(appErrors.ErrValidation, "deadline must be an RFC3339 timestamp")
	}

	questions := make([]string, 0, len(req.ScreeningQuestions))
	for _, q := range req.ScreeningQuestions {
		if trimmed := strings.TrimSpace(q); trimmed != "" {
			questions = append(questions, trimmed)
		}
	}

	return models.Job{
		CompanyName: req.CompanyName,
		Title:       req.Title,
		Description: req.Description,
		Skills:      req.Skills,
		Eligibility: models.Eligibility{
			MinCGPA:              req.MinCGPA,
			Batch:                req.Batch,
			RequiresVerification: req.RequiresVerification,
		},
		Location:           req.Location,
		Remote:             req.Remote,
		Stipend:            req.Stipend,
		Salary:             req.Salary,
		Status:             models.JobOpen,
		Deadline:           deadline,
		ScreeningQuestions: questions,
	}, nil
}

// Create opens a new posting owned by the acting recruiter.
func (s *JobService) Create(ctx context.Context, recruiter models.User, req JobRequest) (*models.Job, error) {
	job, err := s.buildJob(req)
	if err != nil {
		return nil, err
	}
	job.RecruiterID = recruiter.ID
	job.RecruiterName = recruiter.Name

	created := s.store.AddJob(ctx, job)
	s.logger.Info("job created", zap.String("job_id", created.ID), zap.String("recruiter_id", recruiter.ID))
	return &created, nil
}

// Update replaces the editable fields of a posting owned by the recruiter.
func (s *JobService) Update(ctx context.Context, recruiterID, jobID string, req JobRequest) (*models.Job, error) {
	existing, ok := s.store.JobByID(jobID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "job not found")
	}
	if existing.RecruiterID != recruiterID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "job belongs to another recruiter")
	}

	job, err := s.buildJob(req)
	if err != nil {
		return nil, err
	}
	job.ID = existing.ID
	job.RecruiterID = existing.RecruiterID
	job.RecruiterName = existing.RecruiterName
	job.Status = existing.Status
	job.CreatedAt = existing.CreatedAt

	s.store.UpdateJob(ctx, job)
	return &job, nil
}

// SetStatus opens or closes a posting.
func (s *JobService) SetStatus(ctx context.Context, recruiterID, jobID string, status models.JobStatus) (*models.Job, error) {
	if status != models.JobOpen && status != models.JobClosed {
		return nil, appErrors.Clone(appErrors.ErrValidation, "status must be open or closed")
	}

	job, ok := s.store.JobByID(jobID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "job not found")
	}
	if job.RecruiterID != recruiterID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "job belongs to another recruiter")
	}

	job.Status = status
	s.store.UpdateJob(ctx, job)
	s.logger.Info("job status changed", zap.String("job_id", jobID), zap.String("status", string(status)))
	return &job, nil
}

// Delete removes a posting. A job with any applications cannot be deleted.
func (s *JobService) Delete(ctx context.Context, recruiterID, jobID string) error {
	job, ok := s.store.JobByID(jobID)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "job not found")
	}
	if job.RecruiterID != recruiterID {
		return appErrors.Clone(appErrors.ErrForbidden, "job belongs to another recruiter")
	}
	if len(s.store.ApplicationsByJob(jobID)) > 0 {
		return appErrors.Clone(appErrors.ErrJobHasApplications, "")
	}

	s.store.DeleteJob(ctx, jobID)
	s.logger.Info("job deleted", zap.String("job_id", jobID))
	return nil
}

// Get returns a single posting.
func (s *JobService) Get(ctx context.Context, jobID string) (*models.Job, error) {
	job, ok := s.store.JobByID(jobID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "job not found")
	}
	return &job, nil
}

// List returns postings matching the filter, preserving the store's
// newest-first order.
func (s *JobService) List(ctx context.Context, filter models.JobFilter) []models.Job {
	jobs := s.store.Jobs()

	out := jobs[:0]
	for _, j := range jobs {
		if filter.Status != nil && j.Status != *filter.Status {
			continue
		}
		if filter.Location != "" && j.Location != filter.Location {
			continue
		}
		if filter.Skill != "" && !containsFold(j.Skills, filter.Skill) {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(j.Title), needle) &&
				!strings.Contains(strings.ToLower(j.Description), needle) &&
				!strings.Contains(strings.ToLower(j.CompanyName), needle) {
				continue
			}
		}
		out = append(out, j)
	}
	return out
}

// ListByRecruiter returns the recruiter's own postings.
func (s *JobService) ListByRecruiter(ctx context.Context, recruiterID string) []models.Job {
	jobs := s.store.Jobs()
	out := jobs[:0]
	for _, j := range jobs {
		if j.RecruiterID == recruiterID {
			out = append(out, j)
		}
	}
	return out
}

func containsFold(items []string, needle string) bool {
	for _, item := range items {
		if strings.EqualFold(item, needle) {
			return true
		}
	}
	return false
}
