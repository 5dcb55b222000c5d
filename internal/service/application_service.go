package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushire/placement-api/internal/eligibility"
	"github.com/campushire/placement-api/internal/models"
	"github.com/campushire/placement-api/internal/store"
	appErrors "github.com/campushire/placement-api/pkg/errors"
)

// SubmitApplicationRequest is the student payload for applying to a job.
type SubmitApplicationRequest struct {
	JobID       string `json:"job_id" validate:"required"`
	CoverLetter string `json:"cover_letter" validate:"required"`
}

// SetScoresRequest carries optional interview scores, each 0-100.
type SetScoresRequest struct {
	Aptitude      *int `json:"aptitude" validate:"omitempty,gte=0,lte=100"`
	Tech          *int `json:"tech" validate:"omitempty,gte=0,lte=100"`
	Communication *int `json:"communication" validate:"omitempty,gte=0,lte=100"`
}

// AddNoteRequest carries a reviewer note.
type AddNoteRequest struct {
	Note string `json:"note" validate:"required"`
}

// ApplicationService enforces the application lifecycle: submission gates,
// stage transitions, scoring and review notes.
type ApplicationService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewApplicationService creates an instance of ApplicationService.
func NewApplicationService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *ApplicationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ApplicationService{store: st, validator: validate, logger: logger}
}

// Submit creates a new application after all gates pass: the job exists and
// is open, the student has not already applied, and the eligibility rule
// holds. No partial state is written when any gate fails.
func (s *ApplicationService) Submit(ctx context.Context, student models.User, req SubmitApplicationRequest) (*models.Application, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid application payload")
	}
	if strings.TrimSpace(req.CoverLetter) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "a cover letter is required")
	}

	job, ok := s.store.JobByID(req.JobID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "job not found")
	}
	if job.Status != models.JobOpen {
		return nil, appErrors.Clone(appErrors.ErrJobClosed, "")
	}

	for _, existing := range s.store.ApplicationsByStudent(student.ID) {
		if existing.JobID == job.ID {
			return nil, appErrors.Clone(appErrors.ErrAlreadyApplied, "")
		}
	}

	var profilePtr *models.StudentProfile
	if profile, ok := s.store.ProfileByUserID(student.ID); ok {
		profilePtr = &profile
	}
	if result := eligibility.Evaluate(profilePtr, &job); !result.Eligible {
		return nil, appErrors.Clone(appErrors.ErrNotEligible, result.Reason)
	}

	app := s.store.AddApplication(ctx, models.Application{
		JobID:         job.ID,
		StudentID:     student.ID,
		StudentName:   student.Name,
		StudentEmail:  student.Email,
		CoverLetter:   req.CoverLetter,
		ResumeURL:     profilePtr.ResumeURL,
		Stage:         models.StageApplied,
		ReviewerNotes: []models.ReviewNote{},
	})

	s.logger.Info("application submitted",
		zap.String("application_id", app.ID),
		zap.String("job_id", job.ID),
		zap.String("student_id", student.ID))
	return &app, nil
}

// UpdateStage moves an application to the target stage. Transitions are
// unrestricted between known stages; the recruiter has full manual control
// over the pipeline.
func (s *ApplicationService) UpdateStage(ctx context.Context, recruiterID, appID string, stage models.Stage) (*models.Application, error) {
	if !stage.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown stage")
	}

	app, err := s.ownedApplication(recruiterID, appID)
	if err != nil {
		return nil, err
	}

	app.Stage = stage
	updated := s.store.UpdateApplication(ctx, *app)
	s.logger.Info("application stage changed", zap.String("application_id", appID), zap.String("stage", string(stage)))
	return &updated, nil
}

// SetScores records interview scores. Each score is independently optional;
// an absent field clears the stored value.
func (s *ApplicationService) SetScores(ctx context.Context, recruiterID, appID string, req SetScoresRequest) (*models.Application, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "scores must be between 0 and 100")
	}

	app, err := s.ownedApplication(recruiterID, appID)
	if err != nil {
		return nil, err
	}

	app.Scores = models.Scores{Aptitude: req.Aptitude, Tech: req.Tech, Communication: req.Communication}
	updated := s.store.UpdateApplication(ctx, *app)
	return &updated, nil
}

// AddNote appends an immutable reviewer note attributed to the reviewer with
// a server-assigned timestamp.
func (s *ApplicationService) AddNote(ctx context.Context, reviewer models.User, appID string, req AddNoteRequest) (*models.Application, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "a note is required")
	}
	if strings.TrimSpace(req.Note) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "a note is required")
	}

	app, err := s.ownedApplication(reviewer.ID, appID)
	if err != nil {
		return nil, err
	}

	app.ReviewerNotes = append(app.ReviewerNotes, models.ReviewNote{
		Note:      req.Note,
		Reviewer:  reviewer.Name,
		Timestamp: time.Now().UTC(),
	})

	updated := s.store.UpdateApplication(ctx, *app)
	return &updated, nil
}

// ListByJob returns a job's applications to its owning recruiter.
func (s *ApplicationService) ListByJob(ctx context.Context, recruiterID, jobID string) ([]models.Application, error) {
	job, ok := s.store.JobByID(jobID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "job not found")
	}
	if job.RecruiterID != recruiterID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "job belongs to another recruiter")
	}
	return s.store.ApplicationsByJob(jobID), nil
}

// ListByStudent returns the student's own applications.
func (s *ApplicationService) ListByStudent(ctx context.Context, studentID string) []models.Application {
	return s.store.ApplicationsByStudent(studentID)
}

// ownedApplication loads an application and checks the acting recruiter owns
// the posting it belongs to.
func (s *ApplicationService) ownedApplication(recruiterID, appID string) (*models.Application, error) {
	app, ok := s.store.ApplicationByID(appID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "application not found")
	}
	job, ok := s.store.JobByID(app.JobID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "job not found")
	}
	if job.RecruiterID != recruiterID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "application belongs to another recruiter's job")
	}
	return &app, nil
}
