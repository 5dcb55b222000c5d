package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/placement-api/internal/models"
	appErrors "github.com/campushire/placement-api/pkg/errors"
)

func TestSubmitApplication(t *testing.T) {
	st := newTestStore(t)
	svc := NewApplicationService(st, nil, nil)
	student := seededUser(t, st, "student1")

	// student1: cgpa 8.5, batch 2025, verified; job3 wants cgpa 7.0, batch 2025
	app, err := svc.Submit(context.Background(), student, SubmitApplicationRequest{
		JobID:       "job3",
		CoverLetter: "I would be a great fit for this role.",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StageApplied, app.Stage)
	assert.Equal(t, "Alice Johnson", app.StudentName)
	assert.Equal(t, "https://example.com/resume/alice.pdf", app.ResumeURL)
	assert.NotEmpty(t, app.ID)
	assert.Empty(t, app.ReviewerNotes)

	apps := st.Applications()
	require.Len(t, apps, 5)
	assert.Equal(t, app.ID, apps[0].ID, "new applications go to the front")
}

func TestSubmitApplicationDuplicate(t *testing.T) {
	st := newTestStore(t)
	svc := NewApplicationService(st, nil, nil)
	student := seededUser(t, st, "student1")
	before := len(st.Applications())

	// app1 already links student1 to job1
	_, err := svc.Submit(context.Background(), student, SubmitApplicationRequest{
		JobID:       "job1",
		CoverLetter: "Applying again.",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrAlreadyApplied.Code, appErrors.FromError(err).Code)
	assert.Len(t, st.Applications(), before, "a rejected submission must not grow the collection")
}

func TestSubmitApplicationClosedJob(t *testing.T) {
	st := newTestStore(t)
	jobSvc := NewJobService(st, nil, nil)
	_, err := jobSvc.SetStatus(context.Background(), "recruiter1", "job3", models.JobClosed)
	require.NoError(t, err)

	svc := NewApplicationService(st, nil, nil)
	student := seededUser(t, st, "student1")

	_, err = svc.Submit(context.Background(), student, SubmitApplicationRequest{
		JobID:       "job3",
		CoverLetter: "Too late.",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrJobClosed.Code, appErrors.FromError(err).Code)
}

func TestSubmitApplicationNotEligible(t *testing.T) {
	st := newTestStore(t)
	svc := NewApplicationService(st, nil, nil)
	// student2: cgpa 7.8, unverified; job2 wants cgpa 8.0, batch 2025, verified
	student := seededUser(t, st, "student2")

	_, err := svc.Submit(context.Background(), student, SubmitApplicationRequest{
		JobID:       "job2",
		CoverLetter: "Hoping for the best.",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotEligible.Code, appErr.Code)
	assert.Equal(t, "minimum CGPA of 8.0 required", appErr.Message)
}

func TestSubmitApplicationVerificationGate(t *testing.T) {
	st := newTestStore(t)
	svc := NewApplicationService(st, nil, nil)
	// student2: cgpa 7.8 >= 7.5, batch 2025 admitted, but unverified
	student := seededUser(t, st, "student2")

	_, err := svc.Submit(context.Background(), student, SubmitApplicationRequest{
		JobID:       "job1",
		CoverLetter: "Ready to go.",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotEligible.Code, appErr.Code)
	assert.Equal(t, "verification required", appErr.Message)

	// flipping the verified flag clears the last failing conjunct
	profile, ok := st.ProfileByUserID("student2")
	require.True(t, ok)
	profile.Verified = true
	st.UpdateProfile(context.Background(), profile)

	_, err = svc.Submit(context.Background(), student, SubmitApplicationRequest{
		JobID:       "job1",
		CoverLetter: "Ready to go.",
	})
	assert.NoError(t, err)
}

func TestSubmitApplicationBlankCoverLetter(t *testing.T) {
	st := newTestStore(t)
	svc := NewApplicationService(st, nil, nil)
	student := seededUser(t, st, "student1")

	_, err := svc.Submit(context.Background(), student, SubmitApplicationRequest{
		JobID:       "job3",
		CoverLetter: "   ",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestUpdateStageUnrestricted(t *testing.T) {
	st := newTestStore(t)
	svc := NewApplicationService(st, nil, nil)

	// any known stage is reachable from any other, including rolling an
	// offer back to rejected and forward again
	app, err := svc.UpdateStage(context.Background(), "recruiter1", "app3", models.StageRejected)
	require.NoError(t, err)
	assert.Equal(t, models.StageRejected, app.Stage)

	app, err = svc.UpdateStage(context.Background(), "recruiter1", "app3", models.StageApplied)
	require.NoError(t, err)
	assert.Equal(t, models.StageApplied, app.Stage)
}

func TestUpdateStageUnknownStage(t *testing.T) {
	st := newTestStore(t)
	svc := NewApplicationService(st, nil, nil)

	_, err := svc.UpdateStage(context.Background(), "recruiter1", "app1", models.Stage("hired"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestUpdateStageOwnership(t *testing.T) {
	st := newTestStore(t)
	svc := NewApplicationService(st, nil, nil)

	// app1 belongs to job1, owned by recruiter1
	_, err := svc.UpdateStage(context.Background(), "recruiter2", "app1", models.StageInterview)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestSetScores(t *testing.T) {
	st := newTestStore(t)
	svc := NewApplicationService(st, nil, nil)

	apt, tech := 70, 80
	app, err := svc.SetScores(context.Background(), "recruiter2", "app4", SetScoresRequest{Aptitude: &apt, Tech: &tech})
	require.NoError(t, err)
	require.NotNil(t, app.Scores.Aptitude)
	assert.Equal(t, 70, *app.Scores.Aptitude)
	assert.Nil(t, app.Scores.Communication)
}

func TestSetScoresOutOfRange(t *testing.T) {
	st := newTestStore(t)
	svc := NewApplicationService(st, nil, nil)

	bad := 101
	_, err := svc.SetScores(context.Background(), "recruiter2", "app4", SetScoresRequest{Aptitude: &bad})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAddNoteAppendsOnly(t *testing.T) {
	st := newTestStore(t)
	svc := NewApplicationService(st, nil, nil)
	reviewer := seededUser(t, st, "recruiter1")

	existing, ok := st.ApplicationByID("app1")
	require.True(t, ok)
	before := len(existing.ReviewerNotes)

	app, err := svc.AddNote(context.Background(), reviewer, "app1", AddNoteRequest{Note: "Follow up next week."})
	require.NoError(t, err)
	require.Len(t, app.ReviewerNotes, before+1)

	last := app.ReviewerNotes[len(app.ReviewerNotes)-1]
	assert.Equal(t, "Follow up next week.", last.Note)
	assert.Equal(t, "David Brown", last.Reviewer)
	assert.False(t, last.Timestamp.IsZero())

	// earlier notes are untouched
	assert.Equal(t, existing.ReviewerNotes[0].Note, app.ReviewerNotes[0].Note)
}

func TestAddNoteRequiresText(t *testing.T) {
	st := newTestStore(t)
	svc := NewApplicationService(st, nil, nil)
	reviewer := seededUser(t, st, "recruiter1")

	_, err := svc.AddNote(context.Background(), reviewer, "app1", AddNoteRequest{Note: ""})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestListByJobOwnership(t *testing.T) {
	st := newTestStore(t)
	svc := NewApplicationService(st, nil, nil)

	apps, err := svc.ListByJob(context.Background(), "recruiter1", "job1")
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	_, err = svc.ListByJob(context.Background(), "recruiter2", "job1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestListByStudent(t *testing.T) {
	st := newTestStore(t)
	svc := NewApplicationService(st, nil, nil)

	apps := svc.ListByStudent(context.Background(), "student3")
	require.Len(t, apps, 2)
	for _, a := range apps {
		assert.Equal(t, "student3", a.StudentID)
	}
}
