package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/placement-api/internal/models"
	appErrors "github.com/campushire/placement-api/pkg/errors"
)

func validJobRequest() JobRequest {
	stipend := int64(30000)
	return JobRequest{
		CompanyName: "TechCorp Solutions",
		Title:       "QA Intern",
		Description: "Test automation internship.",
		Skills:      []string{"Python"},
		MinCGPA:     7.0,
		Batch:       []int{2026},
		Location:    "Pune",
		Stipend:     &stipend,
		Deadline:    "2025-12-31T23:59:00Z",
	}
}

func TestCreateJobDefaultsToOpen(t *testing.T) {
	st := newTestStore(t)
	svc := NewJobService(st, nil, nil)
	recruiter := seededUser(t, st, "recruiter1")

	job, err := svc.Create(context.Background(), recruiter, validJobRequest())
	require.NoError(t, err)
	assert.Equal(t, models.JobOpen, job.Status)
	assert.Equal(t, "recruiter1", job.RecruiterID)
	assert.Equal(t, "David Brown", job.RecruiterName)
	assert.NotEmpty(t, job.ID)

	// new postings go to the front of the listing
	jobs := st.Jobs()
	require.Len(t, jobs, 5)
	assert.Equal(t, job.ID, jobs[0].ID)
}

func TestCreateJobRequiresExactlyOneCompensation(t *testing.T) {
	st := newTestStore(t)
	svc := NewJobService(st, nil, nil)
	recruiter := seededUser(t, st, "recruiter1")

	both := validJobRequest()
	salary := int64(900000)
	both.Salary = &salary
	_, err := svc.Create(context.Background(), recruiter, both)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	neither := validJobRequest()
	neither.Stipend = nil
	_, err = svc.Create(context.Background(), recruiter, neither)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCreateJobRejectsBadDeadline(t *testing.T) {
	st := newTestStore(t)
	svc := NewJobService(st, nil, nil)
	recruiter := seededUser(t, st, "recruiter1")

	req := validJobRequest()
	req.Deadline = "31-12-2025"
	_, err := svc.Create(context.Background(), recruiter, req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestUpdateJobKeepsOwnerAndStatus(t *testing.T) {
	st := newTestStore(t)
	svc := NewJobService(st, nil, nil)

	_, err := svc.SetStatus(context.Background(), "recruiter1", "job1", models.JobClosed)
	require.NoError(t, err)

	req := validJobRequest()
	req.Title = "Software Engineer Intern (Updated)"
	job, err := svc.Update(context.Background(), "recruiter1", "job1", req)
	require.NoError(t, err)

	assert.Equal(t, "job1", job.ID)
	assert.Equal(t, "recruiter1", job.RecruiterID)
	assert.Equal(t, models.JobClosed, job.Status, "update must not reopen a closed posting")
	assert.Equal(t, "Software Engineer Intern (Updated)", job.Title)
}

func TestUpdateJobOwnedByAnotherRecruiter(t *testing.T) {
	st := newTestStore(t)
	svc := NewJobService(st, nil, nil)

	_, err := svc.Update(context.Background(), "recruiter2", "job1", validJobRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestDeleteJobBlockedByApplications(t *testing.T) {
	st := newTestStore(t)
	svc := NewJobService(st, nil, nil)

	err := svc.Delete(context.Background(), "recruiter1", "job1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrJobHasApplications.Code, appErrors.FromError(err).Code)

	_, ok := st.JobByID("job1")
	assert.True(t, ok, "posting must survive a blocked delete")
}

func TestDeleteJobWithoutApplications(t *testing.T) {
	st := newTestStore(t)
	svc := NewJobService(st, nil, nil)

	// job3 has no seeded applications
	require.NoError(t, svc.Delete(context.Background(), "recruiter1", "job3"))
	_, ok := st.JobByID("job3")
	assert.False(t, ok)
}

func TestListJobsFilters(t *testing.T) {
	st := newTestStore(t)
	svc := NewJobService(st, nil, nil)

	open := models.JobOpen
	assert.Len(t, svc.List(context.Background(), models.JobFilter{Status: &open}), 4)

	bangalore := svc.List(context.Background(), models.JobFilter{Location: "Bangalore"})
	assert.Len(t, bangalore, 2)

	bySkill := svc.List(context.Background(), models.JobFilter{Skill: "python"})
	require.Len(t, bySkill, 1)
	assert.Equal(t, "job2", bySkill[0].ID)

	bySearch := svc.List(context.Background(), models.JobFilter{Search: "innovate"})
	assert.Len(t, bySearch, 2)
}

func TestListByRecruiter(t *testing.T) {
	st := newTestStore(t)
	svc := NewJobService(st, nil, nil)

	jobs := svc.ListByRecruiter(context.Background(), "recruiter2")
	require.Len(t, jobs, 2)
	for _, j := range jobs {
		assert.Equal(t, "recruiter2", j.RecruiterID)
	}
}
