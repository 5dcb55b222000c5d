package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campushire/placement-api/internal/models"
	"github.com/campushire/placement-api/internal/store/kv"
)

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	s := New(kv.NewMemory(), zap.NewNop(), true)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestLoadSeedsAbsentCollections(t *testing.T) {
	s := newSeededStore(t)

	assert.Len(t, s.Users(), 7)
	assert.Len(t, s.Profiles(), 3)
	assert.Len(t, s.Jobs(), 4)
	assert.Len(t, s.Applications(), 4)
	assert.Len(t, s.Verifications(), 4)
	assert.Len(t, s.Departments(), 5)
	assert.Len(t, s.Skills(), 12)
}

func TestLoadPrefersPersistedCollections(t *testing.T) {
	backing := kv.NewMemory()
	require.NoError(t, backing.Set(context.Background(), KeyUsers, []byte(`[{"id":"u1","name":"Only User","email":"u1@x.edu","role":"admin","active":true}]`)))

	s := New(backing, zap.NewNop(), true)
	require.NoError(t, s.Load(context.Background()))

	users := s.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
	// untouched collections still seed
	assert.Len(t, s.Jobs(), 4)
}

// An explicitly emptied collection persists as empty and must not fall back
// to the seed data on the next load.
func TestEmptiedCollectionStaysEmpty(t *testing.T) {
	backing := kv.NewMemory()
	ctx := context.Background()

	s := New(backing, zap.NewNop(), true)
	require.NoError(t, s.Load(ctx))
	for _, job := range s.Jobs() {
		s.DeleteJob(ctx, job.ID)
	}
	require.Empty(t, s.Jobs())

	reloaded := New(backing, zap.NewNop(), true)
	require.NoError(t, reloaded.Load(ctx))
	assert.Empty(t, reloaded.Jobs())
}

func TestAddJobAssignsDefaultsAndPrepends(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	stipend := int64(30000)
	created := s.AddJob(ctx, models.Job{
		RecruiterID: "recruiter1",
		Title:       "QA Intern",
		Eligibility: models.Eligibility{MinCGPA: 6.0, Batch: []int{2026}},
		Stipend:     &stipend,
		Status:      models.JobOpen,
	})

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	jobs := s.Jobs()
	assert.Equal(t, created.ID, jobs[0].ID)
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	before := s.Jobs()
	s.UpdateJob(ctx, models.Job{ID: "nope", Title: "Ghost"})
	s.DeleteJob(ctx, "nope")
	assert.Equal(t, before, s.Jobs())
}

func TestUpdateApplicationRefreshesUpdatedAt(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	app, ok := s.ApplicationByID("app4")
	require.True(t, ok)
	prev := app.UpdatedAt

	app.Stage = models.StageShortlisted
	updated := s.UpdateApplication(ctx, app)
	assert.True(t, updated.UpdatedAt.After(prev))

	stored, ok := s.ApplicationByID("app4")
	require.True(t, ok)
	assert.Equal(t, models.StageShortlisted, stored.Stage)
}

func TestMutationsPersistToBacking(t *testing.T) {
	backing := kv.NewMemory()
	ctx := context.Background()

	s := New(backing, zap.NewNop(), true)
	require.NoError(t, s.Load(ctx))
	s.AddSkill(ctx, models.Skill{Name: "GraphQL", Category: "Backend"})

	reloaded := New(backing, zap.NewNop(), true)
	require.NoError(t, reloaded.Load(ctx))
	assert.Len(t, reloaded.Skills(), 13)
}

func TestUserByEmailIsCaseInsensitive(t *testing.T) {
	s := newSeededStore(t)

	user, ok := s.UserByEmail("ALICE@student.edu")
	require.True(t, ok)
	assert.Equal(t, "student1", user.ID)
}

func TestSeedDisabled(t *testing.T) {
	s := New(kv.NewMemory(), zap.NewNop(), false)
	require.NoError(t, s.Load(context.Background()))
	assert.Empty(t, s.Users())
	assert.Empty(t, s.Jobs())
}
