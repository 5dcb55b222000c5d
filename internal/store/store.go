// Package store holds the authoritative in-memory collections for the portal
// and writes them through to a durable key-value backing, one serialized blob
// per collection. Constraint checks (uniqueness, required fields) belong to
// the calling services; this layer only assigns ids and timestamp defaults.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campushire/placement-api/internal/models"
	"github.com/campushire/placement-api/internal/store/kv"
)

// Collection keys in the backing store.
const (
	KeyUsers         = "users"
	KeyProfiles      = "profiles"
	KeyJobs          = "jobs"
	KeyApplications  = "applications"
	KeyVerifications = "verifications"
	KeyDepartments   = "departments"
	KeySkills        = "skills"
)

// Store is the single-instance entity store. All mutations serialize behind
// one mutex; persistence is fire-and-forget, so in-memory state may run ahead
// of the backing store after a write failure.
// PersistObserver is notified after every attempt to flush a collection to
// the backing store.
type PersistObserver func(collection string, ok bool, duration time.Duration)

type Store struct {
	mu        sync.RWMutex
	backing   kv.Store
	logger    *zap.Logger
	seed      bool
	onPersist PersistObserver

	users         []models.User
	profiles      []models.StudentProfile
	jobs          []models.Job
	applications  []models.Application
	verifications []models.Verification
	departments   []models.Department
	skills        []models.Skill
}

// New constructs a Store over the given backing. When seed is true, a
// collection whose key is absent from the backing is initialized with the
// default dataset on Load.
func New(backing kv.Store, logger *zap.Logger, seed bool) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{backing: backing, logger: logger, seed: seed}
}

// SetPersistObserver installs a callback for persistence outcomes. Call it
// before the store starts serving traffic.
func (s *Store) SetPersistObserver(fn PersistObserver) {
	s.onPersist = fn
}

// NewID returns a fresh entity identifier.
func NewID() string {
	return uuid.NewString()
}

// Load initializes every collection from the backing store. An absent key
// seeds the default dataset; a present key — including an empty collection —
// is taken as-is, so an explicitly emptied collection stays empty.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := loadCollection(ctx, s, KeyUsers, &s.users, seedUsers); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, KeyProfiles, &s.profiles, seedProfiles); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, KeyJobs, &s.jobs, seedJobs); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, KeyApplications, &s.applications, seedApplications); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, KeyVerifications, &s.verifications, seedVerifications); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, KeyDepartments, &s.departments, seedDepartments); err != nil {
		return err
	}
	if err := loadCollection(ctx, s, KeySkills, &s.skills, seedSkills); err != nil {
		return err
	}
	return nil
}

func loadCollection[T any](ctx context.Context, s *Store, key string, dest *[]T, seed func() []T) error {
	payload, ok, err := s.backing.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		if s.seed {
			*dest = seed()
		} else {
			*dest = nil
		}
		return nil
	}
	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	*dest = items
	return nil
}

// persist writes one collection through to the backing store. Failures are
// logged and otherwise ignored; the next successful write reconverges.
func (s *Store) persist(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("marshal collection", zap.String("collection", key), zap.Error(err))
		return
	}
	start := time.Now()
	err = s.backing.Set(ctx, key, payload)
	if s.onPersist != nil {
		s.onPersist(key, err == nil, time.Since(start))
	}
	if err != nil {
		s.logger.Warn("persist collection", zap.String("collection", key), zap.Error(err))
	}
}

func findIndex[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}

// Users returns a snapshot copy of the users collection.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

// UserByID looks up a user by id.
func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := findIndex(s.users, func(u models.User) bool { return u.ID == id }); i >= 0 {
		return s.users[i], true
	}
	return models.User{}, false
}

// UserByEmail looks up a user by email, case-insensitively.
func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := findIndex(s.users, func(u models.User) bool { return strings.EqualFold(u.Email, email) }); i >= 0 {
		return s.users[i], true
	}
	return models.User{}, false
}

// AddUser appends a user, assigning id and creation time defaults.
func (s *Store) AddUser(ctx context.Context, user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == "" {
		user.ID = NewID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	s.users = append(s.users, user)
	s.persist(ctx, KeyUsers, s.users)
	return user
}

// UpdateUser replaces the stored record by id. A missing id is a no-op.
func (s *Store) UpdateUser(ctx context.Context, user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := findIndex(s.users, func(u models.User) bool { return u.ID == user.ID }); i >= 0 {
		s.users[i] = user
		s.persist(ctx, KeyUsers, s.users)
	}
}

// Profiles returns a snapshot copy of the profiles collection.
func (s *Store) Profiles() []models.StudentProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.StudentProfile(nil), s.profiles...)
}

// ProfileByUserID looks up the profile owned by a user.
func (s *Store) ProfileByUserID(userID string) (models.StudentProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := findIndex(s.profiles, func(p models.StudentProfile) bool { return p.UserID == userID }); i >= 0 {
		return s.profiles[i], true
	}
	return models.StudentProfile{}, false
}

// AddProfile appends a profile.
func (s *Store) AddProfile(ctx context.Context, profile models.StudentProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = append(s.profiles, profile)
	s.persist(ctx, KeyProfiles, s.profiles)
}

// UpdateProfile replaces the stored record keyed by user id. A missing
// profile is a no-op; creation is an explicit, separate operation.
func (s *Store) UpdateProfile(ctx context.Context, profile models.StudentProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := findIndex(s.profiles, func(p models.StudentProfile) bool { return p.UserID == profile.UserID }); i >= 0 {
		s.profiles[i] = profile
		s.persist(ctx, KeyProfiles, s.profiles)
	}
}

// Jobs returns a snapshot copy of the jobs collection, newest first.
func (s *Store) Jobs() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Job(nil), s.jobs...)
}

// JobByID looks up a job by id.
func (s *Store) JobByID(id string) (models.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := findIndex(s.jobs, func(j models.Job) bool { return j.ID == id }); i >= 0 {
		return s.jobs[i], true
	}
	return models.Job{}, false
}

// AddJob prepends a job, assigning id and creation time defaults.
func (s *Store) AddJob(ctx context.Context, job models.Job) models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job.ID == "" {
		job.ID = NewID()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	s.jobs = append([]models.Job{job}, s.jobs...)
	s.persist(ctx, KeyJobs, s.jobs)
	return job
}

// UpdateJob replaces the stored record by id. A missing id is a no-op.
func (s *Store) UpdateJob(ctx context.Context, job models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := findIndex(s.jobs, func(j models.Job) bool { return j.ID == job.ID }); i >= 0 {
		s.jobs[i] = job
		s.persist(ctx, KeyJobs, s.jobs)
	}
}

// DeleteJob removes a job by id. A missing id is a no-op; the guard against
// deleting jobs with applications lives in the job service.
func (s *Store) DeleteJob(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := findIndex(s.jobs, func(j models.Job) bool { return j.ID == id }); i >= 0 {
		s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
		s.persist(ctx, KeyJobs, s.jobs)
	}
}

// Applications returns a snapshot copy of the applications collection.
func (s *Store) Applications() []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Application(nil), s.applications...)
}

// ApplicationByID looks up an application by id.
func (s *Store) ApplicationByID(id string) (models.Application, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := findIndex(s.applications, func(a models.Application) bool { return a.ID == id }); i >= 0 {
		return s.applications[i], true
	}
	return models.Application{}, false
}

// ApplicationsByJob returns all applications for a job.
func (s *Store) ApplicationsByJob(jobID string) []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Application
	for _, a := range s.applications {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out
}

// ApplicationsByStudent returns all applications submitted by a student.
func (s *Store) ApplicationsByStudent(studentID string) []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Application
	for _, a := range s.applications {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out
}

// AddApplication prepends an application, assigning id and timestamps.
func (s *Store) AddApplication(ctx context.Context, app models.Application) models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	if app.ID == "" {
		app.ID = NewID()
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = now
	}
	app.UpdatedAt = app.CreatedAt
	s.applications = append([]models.Application{app}, s.applications...)
	s.persist(ctx, KeyApplications, s.applications)
	return app
}

// UpdateApplication replaces the stored record by id, refreshing UpdatedAt.
// A missing id is a no-op.
func (s *Store) UpdateApplication(ctx context.Context, app models.Application) models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := findIndex(s.applications, func(a models.Application) bool { return a.ID == app.ID }); i >= 0 {
		app.UpdatedAt = time.Now().UTC()
		s.applications[i] = app
		s.persist(ctx, KeyApplications, s.applications)
	}
	return app
}

// Verifications returns a snapshot copy of the verifications collection.
func (s *Store) Verifications() []models.Verification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Verification(nil), s.verifications...)
}

// VerificationByID looks up a verification by id.
func (s *Store) VerificationByID(id string) (models.Verification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := findIndex(s.verifications, func(v models.Verification) bool { return v.ID == id }); i >= 0 {
		return s.verifications[i], true
	}
	return models.Verification{}, false
}

// VerificationsByStudent returns all submissions by a student.
func (s *Store) VerificationsByStudent(studentID string) []models.Verification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Verification
	for _, v := range s.verifications {
		if v.StudentID == studentID {
			out = append(out, v)
		}
	}
	return out
}

// AddVerification prepends a submission, assigning id and submission time.
func (s *Store) AddVerification(ctx context.Context, ver models.Verification) models.Verification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ver.ID == "" {
		ver.ID = NewID()
	}
	if ver.SubmittedAt.IsZero() {
		ver.SubmittedAt = time.Now().UTC()
	}
	s.verifications = append([]models.Verification{ver}, s.verifications...)
	s.persist(ctx, KeyVerifications, s.verifications)
	return ver
}

// UpdateVerification replaces the stored record by id. A missing id is a
// no-op.
func (s *Store) UpdateVerification(ctx context.Context, ver models.Verification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := findIndex(s.verifications, func(v models.Verification) bool { return v.ID == ver.ID }); i >= 0 {
		s.verifications[i] = ver
		s.persist(ctx, KeyVerifications, s.verifications)
	}
}

// Departments returns a snapshot copy of the departments collection.
func (s *Store) Departments() []models.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Department(nil), s.departments...)
}

// AddDepartment appends a department, assigning an id.
func (s *Store) AddDepartment(ctx context.Context, dept models.Department) models.Department {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dept.ID == "" {
		dept.ID = NewID()
	}
	s.departments = append(s.departments, dept)
	s.persist(ctx, KeyDepartments, s.departments)
	return dept
}

// Skills returns a snapshot copy of the skills collection.
func (s *Store) Skills() []models.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Skill(nil), s.skills...)
}

// AddSkill appends a skill, assigning an id.
func (s *Store) AddSkill(ctx context.Context, skill models.Skill) models.Skill {
	s.mu.Lock()
	defer s.mu.Unlock()
	if skill.ID == "" {
		skill.ID = NewID()
	}
	s.skills = append(s.skills, skill)
	s.persist(ctx, KeySkills, s.skills)
	return skill
}
