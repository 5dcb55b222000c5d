package service

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/campushire/placement-api/internal/models"
	"github.com/campushire/placement-api/internal/store"
)

// AnalyticsService derives reporting views by folding over the entity store.
// Every aggregation is recomputed on demand from a full snapshot; nothing is
// maintained incrementally.
type AnalyticsService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewAnalyticsService creates an instance of AnalyticsService.
func NewAnalyticsService(st *store.Store, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{store: st, logger: logger}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// funnel computes per-stage counts and their share of the application set.
// With zero applications every percentage is 0 rather than NaN.
func funnel(apps []models.Application) models.StageFunnel {
	f := models.StageFunnel{
		Total:       len(apps),
		Counts:      make(map[models.Stage]int, len(models.Stages)),
		Percentages: make(map[models.Stage]float64, len(models.Stages)),
	}
	for _, stage := range models.Stages {
		f.Counts[stage] = 0
		f.Percentages[stage] = 0
	}
	for _, a := range apps {
		f.Counts[a.Stage]++
	}
	if f.Total > 0 {
		for stage, count := range f.Counts {
			f.Percentages[stage] = round1(float64(count) / float64(f.Total) * 100)
		}
	}
	return f
}

// skillDemand counts postings per skill, descending, ties broken by the
// order skills are first encountered while scanning the jobs.
func skillDemand(jobs []models.Job, limit int) []models.SkillDemand {
	counts := make(map[string]int)
	var order []string
	for _, job := range jobs {
		for _, skill := range job.Skills {
			if _, seen := counts[skill]; !seen {
				order = append(order, skill)
			}
			counts[skill]++
		}
	}

	demand := make([]models.SkillDemand, 0, len(order))
	for _, skill := range order {
		demand = append(demand, models.SkillDemand{Skill: skill, Jobs: counts[skill]})
	}
	sort.SliceStable(demand, func(i, j int) bool { return demand[i].Jobs > demand[j].Jobs })

	if limit > 0 && len(demand) > limit {
		demand = demand[:limit]
	}
	return demand
}

// AdminOverview computes the portal-wide analytics snapshot.
func (s *AnalyticsService) AdminOverview(ctx context.Context) *models.AdminOverview {
	users := s.store.Users()
	jobs := s.store.Jobs()
	applications := s.store.Applications()
	profiles := s.store.Profiles()
	verifications := s.store.Verifications()

	overview := &models.AdminOverview{
		UsersByRole: map[models.Role]int{
			models.RoleStudent:   0,
			models.RoleRecruiter: 0,
			models.RoleFaculty:   0,
			models.RoleAdmin:     0,
		},
		Funnel:    funnel(applications),
		TopSkills: skillDemand(jobs, 10),
	}

	for _, u := range users {
		overview.UsersByRole[u.Role]++
		if u.Active {
			overview.ActiveUsers++
		}
	}

	for _, j := range jobs {
		if j.Status == models.JobOpen {
			overview.OpenJobs++
		} else {
			overview.ClosedJobs++
		}
	}

	overview.BatchStats = batchStats(profiles, applications)

	for _, v := range verifications {
		switch v.Status {
		case models.VerificationPending:
			overview.Verifications.Pending++
		case models.VerificationApproved:
			overview.Verifications.Approved++
		case models.VerificationRejected:
			overview.Verifications.Rejected++
		}
	}

	overview.RecruiterPerformance = recruiterPerformance(users, jobs, applications)
	return overview
}

// batchStats folds placement progress per graduation cohort: cohort size,
// how many students applied anywhere, how many hold an offer, and the
// placement rate offered/total*100 to one decimal.
func batchStats(profiles []models.StudentProfile, applications []models.Application) []models.BatchStats {
	byStudent := make(map[string][]models.Application)
	for _, a := range applications {
		byStudent[a.StudentID] = append(byStudent[a.StudentID], a)
	}

	byYear := make(map[int]*models.BatchStats)
	for _, p := range profiles {
		stats, ok := byYear[p.GraduationYear]
		if !ok {
			stats = &models.BatchStats{Year: p.GraduationYear}
			byYear[p.GraduationYear] = stats
		}
		stats.Total++

		apps := byStudent[p.UserID]
		if len(apps) > 0 {
			stats.Applied++
		}
		for _, a := range apps {
			if a.Stage == models.StageOffered {
				stats.Offered++
				break
			}
		}
	}

	out := make([]models.BatchStats, 0, len(byYear))
	for _, stats := range byYear {
		if stats.Total > 0 {
			stats.PlacementRate = round1(float64(stats.Offered) / float64(stats.Total) * 100)
		}
		out = append(out, *stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// recruiterPerformance ranks recruiters with at least one posting by
// application volume, descending.
func recruiterPerformance(users []models.User, jobs []models.Job, applications []models.Application) []models.RecruiterPerformance {
	jobOwner := make(map[string]string, len(jobs))
	for _, j := range jobs {
		jobOwner[j.ID] = j.RecruiterID
	}

	var out []models.RecruiterPerformance
	for _, u := range users {
		if u.Role != models.RoleRecruiter {
			continue
		}
		perf := models.RecruiterPerformance{RecruiterID: u.ID, Name: u.Name}
		for _, j := range jobs {
			if j.RecruiterID == u.ID {
				perf.Jobs++
			}
		}
		for _, a := range applications {
			if jobOwner[a.JobID] != u.ID {
				continue
			}
			perf.Applications++
			if a.Stage == models.StageOffered {
				perf.Offers++
			}
		}
		if perf.Jobs > 0 {
			out = append(out, perf)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Applications > out[j].Applications })
	return out
}

// RecruiterOverview computes the analytics snapshot scoped to one recruiter's
// postings.
func (s *AnalyticsService) RecruiterOverview(ctx context.Context, recruiterID string) *models.RecruiterOverview {
	var myJobs []models.Job
	for _, j := range s.store.Jobs() {
		if j.RecruiterID == recruiterID {
			myJobs = append(myJobs, j)
		}
	}

	jobIDs := make(map[string]bool, len(myJobs))
	for _, j := range myJobs {
		jobIDs[j.ID] = true
	}

	var myApps []models.Application
	for _, a := range s.store.Applications() {
		if jobIDs[a.JobID] {
			myApps = append(myApps, a)
		}
	}

	overview := &models.RecruiterOverview{
		TotalJobs:         len(myJobs),
		TotalApplications: len(myApps),
		Funnel:            funnel(myApps),
		SkillDemand:       skillDemand(myJobs, 0),
	}

	for _, j := range myJobs {
		if j.Status == models.JobOpen {
			overview.OpenJobs++
		}
	}

	if overview.TotalJobs > 0 {
		overview.AvgPerJob = round1(float64(overview.TotalApplications) / float64(overview.TotalJobs))
	}
	if overview.TotalApplications > 0 {
		total := float64(overview.TotalApplications)
		overview.ShortlistRate = round1(float64(overview.Funnel.Counts[models.StageShortlisted]) / total * 100)
		overview.OfferRate = round1(float64(overview.Funnel.Counts[models.StageOffered]) / total * 100)
	}

	for _, j := range myJobs {
		perf := models.JobPerformance{JobID: j.ID, Title: j.Title}
		for _, a := range myApps {
			if a.JobID != j.ID {
				continue
			}
			perf.Applications++
			switch a.Stage {
			case models.StageShortlisted:
				perf.Shortlisted++
			case models.StageOffered:
				perf.Offered++
			}
		}
		overview.JobPerformance = append(overview.JobPerformance, perf)
	}
	sort.SliceStable(overview.JobPerformance, func(i, j int) bool {
		return overview.JobPerformance[i].Applications > overview.JobPerformance[j].Applications
	})

	return overview
}
