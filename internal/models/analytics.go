package models

// StageFunnel holds per-stage counts and their share of all applications in
// scope. Percentages are 0 when there are no applications.
type StageFunnel struct {
	Total       int               `json:"total"`
	Counts      map[Stage]int     `json:"counts"`
	Percentages map[Stage]float64 `json:"percentages"`
}

// BatchStats aggregates placement progress for one graduation cohort.
type BatchStats struct {
	Year          int     `json:"year"`
	Total         int     `json:"total"`
	Applied       int     `json:"applied"`
	Offered       int     `json:"offered"`
	PlacementRate float64 `json:"placement_rate"`
}

// SkillDemand counts job postings referencing a skill.
type SkillDemand struct {
	Skill string `json:"skill"`
	Jobs  int    `json:"jobs"`
}

// RecruiterPerformance ranks recruiters by application volume.
type RecruiterPerformance struct {
	RecruiterID  string `json:"recruiter_id"`
	Name         string `json:"name"`
	Jobs         int    `json:"jobs"`
	Applications int    `json:"applications"`
	Offers       int    `json:"offers"`
}

// JobPerformance summarises one posting's pipeline.
type JobPerformance struct {
	JobID        string `json:"job_id"`
	Title        string `json:"title"`
	Applications int    `json:"applications"`
	Shortlisted  int    `json:"shortlisted"`
	Offered      int    `json:"offered"`
}

// VerificationStats counts verification records by status.
type VerificationStats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// AdminOverview is the portal-wide analytics snapshot.
type AdminOverview struct {
	UsersByRole          map[Role]int           `json:"users_by_role"`
	ActiveUsers          int                    `json:"active_users"`
	OpenJobs             int                    `json:"open_jobs"`
	ClosedJobs           int                    `json:"closed_jobs"`
	Funnel               StageFunnel            `json:"funnel"`
	BatchStats           []BatchStats           `json:"batch_stats"`
	TopSkills            []SkillDemand          `json:"top_skills"`
	Verifications        VerificationStats      `json:"verifications"`
	RecruiterPerformance []RecruiterPerformance `json:"recruiter_performance"`
}

// RecruiterOverview is the per-recruiter analytics snapshot.
type RecruiterOverview struct {
	TotalJobs         int              `json:"total_jobs"`
	OpenJobs          int              `json:"open_jobs"`
	TotalApplications int              `json:"total_applications"`
	AvgPerJob         float64          `json:"avg_applications_per_job"`
	Funnel            StageFunnel      `json:"funnel"`
	ShortlistRate     float64          `json:"shortlist_rate"`
	OfferRate         float64          `json:"offer_rate"`
	SkillDemand       []SkillDemand    `json:"skill_demand"`
	JobPerformance    []JobPerformance `json:"job_performance"`
}
