// Package eligibility implements the rules governing whether a student
// profile may apply to a job posting.
package eligibility

import (
	"fmt"

	"github.com/campushire/placement-api/internal/models"
)

// Check identifies one eligibility conjunct.
type Check string

const (
	CheckProfile      Check = "profile"
	CheckCGPA         Check = "cgpa"
	CheckBatch        Check = "batch"
	CheckVerification Check = "verification"
)

// Result reports the outcome of an eligibility evaluation. Eligible is the
// full conjunction; Failed lists every check that did not hold; Reason is the
// user-facing message for the highest-priority failure.
type Result struct {
	Eligible bool
	Failed   []Check
	Reason   string
}

// Evaluate decides whether profile satisfies job's eligibility rule. The
// three conjuncts are independent: CGPA floor, batch membership and the
// verification requirement. A nil profile fails everything. Failure priority
// for the reason message: missing profile, CGPA, batch, verification.
func Evaluate(profile *models.StudentProfile, job *models.Job) Result {
	if profile == nil {
		return Result{
			Failed: []Check{CheckProfile},
			Reason: "complete your profile before applying",
		}
	}

	result := Result{Eligible: true}

	if profile.CGPA < job.Eligibility.MinCGPA {
		result.Eligible = false
		result.Failed = append(result.Failed, CheckCGPA)
		if result.Reason == "" {
			result.Reason = fmt.Sprintf("minimum CGPA of %.1f required", job.Eligibility.MinCGPA)
		}
	}

	if !job.Eligibility.AdmitsBatch(profile.GraduationYear) {
		result.Eligible = false
		result.Failed = append(result.Failed, CheckBatch)
		if result.Reason == "" {
			result.Reason = "graduation year does not match the eligibility criteria"
		}
	}

	if job.Eligibility.RequiresVerification && !profile.Verified {
		result.Eligible = false
		result.Failed = append(result.Failed, CheckVerification)
		if result.Reason == "" {
			result.Reason = "verification required"
		}
	}

	return result
}
