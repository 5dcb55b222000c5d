package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushire/placement-api/internal/models"
)

func job(minCGPA float64, batch []int, requiresVerification bool) *models.Job {
	return &models.Job{
		Eligibility: models.Eligibility{
			MinCGPA:              minCGPA,
			Batch:                batch,
			RequiresVerification: requiresVerification,
		},
	}
}

func profile(cgpa float64, gradYear int, verified bool) *models.StudentProfile {
	return &models.StudentProfile{CGPA: cgpa, GraduationYear: gradYear, Verified: verified}
}

func TestEvaluateAllConjunctsHold(t *testing.T) {
	result := Evaluate(profile(8.0, 2025, true), job(7.5, []int{2025}, true))
	assert.True(t, result.Eligible)
	assert.Empty(t, result.Failed)
	assert.Empty(t, result.Reason)
}

func TestEvaluateSingleFailureFlipsResult(t *testing.T) {
	tests := []struct {
		name    string
		profile *models.StudentProfile
		job     *models.Job
		failed  Check
	}{
		{"cgpa below floor", profile(7.0, 2025, true), job(7.5, []int{2025}, true), CheckCGPA},
		{"wrong batch", profile(8.0, 2027, true), job(7.5, []int{2025, 2026}, true), CheckBatch},
		{"unverified", profile(8.0, 2025, false), job(7.5, []int{2025}, true), CheckVerification},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Evaluate(tc.profile, tc.job)
			assert.False(t, result.Eligible)
			assert.Equal(t, []Check{tc.failed}, result.Failed)
			assert.NotEmpty(t, result.Reason)
		})
	}
}

func TestEvaluateVerificationNotRequired(t *testing.T) {
	result := Evaluate(profile(8.0, 2025, false), job(7.5, []int{2025}, false))
	assert.True(t, result.Eligible)
}

func TestEvaluateMissingProfile(t *testing.T) {
	result := Evaluate(nil, job(7.5, []int{2025}, false))
	assert.False(t, result.Eligible)
	assert.Equal(t, []Check{CheckProfile}, result.Failed)
	assert.Equal(t, "complete your profile before applying", result.Reason)
}

// Verification gating scenario: a qualified but unverified student is turned
// away with the verification reason, and flipping the flag admits them.
func TestEvaluateVerificationScenario(t *testing.T) {
	j := job(7.5, []int{2025}, true)
	p := profile(8.0, 2025, false)

	result := Evaluate(p, j)
	assert.False(t, result.Eligible)
	assert.Equal(t, "verification required", result.Reason)

	p.Verified = true
	assert.True(t, Evaluate(p, j).Eligible)
}

func TestEvaluateReasonPriorityOrder(t *testing.T) {
	// every conjunct fails; the CGPA message wins
	result := Evaluate(profile(5.0, 2020, false), job(7.5, []int{2025}, true))
	assert.False(t, result.Eligible)
	assert.Equal(t, []Check{CheckCGPA, CheckBatch, CheckVerification}, result.Failed)
	assert.Equal(t, "minimum CGPA of 7.5 required", result.Reason)
}

func TestEvaluateBoundaryCGPA(t *testing.T) {
	// the floor is inclusive
	result := Evaluate(profile(7.5, 2025, true), job(7.5, []int{2025}, false))
	assert.True(t, result.Eligible)
}
