package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/placement-api/internal/models"
	appErrors "github.com/campushire/placement-api/pkg/errors"
)

func TestSubmitVerification(t *testing.T) {
	st := newTestStore(t)
	svc := NewVerificationService(st, nil, nil)
	student := seededUser(t, st, "student1")

	ver, err := svc.Submit(context.Background(), student, SubmitVerificationRequest{
		DocumentType: models.DocIDProof,
		FileURL:      "https://example.com/docs/alice-id.pdf",
		FileName:     "id_alice.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, models.VerificationPending, ver.Status)
	assert.Equal(t, "Alice Johnson", ver.StudentName)
	assert.Nil(t, ver.ReviewedAt)

	vers := st.Verifications()
	require.Len(t, vers, 5)
	assert.Equal(t, ver.ID, vers[0].ID, "new submissions go to the front")
}

func TestSubmitVerificationPendingDedupe(t *testing.T) {
	st := newTestStore(t)
	svc := NewVerificationService(st, nil, nil)
	// ver3 is student2's pending transcript
	student := seededUser(t, st, "student2")

	_, err := svc.Submit(context.Background(), student, SubmitVerificationRequest{
		DocumentType: models.DocTranscript,
		FileURL:      "https://example.com/docs/bob-transcript-v2.pdf",
		FileName:     "transcript_bob_v2.pdf",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPendingVerification.Code, appErrors.FromError(err).Code)
}

func TestSubmitVerificationAfterReviewAllowed(t *testing.T) {
	st := newTestStore(t)
	svc := NewVerificationService(st, nil, nil)
	// student1's transcript was already approved; resubmission is history, not conflict
	student := seededUser(t, st, "student1")

	_, err := svc.Submit(context.Background(), student, SubmitVerificationRequest{
		DocumentType: models.DocTranscript,
		FileURL:      "https://example.com/docs/alice-transcript-v2.pdf",
		FileName:     "transcript_alice_v2.pdf",
	})
	assert.NoError(t, err)
}

func TestApproveTranscriptSetsProfileFlag(t *testing.T) {
	st := newTestStore(t)
	svc := NewVerificationService(st, nil, nil)
	reviewer := seededUser(t, st, "faculty1")

	// ver3: student2's pending transcript; student2 starts unverified
	ver, err := svc.Approve(context.Background(), reviewer, "ver3", ReviewVerificationRequest{})
	require.NoError(t, err)

	assert.Equal(t, models.VerificationApproved, ver.Status)
	assert.Equal(t, "Document verified and approved", ver.Remarks)
	assert.Equal(t, "Prof. Frank Wilson", ver.ReviewedBy)
	require.NotNil(t, ver.ReviewedAt)

	profile, ok := st.ProfileByUserID("student2")
	require.True(t, ok)
	assert.True(t, profile.VerifiedFields.Transcript)
	assert.False(t, profile.VerifiedFields.Certificate)
	assert.False(t, profile.Verified, "transcript alone does not verify the profile")
}

func TestApproveBothDocumentsVerifiesProfile(t *testing.T) {
	st := newTestStore(t)
	svc := NewVerificationService(st, nil, nil)
	reviewer := seededUser(t, st, "faculty1")
	student := seededUser(t, st, "student2")

	_, err := svc.Approve(context.Background(), reviewer, "ver3", ReviewVerificationRequest{})
	require.NoError(t, err)

	cert, err := svc.Submit(context.Background(), student, SubmitVerificationRequest{
		DocumentType: models.DocCertificate,
		FileURL:      "https://example.com/docs/bob-cert.pdf",
		FileName:     "degree_bob.pdf",
	})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), reviewer, cert.ID, ReviewVerificationRequest{Remarks: "Checked against registry."})
	require.NoError(t, err)

	profile, ok := st.ProfileByUserID("student2")
	require.True(t, ok)
	assert.True(t, profile.Verified)
}

func TestApproveIDProofLeavesProfileAlone(t *testing.T) {
	st := newTestStore(t)
	svc := NewVerificationService(st, nil, nil)
	reviewer := seededUser(t, st, "faculty1")
	student := seededUser(t, st, "student2")

	ver, err := svc.Submit(context.Background(), student, SubmitVerificationRequest{
		DocumentType: models.DocIDProof,
		FileURL:      "https://example.com/docs/bob-id.pdf",
		FileName:     "id_bob.pdf",
	})
	require.NoError(t, err)

	before, ok := st.ProfileByUserID("student2")
	require.True(t, ok)

	_, err = svc.Approve(context.Background(), reviewer, ver.ID, ReviewVerificationRequest{})
	require.NoError(t, err)

	after, ok := st.ProfileByUserID("student2")
	require.True(t, ok)
	assert.Equal(t, before.VerifiedFields, after.VerifiedFields)
	assert.Equal(t, before.Verified, after.Verified)
}

func TestApproveAlreadyReviewed(t *testing.T) {
	st := newTestStore(t)
	svc := NewVerificationService(st, nil, nil)
	reviewer := seededUser(t, st, "faculty1")

	// ver1 is already approved
	_, err := svc.Approve(context.Background(), reviewer, "ver1", ReviewVerificationRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrVerificationReviewed.Code, appErrors.FromError(err).Code)
}

func TestRejectRequiresRemark(t *testing.T) {
	st := newTestStore(t)
	svc := NewVerificationService(st, nil, nil)
	reviewer := seededUser(t, st, "faculty1")

	_, err := svc.Reject(context.Background(), reviewer, "ver3", ReviewVerificationRequest{Remarks: "   "})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrRemarkRequired.Code, appErrors.FromError(err).Code)

	ver, ok := st.VerificationByID("ver3")
	require.True(t, ok)
	assert.Equal(t, models.VerificationPending, ver.Status, "a failed rejection leaves the record pending")
}

func TestRejectNeverTouchesProfile(t *testing.T) {
	st := newTestStore(t)
	svc := NewVerificationService(st, nil, nil)
	reviewer := seededUser(t, st, "faculty1")

	before, ok := st.ProfileByUserID("student2")
	require.True(t, ok)

	ver, err := svc.Reject(context.Background(), reviewer, "ver3", ReviewVerificationRequest{Remarks: "Scan is unreadable."})
	require.NoError(t, err)
	assert.Equal(t, models.VerificationRejected, ver.Status)
	assert.Equal(t, "Scan is unreadable.", ver.Remarks)

	after, ok := st.ProfileByUserID("student2")
	require.True(t, ok)
	assert.Equal(t, before.VerifiedFields, after.VerifiedFields)
	assert.Equal(t, before.Verified, after.Verified)
}

func TestQueueFiltersByStatus(t *testing.T) {
	st := newTestStore(t)
	svc := NewVerificationService(st, nil, nil)

	all := svc.Queue(context.Background(), nil)
	assert.Len(t, all, 4)

	pending := models.VerificationPending
	onlyPending := svc.Queue(context.Background(), &pending)
	require.Len(t, onlyPending, 1)
	assert.Equal(t, "ver3", onlyPending[0].ID)
}
