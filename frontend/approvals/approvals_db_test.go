package approvals

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sampark/infrastructure/apperrors"
	"sampark/infrastructure/store"
	"sampark/models"
)

func seeded(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewSeeded("")
	require.NoError(t, err)
	return s
}

func TestApproveSeededApproval(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	pending, err := s.Approvals.Filter(ctx, store.Query{"status": "Pending"})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "A-1", pending[0].ID)

	prev := pending[0].Timestamp
	_, after, err := Decide(ctx, s.Approvals, "A-1", models.ApprovalApproved, "OK", Actor{ID: "admin@sampark.gov.in", Name: "Admin User"}, time.Now())
	require.NoError(t, err)

	assert.Equal(t, models.ApprovalApproved, after.Status)
	assert.Equal(t, "OK", after.Comments)
	assert.Equal(t, "Admin User", after.ApprovedByName)
	assert.True(t, after.Timestamp.After(prev), "timestamp %v not after %v", after.Timestamp, prev)

	approved, err := s.Approvals.Filter(ctx, store.Query{"status": "Approved"})
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "A-1", approved[0].ID)

	stillPending, err := s.Approvals.Filter(ctx, store.Query{"status": "Pending"})
	require.NoError(t, err)
	assert.Empty(t, stillPending)
}

func TestDecideTimestampStrictlyIncreasesWithStoppedClock(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	a, err := s.Approvals.Get(ctx, "A-1")
	require.NoError(t, err)

	frozen := a.Timestamp.Add(-time.Hour)
	_, first, err := Decide(ctx, s.Approvals, "A-1", models.ApprovalRejected, "missing docs", Actor{Name: "Admin User"}, frozen)
	require.NoError(t, err)
	assert.Equal(t, a.Timestamp.Add(time.Microsecond), first.Timestamp)

	_, second, err := Decide(ctx, s.Approvals, "A-1", models.ApprovalApproved, "resolved", Actor{Name: "Admin User"}, frozen)
	require.NoError(t, err)
	assert.True(t, second.Timestamp.After(first.Timestamp))
	assert.Equal(t, models.ApprovalApproved, second.Status)
	assert.EqualValues(t, 3, second.Version)
}

func TestConcurrentDecisionsKeepTimestampsStrictlyIncreasing(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	a, err := s.Approvals.Get(ctx, "A-1")
	require.NoError(t, err)
	frozen := a.Timestamp

	const n = 16
	results := make([]models.Approval, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			before, after, err := Decide(ctx, s.Approvals, "A-1", models.ApprovalApproved, "", Actor{Name: "Admin User"}, frozen)
			assert.NoError(t, err)
			assert.True(t, after.Timestamp.After(before.Timestamp))
			assert.Equal(t, before.Version+1, after.Version)
			results[i] = after
		}(i)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Version < results[j].Version })
	for i := 1; i < n; i++ {
		assert.True(t, results[i].Timestamp.After(results[i-1].Timestamp), "decision %d not after %d", i, i-1)
	}

	final, err := s.Approvals.Get(ctx, "A-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1+n, final.Version)
	assert.Equal(t, frozen.Add(n*time.Microsecond), final.Timestamp)
}

func TestDecideErrors(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	_, _, err := Decide(ctx, s.Approvals, "A-404", models.ApprovalApproved, "", Actor{}, time.Now())
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	_, _, err = Decide(ctx, s.Approvals, "A-1", models.ApprovalPending, "", Actor{}, time.Now())
	require.ErrorIs(t, err, apperrors.ErrValidation)

	a, err := s.Approvals.Get(ctx, "A-1")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalPending, a.Status)
	assert.EqualValues(t, 1, a.Version)
}

func TestGroupAndOverdue(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	list := []models.Approval{
		{Meta: models.Meta{ID: "A-1"}, Status: models.ApprovalPending, SLADeadline: now.Add(-time.Hour)},
		{Meta: models.Meta{ID: "A-2"}, Status: models.ApprovalPending, SLADeadline: now.Add(time.Hour)},
		{Meta: models.Meta{ID: "A-3"}, Status: models.ApprovalApproved, SLADeadline: now.Add(-time.Hour)},
		{Meta: models.Meta{ID: "A-4"}, Status: models.ApprovalRejected},
	}

	tabs := Group(list, now)
	require.Len(t, tabs.Pending, 2)
	require.Len(t, tabs.Approved, 1)
	require.Len(t, tabs.Rejected, 1)
	assert.True(t, tabs.Pending[0].Overdue)
	assert.False(t, tabs.Pending[1].Overdue)
	assert.False(t, tabs.Approved[0].Overdue)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(&models.Approval{ProjectID: "P-1", StepName: "Budget sanction"}))
	assert.ErrorIs(t, Validate(&models.Approval{StepName: "Budget sanction"}), apperrors.ErrValidation)
	assert.ErrorIs(t, Validate(&models.Approval{ProjectID: "P-1"}), apperrors.ErrValidation)
	assert.ErrorIs(t, Validate(&models.Approval{ProjectID: "P-1", StepName: "x", Status: "Escalated"}), apperrors.ErrValidation)

	assert.NoError(t, ValidatePatch(models.ApprovalPatch{Status: models.Ptr(models.ApprovalRejected)}))
	assert.ErrorIs(t, ValidatePatch(models.ApprovalPatch{Status: models.Ptr(models.ApprovalStatus("Maybe"))}), apperrors.ErrValidation)
}
