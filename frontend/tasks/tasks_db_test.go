package tasks

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
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

func TestMoveChangesOnlyStatus(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	before, err := s.Tasks.Get(ctx, "T-1")
	require.NoError(t, err)

	result, err := Move(ctx, s.Tasks, "T-1", "Review")
	require.NoError(t, err)
	assert.True(t, result.Moved)

	after, err := s.Tasks.Get(ctx, "T-1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskReview, after.Status)

	diff := cmp.Diff(before, after, cmpopts.IgnoreFields(models.Task{}, "Status"), cmpopts.IgnoreFields(models.Meta{}, "Version"))
	assert.Empty(t, diff, "unexpected field changes (-before +after):\n%s", diff)
	assert.Equal(t, before.Version+1, after.Version)
}

func TestMoveAnyColumnToAnyColumn(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	result, err := Move(ctx, s.Tasks, "T-6", string(models.TaskToDo))
	require.NoError(t, err)
	assert.True(t, result.Moved)
	assert.Equal(t, models.TaskToDo, result.Task.Status)

	stored, err := s.Tasks.Get(ctx, "T-6")
	require.NoError(t, err)
	assert.Equal(t, models.TaskToDo, stored.Status)

	back, err := Move(ctx, s.Tasks, "T-6", string(models.TaskCompleted))
	require.NoError(t, err)
	assert.True(t, back.Moved)
	assert.EqualValues(t, 3, back.Task.Version)
}

func TestMoveNoOps(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	outside, err := Move(ctx, s.Tasks, "T-2", "")
	require.NoError(t, err)
	assert.False(t, outside.Moved)
	assert.Equal(t, models.TaskInProgress, outside.Task.Status)

	same, err := Move(ctx, s.Tasks, "T-2", "In Progress")
	require.NoError(t, err)
	assert.False(t, same.Moved)

	task, err := s.Tasks.Get(ctx, "T-2")
	require.NoError(t, err)
	assert.EqualValues(t, 1, task.Version)
}

func TestMoveErrors(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	_, err := Move(ctx, s.Tasks, "T-1", "Archived")
	require.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = Move(ctx, s.Tasks, "T-404", "Review")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBoardColumnsInFixedOrder(t *testing.T) {
	s := seeded(t)

	columns, err := Board(context.Background(), s.Tasks)
	require.NoError(t, err)

	got := make(map[string]int)
	order := make([]models.TaskStatus, 0, len(columns))
	for _, c := range columns {
		order = append(order, c.ID)
		got[string(c.ID)] = len(c.Tasks)
	}
	assert.Equal(t, models.TaskStatuses, order)
	assert.Equal(t, map[string]int{"To Do": 3, "In Progress": 2, "Review": 2, "Completed": 2}, got)
}

func TestValidate(t *testing.T) {
	task := models.Task{Title: "  Site inspection  "}
	require.NoError(t, Validate(&task))
	assert.Equal(t, "Site inspection", task.Title)

	assert.ErrorIs(t, Validate(&models.Task{}), apperrors.ErrValidation)
	assert.ErrorIs(t, Validate(&models.Task{Title: "x", Status: "Blocked"}), apperrors.ErrValidation)
	assert.ErrorIs(t, Validate(&models.Task{Title: "x", Priority: "Whenever"}), apperrors.ErrValidation)

	assert.NoError(t, ValidatePatch(models.TaskPatch{Priority: models.Ptr(models.PriorityUrgent)}))
	assert.ErrorIs(t, ValidatePatch(models.TaskPatch{Status: models.Ptr(models.TaskStatus(""))}), apperrors.ErrValidation)
}
