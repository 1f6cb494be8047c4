package tasks

import (
	"context"
	"strings"

	"sampark/infrastructure/apperrors"
	"sampark/infrastructure/store"
	"sampark/models"
)

// Collection is the task storage the board needs.
type Collection interface {
	List(ctx context.Context, opts store.ListOptions) ([]models.Task, error)
	Get(ctx context.Context, id string) (models.Task, error)
	Update(ctx context.Context, id string, patch store.Patch[models.Task]) (models.Task, error)
}

// Move drops task id onto destination. Drops outside any column and drops
// onto the task's current column change nothing.
func Move(ctx context.Context, c Collection, id, destination string) (MoveResult, error) {
	task, err := c.Get(ctx, id)
	if err != nil {
		return MoveResult{}, err
	}
	if destination == "" {
		return MoveResult{Task: task}, nil
	}

	dest := models.TaskStatus(destination)
	if !models.Valid(dest, models.TaskStatuses...) {
		return MoveResult{}, apperrors.Validation("unknown task column %q", destination)
	}
	if dest == task.Status {
		return MoveResult{Task: task}, nil
	}

	moved, err := c.Update(ctx, id, models.TaskPatch{Status: &dest})
	if err != nil {
		return MoveResult{}, err
	}
	return MoveResult{Moved: true, Task: moved}, nil
}

// Board returns the four columns in fixed order.
func Board(ctx context.Context, c Collection) ([]Column, error) {
	all, err := c.List(ctx, store.ListOptions{})
	if err != nil {
		return nil, err
	}

	columns := make([]Column, len(models.TaskStatuses))
	byStatus := make(map[models.TaskStatus]int, len(models.TaskStatuses))
	for i, status := range models.TaskStatuses {
		columns[i] = Column{ID: status, Title: string(status), Tasks: make([]models.Task, 0)}
		byStatus[status] = i
	}
	for _, t := range all {
		if i, ok := byStatus[t.Status]; ok {
			columns[i].Tasks = append(columns[i].Tasks, t)
		}
	}
	return columns, nil
}

// Validate checks a task created from the board.
func Validate(t *models.Task) error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return apperrors.Validation("title is required")
	}
	return checkEnums(t.Status, t.Priority)
}

// ValidatePatch checks a task edit. Column changes should go through Move.
func ValidatePatch(p models.TaskPatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return apperrors.Validation("title cannot be empty")
	}
	var status models.TaskStatus
	var priority models.TaskPriority
	if p.Status != nil {
		status = *p.Status
		if status == "" {
			return apperrors.Validation("status cannot be empty")
		}
	}
	if p.Priority != nil {
		priority = *p.Priority
		if priority == "" {
			return apperrors.Validation("priority cannot be empty")
		}
	}
	return checkEnums(status, priority)
}

func checkEnums(status models.TaskStatus, priority models.TaskPriority) error {
	if status != "" && !models.Valid(status, models.TaskStatuses...) {
		return apperrors.Validation("unknown status %q", status)
	}
	if priority != "" && !models.Valid(priority, models.TaskPriorities...) {
		return apperrors.Validation("unknown priority %q", priority)
	}
	return nil
}
