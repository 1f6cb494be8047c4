package approvals

import (
	"context"
	"strings"
	"time"

	"sampark/infrastructure/apperrors"
	"sampark/infrastructure/store"
	"sampark/models"
)

// Collection is the approval storage the workflow needs.
type Collection interface {
	Modify(ctx context.Context, id string, build func(current models.Approval) (store.Patch[models.Approval], error)) (before, after models.Approval, err error)
}

// Decide records an approval decision. The new timestamp is always strictly
// after the previous one. Already decided approvals can be decided again.
func Decide(ctx context.Context, c Collection, id string, status models.ApprovalStatus, comments string, actor Actor, now time.Time) (before, after models.Approval, err error) {
	if status != models.ApprovalApproved && status != models.ApprovalRejected {
		return before, after, apperrors.Validation("decision must be %s or %s", models.ApprovalApproved, models.ApprovalRejected)
	}

	return c.Modify(ctx, id, func(current models.Approval) (store.Patch[models.Approval], error) {
		ts := now
		if !ts.After(current.Timestamp) {
			ts = current.Timestamp.Add(time.Microsecond)
		}
		return models.ApprovalPatch{
			Status:         &status,
			Comments:       &comments,
			Timestamp:      &ts,
			ApprovedBy:     &actor.ID,
			ApprovedByName: &actor.Name,
		}, nil
	})
}

// Group splits approvals into the Pending, Approved and Rejected tabs.
func Group(list []models.Approval, now time.Time) Tabs {
	tabs := Tabs{
		Pending:  make([]ApprovalRow, 0),
		Approved: make([]ApprovalRow, 0),
		Rejected: make([]ApprovalRow, 0),
	}
	for _, a := range list {
		row := ApprovalRow{Approval: a, Overdue: a.Overdue(now)}
		switch a.Status {
		case models.ApprovalPending:
			tabs.Pending = append(tabs.Pending, row)
		case models.ApprovalApproved:
			tabs.Approved = append(tabs.Approved, row)
		case models.ApprovalRejected:
			tabs.Rejected = append(tabs.Rejected, row)
		}
	}
	return tabs
}

var approvalStatuses = []models.ApprovalStatus{models.ApprovalPending, models.ApprovalApproved, models.ApprovalRejected}

// Validate checks a new approval step.
func Validate(a *models.Approval) error {
	if strings.TrimSpace(a.ProjectID) == "" {
		return apperrors.Validation("project_id is required")
	}
	a.StepName = strings.TrimSpace(a.StepName)
	if a.StepName == "" {
		return apperrors.Validation("step_name is required")
	}
	if a.Status != "" && !models.Valid(a.Status, approvalStatuses...) {
		return apperrors.Validation("unknown status %q", a.Status)
	}
	return nil
}

func ValidatePatch(p models.ApprovalPatch) error {
	if p.Status != nil && !models.Valid(*p.Status, approvalStatuses...) {
		return apperrors.Validation("unknown status %q", *p.Status)
	}
	if p.StepName != nil && strings.TrimSpace(*p.StepName) == "" {
		return apperrors.Validation("step_name cannot be empty")
	}
	return nil
}
