package projects

import (
	"strings"

	"sampark/infrastructure/apperrors"
	"sampark/models"
)

// Validate checks a project submitted through the creation form.
func Validate(p *models.Project) error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return apperrors.Validation("title is required")
	}
	if p.Component != "" && !models.Valid(p.Component, models.Components...) {
		return apperrors.Validation("unknown component %q", p.Component)
	}
	if p.CurrentStatus != "" && !models.Valid(p.CurrentStatus, models.ProjectStatuses...) {
		return apperrors.Validation("unknown current_status %q", p.CurrentStatus)
	}
	if err := checkProgress(p.ProgressPercent); err != nil {
		return err
	}
	if p.BudgetAllocated < 0 {
		return apperrors.Validation("budget_allocated cannot be negative")
	}
	return checkCoordinates(p.Coordinates)
}

// ValidatePatch checks a status or progress update.
func ValidatePatch(p models.ProjectPatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return apperrors.Validation("title cannot be empty")
	}
	if p.Component != nil && !models.Valid(*p.Component, models.Components...) {
		return apperrors.Validation("unknown component %q", *p.Component)
	}
	if p.CurrentStatus != nil && !models.Valid(*p.CurrentStatus, models.ProjectStatuses...) {
		return apperrors.Validation("unknown current_status %q", *p.CurrentStatus)
	}
	if p.ProgressPercent != nil {
		if err := checkProgress(*p.ProgressPercent); err != nil {
			return err
		}
	}
	if p.BudgetAllocated != nil && *p.BudgetAllocated < 0 {
		return apperrors.Validation("budget_allocated cannot be negative")
	}
	return checkCoordinates(p.Coordinates)
}

func checkProgress(v int) error {
	if v < 0 || v > 100 {
		return apperrors.Validation("progress_percent must be between 0 and 100")
	}
	return nil
}

func checkCoordinates(c *models.Coordinates) error {
	if c == nil {
		return nil
	}
	if !(c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180) {
		return apperrors.Validation("coordinates out of range")
	}
	return nil
}
