package projects

import (
	"errors"
	"math"
	"testing"

	"sampark/infrastructure/apperrors"
	"sampark/models"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		in   models.Project
		ok   bool
	}{
		{name: "ok", in: models.Project{Title: "New", Component: models.ComponentGIA, ProgressPercent: 10}, ok: true},
		{name: "missing title", in: models.Project{Title: "   "}},
		{name: "bad component", in: models.Project{Title: "x", Component: "Roads"}},
		{name: "bad status", in: models.Project{Title: "x", CurrentStatus: "Done"}},
		{name: "progress over 100", in: models.Project{Title: "x", ProgressPercent: 101}},
		{name: "negative budget", in: models.Project{Title: "x", BudgetAllocated: -1}},
		{name: "bad coordinates", in: models.Project{Title: "x", Coordinates: &models.Coordinates{Lat: 100}}},
		{name: "nan coordinates", in: models.Project{Title: "x", Coordinates: &models.Coordinates{Lat: math.NaN()}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(&tc.in)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, apperrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestValidatePatch(t *testing.T) {
	if err := ValidatePatch(models.ProjectPatch{ProgressPercent: models.Ptr(100)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidatePatch(models.ProjectPatch{ProgressPercent: models.Ptr(-1)}); err == nil {
		t.Fatalf("expected negative progress to be rejected")
	}
	if err := ValidatePatch(models.ProjectPatch{CurrentStatus: models.Ptr(models.ProjectStatus("Done"))}); err == nil {
		t.Fatalf("expected unknown status to be rejected")
	}
}
