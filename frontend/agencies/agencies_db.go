package agencies

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"sampark/infrastructure/apperrors"
	"sampark/infrastructure/files"
	"sampark/models"
)

// Creator is the agency storage an import writes to.
type Creator interface {
	Create(ctx context.Context, rec models.Agency) (models.Agency, error)
}

// ImportSchema is the extraction schema for agency CSV files.
func ImportSchema() files.Schema {
	props := map[string]files.PropertySchema{}
	for _, name := range []string{"name", "type", "state_name", "district_name", "head_name", "head_contact", "head_email", "status"} {
		props[name] = files.PropertySchema{Type: "string"}
	}
	return files.Schema{Type: "array", Items: &files.ItemSchema{Type: "object", Properties: props}}
}

// Validate checks an agency submitted through the registry form.
func Validate(a *models.Agency) error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return apperrors.Validation("name is required")
	}
	if !models.Valid(a.Type, models.AgencyImplementing, models.AgencyExecuting) {
		return apperrors.Validation("type must be %s or %s", models.AgencyImplementing, models.AgencyExecuting)
	}
	if a.Status != "" && !models.Valid(a.Status, models.AgencyActive, models.AgencyInactive) {
		return apperrors.Validation("unknown status %q", a.Status)
	}
	return nil
}

// ValidatePatch checks the enum fields of an agency patch.
func ValidatePatch(p models.AgencyPatch) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return apperrors.Validation("name cannot be empty")
	}
	if p.Type != nil && !models.Valid(*p.Type, models.AgencyImplementing, models.AgencyExecuting) {
		return apperrors.Validation("type must be %s or %s", models.AgencyImplementing, models.AgencyExecuting)
	}
	if p.Status != nil && !models.Valid(*p.Status, models.AgencyActive, models.AgencyInactive) {
		return apperrors.Validation("unknown status %q", *p.Status)
	}
	return nil
}

// WriteCSV writes agencies in export order.
func WriteCSV(w io.Writer, list []models.Agency) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return err
	}
	for _, a := range list {
		if err := writer.Write([]string{
			a.Name,
			string(a.Type),
			a.StateName,
			a.DistrictName,
			a.HeadName,
			a.HeadContact,
			a.HeadEmail,
			string(a.Status),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// FromRow builds an agency from an extracted row, applying the import
// defaults for type and status.
func FromRow(row map[string]string) models.Agency {
	a := models.Agency{
		Name:         row["name"],
		Type:         models.AgencyType(row["type"]),
		StateName:    row["state_name"],
		DistrictName: row["district_name"],
		HeadName:     row["head_name"],
		HeadContact:  row["head_contact"],
		HeadEmail:    row["head_email"],
		Status:       models.AgencyStatus(row["status"]),
	}
	if a.Type == "" {
		a.Type = models.AgencyImplementing
	}
	if a.Status == "" {
		a.Status = models.AgencyActive
	}
	return a
}

// Import creates one agency per valid row. Invalid rows are skipped and
// reported; a storage error stops the import.
func Import(ctx context.Context, c Creator, rows []map[string]string) (ImportResult, error) {
	res := ImportResult{Agencies: make([]models.Agency, 0, len(rows)), Skipped: make([]SkippedRow, 0)}
	for i, row := range rows {
		a := FromRow(row)
		if err := Validate(&a); err != nil {
			if !errors.Is(err, apperrors.ErrValidation) {
				return res, err
			}
			res.Skipped = append(res.Skipped, SkippedRow{Row: i + 1, Reason: err.Error()})
			continue
		}
		created, err := c.Create(ctx, a)
		if err != nil {
			return res, err
		}
		res.Agencies = append(res.Agencies, created)
		res.Imported++
	}
	return res, nil
}
