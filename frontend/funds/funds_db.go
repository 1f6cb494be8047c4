package funds

import (
	"strings"

	"sampark/infrastructure/apperrors"
	"sampark/models"
)

// Validate checks a fund transaction before it is created.
func Validate(f *models.FundTransaction) error {
	if strings.TrimSpace(f.ProjectID) == "" {
		return apperrors.Validation("project_id is required")
	}
	if f.Amount <= 0 {
		return apperrors.Validation("amount must be greater than zero")
	}
	if f.Status != "" && !models.Valid(f.Status, models.TransactionStatuses...) {
		return apperrors.Validation("unknown status %q", f.Status)
	}
	return nil
}

// ValidatePatch checks a fund transaction patch.
func ValidatePatch(p models.FundTransactionPatch) error {
	if p.ProjectID != nil && strings.TrimSpace(*p.ProjectID) == "" {
		return apperrors.Validation("project_id cannot be empty")
	}
	if p.Amount != nil && *p.Amount <= 0 {
		return apperrors.Validation("amount must be greater than zero")
	}
	if p.Status != nil && !models.Valid(*p.Status, models.TransactionStatuses...) {
		return apperrors.Validation("unknown status %q", *p.Status)
	}
	return nil
}

// BarcodeValue is what the slip barcode encodes: the reference number, or
// the record id when no reference was issued.
func BarcodeValue(f models.FundTransaction) string {
	if v := strings.TrimSpace(f.ReferenceNo); v != "" {
		return v
	}
	return f.ID
}
