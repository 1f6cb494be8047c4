package evidence

import (
	"context"
	"strings"

	"sampark/infrastructure/apperrors"
	"sampark/infrastructure/store"
	"sampark/models"
)

// Collection is the evidence storage the verification workflow needs.
type Collection interface {
	Get(ctx context.Context, id string) (models.PhotoEvidence, error)
	Update(ctx context.Context, id string, patch store.Patch[models.PhotoEvidence]) (models.PhotoEvidence, error)
}

// Verify marks evidence Verified by verifier and clears any flag reason.
func Verify(ctx context.Context, c Collection, id, verifier string) (before, after models.PhotoEvidence, err error) {
	before, err = c.Get(ctx, id)
	if err != nil {
		return before, after, err
	}
	after, err = c.Update(ctx, id, models.PhotoEvidencePatch{
		VerificationStatus: models.Ptr(models.VerificationVerified),
		VerifiedByName:     &verifier,
		FlaggedReason:      models.Ptr(""),
	})
	return before, after, err
}

// Flag marks evidence Flagged. A reason is required.
func Flag(ctx context.Context, c Collection, id, reason string) (before, after models.PhotoEvidence, err error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return before, after, apperrors.Validation("flagged_reason is required")
	}
	before, err = c.Get(ctx, id)
	if err != nil {
		return before, after, err
	}
	after, err = c.Update(ctx, id, models.PhotoEvidencePatch{
		VerificationStatus: models.Ptr(models.VerificationFlagged),
		FlaggedReason:      &reason,
	})
	return before, after, err
}

// Group splits evidence into gallery tabs.
func Group(list []models.PhotoEvidence) Gallery {
	g := Gallery{
		Pending:  make([]models.PhotoEvidence, 0),
		Verified: make([]models.PhotoEvidence, 0),
		Flagged:  make([]models.PhotoEvidence, 0),
	}
	for _, e := range list {
		switch e.VerificationStatus {
		case models.VerificationVerified:
			g.Verified = append(g.Verified, e)
		case models.VerificationFlagged:
			g.Flagged = append(g.Flagged, e)
		default:
			g.Pending = append(g.Pending, e)
		}
	}
	return g
}

// Validate checks a directly created evidence record.
func Validate(e *models.PhotoEvidence) error {
	if strings.TrimSpace(e.ProjectID) == "" {
		return apperrors.Validation("project_id is required")
	}
	if strings.TrimSpace(e.ImageURL) == "" {
		return apperrors.Validation("image_url is required")
	}
	if e.VerificationStatus != "" && !models.Valid(e.VerificationStatus, models.VerificationPending, models.VerificationVerified, models.VerificationFlagged) {
		return apperrors.Validation("unknown verification_status %q", e.VerificationStatus)
	}
	return nil
}

func ValidatePatch(p models.PhotoEvidencePatch) error {
	if p.ImageURL != nil && strings.TrimSpace(*p.ImageURL) == "" {
		return apperrors.Validation("image_url cannot be empty")
	}
	if p.VerificationStatus != nil && !models.Valid(*p.VerificationStatus, models.VerificationPending, models.VerificationVerified, models.VerificationFlagged) {
		return apperrors.Validation("unknown verification_status %q", *p.VerificationStatus)
	}
	return nil
}
