package evidence

import "sampark/models"

// FlagRequest is the body of POST /api/photo-evidence/{id}/flag.
type FlagRequest struct {
	FlaggedReason string `json:"flagged_reason"`
}

// Gallery groups evidence by verification status.
type Gallery struct {
	Pending  []models.PhotoEvidence `json:"pending"`
	Verified []models.PhotoEvidence `json:"verified"`
	Flagged  []models.PhotoEvidence `json:"flagged"`
}

// UploadForm carries the non-file fields of an evidence upload.
type UploadForm struct {
	ProjectID          string
	Caption            string
	MilestoneReference string
	GeoLat             *float64
	GeoLng             *float64
}
