package evidence

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"sampark/frontend/files"
	sessioncontext "sampark/frontend/shared/context"
	"sampark/frontend/shared/records"
	"sampark/frontend/shared/respond"
	"sampark/infrastructure/apperrors"
	infrafiles "sampark/infrastructure/files"
	"sampark/infrastructure/store"
	"sampark/models"
)

// ProjectLookup resolves the project an upload belongs to.
type ProjectLookup interface {
	Get(ctx context.Context, id string) (models.Project, error)
}

// GalleryQueryHandler serves GET /api/photo-evidence/gallery.
func GalleryQueryHandler(c *store.Evidence) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := c.List(r.Context(), store.ListOptions{OrderBy: "-timestamp"})
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, Group(list))
	}
}

// UploadCommandHandler serves POST /api/photo-evidence/upload: the image is
// stored first, then a Pending evidence record pointing at it is created.
func UploadCommandHandler(c *store.Evidence, projects ProjectLookup, blobs *infrafiles.Blobs, maxBytes int64, auditSvc records.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+(1<<20))
		if err := files.ParseMultipart(r, maxBytes); err != nil {
			respond.Error(w, r, err)
			return
		}
		form, err := parseUploadForm(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		project, err := projects.Get(r.Context(), form.ProjectID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				err = apperrors.Validation("unknown project_id %q", form.ProjectID)
			}
			respond.Error(w, r, err)
			return
		}
		up, err := files.ReadUpload(r, "image", maxBytes, true)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		blob, err := blobs.Put(up.FileName, up.MIMEType, up.Data)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		url := infrafiles.URL(blob.Key)
		rec := models.PhotoEvidence{
			ProjectID:          project.ID,
			ProjectTitle:       project.Title,
			ImageURL:           url,
			ThumbnailURL:       url,
			GeoLat:             form.GeoLat,
			GeoLng:             form.GeoLng,
			Caption:            form.Caption,
			MilestoneReference: form.MilestoneReference,
			VerificationStatus: models.VerificationPending,
		}
		if user, ok := sessioncontext.CurrentUser(r.Context()); ok {
			rec.UploadedBy = user.Email
			rec.UploadedByName = user.FullName
		}

		created, err := c.Create(r.Context(), rec)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		auditSvc.Record(r.Context(), sessioncontext.Actor(r.Context()), "upload", c.Name(), created.ID, nil, created)
		respond.JSON(w, http.StatusCreated, created)
	}
}

// VerifyCommandHandler serves POST /api/photo-evidence/{id}/verify.
func VerifyCommandHandler(c Collection, name string, auditSvc records.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		actor := sessioncontext.Actor(r.Context())
		before, after, err := Verify(r.Context(), c, id, actor)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		auditSvc.Record(r.Context(), actor, "verify", name, id, before, after)
		respond.JSON(w, http.StatusOK, after)
	}
}

// FlagCommandHandler serves POST /api/photo-evidence/{id}/flag.
func FlagCommandHandler(c Collection, name string, auditSvc records.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body FlagRequest
		if err := respond.DecodeJSON(r, &body); err != nil {
			respond.Error(w, r, err)
			return
		}
		id := chi.URLParam(r, "id")
		before, after, err := Flag(r.Context(), c, id, body.FlaggedReason)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		auditSvc.Record(r.Context(), sessioncontext.Actor(r.Context()), "flag", name, id, before, after)
		respond.JSON(w, http.StatusOK, after)
	}
}

func parseUploadForm(r *http.Request) (UploadForm, error) {
	form := UploadForm{
		ProjectID:          strings.TrimSpace(r.FormValue("project_id")),
		Caption:            strings.TrimSpace(r.FormValue("caption")),
		MilestoneReference: strings.TrimSpace(r.FormValue("milestone_reference")),
	}
	if form.ProjectID == "" {
		return form, apperrors.Validation("project_id is required")
	}
	var err error
	if form.GeoLat, err = parseCoordinate(r.FormValue("geo_lat"), "geo_lat", 90); err != nil {
		return form, err
	}
	if form.GeoLng, err = parseCoordinate(r.FormValue("geo_lng"), "geo_lng", 180); err != nil {
		return form, err
	}
	return form, nil
}

func parseCoordinate(raw, field string, limit float64) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	// NaN fails both comparisons.
	if err != nil || !(v >= -limit && v <= limit) {
		return nil, apperrors.Validation("%s must be a number between -%g and %g", field, limit, limit)
	}
	return &v, nil
}
