package agencies

import (
	"bytes"
	"net/http"
	"time"

	"go.uber.org/zap"

	frontendfiles "sampark/frontend/files"
	sessioncontext "sampark/frontend/shared/context"
	"sampark/frontend/shared/records"
	"sampark/frontend/shared/respond"
	"sampark/infrastructure/apperrors"
	"sampark/infrastructure/files"
	"sampark/infrastructure/store"
)

const exportType = "agencies_csv"

// ExportCSVQueryHandler serves GET /api/agencies/export.csv.
func ExportCSVQueryHandler(c *store.Agencies, exports records.ExportRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := c.List(r.Context(), store.ListOptions{OrderBy: "name"})
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		var buf bytes.Buffer
		if err := WriteCSV(&buf, list); err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.Attachment(w, "text/csv; charset=utf-8", "agencies_export_"+time.Now().Format("2006-01-02")+".csv")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			zap.L().Warn("write agencies csv failed", zap.Error(err))
			return
		}
		records.TrackExport(r.Context(), exports, sessioncontext.Actor(r.Context()), exportType, len(list))
	}
}

// ImportCommandHandler serves POST /api/agencies/import. The CSV goes
// through the same upload and extraction path the file endpoints expose.
func ImportCommandHandler(c *store.Agencies, blobs *files.Blobs, maxBytes int64, auditSvc records.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+(1<<20))
		if err := frontendfiles.ParseMultipart(r, maxBytes); err != nil {
			respond.Error(w, r, err)
			return
		}
		up, err := frontendfiles.ReadUpload(r, "file", maxBytes, false)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		blob, err := blobs.Put(up.FileName, up.MIMEType, up.Data)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		extracted := frontendfiles.Extract(blobs, frontendfiles.ExtractRequest{
			FileURL:    files.URL(blob.Key),
			JSONSchema: ImportSchema(),
		})
		if extracted.Status != files.StatusSuccess {
			respond.Error(w, r, apperrors.Validation("import failed: %s", extracted.Details))
			return
		}

		res, err := Import(r.Context(), c, extracted.Output)
		actor := sessioncontext.Actor(r.Context())
		for _, a := range res.Agencies {
			auditSvc.Record(r.Context(), actor, "import", c.Name(), a.ID, nil, a)
		}
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, res)
	}
}
