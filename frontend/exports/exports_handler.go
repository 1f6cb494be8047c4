package exports

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	sessioncontext "sampark/frontend/shared/context"
	"sampark/frontend/shared/html"
	"sampark/frontend/shared/nav"
	"sampark/frontend/shared/records"
	"sampark/frontend/shared/respond"
	"sampark/infrastructure/apperrors"
	"sampark/models"
)

// RunLister lists recorded export runs.
type RunLister interface {
	ExportRuns(ctx context.Context, limit int) ([]models.ExportRun, error)
}

// AdminExportQueryHandler serves GET /api/admin/export/{entity}.{format}.
func AdminExportQueryHandler(reg Registry, exports records.ExportRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "entity")
		format := chi.URLParam(r, "format")
		if format != FormatJSON && format != FormatCSV {
			respond.Error(w, r, apperrors.Validation("unsupported export format %q", format))
			return
		}
		d, err := reg.lookup(slug)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		list, rows, err := d.load(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		filename := fmt.Sprintf("sampark_%s_%s.%s", d.Name, time.Now().Format("2006-01-02"), format)
		switch format {
		case FormatCSV:
			respond.Attachment(w, "text/csv; charset=utf-8", filename)
			if err := writeCSV(w, d.Columns, rows); err != nil {
				respond.Error(w, r, err)
				return
			}
		default:
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
			respond.JSON(w, http.StatusOK, list)
		}
		records.TrackExport(r.Context(), exports, sessioncontext.Actor(r.Context()), "admin_"+d.Name+"_"+format, len(rows))
	}
}

// ExportRunsQueryHandler serves GET /api/admin/export-runs.
func ExportRunsQueryHandler(runs RunLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				respond.Error(w, r, apperrors.Validation("limit must be a positive integer"))
				return
			}
			limit = n
		}
		out, err := runs.ExportRuns(r.Context(), limit)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

const consoleRunLimit = 20

// ConsolePageQueryHandler serves the admin console at /admin-console.
func ConsolePageQueryHandler(reg Registry, runs RunLister, navigator nav.Navigator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recent, err := runs.ExportRuns(r.Context(), consoleRunLimit)
		if err != nil {
			http.Error(w, "failed to load export runs", http.StatusInternalServerError)
			return
		}
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		top := nav.BuildTopNavData(session, navigator, 0)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := html.Layout("Admin Console", top, ConsolePage(reg.Slugs(), recent)).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render admin console", http.StatusInternalServerError)
			return
		}
	}
}
