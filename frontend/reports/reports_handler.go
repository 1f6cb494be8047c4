package reports

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	sessioncontext "sampark/frontend/shared/context"
	"sampark/frontend/shared/records"
	"sampark/frontend/shared/respond"
	"sampark/models"
)

// Sources are the collections reports read.
type Sources struct {
	Projects         Lister[models.Project]
	FundTransactions Lister[models.FundTransaction]
}

// SummaryQueryHandler serves GET /api/reports/summary.
func SummaryQueryHandler(src Sources) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, txs, err := Load(r.Context(), src.Projects, src.FundTransactions)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, Summarize(projects, txs))
	}
}

// ExportJSONQueryHandler serves GET /api/reports/export.json.
func ExportJSONQueryHandler(src Sources, exports records.ExportRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, txs, err := Load(r.Context(), src.Projects, src.FundTransactions)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		now := time.Now()
		body, err := json.MarshalIndent(BuildExport(projects, txs, now), "", "  ")
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.Attachment(w, "application/json", "sampark_dashboard_export_"+now.Format("2006-01-02")+".json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			zap.L().Warn("write dashboard export failed", zap.Error(err))
			return
		}
		records.TrackExport(r.Context(), exports, sessioncontext.Actor(r.Context()), "dashboard_json", len(projects)+len(txs))
	}
}

// ProjectsPDFQueryHandler serves GET /api/reports/projects.pdf.
func ProjectsPDFQueryHandler(src Sources, exports records.ExportRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, txs, err := Load(r.Context(), src.Projects, src.FundTransactions)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		pdf, err := renderProjectsPDF(Summarize(projects, txs), projects, time.Now())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "inline; filename=sampark-projects.pdf")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(pdf); err != nil {
			zap.L().Warn("write project report failed", zap.Error(err))
			return
		}
		records.TrackExport(r.Context(), exports, sessioncontext.Actor(r.Context()), "projects_pdf", len(projects))
	}
}
