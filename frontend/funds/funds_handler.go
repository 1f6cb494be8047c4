package funds

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	sessioncontext "sampark/frontend/shared/context"
	"sampark/frontend/shared/records"
	"sampark/frontend/shared/respond"
	"sampark/models"
)

// Getter loads one fund transaction.
type Getter interface {
	Get(ctx context.Context, id string) (models.FundTransaction, error)
}

// SlipPDFQueryHandler serves GET /api/fund-transactions/{id}/slip.pdf.
func SlipPDFQueryHandler(c Getter, exports records.ExportRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tx, err := c.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		actor := sessioncontext.Actor(r.Context())
		pdf, err := renderSlipPDF(SlipData{Transaction: tx, PrintedAt: time.Now(), PrintedBy: actor})
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "inline; filename=fund-slip-"+tx.ID+".pdf")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(pdf); err != nil {
			zap.L().Warn("write fund slip failed", zap.String("id", tx.ID), zap.Error(err))
			return
		}
		records.TrackExport(r.Context(), exports, actor, "fund_slip_pdf", 1)
	}
}
