package activity

import (
	"context"
	"net/http"
	"strconv"

	"sampark/frontend/shared/respond"
	"sampark/infrastructure/apperrors"
	"sampark/infrastructure/audit"
	"sampark/models"
)

// Feed lists audit rows.
type Feed interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, error)
}

// ActivityQueryHandler serves GET /api/activity.
func ActivityQueryHandler(feed Feed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := parseFilter(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		rows, err := feed.List(r.Context(), f)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, rows)
	}
}

func parseFilter(r *http.Request) (audit.Filter, error) {
	q := r.URL.Query()
	f := audit.Filter{
		EntityType: q.Get("entity_type"),
		EntityID:   q.Get("entity_id"),
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return f, apperrors.Validation("limit must be a positive integer")
		}
		f.Limit = n
	}
	return f, nil
}
