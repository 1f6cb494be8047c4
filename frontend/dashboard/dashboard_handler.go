package dashboard

import (
	"net/http"

	sessioncontext "sampark/frontend/shared/context"
	"sampark/frontend/shared/html"
	"sampark/frontend/shared/nav"
	"sampark/frontend/shared/respond"
)

// StatsQueryHandler serves GET /api/dashboard.
func StatsQueryHandler(src Sources) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := LoadStats(r.Context(), src)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, stats)
	}
}

// OverviewPageQueryHandler serves the server-rendered overview at /.
func OverviewPageQueryHandler(src Sources, navigator nav.Navigator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := LoadStats(r.Context(), src)
		if err != nil {
			http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
			return
		}
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		top := nav.BuildTopNavData(session, navigator, stats.PendingApprovals)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := html.Layout("Dashboard", top, OverviewPage(stats)).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
			return
		}
	}
}
