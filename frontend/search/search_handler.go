package search

import (
	"net/http"

	sessioncontext "sampark/frontend/shared/context"
	"sampark/frontend/shared/nav"
	"sampark/frontend/shared/respond"
)

// SearchQueryHandler serves GET /api/search?q=.
func SearchQueryHandler(navigator nav.Navigator, projects ProjectLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := sessioncontext.CurrentUser(r.Context())
		results, err := Run(r.Context(), r.URL.Query().Get("q"), navigator.Navigation(user.Role), projects)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, results)
	}
}
