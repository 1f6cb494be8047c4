package login

import (
	"context"
	"net/http"

	sessioncontext "sampark/frontend/shared/context"
	"sampark/frontend/shared/nav"
	"sampark/frontend/shared/respond"
	"sampark/infrastructure/apperrors"
	"sampark/infrastructure/store"
	"sampark/models"
)

// PendingCounter filters approvals.
type PendingCounter interface {
	Filter(ctx context.Context, q store.Query) ([]models.Approval, error)
}

// MeQueryHandler serves GET /api/me.
func MeQueryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := sessioncontext.CurrentUser(r.Context())
		if !ok {
			respond.Error(w, r, apperrors.ErrNotFound)
			return
		}
		respond.JSON(w, http.StatusOK, user)
	}
}

// NavigationQueryHandler serves GET /api/navigation with the pending
// approvals badge count.
func NavigationQueryHandler(navigator nav.Navigator, approvals PendingCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := sessioncontext.CurrentUser(r.Context())
		pending, err := approvals.Filter(r.Context(), store.Query{"status": string(models.ApprovalPending)})
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, NavigationResponse{
			Items:            navigator.Navigation(user.Role),
			PendingApprovals: len(pending),
		})
	}
}
