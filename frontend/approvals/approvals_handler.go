package approvals

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	sessioncontext "sampark/frontend/shared/context"
	"sampark/frontend/shared/records"
	"sampark/frontend/shared/respond"
	"sampark/infrastructure/store"
	"sampark/models"
)

// TabsQueryHandler serves GET /api/approvals/tabs.
func TabsQueryHandler(c *store.Approvals) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := c.List(r.Context(), store.ListOptions{OrderBy: "-timestamp"})
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, Group(list, time.Now()))
	}
}

// DecideCommandHandler serves POST /api/approvals/{id}/approve and /reject.
func DecideCommandHandler(c *store.Approvals, status models.ApprovalStatus, auditSvc records.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body Decision
		if r.ContentLength != 0 {
			if err := respond.DecodeJSON(r, &body); err != nil {
				respond.Error(w, r, err)
				return
			}
		}

		actor := Actor{Name: sessioncontext.Actor(r.Context())}
		if user, ok := sessioncontext.CurrentUser(r.Context()); ok {
			actor.ID = user.Email
		}

		id := chi.URLParam(r, "id")
		before, after, err := Decide(r.Context(), c, id, status, body.Comments, actor, time.Now())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		action := "approve"
		if status == models.ApprovalRejected {
			action = "reject"
		}
		auditSvc.Record(r.Context(), actor.Name, action, c.Name(), id, before, after)
		respond.JSON(w, http.StatusOK, after)
	}
}
