package tasks

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	sessioncontext "sampark/frontend/shared/context"
	"sampark/frontend/shared/records"
	"sampark/frontend/shared/respond"
	"sampark/infrastructure/store"
)

// BoardQueryHandler serves GET /api/tasks/board.
func BoardQueryHandler(c *store.Tasks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		columns, err := Board(r.Context(), c)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, columns)
	}
}

// MoveCommandHandler serves POST /api/tasks/{id}/move.
func MoveCommandHandler(c *store.Tasks, auditSvc records.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body MoveRequest
		if err := respond.DecodeJSON(r, &body); err != nil {
			respond.Error(w, r, err)
			return
		}

		id := chi.URLParam(r, "id")
		before, err := c.Get(r.Context(), id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		result, err := Move(r.Context(), c, id, body.Destination)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		if result.Moved {
			auditSvc.Record(r.Context(), sessioncontext.Actor(r.Context()), "move", c.Name(), id,
				map[string]string{"status": string(before.Status)},
				map[string]string{"status": string(result.Task.Status)})
		}
		respond.JSON(w, http.StatusOK, result)
	}
}
