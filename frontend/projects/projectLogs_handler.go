package projects

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sampark/frontend/shared/respond"
	"sampark/infrastructure/sqlite"
	"sampark/models"
)

// Getter loads one project.
type Getter interface {
	Get(ctx context.Context, id string) (models.Project, error)
}

// ProjectLogsQueryHandler serves GET /api/projects/{id}/logs.
func ProjectLogsQueryHandler(projects Getter, db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := projects.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		data, err := LoadProjectLogs(r.Context(), db, project)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, data)
	}
}
