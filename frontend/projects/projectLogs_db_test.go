package projects

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"sampark/infrastructure/audit"
	"sampark/infrastructure/sqlite"
	"sampark/infrastructure/store"
	"sampark/models"
)

func openProjectLogsTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.OpenDB(filepath.Join(t.TempDir(), "project-logs-test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := sqlite.ApplyEmbeddedMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func TestLoadProjectLogs_FiltersProjectScopedEvents(t *testing.T) {
	db := openProjectLogsTestDB(t)
	auditSvc := audit.NewService(db, nil)
	ctx := context.Background()

	p1 := models.Project{Meta: models.Meta{ID: "P-1"}, Title: "Model Village Development", CurrentStatus: models.ProjectInProgress}
	p2 := models.Project{Meta: models.Meta{ID: "P-2"}, Title: "Girls Hostel"}

	auditSvc.Record(ctx, "Admin User", "update", "projects", "P-1", p1, p1)
	auditSvc.Record(ctx, "Admin User", "create", "fund_transactions", "TX-9", nil, models.FundTransaction{ProjectID: "P-1", Amount: 10})
	auditSvc.Record(ctx, "", "upload", "photo_evidence", "PE-1", nil, models.PhotoEvidence{ProjectID: "P-1"})
	auditSvc.Record(ctx, "Admin User", "update", "projects", "P-2", p2, p2)
	auditSvc.Record(ctx, "Admin User", "create", "fund_transactions", "TX-10", nil, models.FundTransaction{ProjectID: "P-2", Amount: 10})

	data, err := LoadProjectLogs(ctx, db, p1)
	if err != nil {
		t.Fatalf("load project logs: %v", err)
	}
	if data.ProjectTitle != p1.Title || data.ProjectStatus != models.ProjectInProgress {
		t.Fatalf("unexpected header %+v", data)
	}
	if len(data.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(data.Rows), data.Rows)
	}
	seen := map[string]bool{}
	for _, row := range data.Rows {
		seen[row.EntityID] = true
		if row.CreatedAt == "" {
			t.Fatalf("expected formatted created_at on %+v", row)
		}
	}
	for _, id := range []string{"P-1", "TX-9", "PE-1"} {
		if !seen[id] {
			t.Fatalf("expected row for %s", id)
		}
	}
	for _, row := range data.Rows {
		if row.EntityID == "PE-1" && row.Actor != "-" {
			t.Fatalf("expected blank actor to render as '-', got %q", row.Actor)
		}
	}
}

func TestProjectLogsQueryHandler(t *testing.T) {
	db := openProjectLogsTestDB(t)
	s, err := store.NewSeeded("")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	r := chi.NewRouter()
	r.Get("/api/projects/{id}/logs", ProjectLogsQueryHandler(s.Projects, db))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects/P-1/logs", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"rows":[]`) {
		t.Fatalf("expected empty rows, got %s", rr.Body.String())
	}

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects/P-404/logs", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
