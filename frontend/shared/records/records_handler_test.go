package records

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"sampark/infrastructure/store"
	"sampark/models"
)

type recordingAuditor struct {
	actions []string
}

func (a *recordingAuditor) Record(_ context.Context, _, action, entityType, entityID string, _, _ any) {
	a.actions = append(a.actions, action+":"+entityType+":"+entityID)
}

func newRouter(t *testing.T) (*chi.Mux, *store.Store, *recordingAuditor) {
	t.Helper()
	s, err := store.NewSeeded("")
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	aud := &recordingAuditor{}
	r := chi.NewRouter()
	r.Get("/api/tasks", ListQueryHandler[models.Task](s.Tasks))
	r.Get("/api/tasks/{id}", GetQueryHandler[models.Task](s.Tasks))
	r.Post("/api/tasks", CreateCommandHandler[models.Task](s.Tasks, nil, aud))
	r.Patch("/api/tasks/{id}", UpdateCommandHandler[models.Task, models.TaskPatch](s.Tasks, nil, aud))
	return r, s, aud
}

func TestListAndFilter(t *testing.T) {
	r, _, _ := newRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/tasks?status=To+Do&order_by=-due_date&limit=2", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var tasks []models.Task
	if err := json.Unmarshal(rr.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tasks) != 2 || tasks[0].ID != "T-9" || tasks[1].ID != "T-8" {
		t.Fatalf("unexpected filtered tasks: %+v", tasks)
	}

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/tasks?colour=red", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown filter field, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/tasks?limit=-1", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative limit, got %d", rr.Code)
	}
}

func TestGetMissing(t *testing.T) {
	r, _, _ := newRouter(t)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/tasks/T-404", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestCreateAndPatchWithVersion(t *testing.T) {
	r, _, aud := newRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{"title":"Inspect site"}`)))
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var created models.Task
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Status != models.TaskToDo || created.Priority != models.PriorityMedium || created.Version != 1 {
		t.Fatalf("unexpected defaults: %+v", created)
	}

	patch := httptest.NewRequest(http.MethodPatch, "/api/tasks/"+created.ID, strings.NewReader(`{"priority":"Urgent"}`))
	patch.Header.Set("If-Match", "1")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, patch)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	stale := httptest.NewRequest(http.MethodPatch, "/api/tasks/"+created.ID, strings.NewReader(`{"priority":"Low"}`))
	stale.Header.Set("If-Match", "1")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, stale)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for stale version, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/api/tasks/"+created.ID, strings.NewReader(`{"owner":"x"}`)))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown patch field, got %d", rr.Code)
	}

	want := []string{"create:tasks:" + created.ID, "update:tasks:" + created.ID}
	if len(aud.actions) != len(want) || aud.actions[0] != want[0] || aud.actions[1] != want[1] {
		t.Fatalf("unexpected audit trail: %v", aud.actions)
	}
}
