package exports

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sampark/infrastructure/store"
	"sampark/models"
)

type recorderStub struct {
	types []string
	rows  []int
}

func (r *recorderStub) RecordExport(_ context.Context, _ string, exportType string, rows int) error {
	r.types = append(r.types, exportType)
	r.rows = append(r.rows, rows)
	return nil
}

func newRouter(t *testing.T, rec *recorderStub) http.Handler {
	t.Helper()
	st, err := store.NewSeeded("")
	require.NoError(t, err)
	r := chi.NewRouter()
	r.Get("/api/admin/export/{entity}.{format}", AdminExportQueryHandler(NewStoreRegistry(st), rec))
	return r
}

func TestRegistrySlugs(t *testing.T) {
	reg := NewStoreRegistry(store.New())
	assert.Equal(t, []string{
		"agencies", "approvals", "districts", "fund-transactions",
		"photo-evidence", "projects", "states", "tasks",
	}, reg.Slugs())
}

func TestAdminExportCSV(t *testing.T) {
	stub := &recorderStub{}
	rec := httptest.NewRecorder()
	newRouter(t, stub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/export/agencies.csv", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "sampark_agencies_")
	rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, AgencyColumns, rows[0])
	assert.Equal(t, "AG-1", rows[1][0])
	assert.Equal(t, []string{"admin_agencies_csv"}, stub.types)
	assert.Equal(t, []int{6}, stub.rows)
}

func TestAdminExportJSON(t *testing.T) {
	stub := &recorderStub{}
	rec := httptest.NewRecorder()
	newRouter(t, stub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/export/fund-transactions.json", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got []models.FundTransaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 4)
	assert.Equal(t, []string{"admin_fund_transactions_json"}, stub.types)
}

func TestAdminExportErrors(t *testing.T) {
	stub := &recorderStub{}
	h := newRouter(t, stub)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/export/widgets.json", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/export/projects.xml", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, stub.types)
}

type runsStub struct{ runs []models.ExportRun }

func (s runsStub) ExportRuns(context.Context, int) ([]models.ExportRun, error) { return s.runs, nil }

func TestConsolePageListsExportsAndRuns(t *testing.T) {
	reg := NewStoreRegistry(store.New())
	runs := runsStub{runs: []models.ExportRun{{Actor: "Admin <User>", ExportType: "agencies_csv", RowCount: 6}}}

	rec := httptest.NewRecorder()
	ConsolePageQueryHandler(reg, runs, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin-console", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `/api/admin/export/fund-transactions.csv`)
	assert.Contains(t, body, "Admin &lt;User&gt;")
	assert.Contains(t, body, "agencies_csv")
}
