package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sessioncontext "sampark/frontend/shared/context"
	"sampark/infrastructure/cache"
	"sampark/infrastructure/rbac"
	"sampark/infrastructure/store"
	"sampark/models"
)

func seededSources(t *testing.T) (*store.Store, Sources) {
	t.Helper()
	s, err := store.NewSeeded("")
	require.NoError(t, err)
	return s, Sources{
		Projects:         s.Projects,
		FundTransactions: s.FundTransactions,
		Approvals:        s.Approvals,
		Tasks:            s.Tasks,
	}
}

func TestLoadStatsOnSeed(t *testing.T) {
	s, src := seededSources(t)
	ctx := context.Background()

	stats, err := LoadStats(ctx, src)
	require.NoError(t, err)

	projects, err := s.Projects.List(ctx, store.ListOptions{})
	require.NoError(t, err)
	var budget int64
	active := 0
	for _, p := range projects {
		budget += p.BudgetAllocated
		if p.CurrentStatus == models.ProjectInProgress {
			active++
		}
	}
	assert.Equal(t, len(projects), stats.TotalProjects)
	assert.Equal(t, active, stats.ActiveProjects)
	assert.Equal(t, budget, stats.TotalBudget)
	assert.Equal(t, int64(2500000), stats.FundsReleased)
	assert.Equal(t, 1, stats.PendingApprovals)

	todo, err := s.Tasks.Filter(ctx, store.Query{"status": "To Do"})
	require.NoError(t, err)
	assert.Equal(t, len(todo), stats.PendingTasks)

	require.Len(t, stats.RecentProjects, 6)
	assert.Equal(t, "P-6", stats.RecentProjects[0].ID)
	assert.Len(t, stats.Components, len(models.Components))
}

func TestComputeCountsStatuses(t *testing.T) {
	stats := Compute([]models.Project{
		{CurrentStatus: models.ProjectCompleted, Component: models.ComponentHostel, BudgetAllocated: 10},
		{CurrentStatus: models.ProjectDelayed, Component: models.ComponentHostel, BudgetAllocated: 5},
		{CurrentStatus: models.ProjectInProgress, Component: models.ComponentGIA},
	}, []models.FundTransaction{
		{Status: models.TransactionReleased, Amount: 7},
		{Status: models.TransactionPending, Amount: 100},
	}, 2, 3)

	assert.Equal(t, 3, stats.TotalProjects)
	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, 1, stats.CompletedProjects)
	assert.Equal(t, 1, stats.DelayedProjects)
	assert.Equal(t, int64(15), stats.TotalBudget)
	assert.Equal(t, int64(7), stats.FundsReleased)
	assert.Equal(t, 2, stats.PendingApprovals)
	assert.Equal(t, 3, stats.PendingTasks)
	assert.Len(t, stats.RecentProjects, 3)

	for _, c := range stats.Components {
		if c.Component == models.ComponentHostel {
			assert.Equal(t, 2, c.Projects)
			assert.Equal(t, 1, c.Completed)
		}
	}
}

func TestComputeEmpty(t *testing.T) {
	stats := Compute(nil, nil, 0, 0)
	assert.NotNil(t, stats.RecentProjects)
	assert.Empty(t, stats.RecentProjects)
}

func TestStatsQueryHandler(t *testing.T) {
	_, src := seededSources(t)
	rr := httptest.NewRecorder()
	StatsQueryHandler(src).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var got Stats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 1, got.PendingApprovals)
}

func TestOverviewPageRendersNavigation(t *testing.T) {
	_, src := seededSources(t)
	r := rbac.New(cache.NewRbacRolesCache())
	r.RegisterNavigation()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	session := models.Session{ID: "s", User: models.User{FullName: "Field <Officer>", Role: rbac.RoleUser}}
	req = req.WithContext(sessioncontext.NewContextWithSession(req.Context(), session))

	rr := httptest.NewRecorder()
	OverviewPageQueryHandler(src, r).ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, `href="/agency-registry"`)
	assert.NotContains(t, body, `href="/admin-console"`)
	assert.Contains(t, body, "Field &lt;Officer&gt;")
	assert.Contains(t, body, `<span class="badge">1</span>`)
	assert.Contains(t, body, "Model Village Development")
}
