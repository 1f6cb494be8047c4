package approvals

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sessioncontext "sampark/frontend/shared/context"
	"sampark/models"
)

type discardAudit struct{}

func (discardAudit) Record(context.Context, string, string, string, string, any, any) {}

func TestDecideCommandHandlerActor(t *testing.T) {
	s := seeded(t)
	r := chi.NewRouter()
	r.Post("/api/approvals/{id}/approve", DecideCommandHandler(s.Approvals, models.ApprovalApproved, discardAudit{}))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/approvals/A-1/approve", nil))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	a, err := s.Approvals.Get(context.Background(), "A-1")
	require.NoError(t, err)
	assert.Empty(t, a.ApprovedBy)
	assert.Equal(t, "system", a.ApprovedByName)

	req := httptest.NewRequest(http.MethodPost, "/api/approvals/A-1/approve", nil)
	req = req.WithContext(sessioncontext.NewContextWithSession(req.Context(), models.Session{
		ID:   "s-1",
		User: models.User{FullName: "Priya Sharma", Email: "priya@sampark.gov.in", Role: "user"},
	}))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	a, err = s.Approvals.Get(context.Background(), "A-1")
	require.NoError(t, err)
	assert.Equal(t, "priya@sampark.gov.in", a.ApprovedBy)
	assert.Equal(t, "Priya Sharma", a.ApprovedByName)
}
