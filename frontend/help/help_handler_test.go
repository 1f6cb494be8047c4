package help

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sessioncontext "sampark/frontend/shared/context"
	"sampark/infrastructure/cache"
	"sampark/infrastructure/rbac"
	"sampark/models"
)

func TestBuildPageDataByRole(t *testing.T) {
	user := BuildPageData(rbac.RoleUser)
	admin := BuildPageData(rbac.RoleAdmin)
	if user.IsAdmin || len(user.FAQs) != len(commonFAQs) {
		t.Fatalf("unexpected user page data: %+v", user)
	}
	if !admin.IsAdmin || len(admin.FAQs) != len(commonFAQs)+len(adminFAQs) {
		t.Fatalf("unexpected admin page data: %+v", admin)
	}
}

func TestHelpPageRendersEscapedFAQs(t *testing.T) {
	r := rbac.New(cache.NewRbacRolesCache())
	r.RegisterNavigation()

	req := httptest.NewRequest(http.MethodGet, "/help", nil)
	req = req.WithContext(sessioncontext.NewContextWithSession(req.Context(), models.Session{
		ID:   "s",
		User: models.User{FullName: "Field Officer", Role: rbac.RoleUser},
	}))
	rec := httptest.NewRecorder()
	HelpPageQueryHandler(r).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Where can I find my pending approvals?") {
		t.Fatalf("missing faq")
	}
	if !strings.Contains(body, "&#34;Approvals&#34;") {
		t.Fatalf("expected quotes to be escaped")
	}
	if strings.Contains(body, "Admin Console") {
		t.Fatalf("user must not see admin content")
	}
	if !strings.Contains(body, "mailto:support@pm-ajay.gov.in") {
		t.Fatalf("missing support link")
	}
}
