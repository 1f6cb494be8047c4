package html

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"sampark/frontend/shared/nav"
	"sampark/infrastructure/rbac"
)

func TestLayoutRendersNavigationAndBody(t *testing.T) {
	top := nav.TopNavData{
		FullName:   "Field <Officer>",
		Role:       rbac.RoleUser,
		AgencyName: "Thane ZP",
		Items: []rbac.NavItem{
			{Code: "NAV_APPROVALS", Title: "Approvals", URL: "/approvals"},
			{Code: "NAV_BAD", Title: "Bad", URL: "javascript:alert(1)"},
		},
		PendingApprovals: 2,
	}
	var buf bytes.Buffer
	if err := Layout("Help & Training", top, templ.Raw("<p>body</p>")).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	page := buf.String()

	for _, want := range []string{
		"<!doctype html>",
		"<title>Help &amp; Training | SAMPARK 360</title>",
		`<a href="/approvals">Approvals</a>`,
		`<span class="badge">2</span>`,
		"Field &lt;Officer&gt;",
		"<main><p>body</p></main>",
		"X-CSRF-Token",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected %q in page:\n%s", want, page)
		}
	}
	if strings.Contains(page, "javascript:alert") {
		t.Fatalf("unsafe nav url rendered: %s", page)
	}
}

func TestLayoutWithoutBody(t *testing.T) {
	var buf bytes.Buffer
	if err := Layout("Empty", nav.TopNavData{}, nil).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "<main></main>") {
		t.Fatalf("unexpected page %s", buf.String())
	}
}
