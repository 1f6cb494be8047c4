package rbac

import (
	"net/http"
	"regexp"
	"strings"
)

// NavItem is one sidebar entry.
type NavItem struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Page  string `json:"page"`
	URL   string `json:"url"`
}

type navEntry struct {
	item  NavItem
	roles []string
}

var navigation = []navEntry{
	{NavItem{Code: "NAV_DASHBOARD", Title: "Dashboard", Page: "Dashboard"}, Roles},
	{NavItem{Code: "NAV_AGENCY_REGISTRY", Title: "Agency Registry", Page: "AgencyRegistry"}, Roles},
	{NavItem{Code: "NAV_PROJECTS_MAP", Title: "Projects Map", Page: "ProjectsMap"}, Roles},
	{NavItem{Code: "NAV_PROJECTS_LIST", Title: "Projects List", Page: "ProjectsList"}, Roles},
	{NavItem{Code: "NAV_FUND_FLOW", Title: "Fund Flow", Page: "FundFlow"}, Roles},
	{NavItem{Code: "NAV_APPROVALS", Title: "Approvals", Page: "Approvals"}, Roles},
	{NavItem{Code: "NAV_TASK_BOARD", Title: "Task Board", Page: "TaskBoard"}, Roles},
	{NavItem{Code: "NAV_EVIDENCE_GALLERY", Title: "Evidence Gallery", Page: "EvidenceGallery"}, Roles},
	{NavItem{Code: "NAV_COMMUNICATIONS", Title: "Communications", Page: "Communications"}, Roles},
	{NavItem{Code: "NAV_REPORTS", Title: "Reports", Page: "Reports"}, Roles},
	{NavItem{Code: "NAV_HELP", Title: "Help", Page: "Help"}, Roles},
	{NavItem{Code: "NAV_ADMIN_CONSOLE", Title: "Admin Console", Page: "AdminConsole"}, []string{RoleAdmin}},
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// PageURL turns a PascalCase or camelCase page name into a kebab-case path.
func PageURL(name string) string {
	if name == "" {
		return "/"
	}
	return "/" + strings.ToLower(camelBoundary.ReplaceAllString(name, "$1-$2"))
}

// RegisterNavigation records every sidebar entry as a resource of the roles
// allowed to see it.
func (r *Rbac) RegisterNavigation() {
	for _, e := range navigation {
		for _, role := range e.roles {
			r.Add(role, e.item.Code, http.MethodGet, PageURL(e.item.Page))
		}
	}
}

// Navigation returns the sidebar entries visible to role, in display order.
func (r *Rbac) Navigation(role string) []NavItem {
	out := make([]NavItem, 0, len(navigation))
	if r == nil || r.cache == nil {
		return out
	}
	for _, e := range navigation {
		if !r.cache.Allowed([]string{role}, e.item.Code) {
			continue
		}
		item := e.item
		item.URL = PageURL(item.Page)
		out = append(out, item)
	}
	return out
}
