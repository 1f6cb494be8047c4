package search

import (
	"context"
	"strings"

	"sampark/infrastructure/rbac"
	"sampark/infrastructure/store"
	"sampark/models"
)

// ProjectLister lists projects.
type ProjectLister interface {
	List(ctx context.Context, opts store.ListOptions) ([]models.Project, error)
}

// Run matches q against the visible pages and every project title or
// location. Page hits come first.
func Run(ctx context.Context, q string, pages []rbac.NavItem, projects ProjectLister) ([]Result, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]Result, 0)
	if q == "" {
		return out, nil
	}

	for _, item := range pages {
		if len(out) == maxPageHits {
			break
		}
		if !strings.Contains(strings.ToLower(item.Title), q) {
			continue
		}
		out = append(out, Result{
			ID:       "page-" + item.Page,
			Type:     ResultPage,
			Title:    item.Title,
			Subtitle: "Open page",
			URL:      item.URL,
		})
	}

	list, err := projects.List(ctx, store.ListOptions{})
	if err != nil {
		return nil, err
	}
	hits := 0
	for _, p := range list {
		if hits == maxProjectHits {
			break
		}
		subtitle := location(p)
		if !strings.Contains(strings.ToLower(p.Title), q) && !strings.Contains(strings.ToLower(subtitle), q) {
			continue
		}
		out = append(out, Result{
			ID:       p.ID,
			Type:     ResultProject,
			Title:    p.Title,
			Subtitle: subtitle,
			URL:      rbac.PageURL("ProjectsList"),
		})
		hits++
	}
	return out, nil
}

func location(p models.Project) string {
	parts := make([]string, 0, 2)
	for _, s := range []string{p.DistrictName, p.StateName} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
