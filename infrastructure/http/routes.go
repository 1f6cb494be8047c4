package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"sampark/frontend/activity"
	"sampark/frontend/agencies"
	"sampark/frontend/approvals"
	"sampark/frontend/dashboard"
	"sampark/frontend/evidence"
	"sampark/frontend/exports"
	frontendfiles "sampark/frontend/files"
	"sampark/frontend/funds"
	"sampark/frontend/help"
	"sampark/frontend/login"
	"sampark/frontend/projects"
	"sampark/frontend/reports"
	"sampark/frontend/search"
	"sampark/frontend/shared/records"
	"sampark/frontend/tasks"
	"sampark/infrastructure/rbac"
	"sampark/infrastructure/store"
	"sampark/models"
)

func (s *Server) maxUploadBytes() int64 {
	return s.cfg.MaxUploadMB << 20
}

func (s *Server) dashboardSources() dashboard.Sources {
	return dashboard.Sources{
		Projects:         s.Store.Projects,
		FundTransactions: s.Store.FundTransactions,
		Approvals:        s.Store.Approvals,
		Tasks:            s.Store.Tasks,
	}
}

// RegisterPageRoutes registers the server-rendered pages.
func (s *Server) RegisterPageRoutes(r chi.Router) {
	s.Rbac.RegisterNavigation()
	s.Rbac.AddAll("OVERVIEW_VIEW", http.MethodGet, "/")
	r.Get("/", dashboard.OverviewPageQueryHandler(s.dashboardSources(), s.Rbac))
	r.Get("/help", help.HelpPageQueryHandler(s.Rbac))
	r.Get("/admin-console", exports.ConsolePageQueryHandler(exports.NewStoreRegistry(s.Store), s.Audit, s.Rbac))
}

// RegisterAccountRoutes registers identity, navigation, search and the
// activity feed.
func (s *Server) RegisterAccountRoutes(r chi.Router) {
	s.Rbac.AddAll("ME_VIEW", http.MethodGet, "/api/me")
	r.Get("/me", login.MeQueryHandler())
	s.Rbac.AddAll("LOGOUT", http.MethodPost, "/api/logout")
	r.Post("/logout", login.LogoutCommandHandler(s.Sessions, s.cfg.SecureCookies))
	s.Rbac.AddAll("NAVIGATION_VIEW", http.MethodGet, "/api/navigation")
	r.Get("/navigation", login.NavigationQueryHandler(s.Rbac, s.Store.Approvals))
	s.Rbac.AddAll("SEARCH", http.MethodGet, "/api/search")
	r.Get("/search", search.SearchQueryHandler(s.Rbac, s.Store.Projects))
	s.Rbac.AddAll("ACTIVITY_VIEW", http.MethodGet, "/api/activity")
	r.Get("/activity", activity.ActivityQueryHandler(s.Audit))
}

// RegisterRecordRoutes registers list, get, create and update for every
// entity, and list and get for the reference data.
func (s *Server) RegisterRecordRoutes(r chi.Router) {
	registerRecords[models.Project, models.ProjectPatch](s, r, "projects", s.Store.Projects, projects.Validate, projects.ValidatePatch)
	registerRecords[models.Agency, models.AgencyPatch](s, r, "agencies", s.Store.Agencies, agencies.Validate, agencies.ValidatePatch)
	registerRecords[models.FundTransaction, models.FundTransactionPatch](s, r, "fund-transactions", s.Store.FundTransactions, funds.Validate, funds.ValidatePatch)
	registerRecords[models.Task, models.TaskPatch](s, r, "tasks", s.Store.Tasks, tasks.Validate, tasks.ValidatePatch)
	registerRecords[models.Approval, models.ApprovalPatch](s, r, "approvals", s.Store.Approvals, approvals.Validate, approvals.ValidatePatch)
	registerRecords[models.PhotoEvidence, models.PhotoEvidencePatch](s, r, "photo-evidence", s.Store.PhotoEvidence, evidence.Validate, evidence.ValidatePatch)
	registerReference[models.State](s, r, "states", s.Store.States)
	registerReference[models.District](s, r, "districts", s.Store.Districts)

	s.Rbac.AddAll("PROJECTS_LOGS_VIEW", http.MethodGet, "/api/projects/*/logs")
	r.Get("/projects/{id}/logs", projects.ProjectLogsQueryHandler(s.Store.Projects, s.DB))
}

func registerRecords[T store.Entity[T], P store.Patch[T]](s *Server, r chi.Router, slug string, c records.Writer[T], validate func(*T) error, validatePatch func(P) error) {
	registerReference[T](s, r, slug, c)
	code := rbacCode(slug)
	s.Rbac.AddAll(code+"_CREATE", http.MethodPost, "/api/"+slug)
	r.Post("/"+slug, records.CreateCommandHandler[T](c, validate, s.Audit))
	s.Rbac.AddAll(code+"_UPDATE", http.MethodPatch, "/api/"+slug+"/*")
	r.Patch("/"+slug+"/{id}", records.UpdateCommandHandler[T, P](c, validatePatch, s.Audit))
}

func registerReference[T store.Entity[T]](s *Server, r chi.Router, slug string, c records.Reader[T]) {
	code := rbacCode(slug)
	s.Rbac.AddAll(code+"_LIST", http.MethodGet, "/api/"+slug)
	r.Get("/"+slug, records.ListQueryHandler[T](c))
	s.Rbac.AddAll(code+"_VIEW", http.MethodGet, "/api/"+slug+"/*")
	r.Get("/"+slug+"/{id}", records.GetQueryHandler[T](c))
}

// RegisterWorkflowRoutes registers approvals, the task board and evidence
// verification.
func (s *Server) RegisterWorkflowRoutes(r chi.Router) {
	s.Rbac.AddAll("APPROVALS_TABS_VIEW", http.MethodGet, "/api/approvals/tabs")
	r.Get("/approvals/tabs", approvals.TabsQueryHandler(s.Store.Approvals))
	s.Rbac.AddAll("APPROVALS_APPROVE", http.MethodPost, "/api/approvals/*/approve")
	r.Post("/approvals/{id}/approve", approvals.DecideCommandHandler(s.Store.Approvals, models.ApprovalApproved, s.Audit))
	s.Rbac.AddAll("APPROVALS_REJECT", http.MethodPost, "/api/approvals/*/reject")
	r.Post("/approvals/{id}/reject", approvals.DecideCommandHandler(s.Store.Approvals, models.ApprovalRejected, s.Audit))

	s.Rbac.AddAll("TASKS_BOARD_VIEW", http.MethodGet, "/api/tasks/board")
	r.Get("/tasks/board", tasks.BoardQueryHandler(s.Store.Tasks))
	s.Rbac.AddAll("TASKS_MOVE", http.MethodPost, "/api/tasks/*/move")
	r.Post("/tasks/{id}/move", tasks.MoveCommandHandler(s.Store.Tasks, s.Audit))

	evidenceName := s.Store.PhotoEvidence.Name()
	s.Rbac.AddAll("EVIDENCE_GALLERY_VIEW", http.MethodGet, "/api/photo-evidence/gallery")
	r.Get("/photo-evidence/gallery", evidence.GalleryQueryHandler(s.Store.PhotoEvidence))
	s.Rbac.AddAll("EVIDENCE_UPLOAD", http.MethodPost, "/api/photo-evidence/upload")
	r.Post("/photo-evidence/upload", evidence.UploadCommandHandler(s.Store.PhotoEvidence, s.Store.Projects, s.Blobs, s.maxUploadBytes(), s.Audit))
	s.Rbac.AddAll("EVIDENCE_VERIFY", http.MethodPost, "/api/photo-evidence/*/verify")
	r.Post("/photo-evidence/{id}/verify", evidence.VerifyCommandHandler(s.Store.PhotoEvidence, evidenceName, s.Audit))
	s.Rbac.AddAll("EVIDENCE_FLAG", http.MethodPost, "/api/photo-evidence/*/flag")
	r.Post("/photo-evidence/{id}/flag", evidence.FlagCommandHandler(s.Store.PhotoEvidence, evidenceName, s.Audit))
}

// RegisterFileRoutes registers the upload and extraction collaborators and
// the agency CSV round trip.
func (s *Server) RegisterFileRoutes(r chi.Router) {
	s.Rbac.AddAll("FILES_UPLOAD", http.MethodPost, "/api/files")
	r.Post("/files", frontendfiles.UploadCommandHandler(s.Blobs, s.maxUploadBytes()))
	s.Rbac.AddAll("FILES_EXTRACT", http.MethodPost, "/api/files/extract")
	r.Post("/files/extract", frontendfiles.ExtractCommandHandler(s.Blobs))
	s.Rbac.AddAll("FILES_VIEW", http.MethodGet, "/api/files/*")
	r.Get("/files/{key}", frontendfiles.ServeQueryHandler(s.Blobs))

	s.Rbac.AddAll("AGENCIES_EXPORT", http.MethodGet, "/api/agencies/export.csv")
	r.Get("/agencies/export.csv", agencies.ExportCSVQueryHandler(s.Store.Agencies, s.Audit))
	s.Rbac.AddAll("AGENCIES_IMPORT", http.MethodPost, "/api/agencies/import")
	r.Post("/agencies/import", agencies.ImportCommandHandler(s.Store.Agencies, s.Blobs, s.maxUploadBytes(), s.Audit))
}

// RegisterReportRoutes registers dashboard, reports and printable slips.
func (s *Server) RegisterReportRoutes(r chi.Router) {
	src := reports.Sources{Projects: s.Store.Projects, FundTransactions: s.Store.FundTransactions}

	s.Rbac.AddAll("DASHBOARD_VIEW", http.MethodGet, "/api/dashboard")
	r.Get("/dashboard", dashboard.StatsQueryHandler(s.dashboardSources()))
	s.Rbac.AddAll("REPORTS_SUMMARY_VIEW", http.MethodGet, "/api/reports/summary")
	r.Get("/reports/summary", reports.SummaryQueryHandler(src))
	s.Rbac.AddAll("REPORTS_EXPORT_JSON", http.MethodGet, "/api/reports/export.json")
	r.Get("/reports/export.json", reports.ExportJSONQueryHandler(src, s.Audit))
	s.Rbac.AddAll("REPORTS_PROJECTS_PDF", http.MethodGet, "/api/reports/projects.pdf")
	r.Get("/reports/projects.pdf", reports.ProjectsPDFQueryHandler(src, s.Audit))
	s.Rbac.AddAll("FUND_SLIP_PDF", http.MethodGet, "/api/fund-transactions/*/slip.pdf")
	r.Get("/fund-transactions/{id}/slip.pdf", funds.SlipPDFQueryHandler(s.Store.FundTransactions, s.Audit))
}

// RegisterAdminRoutes registers admin-only routes.
func (s *Server) RegisterAdminRoutes(r chi.Router) {
	s.Rbac.Add(rbac.RoleAdmin, "ADMIN_EXPORT", http.MethodGet, "/api/admin/export/*")
	r.Get("/admin/export/{entity}.{format}", exports.AdminExportQueryHandler(exports.NewStoreRegistry(s.Store), s.Audit))
	s.Rbac.Add(rbac.RoleAdmin, "ADMIN_EXPORT_RUNS_VIEW", http.MethodGet, "/api/admin/export-runs")
	r.Get("/admin/export-runs", exports.ExportRunsQueryHandler(s.Audit))
}

func rbacCode(slug string) string {
	return strings.ToUpper(strings.ReplaceAll(slug, "-", "_"))
}
