package dashboard

import (
	"sampark/frontend/shared/records"
	"sampark/models"
)

// Sources are the collections the dashboard reads.
type Sources struct {
	Projects         records.Reader[models.Project]
	FundTransactions records.Reader[models.FundTransaction]
	Approvals        records.Reader[models.Approval]
	Tasks            records.Reader[models.Task]
}

// Stats are the headline dashboard numbers.
type Stats struct {
	TotalProjects     int              `json:"total_projects"`
	ActiveProjects    int              `json:"active_projects"`
	CompletedProjects int              `json:"completed_projects"`
	DelayedProjects   int              `json:"delayed_projects"`
	TotalBudget       int64            `json:"total_budget"`
	FundsReleased     int64            `json:"funds_released"`
	PendingApprovals  int              `json:"pending_approvals"`
	PendingTasks      int              `json:"pending_tasks"`
	RecentProjects    []models.Project `json:"recent_projects"`
	Components        []ComponentStat  `json:"components"`
}

// ComponentStat is the completion share of one scheme component among the
// recent projects.
type ComponentStat struct {
	Component models.Component `json:"component"`
	Projects  int              `json:"projects"`
	Completed int              `json:"completed"`
}
