package reports

import (
	"time"

	"sampark/models"
)

type StatusCount struct {
	Name     string `json:"name"`
	Projects int    `json:"projects"`
}

type ComponentBudget struct {
	Name   string `json:"name"`
	Budget int64  `json:"budget"`
}

type StateFunds struct {
	State     string `json:"state"`
	Allocated int64  `json:"allocated"`
	Released  int64  `json:"released"`
	Utilized  int64  `json:"utilized"`
}

type ProgressBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type StateCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Totals are the headline numbers of the report.
type Totals struct {
	TotalProjects int     `json:"total_projects"`
	TotalBudget   int64   `json:"total_budget"`
	TotalReleased int64   `json:"total_released"`
	TotalUtilized int64   `json:"total_utilized"`
	AvgProgress   float64 `json:"avg_progress"`
	OnTimePercent int     `json:"on_time_percent"`
	DelayedCount  int     `json:"delayed_count"`
	TopComponent  string  `json:"top_component,omitempty"`
}

// Summary is every aggregate the reports page charts.
type Summary struct {
	Totals               Totals            `json:"summary"`
	ProjectStatus        []StatusCount     `json:"project_status"`
	BudgetByComponent    []ComponentBudget `json:"budget_by_component"`
	FundUtilization      []StateFunds      `json:"fund_utilization"`
	ProgressDistribution []ProgressBucket  `json:"progress_distribution"`
	StateDistribution    []StateCount      `json:"state_distribution"`
}

// Export is the downloadable dashboard: the summary plus the raw records.
type Export struct {
	Summary
	Projects     []models.Project         `json:"projects"`
	Transactions []models.FundTransaction `json:"transactions"`
	ExportDate   time.Time                `json:"export_date"`
}
