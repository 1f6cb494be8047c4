package dashboard

import (
	"context"
	"fmt"

	"sampark/infrastructure/store"
	"sampark/models"
)

const (
	recentWindow   = 100
	recentProjects = 6
)

// LoadStats computes the dashboard from the newest projects and transactions.
func LoadStats(ctx context.Context, src Sources) (Stats, error) {
	projects, err := src.Projects.List(ctx, store.ListOptions{OrderBy: "-created_date", Limit: recentWindow})
	if err != nil {
		return Stats{}, fmt.Errorf("load projects: %w", err)
	}
	transactions, err := src.FundTransactions.List(ctx, store.ListOptions{OrderBy: "-created_date", Limit: recentWindow})
	if err != nil {
		return Stats{}, fmt.Errorf("load fund transactions: %w", err)
	}
	tasks, err := src.Tasks.Filter(ctx, store.Query{"status": string(models.TaskToDo)})
	if err != nil {
		return Stats{}, fmt.Errorf("load tasks: %w", err)
	}
	approvals, err := src.Approvals.Filter(ctx, store.Query{"status": string(models.ApprovalPending)})
	if err != nil {
		return Stats{}, fmt.Errorf("load approvals: %w", err)
	}
	return Compute(projects, transactions, len(approvals), len(tasks)), nil
}

// Compute derives Stats from already loaded records.
func Compute(projects []models.Project, transactions []models.FundTransaction, pendingApprovals, pendingTasks int) Stats {
	s := Stats{
		TotalProjects:    len(projects),
		PendingApprovals: pendingApprovals,
		PendingTasks:     pendingTasks,
	}
	for _, p := range projects {
		switch p.CurrentStatus {
		case models.ProjectInProgress:
			s.ActiveProjects++
		case models.ProjectCompleted:
			s.CompletedProjects++
		case models.ProjectDelayed:
			s.DelayedProjects++
		}
		s.TotalBudget += p.BudgetAllocated
	}
	for _, t := range transactions {
		if t.Status == models.TransactionReleased {
			s.FundsReleased += t.Amount
		}
	}

	n := min(recentProjects, len(projects))
	s.RecentProjects = append(make([]models.Project, 0, n), projects[:n]...)

	s.Components = make([]ComponentStat, 0, len(models.Components))
	for _, c := range models.Components {
		stat := ComponentStat{Component: c}
		for _, p := range s.RecentProjects {
			if p.Component != c {
				continue
			}
			stat.Projects++
			if p.CurrentStatus == models.ProjectCompleted {
				stat.Completed++
			}
		}
		s.Components = append(s.Components, stat)
	}
	return s
}
