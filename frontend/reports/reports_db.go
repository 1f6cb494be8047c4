package reports

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"sampark/infrastructure/store"
	"sampark/models"
)

const unknownState = "Unknown"

// Lister is the read access reports need.
type Lister[T any] interface {
	List(ctx context.Context, opts store.ListOptions) ([]T, error)
}

// Load reads projects and transactions concurrently.
func Load(ctx context.Context, projects Lister[models.Project], transactions Lister[models.FundTransaction]) ([]models.Project, []models.FundTransaction, error) {
	var (
		ps  []models.Project
		txs []models.FundTransaction
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if ps, err = projects.List(ctx, store.ListOptions{}); err != nil {
			return fmt.Errorf("load projects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if txs, err = transactions.List(ctx, store.ListOptions{}); err != nil {
			return fmt.Errorf("load fund transactions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return ps, txs, nil
}

// Summarize computes the report aggregates. Grouped series keep the order
// in which each key first appears in projects.
func Summarize(projects []models.Project, transactions []models.FundTransaction) Summary {
	s := Summary{
		ProjectStatus:     make([]StatusCount, 0),
		BudgetByComponent: make([]ComponentBudget, 0),
		FundUtilization:   make([]StateFunds, 0),
		StateDistribution: make([]StateCount, 0),
		ProgressDistribution: []ProgressBucket{
			{Range: "0-25%"}, {Range: "25-50%"}, {Range: "50-75%"}, {Range: "75-100%"},
		},
	}

	statusIdx := map[string]int{}
	componentIdx := map[string]int{}
	stateIdx := map[string]int{}
	progressSum := 0
	delayed := 0

	for _, p := range projects {
		status := string(p.CurrentStatus)
		if i, ok := statusIdx[status]; ok {
			s.ProjectStatus[i].Projects++
		} else {
			statusIdx[status] = len(s.ProjectStatus)
			s.ProjectStatus = append(s.ProjectStatus, StatusCount{Name: status, Projects: 1})
		}

		component := string(p.Component)
		if i, ok := componentIdx[component]; ok {
			s.BudgetByComponent[i].Budget += p.BudgetAllocated
		} else {
			componentIdx[component] = len(s.BudgetByComponent)
			s.BudgetByComponent = append(s.BudgetByComponent, ComponentBudget{Name: component, Budget: p.BudgetAllocated})
		}

		state := p.StateName
		if state == "" {
			state = unknownState
		}
		i, ok := stateIdx[state]
		if !ok {
			i = len(s.FundUtilization)
			stateIdx[state] = i
			s.FundUtilization = append(s.FundUtilization, StateFunds{State: state})
			s.StateDistribution = append(s.StateDistribution, StateCount{Name: state})
		}
		s.FundUtilization[i].Allocated += p.BudgetAllocated
		s.FundUtilization[i].Released += p.FundsReleased
		s.FundUtilization[i].Utilized += p.FundsUtilized
		s.StateDistribution[i].Count++

		s.ProgressDistribution[progressBucket(p.ProgressPercent)].Count++

		s.Totals.TotalBudget += p.BudgetAllocated
		s.Totals.TotalUtilized += p.FundsUtilized
		progressSum += p.ProgressPercent
		if p.CurrentStatus == models.ProjectDelayed {
			delayed++
		}
	}

	for _, t := range transactions {
		if t.Status == models.TransactionReleased {
			s.Totals.TotalReleased += t.Amount
		}
	}

	s.Totals.TotalProjects = len(projects)
	s.Totals.DelayedCount = delayed
	if n := len(projects); n > 0 {
		s.Totals.AvgProgress = float64(progressSum) / float64(n)
		s.Totals.OnTimePercent = int(math.Round(float64(n-delayed) / float64(n) * 100))
	}
	var top int64 = -1
	for _, c := range s.BudgetByComponent {
		if c.Budget > top {
			top = c.Budget
			s.Totals.TopComponent = c.Name
		}
	}
	return s
}

// BuildExport bundles the summary with the raw records.
func BuildExport(projects []models.Project, transactions []models.FundTransaction, now time.Time) Export {
	if projects == nil {
		projects = []models.Project{}
	}
	if transactions == nil {
		transactions = []models.FundTransaction{}
	}
	return Export{
		Summary:      Summarize(projects, transactions),
		Projects:     projects,
		Transactions: transactions,
		ExportDate:   now.UTC(),
	}
}

func progressBucket(p int) int {
	switch {
	case p < 25:
		return 0
	case p < 50:
		return 1
	case p < 75:
		return 2
	default:
		return 3
	}
}
