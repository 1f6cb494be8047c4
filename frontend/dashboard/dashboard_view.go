package dashboard

import (
	"fmt"
	"strconv"

	"sampark/frontend/shared/pdfkit"
)

type overviewCard struct {
	Label string
	Value string
	Note  string
}

func overviewCards(s Stats) []overviewCard {
	return []overviewCard{
		{"Total Projects", fmt.Sprint(s.TotalProjects), fmt.Sprintf("%d active", s.ActiveProjects)},
		{"Total Budget", pdfkit.Rupees(s.TotalBudget), fmt.Sprintf("%s released", pdfkit.Rupees(s.FundsReleased))},
		{"Completed", fmt.Sprint(s.CompletedProjects), fmt.Sprintf("%d delayed", s.DelayedProjects)},
		{"Pending Approvals", fmt.Sprint(s.PendingApprovals), fmt.Sprintf("%d tasks to do", s.PendingTasks)},
	}
}

// progressValue is the completed share of c as a <progress> value.
func progressValue(c ComponentStat) string {
	if c.Projects == 0 {
		return "0"
	}
	return strconv.Itoa(c.Completed * 100 / c.Projects)
}
