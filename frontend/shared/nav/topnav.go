package nav

import (
	"sampark/infrastructure/rbac"
	"sampark/models"
)

// TopNavData is shared with page renderers.
type TopNavData struct {
	FullName         string
	Role             string
	AgencyName       string
	Items            []rbac.NavItem
	PendingApprovals int
}

// Navigator lists the sidebar entries for a role.
type Navigator interface {
	Navigation(role string) []rbac.NavItem
}

func BuildTopNavData(session models.Session, n Navigator, pendingApprovals int) TopNavData {
	data := TopNavData{
		FullName:         session.User.FullName,
		Role:             session.User.Role,
		AgencyName:       session.User.AgencyName,
		PendingApprovals: pendingApprovals,
	}
	if n != nil {
		data.Items = n.Navigation(session.User.Role)
	}
	return data
}
