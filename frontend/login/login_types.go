package login

import "sampark/infrastructure/rbac"

// NavigationResponse is the body of GET /api/navigation.
type NavigationResponse struct {
	Items            []rbac.NavItem `json:"items"`
	PendingApprovals int            `json:"pending_approvals"`
}
