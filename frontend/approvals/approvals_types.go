package approvals

import "sampark/models"

// Decision is the body of an approve or reject command.
type Decision struct {
	Comments string `json:"comments"`
}

// Actor identifies who decided.
type Actor struct {
	ID   string
	Name string
}

// ApprovalRow is an approval as shown in the workflow tabs.
type ApprovalRow struct {
	models.Approval
	Overdue bool `json:"overdue"`
}

// Tabs groups approvals by status.
type Tabs struct {
	Pending  []ApprovalRow `json:"pending"`
	Approved []ApprovalRow `json:"approved"`
	Rejected []ApprovalRow `json:"rejected"`
}
