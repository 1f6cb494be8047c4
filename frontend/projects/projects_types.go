package projects

import "sampark/models"

// ProjectLogs is the change history of one project and its linked records.
type ProjectLogs struct {
	ProjectID     string               `json:"project_id"`
	ProjectTitle  string               `json:"project_title"`
	ProjectStatus models.ProjectStatus `json:"project_status"`
	Rows          []ProjectLogRow      `json:"rows"`
}

type ProjectLogRow struct {
	CreatedAt  string `json:"created_at"`
	Actor      string `json:"actor"`
	Action     string `json:"action"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	BeforeJSON string `json:"before_json,omitempty"`
	AfterJSON  string `json:"after_json,omitempty"`
}
