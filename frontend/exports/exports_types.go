package exports

import "strings"

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

var (
	ProjectColumns = []string{"id", "title", "component", "state_name", "district_name", "budget_allocated",
		"current_status", "progress_percent", "agency_id", "agency_name", "funds_released", "funds_utilized", "created_date"}
	AgencyColumns = []string{"id", "name", "type", "state_name", "district_name", "head_name", "head_contact",
		"head_email", "address", "status", "created_date"}
	FundTransactionColumns = []string{"id", "project_id", "project_title", "reference_no", "transaction_type", "purpose",
		"amount", "transaction_date", "from_entity", "to_entity", "status", "approved_by_name", "remarks", "created_date"}
	TaskColumns = []string{"id", "title", "project_title", "status", "priority", "due_date", "assigned_to_name", "created_date"}
	ApprovalColumns = []string{"id", "project_id", "project_title", "step_name", "sla_deadline", "status", "timestamp",
		"approved_by_name", "comments", "created_date"}
	StateColumns         = []string{"id", "name"}
	DistrictColumns      = []string{"id", "state_id", "name"}
	PhotoEvidenceColumns = []string{"id", "project_id", "project_title", "uploaded_by_name", "image_url", "geo_lat", "geo_lng",
		"timestamp", "caption", "milestone_reference", "verification_status", "verified_by_name", "flagged_reason"}
)

// Slug is the URL form of a collection name: fund_transactions becomes
// fund-transactions.
func Slug(collection string) string {
	return strings.ReplaceAll(collection, "_", "-")
}

func exportURL(slug, format string) string {
	return "/api/admin/export/" + slug + "." + format
}
