package agencies

import "sampark/models"

// CSVHeader is the column order of the agency export. Import accepts the
// same headers.
var CSVHeader = []string{"Name", "Type", "State", "District", "Head Name", "Contact", "Email", "Status"}

// ImportResult reports what an agency CSV import did.
type ImportResult struct {
	Imported int             `json:"imported"`
	Agencies []models.Agency `json:"agencies"`
	Skipped  []SkippedRow    `json:"skipped"`
}

// SkippedRow is a CSV row that could not be imported. Row is 1-based and
// excludes the header.
type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
