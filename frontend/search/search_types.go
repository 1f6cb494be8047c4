package search

const (
	ResultPage    = "page"
	ResultProject = "project"

	maxPageHits    = 5
	maxProjectHits = 5
)

// Result is one entry of the global search dropdown.
type Result struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	URL      string `json:"url"`
}
