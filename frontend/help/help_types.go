package help

// FAQ is one question on the help page.
type FAQ struct {
	Question string
	Answer   string
}

type PageData struct {
	IsAdmin      bool
	FAQs         []FAQ
	SupportEmail string
}

const supportEmail = "support@pm-ajay.gov.in"

var commonFAQs = []FAQ{
	{"How do I add a new project?", `Open "Projects List" and use "Create New Project".`},
	{"Where can I find my pending approvals?", `Every item awaiting a decision is listed on the "Approvals" page under the "Pending" tab.`},
	{"How do I move a task?", `Drag the card to another column on the "Task Board". Dropping it outside the columns leaves it where it was.`},
	{"How is photo evidence verified?", `Uploads start as Pending in the "Evidence Gallery". A reviewer marks each photo Verified or Flagged with a reason.`},
	{"Can I bulk load agencies?", `Yes. Export the registry as CSV from "Agency Registry", edit it, and import the file again.`},
}

var adminFAQs = []FAQ{
	{"How do I export raw records?", `The "Admin Console" offers JSON and CSV exports of every collection. Each export is logged.`},
}
