package models

import "time"

// Component is the scheme component a project is funded under.
type Component string

const (
	ComponentAdarshGram Component = "Adarsh Gram"
	ComponentGIA        Component = "GIA"
	ComponentHostel     Component = "Hostel"
)

var Components = []Component{ComponentAdarshGram, ComponentGIA, ComponentHostel}

type ProjectStatus string

const (
	ProjectPlanning        ProjectStatus = "Planning"
	ProjectApprovalPending ProjectStatus = "Approval Pending"
	ProjectInProgress      ProjectStatus = "In Progress"
	ProjectOnHold          ProjectStatus = "On Hold"
	ProjectCompleted       ProjectStatus = "Completed"
	ProjectDelayed         ProjectStatus = "Delayed"
)

var ProjectStatuses = []ProjectStatus{
	ProjectPlanning, ProjectApprovalPending, ProjectInProgress,
	ProjectOnHold, ProjectCompleted, ProjectDelayed,
}

type AgencyType string

const (
	AgencyImplementing AgencyType = "Implementing"
	AgencyExecuting    AgencyType = "Executing"
)

type AgencyStatus string

const (
	AgencyActive   AgencyStatus = "Active"
	AgencyInactive AgencyStatus = "Inactive"
)

type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "Pending"
	TransactionApproved TransactionStatus = "Approved"
	TransactionReleased TransactionStatus = "Released"
	TransactionRejected TransactionStatus = "Rejected"
	TransactionOnHold   TransactionStatus = "On Hold"
)

var TransactionStatuses = []TransactionStatus{
	TransactionPending, TransactionApproved, TransactionReleased,
	TransactionRejected, TransactionOnHold,
}

// TaskStatus doubles as the kanban column id.
type TaskStatus string

const (
	TaskToDo       TaskStatus = "To Do"
	TaskInProgress TaskStatus = "In Progress"
	TaskReview     TaskStatus = "Review"
	TaskCompleted  TaskStatus = "Completed"
)

var TaskStatuses = []TaskStatus{TaskToDo, TaskInProgress, TaskReview, TaskCompleted}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
	PriorityUrgent TaskPriority = "Urgent"
)

var TaskPriorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "Pending"
	VerificationVerified VerificationStatus = "Verified"
	VerificationFlagged  VerificationStatus = "Flagged"
)

// Valid reports whether s names one of the values in set.
func Valid[S ~string](s S, set ...S) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

type Project struct {
	Meta            `yaml:",inline"`
	Title           string        `json:"title" yaml:"title"`
	Component       Component     `json:"component" yaml:"component"`
	StateName       string        `json:"state_name" yaml:"state_name"`
	DistrictName    string        `json:"district_name" yaml:"district_name"`
	BudgetAllocated int64         `json:"budget_allocated" yaml:"budget_allocated"`
	CurrentStatus   ProjectStatus `json:"current_status" yaml:"current_status"`
	ProgressPercent int           `json:"progress_percent" yaml:"progress_percent"`
	Coordinates     *Coordinates  `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
	AgencyID        string        `json:"agency_id,omitempty" yaml:"agency_id,omitempty"`
	AgencyName      string        `json:"agency_name,omitempty" yaml:"agency_name,omitempty"`
	FundsReleased   int64         `json:"funds_released" yaml:"funds_released"`
	FundsUtilized   int64         `json:"funds_utilized" yaml:"funds_utilized"`
}

func (p Project) FieldValue(name string) (string, bool) {
	switch name {
	case "title":
		return p.Title, true
	case "component":
		return string(p.Component), true
	case "state_name":
		return p.StateName, true
	case "district_name":
		return p.DistrictName, true
	case "budget_allocated":
		return formatInt(p.BudgetAllocated), true
	case "current_status":
		return string(p.CurrentStatus), true
	case "progress_percent":
		return formatInt(int64(p.ProgressPercent)), true
	case "agency_id":
		return p.AgencyID, true
	case "agency_name":
		return p.AgencyName, true
	case "funds_released":
		return formatInt(p.FundsReleased), true
	case "funds_utilized":
		return formatInt(p.FundsUtilized), true
	}
	return p.metaField(name)
}

func (p Project) Clone() Project {
	if p.Coordinates != nil {
		c := *p.Coordinates
		p.Coordinates = &c
	}
	return p
}

func (p *Project) ApplyDefaults(time.Time) {
	if p.CurrentStatus == "" {
		p.CurrentStatus = ProjectPlanning
	}
}

type Agency struct {
	Meta         `yaml:",inline"`
	Name         string       `json:"name" yaml:"name"`
	Type         AgencyType   `json:"type" yaml:"type"`
	StateName    string       `json:"state_name" yaml:"state_name"`
	DistrictName string       `json:"district_name" yaml:"district_name"`
	HeadName     string       `json:"head_name" yaml:"head_name"`
	HeadContact  string       `json:"head_contact" yaml:"head_contact"`
	HeadEmail    string       `json:"head_email" yaml:"head_email"`
	Address      string       `json:"address" yaml:"address"`
	Status       AgencyStatus `json:"status" yaml:"status"`
}

func (a Agency) FieldValue(name string) (string, bool) {
	switch name {
	case "name":
		return a.Name, true
	case "type":
		return string(a.Type), true
	case "state_name":
		return a.StateName, true
	case "district_name":
		return a.DistrictName, true
	case "head_name":
		return a.HeadName, true
	case "head_contact":
		return a.HeadContact, true
	case "head_email":
		return a.HeadEmail, true
	case "address":
		return a.Address, true
	case "status":
		return string(a.Status), true
	}
	return a.metaField(name)
}

func (a Agency) Clone() Agency { return a }

func (a *Agency) ApplyDefaults(time.Time) {
	if a.Status == "" {
		a.Status = AgencyActive
	}
}

type LedgerEntry struct {
	Date        time.Time `json:"date" yaml:"date"`
	Description string    `json:"description" yaml:"description"`
	Amount      int64     `json:"amount" yaml:"amount"`
}

type FundTransaction struct {
	Meta            `yaml:",inline"`
	ProjectID       string            `json:"project_id" yaml:"project_id"`
	ProjectTitle    string            `json:"project_title" yaml:"project_title"`
	ReferenceNo     string            `json:"reference_no" yaml:"reference_no"`
	TransactionType string            `json:"transaction_type" yaml:"transaction_type"`
	Purpose         string            `json:"purpose" yaml:"purpose"`
	Remarks         string            `json:"remarks" yaml:"remarks"`
	Amount          int64             `json:"amount" yaml:"amount"`
	TransactionDate time.Time         `json:"transaction_date" yaml:"transaction_date"`
	FromEntity      string            `json:"from_entity" yaml:"from_entity"`
	ToEntity        string            `json:"to_entity" yaml:"to_entity"`
	Status          TransactionStatus `json:"status" yaml:"status"`
	ApprovedBy      string            `json:"approved_by" yaml:"approved_by"`
	ApprovedByName  string            `json:"approved_by_name" yaml:"approved_by_name"`
	Comments        string            `json:"comments" yaml:"comments"`
	LedgerEntries   []LedgerEntry     `json:"ledger_entries" yaml:"ledger_entries"`
}

func (f FundTransaction) FieldValue(name string) (string, bool) {
	switch name {
	case "project_id":
		return f.ProjectID, true
	case "project_title":
		return f.ProjectTitle, true
	case "reference_no":
		return f.ReferenceNo, true
	case "transaction_type":
		return f.TransactionType, true
	case "purpose":
		return f.Purpose, true
	case "remarks":
		return f.Remarks, true
	case "amount":
		return formatInt(f.Amount), true
	case "transaction_date":
		return formatTime(f.TransactionDate), true
	case "from_entity":
		return f.FromEntity, true
	case "to_entity":
		return f.ToEntity, true
	case "status":
		return string(f.Status), true
	case "approved_by":
		return f.ApprovedBy, true
	case "approved_by_name":
		return f.ApprovedByName, true
	case "comments":
		return f.Comments, true
	}
	return f.metaField(name)
}

func (f FundTransaction) Clone() FundTransaction {
	if f.LedgerEntries != nil {
		entries := make([]LedgerEntry, len(f.LedgerEntries))
		copy(entries, f.LedgerEntries)
		f.LedgerEntries = entries
	}
	return f
}

func (f *FundTransaction) ApplyDefaults(now time.Time) {
	if f.Status == "" {
		f.Status = TransactionReleased
	}
	if f.TransactionDate.IsZero() {
		f.TransactionDate = now
	}
}

type Task struct {
	Meta           `yaml:",inline"`
	Title          string       `json:"title" yaml:"title"`
	ProjectTitle   string       `json:"project_title" yaml:"project_title"`
	Status         TaskStatus   `json:"status" yaml:"status"`
	Priority       TaskPriority `json:"priority" yaml:"priority"`
	DueDate        time.Time    `json:"due_date" yaml:"due_date"`
	AssignedToName string       `json:"assigned_to_name" yaml:"assigned_to_name"`
}

func (t Task) FieldValue(name string) (string, bool) {
	switch name {
	case "title":
		return t.Title, true
	case "project_title":
		return t.ProjectTitle, true
	case "status":
		return string(t.Status), true
	case "priority":
		return string(t.Priority), true
	case "due_date":
		return formatTime(t.DueDate), true
	case "assigned_to_name":
		return t.AssignedToName, true
	}
	return t.metaField(name)
}

func (t Task) Clone() Task { return t }

func (t *Task) ApplyDefaults(time.Time) {
	if t.Status == "" {
		t.Status = TaskToDo
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
}

type Approval struct {
	Meta           `yaml:",inline"`
	ProjectID      string         `json:"project_id" yaml:"project_id"`
	ProjectTitle   string         `json:"project_title" yaml:"project_title"`
	StepName       string         `json:"step_name" yaml:"step_name"`
	SLADeadline    time.Time      `json:"sla_deadline" yaml:"sla_deadline"`
	Status         ApprovalStatus `json:"status" yaml:"status"`
	Timestamp      time.Time      `json:"timestamp" yaml:"timestamp"`
	Comments       string         `json:"comments" yaml:"comments"`
	ApprovedBy     string         `json:"approved_by" yaml:"approved_by"`
	ApprovedByName string         `json:"approved_by_name" yaml:"approved_by_name"`
}

func (a Approval) FieldValue(name string) (string, bool) {
	switch name {
	case "project_id":
		return a.ProjectID, true
	case "project_title":
		return a.ProjectTitle, true
	case "step_name":
		return a.StepName, true
	case "sla_deadline":
		return formatTime(a.SLADeadline), true
	case "status":
		return string(a.Status), true
	case "timestamp":
		return formatTime(a.Timestamp), true
	case "comments":
		return a.Comments, true
	case "approved_by":
		return a.ApprovedBy, true
	case "approved_by_name":
		return a.ApprovedByName, true
	}
	return a.metaField(name)
}

func (a Approval) Clone() Approval { return a }

func (a *Approval) ApplyDefaults(now time.Time) {
	if a.Status == "" {
		a.Status = ApprovalPending
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = now
	}
}

// Overdue reports whether a pending approval has passed its SLA deadline.
// It is informational only.
func (a Approval) Overdue(now time.Time) bool {
	return a.Status == ApprovalPending && !a.SLADeadline.IsZero() && now.After(a.SLADeadline)
}

type State struct {
	Meta `yaml:",inline"`
	Name string `json:"name" yaml:"name"`
}

func (s State) FieldValue(name string) (string, bool) {
	if name == "name" {
		return s.Name, true
	}
	return s.metaField(name)
}

func (s State) Clone() State            { return s }
func (s *State) ApplyDefaults(time.Time) {}

type District struct {
	Meta    `yaml:",inline"`
	StateID string `json:"state_id" yaml:"state_id"`
	Name    string `json:"name" yaml:"name"`
}

func (d District) FieldValue(name string) (string, bool) {
	switch name {
	case "state_id":
		return d.StateID, true
	case "name":
		return d.Name, true
	}
	return d.metaField(name)
}

func (d District) Clone() District            { return d }
func (d *District) ApplyDefaults(time.Time) {}

type PhotoEvidence struct {
	Meta               `yaml:",inline"`
	ProjectID          string             `json:"project_id" yaml:"project_id"`
	ProjectTitle       string             `json:"project_title" yaml:"project_title"`
	UploadedBy         string             `json:"uploaded_by" yaml:"uploaded_by"`
	UploadedByName     string             `json:"uploaded_by_name" yaml:"uploaded_by_name"`
	ImageURL           string             `json:"image_url" yaml:"image_url"`
	ThumbnailURL       string             `json:"thumbnail_url" yaml:"thumbnail_url"`
	GeoLat             *float64           `json:"geo_lat,omitempty" yaml:"geo_lat,omitempty"`
	GeoLng             *float64           `json:"geo_lng,omitempty" yaml:"geo_lng,omitempty"`
	Timestamp          time.Time          `json:"timestamp" yaml:"timestamp"`
	Caption            string             `json:"caption" yaml:"caption"`
	MilestoneReference string             `json:"milestone_reference" yaml:"milestone_reference"`
	VerificationStatus VerificationStatus `json:"verification_status" yaml:"verification_status"`
	VerifiedByName     string             `json:"verified_by_name" yaml:"verified_by_name"`
	FlaggedReason      string             `json:"flagged_reason" yaml:"flagged_reason"`
}

func (e PhotoEvidence) FieldValue(name string) (string, bool) {
	switch name {
	case "project_id":
		return e.ProjectID, true
	case "project_title":
		return e.ProjectTitle, true
	case "uploaded_by":
		return e.UploadedBy, true
	case "uploaded_by_name":
		return e.UploadedByName, true
	case "image_url":
		return e.ImageURL, true
	case "thumbnail_url":
		return e.ThumbnailURL, true
	case "geo_lat":
		if e.GeoLat == nil {
			return "", true
		}
		return formatFloat(*e.GeoLat), true
	case "geo_lng":
		if e.GeoLng == nil {
			return "", true
		}
		return formatFloat(*e.GeoLng), true
	case "timestamp":
		return formatTime(e.Timestamp), true
	case "caption":
		return e.Caption, true
	case "milestone_reference":
		return e.MilestoneReference, true
	case "verification_status":
		return string(e.VerificationStatus), true
	case "verified_by_name":
		return e.VerifiedByName, true
	case "flagged_reason":
		return e.FlaggedReason, true
	}
	return e.metaField(name)
}

func (e PhotoEvidence) Clone() PhotoEvidence {
	if e.GeoLat != nil {
		v := *e.GeoLat
		e.GeoLat = &v
	}
	if e.GeoLng != nil {
		v := *e.GeoLng
		e.GeoLng = &v
	}
	return e
}

func (e *PhotoEvidence) ApplyDefaults(now time.Time) {
	if e.VerificationStatus == "" {
		e.VerificationStatus = VerificationPending
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = now
	}
}
