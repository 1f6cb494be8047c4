package models

import "time"

// Patch types carry a partial update: nil fields are left untouched.

type ProjectPatch struct {
	Title           *string        `json:"title,omitempty"`
	Component       *Component     `json:"component,omitempty"`
	StateName       *string        `json:"state_name,omitempty"`
	DistrictName    *string        `json:"district_name,omitempty"`
	BudgetAllocated *int64         `json:"budget_allocated,omitempty"`
	CurrentStatus   *ProjectStatus `json:"current_status,omitempty"`
	ProgressPercent *int           `json:"progress_percent,omitempty"`
	Coordinates     *Coordinates   `json:"coordinates,omitempty"`
	AgencyID        *string        `json:"agency_id,omitempty"`
	AgencyName      *string        `json:"agency_name,omitempty"`
	FundsReleased   *int64         `json:"funds_released,omitempty"`
	FundsUtilized   *int64         `json:"funds_utilized,omitempty"`
}

func (p ProjectPatch) Apply(r *Project) {
	set(&r.Title, p.Title)
	set(&r.Component, p.Component)
	set(&r.StateName, p.StateName)
	set(&r.DistrictName, p.DistrictName)
	set(&r.BudgetAllocated, p.BudgetAllocated)
	set(&r.CurrentStatus, p.CurrentStatus)
	set(&r.ProgressPercent, p.ProgressPercent)
	if p.Coordinates != nil {
		c := *p.Coordinates
		r.Coordinates = &c
	}
	set(&r.AgencyID, p.AgencyID)
	set(&r.AgencyName, p.AgencyName)
	set(&r.FundsReleased, p.FundsReleased)
	set(&r.FundsUtilized, p.FundsUtilized)
}

type AgencyPatch struct {
	Name         *string       `json:"name,omitempty"`
	Type         *AgencyType   `json:"type,omitempty"`
	StateName    *string       `json:"state_name,omitempty"`
	DistrictName *string       `json:"district_name,omitempty"`
	HeadName     *string       `json:"head_name,omitempty"`
	HeadContact  *string       `json:"head_contact,omitempty"`
	HeadEmail    *string       `json:"head_email,omitempty"`
	Address      *string       `json:"address,omitempty"`
	Status       *AgencyStatus `json:"status,omitempty"`
}

func (p AgencyPatch) Apply(r *Agency) {
	set(&r.Name, p.Name)
	set(&r.Type, p.Type)
	set(&r.StateName, p.StateName)
	set(&r.DistrictName, p.DistrictName)
	set(&r.HeadName, p.HeadName)
	set(&r.HeadContact, p.HeadContact)
	set(&r.HeadEmail, p.HeadEmail)
	set(&r.Address, p.Address)
	set(&r.Status, p.Status)
}

type FundTransactionPatch struct {
	ProjectID       *string            `json:"project_id,omitempty"`
	ProjectTitle    *string            `json:"project_title,omitempty"`
	ReferenceNo     *string            `json:"reference_no,omitempty"`
	TransactionType *string            `json:"transaction_type,omitempty"`
	Purpose         *string            `json:"purpose,omitempty"`
	Remarks         *string            `json:"remarks,omitempty"`
	Amount          *int64             `json:"amount,omitempty"`
	TransactionDate *time.Time         `json:"transaction_date,omitempty"`
	FromEntity      *string            `json:"from_entity,omitempty"`
	ToEntity        *string            `json:"to_entity,omitempty"`
	Status          *TransactionStatus `json:"status,omitempty"`
	ApprovedBy      *string            `json:"approved_by,omitempty"`
	ApprovedByName  *string            `json:"approved_by_name,omitempty"`
	Comments        *string            `json:"comments,omitempty"`
	LedgerEntries   []LedgerEntry      `json:"ledger_entries,omitempty"`
}

func (p FundTransactionPatch) Apply(r *FundTransaction) {
	set(&r.ProjectID, p.ProjectID)
	set(&r.ProjectTitle, p.ProjectTitle)
	set(&r.ReferenceNo, p.ReferenceNo)
	set(&r.TransactionType, p.TransactionType)
	set(&r.Purpose, p.Purpose)
	set(&r.Remarks, p.Remarks)
	set(&r.Amount, p.Amount)
	set(&r.TransactionDate, p.TransactionDate)
	set(&r.FromEntity, p.FromEntity)
	set(&r.ToEntity, p.ToEntity)
	set(&r.Status, p.Status)
	set(&r.ApprovedBy, p.ApprovedBy)
	set(&r.ApprovedByName, p.ApprovedByName)
	set(&r.Comments, p.Comments)
	if p.LedgerEntries != nil {
		r.LedgerEntries = append([]LedgerEntry(nil), p.LedgerEntries...)
	}
}

type TaskPatch struct {
	Title          *string       `json:"title,omitempty"`
	ProjectTitle   *string       `json:"project_title,omitempty"`
	Status         *TaskStatus   `json:"status,omitempty"`
	Priority       *TaskPriority `json:"priority,omitempty"`
	DueDate        *time.Time    `json:"due_date,omitempty"`
	AssignedToName *string       `json:"assigned_to_name,omitempty"`
}

func (p TaskPatch) Apply(r *Task) {
	set(&r.Title, p.Title)
	set(&r.ProjectTitle, p.ProjectTitle)
	set(&r.Status, p.Status)
	set(&r.Priority, p.Priority)
	set(&r.DueDate, p.DueDate)
	set(&r.AssignedToName, p.AssignedToName)
}

type ApprovalPatch struct {
	ProjectID      *string         `json:"project_id,omitempty"`
	ProjectTitle   *string         `json:"project_title,omitempty"`
	StepName       *string         `json:"step_name,omitempty"`
	SLADeadline    *time.Time      `json:"sla_deadline,omitempty"`
	Status         *ApprovalStatus `json:"status,omitempty"`
	Timestamp      *time.Time      `json:"timestamp,omitempty"`
	Comments       *string         `json:"comments,omitempty"`
	ApprovedBy     *string         `json:"approved_by,omitempty"`
	ApprovedByName *string         `json:"approved_by_name,omitempty"`
}

func (p ApprovalPatch) Apply(r *Approval) {
	set(&r.ProjectID, p.ProjectID)
	set(&r.ProjectTitle, p.ProjectTitle)
	set(&r.StepName, p.StepName)
	set(&r.SLADeadline, p.SLADeadline)
	set(&r.Status, p.Status)
	set(&r.Timestamp, p.Timestamp)
	set(&r.Comments, p.Comments)
	set(&r.ApprovedBy, p.ApprovedBy)
	set(&r.ApprovedByName, p.ApprovedByName)
}

type PhotoEvidencePatch struct {
	ProjectID          *string             `json:"project_id,omitempty"`
	ProjectTitle       *string             `json:"project_title,omitempty"`
	ImageURL           *string             `json:"image_url,omitempty"`
	ThumbnailURL       *string             `json:"thumbnail_url,omitempty"`
	GeoLat             *float64            `json:"geo_lat,omitempty"`
	GeoLng             *float64            `json:"geo_lng,omitempty"`
	Caption            *string             `json:"caption,omitempty"`
	MilestoneReference *string             `json:"milestone_reference,omitempty"`
	VerificationStatus *VerificationStatus `json:"verification_status,omitempty"`
	VerifiedByName     *string             `json:"verified_by_name,omitempty"`
	FlaggedReason      *string             `json:"flagged_reason,omitempty"`
}

func (p PhotoEvidencePatch) Apply(r *PhotoEvidence) {
	set(&r.ProjectID, p.ProjectID)
	set(&r.ProjectTitle, p.ProjectTitle)
	set(&r.ImageURL, p.ImageURL)
	set(&r.ThumbnailURL, p.ThumbnailURL)
	if p.GeoLat != nil {
		v := *p.GeoLat
		r.GeoLat = &v
	}
	if p.GeoLng != nil {
		v := *p.GeoLng
		r.GeoLng = &v
	}
	set(&r.Caption, p.Caption)
	set(&r.MilestoneReference, p.MilestoneReference)
	set(&r.VerificationStatus, p.VerificationStatus)
	set(&r.VerifiedByName, p.VerifiedByName)
	set(&r.FlaggedReason, p.FlaggedReason)
}

func set[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

// Ptr returns a pointer to v, for building patches inline.
func Ptr[V any](v V) *V { return &v }
