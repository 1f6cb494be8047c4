package models

import (
	"strconv"
	"time"

	"github.com/uptrace/bun"
)

// Meta is embedded by every stored entity.
type Meta struct {
	ID          string    `json:"id" yaml:"id"`
	Version     int64     `json:"version" yaml:"-"`
	CreatedDate time.Time `json:"created_date" yaml:"created_date"`
}

// RecordMeta returns the identity and bookkeeping fields of a record.
func (m Meta) RecordMeta() Meta { return m }

// SetRecordMeta replaces the identity and bookkeeping fields of a record.
func (m *Meta) SetRecordMeta(v Meta) { *m = v }

func (m Meta) metaField(name string) (string, bool) {
	switch name {
	case "id":
		return m.ID, true
	case "version":
		return strconv.FormatInt(m.Version, 10), true
	case "created_date":
		return formatTime(m.CreatedDate), true
	}
	return "", false
}

// User is the signed-in portal user as exposed by the me() collaborator.
type User struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	AgencyName string `json:"agency_name"`
	StateName  string `json:"state_name"`
}

// Session binds an opaque cookie token to a user.
type Session struct {
	ID        string
	User      User
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired returns true when the session expiry time has passed.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// AuditLog captures immutable change history for key operations.
type AuditLog struct {
	bun.BaseModel `bun:"table:audit_logs,alias:al"`

	ID         int64     `bun:"id,pk,autoincrement" json:"id"`
	Actor      string    `bun:"actor,notnull" json:"actor"`
	Action     string    `bun:"action,notnull" json:"action"`
	EntityType string    `bun:"entity_type,notnull" json:"entity_type"`
	EntityID   string    `bun:"entity_id,notnull" json:"entity_id"`
	BeforeJSON string    `bun:"before_json" json:"before_json,omitempty"`
	AfterJSON  string    `bun:"after_json" json:"after_json,omitempty"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// ExportRun records each CSV/JSON/PDF export handed out.
type ExportRun struct {
	bun.BaseModel `bun:"table:export_runs,alias:er"`

	ID         int64     `bun:"id,pk,autoincrement" json:"id"`
	Actor      string    `bun:"actor,notnull" json:"actor"`
	ExportType string    `bun:"export_type,notnull" json:"export_type"`
	RowCount   int       `bun:"row_count,notnull" json:"row_count"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
