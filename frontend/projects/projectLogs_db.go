package projects

import (
	"context"
	"strings"

	"github.com/uptrace/bun"

	"sampark/infrastructure/sqlite"
	"sampark/models"
)

// LoadProjectLogs returns audit rows about the project itself and about any
// record whose before or after snapshot carries its project_id.
func LoadProjectLogs(ctx context.Context, db *sqlite.DB, project models.Project) (ProjectLogs, error) {
	data := ProjectLogs{
		ProjectID:     project.ID,
		ProjectTitle:  project.Title,
		ProjectStatus: project.CurrentStatus,
		Rows:          make([]ProjectLogRow, 0),
	}
	if db == nil {
		return data, nil
	}

	type row struct {
		CreatedAt  string `bun:"created_at_text"`
		Actor      string `bun:"actor"`
		Action     string `bun:"action"`
		EntityType string `bun:"entity_type"`
		EntityID   string `bun:"entity_id"`
		BeforeJSON string `bun:"before_json"`
		AfterJSON  string `bun:"after_json"`
	}
	rows := make([]row, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`
SELECT
	COALESCE(strftime('%d/%m/%Y %H:%M', al.created_at), '') AS created_at_text,
	al.actor,
	al.action,
	al.entity_type,
	al.entity_id,
	COALESCE(al.before_json, '') AS before_json,
	COALESCE(al.after_json, '') AS after_json
FROM audit_logs al
WHERE
	(al.entity_type = 'projects' AND al.entity_id = ?)
	OR (json_valid(al.before_json) = 1 AND json_extract(al.before_json, '$.project_id') = ?)
	OR (json_valid(al.after_json) = 1 AND json_extract(al.after_json, '$.project_id') = ?)
ORDER BY al.created_at DESC, al.id DESC`,
			project.ID, project.ID, project.ID,
		).Scan(ctx, &rows)
	})
	if err != nil {
		return data, err
	}

	for _, r := range rows {
		data.Rows = append(data.Rows, ProjectLogRow{
			CreatedAt:  strings.TrimSpace(r.CreatedAt),
			Actor:      defaultActor(r.Actor),
			Action:     strings.TrimSpace(r.Action),
			EntityType: strings.TrimSpace(r.EntityType),
			EntityID:   strings.TrimSpace(r.EntityID),
			BeforeJSON: strings.TrimSpace(r.BeforeJSON),
			AfterJSON:  strings.TrimSpace(r.AfterJSON),
		})
	}
	return data, nil
}

func defaultActor(actor string) string {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return "-"
	}
	return actor
}
