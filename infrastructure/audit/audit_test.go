package audit

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"sampark/infrastructure/sqlite"
)

func openAuditService(t *testing.T) *Service {
	t.Helper()
	db, err := sqlite.OpenDB(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := sqlite.ApplyEmbeddedMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return NewService(db, nil)
}

func TestRecordAndListNewestFirst(t *testing.T) {
	svc := openAuditService(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		svc.Record(ctx, "Admin User", "update", "tasks", fmt.Sprintf("T-%d", i), map[string]string{"status": "To Do"}, map[string]string{"status": "Review"})
	}
	svc.Record(ctx, "Admin User", "approve", "approvals", "A-1", nil, map[string]string{"status": "Approved"})

	rows, err := svc.List(ctx, Filter{EntityType: "tasks"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 task rows, got %d", len(rows))
	}
	if rows[0].EntityID != "T-3" {
		t.Fatalf("expected newest row first, got %s", rows[0].EntityID)
	}
	if rows[0].BeforeJSON != `{"status":"To Do"}` || rows[0].AfterJSON != `{"status":"Review"}` {
		t.Fatalf("unexpected json payloads: %q %q", rows[0].BeforeJSON, rows[0].AfterJSON)
	}

	one, err := svc.List(ctx, Filter{EntityType: "approvals", EntityID: "A-1", Limit: 5})
	if err != nil {
		t.Fatalf("list approvals: %v", err)
	}
	if len(one) != 1 || one[0].BeforeJSON != "" {
		t.Fatalf("expected one approval row with empty before json, got %+v", one)
	}
}

func TestRecordExport(t *testing.T) {
	svc := openAuditService(t)
	ctx := context.Background()

	if err := svc.RecordExport(ctx, "Admin User", "agencies_csv", 6); err != nil {
		t.Fatalf("record export: %v", err)
	}
	runs, err := svc.ExportRuns(ctx, 0)
	if err != nil {
		t.Fatalf("export runs: %v", err)
	}
	if len(runs) != 1 || runs[0].RowCount != 6 || runs[0].ExportType != "agencies_csv" {
		t.Fatalf("unexpected export runs: %+v", runs)
	}

	rows, err := svc.List(ctx, Filter{EntityType: "agencies_csv"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || rows[0].Action != "export" {
		t.Fatalf("expected export audit row, got %+v", rows)
	}
}

func TestNilServiceIsNoop(t *testing.T) {
	var svc *Service
	svc.Record(context.Background(), "x", "create", "tasks", "T-1", nil, nil)
	rows, err := svc.List(context.Background(), Filter{})
	if err != nil || len(rows) != 0 {
		t.Fatalf("expected empty result from nil service, got %v %v", rows, err)
	}
}
