package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"sampark/infrastructure/sqlite"
	"sampark/models"
)

// Service writes audit records and export runs to the audit database.
type Service struct {
	db     *sqlite.DB
	logger *zap.Logger
}

func NewService(db *sqlite.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, logger: logger}
}

// Write inserts one audit row inside the caller transaction.
func (s *Service) Write(ctx context.Context, tx bun.Tx, actor, action, entityType, entityID string, before, after any) error {
	beforeJSON, err := marshal(before)
	if err != nil {
		return err
	}
	afterJSON, err := marshal(after)
	if err != nil {
		return err
	}
	log := &models.AuditLog{
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		BeforeJSON: beforeJSON,
		AfterJSON:  afterJSON,
		CreatedAt:  time.Now().UTC(),
	}
	_, err = tx.NewInsert().Model(log).Exec(ctx)
	return err
}

// Record writes one audit row in its own transaction. The in-memory records
// have already changed by the time this runs, so failures are logged rather
// than returned.
func (s *Service) Record(ctx context.Context, actor, action, entityType, entityID string, before, after any) {
	if s == nil || s.db == nil {
		return
	}
	err := s.db.WithWriteTx(context.WithoutCancel(ctx), func(ctx context.Context, tx bun.Tx) error {
		return s.Write(ctx, tx, actor, action, entityType, entityID, before, after)
	})
	if err != nil {
		s.logger.Error("audit write failed",
			zap.String("action", action),
			zap.String("entity_type", entityType),
			zap.String("entity_id", entityID),
			zap.Error(err))
	}
}

// RecordExport stores an export run.
func (s *Service) RecordExport(ctx context.Context, actor, exportType string, rows int) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		run := &models.ExportRun{Actor: actor, ExportType: exportType, RowCount: rows, CreatedAt: time.Now().UTC()}
		if _, err := tx.NewInsert().Model(run).Exec(ctx); err != nil {
			return fmt.Errorf("insert export run: %w", err)
		}
		return s.Write(ctx, tx, actor, "export", exportType, "", nil, map[string]int{"rows": rows})
	})
}

// Filter narrows List.
type Filter struct {
	EntityType string
	EntityID   string
	Limit      int
}

// List returns audit rows newest first.
func (s *Service) List(ctx context.Context, f Filter) ([]models.AuditLog, error) {
	rows := make([]models.AuditLog, 0)
	if s == nil || s.db == nil {
		return rows, nil
	}
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	err := s.db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		q := tx.NewSelect().Model(&rows).OrderExpr("al.id DESC").Limit(limit)
		if f.EntityType != "" {
			q = q.Where("al.entity_type = ?", f.EntityType)
		}
		if f.EntityID != "" {
			q = q.Where("al.entity_id = ?", f.EntityID)
		}
		return q.Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	return rows, nil
}

// ExportRuns returns recorded export runs newest first.
func (s *Service) ExportRuns(ctx context.Context, limit int) ([]models.ExportRun, error) {
	runs := make([]models.ExportRun, 0)
	if s == nil || s.db == nil {
		return runs, nil
	}
	if limit <= 0 {
		limit = 50
	}
	err := s.db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&runs).OrderExpr("er.id DESC").Limit(limit).Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list export runs: %w", err)
	}
	return runs, nil
}

func marshal(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
