package records

import (
	"context"

	"go.uber.org/zap"

	"sampark/infrastructure/metrics"
)

// ExportRecorder stores a completed export run.
type ExportRecorder interface {
	RecordExport(ctx context.Context, actor, exportType string, rows int) error
}

// TrackExport counts the export and stores the run. The file has already
// been written, so a storage failure is only logged.
func TrackExport(ctx context.Context, rec ExportRecorder, actor, exportType string, rows int) {
	metrics.RecordExport(exportType)
	if rec == nil {
		return
	}
	if err := rec.RecordExport(context.WithoutCancel(ctx), actor, exportType, rows); err != nil {
		zap.L().Error("record export run failed", zap.String("type", exportType), zap.Error(err))
	}
}
