package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordStoreOperationOutcome(t *testing.T) {
	okBefore := testutil.ToFloat64(StoreOperations.WithLabelValues("tasks", "update", "ok"))
	errBefore := testutil.ToFloat64(StoreOperations.WithLabelValues("tasks", "update", "error"))

	RecordStoreOperation("tasks", "update", nil)
	RecordStoreOperation("tasks", "update", errors.New("boom"))
	RecordStoreOperation("tasks", "update", errors.New("boom"))

	if got := testutil.ToFloat64(StoreOperations.WithLabelValues("tasks", "update", "ok")) - okBefore; got != 1 {
		t.Fatalf("expected 1 ok op, got %v", got)
	}
	if got := testutil.ToFloat64(StoreOperations.WithLabelValues("tasks", "update", "error")) - errBefore; got != 2 {
		t.Fatalf("expected 2 failed ops, got %v", got)
	}
}
