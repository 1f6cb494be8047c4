package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sampark/infrastructure/apperrors"
	"sampark/infrastructure/metrics"
	"sampark/models"
)

// Entity is implemented by every stored record type.
type Entity[T any] interface {
	RecordMeta() models.Meta
	FieldValue(name string) (string, bool)
	Clone() T
}

type entityPtr[T any] interface {
	*T
	SetRecordMeta(models.Meta)
	ApplyDefaults(now time.Time)
}

// Patch is a typed partial update for T.
type Patch[T any] interface {
	Apply(*T)
}

// ListOptions controls ordering and truncation of List. The zero value
// returns every record in insertion order.
type ListOptions struct {
	OrderBy string
	Limit   int
}

// Query maps field names to the value they must equal.
type Query map[string]string

// Collection is a mutex-guarded, ordered set of records of one entity type.
// Every record handed out is a deep copy.
type Collection[T Entity[T], PT entityPtr[T]] struct {
	name   string
	prefix string

	mu      sync.RWMutex
	records []T
	index   map[string]int

	now    func() time.Time
	newID  func() string
	logger *zap.Logger
}

func newCollection[T Entity[T], PT entityPtr[T]](name, prefix string, o options) *Collection[T, PT] {
	return &Collection[T, PT]{
		name:   name,
		prefix: prefix,
		index:  make(map[string]int),
		now:    o.now,
		newID:  o.newID,
		logger: o.logger.With(zap.String("collection", name)),
	}
}

// Name is the collection name used in logs, metrics and the audit trail.
func (c *Collection[T, PT]) Name() string { return c.name }

// List returns the current records.
func (c *Collection[T, PT]) List(ctx context.Context, opts ListOptions) (out []T, err error) {
	defer func() { metrics.RecordStoreOperation(c.name, "list", err) }()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	out = c.snapshotLocked()
	c.mu.RUnlock()

	return Apply(out, opts), nil
}

// Apply orders and truncates records in place according to opts. Unknown
// order fields leave the order unchanged.
func Apply[T Entity[T]](records []T, opts ListOptions) []T {
	if field, desc := parseOrderBy(opts.OrderBy); field != "" {
		var zero T
		if _, ok := zero.FieldValue(field); ok {
			sortRecords(records, field, desc)
		}
	}
	if opts.Limit > 0 && len(records) > opts.Limit {
		records = records[:opts.Limit]
	}
	return records
}

// Filter returns the records whose fields equal every value in q.
// Fields outside the entity's allow-list are rejected.
func (c *Collection[T, PT]) Filter(ctx context.Context, q Query) (out []T, err error) {
	defer func() { metrics.RecordStoreOperation(c.name, "filter", err) }()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var zero T
	for field := range q {
		if _, ok := zero.FieldValue(field); !ok {
			return nil, apperrors.Validation("unknown %s filter field %q", c.name, field)
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	out = make([]T, 0)
	for _, rec := range c.records {
		if matches(rec, q) {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}

// Get returns the record with the given id.
func (c *Collection[T, PT]) Get(ctx context.Context, id string) (rec T, err error) {
	defer func() { metrics.RecordStoreOperation(c.name, "get", err) }()
	if err := ctx.Err(); err != nil {
		return rec, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	idx, ok := c.index[id]
	if !ok {
		return rec, fmt.Errorf("%s %q: %w", c.name, id, apperrors.ErrNotFound)
	}
	return c.records[idx].Clone(), nil
}

// Create stores rec under a fresh id with version 1 and type defaults applied.
func (c *Collection[T, PT]) Create(ctx context.Context, rec T) (out T, err error) {
	defer func() { metrics.RecordStoreOperation(c.name, "create", err) }()
	if err := ctx.Err(); err != nil {
		return out, err
	}

	now := c.now()
	stored := rec.Clone()
	meta := stored.RecordMeta()
	meta.Version = 1
	if meta.CreatedDate.IsZero() {
		meta.CreatedDate = now
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for {
		meta.ID = c.prefix + "-" + c.newID()
		if _, taken := c.index[meta.ID]; !taken {
			break
		}
	}
	PT(&stored).SetRecordMeta(meta)
	PT(&stored).ApplyDefaults(now)

	c.index[meta.ID] = len(c.records)
	c.records = append(c.records, stored)
	c.logger.Debug("record created", zap.String("id", meta.ID))
	return stored.Clone(), nil
}

// Update applies patch to the record with the given id and bumps its version.
// A missing id leaves the collection untouched.
func (c *Collection[T, PT]) Update(ctx context.Context, id string, patch Patch[T]) (T, error) {
	return c.UpdateVersion(ctx, id, 0, patch)
}

// UpdateVersion is Update guarded by an expected version. An expected version
// of zero skips the check.
func (c *Collection[T, PT]) UpdateVersion(ctx context.Context, id string, expected int64, patch Patch[T]) (out T, err error) {
	_, out, err = c.modify(ctx, id, func(current T) (Patch[T], error) {
		if meta := current.RecordMeta(); expected > 0 && expected != meta.Version {
			return nil, fmt.Errorf("%s %q at version %d, expected %d: %w", c.name, id, meta.Version, expected, apperrors.ErrConflict)
		}
		return patch, nil
	})
	return out, err
}

// Modify builds a patch from the current record and applies it under one
// lock. An error from build leaves the record untouched. before is the record
// build saw.
func (c *Collection[T, PT]) Modify(ctx context.Context, id string, build func(current T) (Patch[T], error)) (before, after T, err error) {
	return c.modify(ctx, id, build)
}

func (c *Collection[T, PT]) modify(ctx context.Context, id string, build func(current T) (Patch[T], error)) (before, after T, err error) {
	defer func() { metrics.RecordStoreOperation(c.name, "update", err) }()
	if err := ctx.Err(); err != nil {
		return before, after, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	idx, ok := c.index[id]
	if !ok {
		return before, after, fmt.Errorf("%s %q: %w", c.name, id, apperrors.ErrNotFound)
	}

	current := c.records[idx]
	patch, err := build(current.Clone())
	if err != nil {
		return before, after, err
	}

	next := current.Clone()
	if patch != nil {
		patch.Apply(&next)
	}
	meta := current.RecordMeta()
	meta.Version++
	PT(&next).SetRecordMeta(meta)

	c.records[idx] = next
	c.logger.Debug("record updated", zap.String("id", id), zap.Int64("version", meta.Version))
	return current.Clone(), next.Clone(), nil
}

// Seed loads records keeping their ids. Records without a version start at 1
// and records without a creation date are stamped with the current time.
func (c *Collection[T, PT]) Seed(records ...T) error {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, rec := range records {
		stored := rec.Clone()
		meta := stored.RecordMeta()
		if meta.ID == "" {
			return fmt.Errorf("seed %s record %d: %w", c.name, i, apperrors.Validation("id is required"))
		}
		if _, dup := c.index[meta.ID]; dup {
			return fmt.Errorf("seed %s record %q: duplicate id: %w", c.name, meta.ID, apperrors.ErrConflict)
		}
		if meta.Version == 0 {
			meta.Version = 1
		}
		if meta.CreatedDate.IsZero() {
			// Keep seed order visible under -created_date ordering.
			meta.CreatedDate = now.Add(time.Duration(i-len(records)) * time.Second)
		}
		PT(&stored).SetRecordMeta(meta)
		PT(&stored).ApplyDefaults(now)

		c.index[meta.ID] = len(c.records)
		c.records = append(c.records, stored)
	}
	return nil
}

// Len returns the number of stored records.
func (c *Collection[T, PT]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

func (c *Collection[T, PT]) snapshotLocked() []T {
	out := make([]T, len(c.records))
	for i, rec := range c.records {
		out[i] = rec.Clone()
	}
	return out
}

func matches[T Entity[T]](rec T, q Query) bool {
	for field, want := range q {
		got, _ := rec.FieldValue(field)
		if got != want {
			return false
		}
	}
	return true
}

func parseOrderBy(orderBy string) (field string, desc bool) {
	orderBy = strings.TrimSpace(orderBy)
	if strings.HasPrefix(orderBy, "-") {
		return orderBy[1:], true
	}
	return orderBy, false
}

func sortRecords[T Entity[T]](records []T, field string, desc bool) {
	sort.SliceStable(records, func(i, j int) bool {
		a, _ := records[i].FieldValue(field)
		b, _ := records[j].FieldValue(field)
		if desc {
			return less(b, a)
		}
		return less(a, b)
	})
}

// less compares numerically or chronologically when both values parse,
// falling back to plain string order.
func less(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	ta, errA := time.Parse(time.RFC3339Nano, a)
	tb, errB := time.Parse(time.RFC3339Nano, b)
	if errA == nil && errB == nil {
		return ta.Before(tb)
	}
	return a < b
}

func newUUID() string {
	return uuid.NewString()
}
