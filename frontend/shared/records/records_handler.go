package records

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	sessioncontext "sampark/frontend/shared/context"
	"sampark/frontend/shared/respond"
	"sampark/infrastructure/apperrors"
	"sampark/infrastructure/store"
	"sampark/models"
)

// Reader is the read side of a collection.
type Reader[T any] interface {
	Name() string
	List(ctx context.Context, opts store.ListOptions) ([]T, error)
	Filter(ctx context.Context, q store.Query) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
}

// Writer adds create and versioned update.
type Writer[T any] interface {
	Reader[T]
	Create(ctx context.Context, rec T) (T, error)
	UpdateVersion(ctx context.Context, id string, expected int64, patch store.Patch[T]) (T, error)
}

// Auditor records changes.
type Auditor interface {
	Record(ctx context.Context, actor, action, entityType, entityID string, before, after any)
}

// ListQueryHandler serves GET /api/{entity}. order_by and limit drive List;
// any other query parameter becomes an equality filter.
func ListQueryHandler[T store.Entity[T]](c Reader[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, q, err := ParseListQuery(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		var out []T
		if len(q) == 0 {
			out, err = c.List(r.Context(), opts)
		} else {
			out, err = c.Filter(r.Context(), q)
			if err == nil {
				out = store.Apply(out, opts)
			}
		}
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// GetQueryHandler serves GET /api/{entity}/{id}.
func GetQueryHandler[T any](c Reader[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := c.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, rec)
	}
}

// CreateCommandHandler serves POST /api/{entity}. validate may be nil.
func CreateCommandHandler[T interface{ RecordMeta() models.Meta }](c Writer[T], validate func(*T) error, auditSvc Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec T
		if err := respond.DecodeJSON(r, &rec); err != nil {
			respond.Error(w, r, err)
			return
		}
		if validate != nil {
			if err := validate(&rec); err != nil {
				respond.Error(w, r, err)
				return
			}
		}

		created, err := c.Create(r.Context(), rec)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		auditSvc.Record(r.Context(), sessioncontext.Actor(r.Context()), "create", c.Name(), created.RecordMeta().ID, nil, created)
		respond.JSON(w, http.StatusCreated, created)
	}
}

// UpdateCommandHandler serves PATCH /api/{entity}/{id} with an optional
// If-Match version. validate may be nil.
func UpdateCommandHandler[T any, P store.Patch[T]](c Writer[T], validate func(P) error, auditSvc Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		expected, err := respond.IfMatch(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		var patch P
		if err := respond.DecodeJSON(r, &patch); err != nil {
			respond.Error(w, r, err)
			return
		}
		if validate != nil {
			if err := validate(patch); err != nil {
				respond.Error(w, r, err)
				return
			}
		}

		before, err := c.Get(r.Context(), id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		updated, err := c.UpdateVersion(r.Context(), id, expected, patch)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		auditSvc.Record(r.Context(), sessioncontext.Actor(r.Context()), "update", c.Name(), id, before, updated)
		respond.JSON(w, http.StatusOK, updated)
	}
}

// ParseListQuery splits the query string into list options and filters.
func ParseListQuery(r *http.Request) (store.ListOptions, store.Query, error) {
	values := r.URL.Query()
	opts := store.ListOptions{OrderBy: strings.TrimSpace(values.Get("order_by"))}
	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return opts, nil, apperrors.Validation("limit must be a non-negative integer")
		}
		opts.Limit = n
	}

	q := store.Query{}
	for key, vals := range values {
		if key == "order_by" || key == "limit" {
			continue
		}
		if len(vals) > 0 {
			q[key] = vals[0]
		}
	}
	return opts, q, nil
}
