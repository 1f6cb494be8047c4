package exports

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"sampark/frontend/shared/records"
	"sampark/infrastructure/apperrors"
	"sampark/infrastructure/store"
)

// Dataset is one exportable collection.
type Dataset struct {
	Name    string
	Columns []string
	load    func(ctx context.Context) (any, [][]string, error)
}

// NewDataset exposes c with the given CSV columns.
func NewDataset[T store.Entity[T]](c records.Reader[T], columns ...string) Dataset {
	return Dataset{
		Name:    c.Name(),
		Columns: columns,
		load: func(ctx context.Context) (any, [][]string, error) {
			list, err := c.List(ctx, store.ListOptions{})
			if err != nil {
				return nil, nil, err
			}
			rows := make([][]string, 0, len(list))
			for _, rec := range list {
				row := make([]string, len(columns))
				for i, col := range columns {
					row[i], _ = rec.FieldValue(col)
				}
				rows = append(rows, row)
			}
			return list, rows, nil
		},
	}
}

// Registry holds datasets by URL slug.
type Registry map[string]Dataset

func NewRegistry(datasets ...Dataset) Registry {
	reg := make(Registry, len(datasets))
	for _, d := range datasets {
		reg[Slug(d.Name)] = d
	}
	return reg
}

// NewStoreRegistry exposes every collection of st.
func NewStoreRegistry(st *store.Store) Registry {
	return NewRegistry(
		NewDataset(st.Projects, ProjectColumns...),
		NewDataset(st.Agencies, AgencyColumns...),
		NewDataset(st.FundTransactions, FundTransactionColumns...),
		NewDataset(st.Tasks, TaskColumns...),
		NewDataset(st.Approvals, ApprovalColumns...),
		NewDataset(st.States, StateColumns...),
		NewDataset(st.Districts, DistrictColumns...),
		NewDataset(st.PhotoEvidence, PhotoEvidenceColumns...),
	)
}

// Slugs returns the registered slugs in order.
func (reg Registry) Slugs() []string {
	out := make([]string, 0, len(reg))
	for slug := range reg {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

func (reg Registry) lookup(slug string) (Dataset, error) {
	d, ok := reg[slug]
	if !ok {
		return Dataset{}, fmt.Errorf("export %q: %w", slug, apperrors.ErrNotFound)
	}
	return d, nil
}

func writeCSV(w io.Writer, columns []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}
