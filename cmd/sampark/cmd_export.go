package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sampark/frontend/agencies"
	"sampark/frontend/reports"
	"sampark/infrastructure/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write exports of the seeded data to stdout",
}

var exportAgenciesCmd = &cobra.Command{
	Use:   "agencies",
	Short: "Agency registry as CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportAgencies(cmd, cmd.OutOrStdout())
	},
}

var exportDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Dashboard summary with projects and transactions as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportDashboard(cmd, cmd.OutOrStdout(), time.Now())
	},
}

func seededStore() (*store.Store, error) {
	path := ""
	if cfg != nil {
		path = cfg.Seed.File
	}
	st, err := store.NewSeeded(path)
	if err != nil {
		return nil, fmt.Errorf("load seed data: %w", err)
	}
	return st, nil
}

func exportAgencies(cmd *cobra.Command, w io.Writer) error {
	st, err := seededStore()
	if err != nil {
		return err
	}
	list, err := st.Agencies.List(cmd.Context(), store.ListOptions{OrderBy: "name"})
	if err != nil {
		return err
	}
	if err := agencies.WriteCSV(w, list); err != nil {
		return fmt.Errorf("write agencies csv: %w", err)
	}
	if logger != nil {
		logger.Debug("exported agencies", zap.Int("rows", len(list)))
	}
	return nil
}

func exportDashboard(cmd *cobra.Command, w io.Writer, now time.Time) error {
	st, err := seededStore()
	if err != nil {
		return err
	}
	projects, txs, err := reports.Load(cmd.Context(), st.Projects, st.FundTransactions)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports.BuildExport(projects, txs, now))
}
