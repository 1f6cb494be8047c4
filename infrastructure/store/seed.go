package store

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"sampark/models"
)

//go:embed seed.yaml
var embeddedSeed []byte

// SeedData is the document shape of a seed file.
type SeedData struct {
	Projects         []models.Project         `yaml:"projects"`
	Agencies         []models.Agency          `yaml:"agencies"`
	FundTransactions []models.FundTransaction `yaml:"fund_transactions"`
	Tasks            []models.Task            `yaml:"tasks"`
	Approvals        []models.Approval        `yaml:"approvals"`
	States           []models.State           `yaml:"states"`
	Districts        []models.District        `yaml:"districts"`
	PhotoEvidence    []models.PhotoEvidence   `yaml:"photo_evidence"`
}

// LoadSeed renders a seed document relative to now. An empty path selects the
// embedded demo data. Seed files may use {{ daysFromNow N }} for dates.
func LoadSeed(path string, now time.Time) (*SeedData, error) {
	raw := embeddedSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}
	return ParseSeed(raw, now)
}

// ParseSeed renders and decodes a seed document.
func ParseSeed(raw []byte, now time.Time) (*SeedData, error) {
	tmpl, err := template.New("seed").Funcs(template.FuncMap{
		"daysFromNow": func(days int) string {
			return now.AddDate(0, 0, days).UTC().Format(time.RFC3339)
		},
	}).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse seed template: %w", err)
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, nil); err != nil {
		return nil, fmt.Errorf("render seed template: %w", err)
	}

	data := &SeedData{}
	if err := yaml.Unmarshal(rendered.Bytes(), data); err != nil {
		return nil, fmt.Errorf("decode seed yaml: %w", err)
	}
	return data, nil
}

// Seed loads data into the store's collections.
func (s *Store) Seed(data *SeedData) error {
	if data == nil {
		return nil
	}
	steps := []func() error{
		func() error { return s.Projects.Seed(data.Projects...) },
		func() error { return s.Agencies.Seed(data.Agencies...) },
		func() error { return s.FundTransactions.Seed(data.FundTransactions...) },
		func() error { return s.Tasks.Seed(data.Tasks...) },
		func() error { return s.Approvals.Seed(data.Approvals...) },
		func() error { return s.States.Seed(data.States...) },
		func() error { return s.Districts.Seed(data.Districts...) },
		func() error { return s.PhotoEvidence.Seed(data.PhotoEvidence...) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// NewSeeded builds a store and loads the seed at path (embedded when empty).
func NewSeeded(path string, opts ...Option) (*Store, error) {
	s := New(opts...)
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	data, err := LoadSeed(path, o.now())
	if err != nil {
		return nil, err
	}
	if err := s.Seed(data); err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}
	return s, nil
}
