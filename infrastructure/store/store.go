package store

import (
	"time"

	"go.uber.org/zap"

	"sampark/models"
)

type (
	Projects         = Collection[models.Project, *models.Project]
	Agencies         = Collection[models.Agency, *models.Agency]
	FundTransactions = Collection[models.FundTransaction, *models.FundTransaction]
	Tasks            = Collection[models.Task, *models.Task]
	Approvals        = Collection[models.Approval, *models.Approval]
	States           = Collection[models.State, *models.State]
	Districts        = Collection[models.District, *models.District]
	Evidence         = Collection[models.PhotoEvidence, *models.PhotoEvidence]
)

// Store owns one collection per entity. It is built once at start-up and
// passed to every consumer.
type Store struct {
	Projects         *Projects
	Agencies         *Agencies
	FundTransactions *FundTransactions
	Tasks            *Tasks
	Approvals        *Approvals
	States           *States
	Districts        *Districts
	PhotoEvidence    *Evidence
}

type options struct {
	now    func() time.Time
	newID  func() string
	logger *zap.Logger
}

// Option customises a Store.
type Option func(*options)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces the uuid suffix generator used by Create.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New returns an empty store.
func New(opts ...Option) *Store {
	o := options{now: time.Now, newID: newUUID, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{
		Projects:         newCollection[models.Project, *models.Project]("projects", "P", o),
		Agencies:         newCollection[models.Agency, *models.Agency]("agencies", "AG", o),
		FundTransactions: newCollection[models.FundTransaction, *models.FundTransaction]("fund_transactions", "TX", o),
		Tasks:            newCollection[models.Task, *models.Task]("tasks", "T", o),
		Approvals:        newCollection[models.Approval, *models.Approval]("approvals", "A", o),
		States:           newCollection[models.State, *models.State]("states", "ST", o),
		Districts:        newCollection[models.District, *models.District]("districts", "D", o),
		PhotoEvidence:    newCollection[models.PhotoEvidence, *models.PhotoEvidence]("photo_evidence", "PE", o),
	}
}

// Counts returns the number of records per collection.
func (s *Store) Counts() map[string]int {
	return map[string]int{
		s.Projects.Name():         s.Projects.Len(),
		s.Agencies.Name():         s.Agencies.Len(),
		s.FundTransactions.Name(): s.FundTransactions.Len(),
		s.Tasks.Name():            s.Tasks.Len(),
		s.Approvals.Name():        s.Approvals.Len(),
		s.States.Name():           s.States.Len(),
		s.Districts.Name():        s.Districts.Len(),
		s.PhotoEvidence.Name():    s.PhotoEvidence.Len(),
	}
}
