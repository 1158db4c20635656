package filestore

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// File names inside the data directory.
const (
	IncomeFile      = "income.csv"
	ExpensesFile    = "expenses.csv"
	InvestmentsFile = "investments.csv"
	RulesFile       = "automation.json"
	GoalsFile       = "goals.json"
	SettingsFile    = "settings.json"
)

type options struct {
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// Option configures a store.
type Option func(*options)

// WithLogger sets the logger used for diagnostics that are not returned to the caller.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock overrides the time source used for generated timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIDGenerator overrides how new entity ids are produced.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		if newID != nil {
			o.newID = newID
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: slog.Default(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
