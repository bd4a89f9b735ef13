// Package crondsl evaluates calendar-style scheduling expressions: whether
// a timestamp matches a five-field schedule (minute, hour, day-of-month,
// month, day-of-week) and, if not, the next timestamp that will.
//
// This is the main package users should import. It re-exports the public
// types from the pkg/ packages for a clean API surface.
//
// Basic usage:
//
//	// Build a schedule from expressions or cron text
//	s := crondsl.MustNew(crondsl.Definition{
//	    Minute: crondsl.Every(5),
//	    Hour:   crondsl.Range(9, 17),
//	})
//	s = crondsl.MustParse("*/5 9-17 * * *")
//
//	// Evaluate it
//	s.Matches(time.Now())
//	next, err := s.NextOccurrence(time.Now())
//
//	// Register schedules and run what is due
//	reg := crondsl.NewRegistry()
//	reg.AddSchedule("sync", s, "sync-caches")
//	r := crondsl.NewRunner(reg, func(ctx context.Context, e *crondsl.Entry) error {
//	    return run(ctx, e.Command)
//	})
//	r.Start(ctx)
//
// Fields combine with AND, including day-of-month and day-of-week;
// traditional cron ORs those two when both are restricted.
package crondsl

import (
	"time"

	"gorm.io/gorm"

	"github.com/FrancoisGib/cron-dsl/pkg/field"
	"github.com/FrancoisGib/cron-dsl/pkg/parse"
	"github.com/FrancoisGib/cron-dsl/pkg/registry"
	"github.com/FrancoisGib/cron-dsl/pkg/runner"
	"github.com/FrancoisGib/cron-dsl/pkg/schedule"
	"github.com/FrancoisGib/cron-dsl/pkg/storage"
)

type (
	// Expr is a constraint over one calendar field.
	Expr = field.Expr

	// Kind identifies a calendar field and its ordinal domain.
	Kind = field.Kind

	// Definition holds the five field expressions of a schedule plus an
	// opaque action payload.
	Definition = schedule.Definition

	// Schedule is a validated, immutable five-field schedule.
	Schedule = schedule.Schedule

	// Registry is an ordered collection of schedule entries.
	Registry = registry.Registry

	// Entry binds a schedule to a name and a command payload.
	Entry = registry.Entry

	// GormStore persists schedule entries with GORM.
	GormStore = storage.GormStore

	// Record is the persisted form of a schedule entry.
	Record = storage.Record

	// Runner polls a registry and executes due entries.
	Runner = runner.Runner

	// Executor runs the command payload of a due entry.
	Executor = runner.Executor

	// RunnerOption configures a Runner.
	RunnerOption = runner.Option
)

// Field kinds
const (
	Minute     = field.Minute
	Hour       = field.Hour
	DayOfMonth = field.DayOfMonth
	Month      = field.Month
	DayOfWeek  = field.DayOfWeek
)

// Error variables
var (
	// ErrInvalidFieldValue reports a literal or range outside its
	// field's domain, or a non-increasing range.
	ErrInvalidFieldValue = field.ErrInvalidFieldValue

	// ErrNoOccurrence reports an exhausted search horizon.
	ErrNoOccurrence = schedule.ErrNoOccurrence
)

// Expression constructors

// Any matches every value in the field's domain.
func Any() Expr { return field.Any() }

// Single matches exactly one ordinal value.
func Single(value int) Expr { return field.Single(value) }

// Range matches every value in [lo, hi] inclusive.
func Range(lo, hi int) Expr { return field.Range(lo, hi) }

// List matches if any of the given expressions matches.
func List(items ...Expr) Expr { return field.List(items...) }

// Stepped matches the values reachable from base in increments of step.
func Stepped(base Expr, step int) Expr { return field.Stepped(base, step) }

// Every matches every step-th value counted from zero.
func Every(step int) Expr { return field.Every(step) }

// New validates the definition and builds a Schedule.
func New(def Definition) (*Schedule, error) {
	return schedule.New(def)
}

// MustNew is New, panicking on an invalid definition.
func MustNew(def Definition) *Schedule {
	return schedule.MustNew(def)
}

// Parse parses a five-field cron expression into a validated Schedule.
func Parse(expr string) (*Schedule, error) {
	return parse.Parse(expr)
}

// MustParse is Parse, panicking on error.
func MustParse(expr string) *Schedule {
	return parse.MustParse(expr)
}

// ParseDefinition parses an expression without building the Schedule, so
// an action can be attached before validation.
func ParseDefinition(expr string) (Definition, error) {
	return parse.Definition(expr)
}

// NewRegistry creates an empty schedule registry.
func NewRegistry() *Registry {
	return registry.New()
}

// NewGormStore creates a GORM-backed schedule store.
func NewGormStore(db *gorm.DB) *GormStore {
	return storage.NewGormStore(db)
}

// NewRunner creates a runner over the registry.
func NewRunner(reg *Registry, exec Executor, opts ...RunnerOption) *Runner {
	return runner.New(reg, exec, opts...)
}

// Runner option functions

// PollInterval sets how often the runner polls the registry.
func PollInterval(d time.Duration) RunnerOption {
	return runner.Interval(d)
}
