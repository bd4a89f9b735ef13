package schedule

import (
	"strings"
	"time"

	"github.com/FrancoisGib/cron-dsl/pkg/field"
)

// Definition specifies the five field constraints of a schedule. A nil
// field defaults to Any. Action is an opaque payload carried alongside the
// schedule; the engine stores it and never inspects it.
type Definition struct {
	Minute     field.Expr
	Hour       field.Expr
	DayOfMonth field.Expr
	Month      field.Expr
	DayOfWeek  field.Expr

	Action any
}

// Schedule is a validated five-field calendar schedule. It is immutable
// once constructed, so distinct goroutines may evaluate it without
// coordination.
type Schedule struct {
	minute     field.Expr
	hour       field.Expr
	dayOfMonth field.Expr
	month      field.Expr
	dayOfWeek  field.Expr
	action     any
}

// New validates the definition and builds a Schedule. Construction is
// all-or-nothing: the first field failing its domain check aborts with
// that error and no schedule is produced.
func New(def Definition) (*Schedule, error) {
	s := &Schedule{
		minute:     orAny(def.Minute),
		hour:       orAny(def.Hour),
		dayOfMonth: orAny(def.DayOfMonth),
		month:      orAny(def.Month),
		dayOfWeek:  orAny(def.DayOfWeek),
		action:     def.Action,
	}

	checks := []struct {
		kind field.Kind
		expr field.Expr
	}{
		{field.Minute, s.minute},
		{field.Hour, s.hour},
		{field.DayOfMonth, s.dayOfMonth},
		{field.Month, s.month},
		{field.DayOfWeek, s.dayOfWeek},
	}
	for _, c := range checks {
		if err := c.kind.Verify(c.expr); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustNew is New, panicking on an invalid definition. Intended for
// schedules written as literals in source.
func MustNew(def Definition) *Schedule {
	s, err := New(def)
	if err != nil {
		panic("crondsl: invalid schedule: " + err.Error())
	}
	return s
}

func orAny(e field.Expr) field.Expr {
	if e == nil {
		return field.Any()
	}
	return e
}

// Action returns the opaque payload attached at construction.
func (s *Schedule) Action() any { return s.action }

// Matches reports whether the timestamp satisfies all five field
// constraints. Day-of-month and day-of-week are both required to hold;
// fields are combined with AND throughout, unlike traditional cron which
// ORs those two when both are restricted.
func (s *Schedule) Matches(t time.Time) bool {
	return s.dayOfWeek.Matches(int(t.Weekday())) &&
		s.dayOfMonth.Matches(t.Day()) &&
		s.hour.Matches(t.Hour()) &&
		s.month.Matches(int(t.Month())) &&
		s.minute.Matches(t.Minute())
}

// String renders the schedule as five-field cron text.
func (s *Schedule) String() string {
	return strings.Join([]string{
		s.minute.String(),
		s.hour.String(),
		s.dayOfMonth.String(),
		s.month.String(),
		s.dayOfWeek.String(),
	}, " ")
}
