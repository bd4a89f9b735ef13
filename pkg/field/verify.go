package field

import (
	"errors"
	"fmt"
)

// ErrInvalidFieldValue is returned when a literal or range in an expression
// falls outside its field's domain, or a range is not strictly increasing.
var ErrInvalidFieldValue = errors.New("crondsl: invalid field value")

// Kind identifies which calendar component a field expression constrains.
type Kind int

const (
	Minute Kind = iota
	Hour
	DayOfMonth
	Month
	DayOfWeek
)

// Bounds returns the half-open ordinal domain [min, max) of the field.
// Weekdays follow time.Weekday: 0 is Sunday.
func (k Kind) Bounds() (min, max int) {
	switch k {
	case Minute:
		return 0, 60
	case Hour:
		return 0, 24
	case DayOfMonth:
		return 1, 32
	case Month:
		return 1, 13
	case DayOfWeek:
		return 0, 7
	}
	return 0, 0
}

func (k Kind) String() string {
	switch k {
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case DayOfMonth:
		return "day-of-month"
	case Month:
		return "month"
	case DayOfWeek:
		return "day-of-week"
	}
	return "unknown"
}

// Verify checks the expression against the field's domain.
func (k Kind) Verify(e Expr) error {
	min, max := k.Bounds()
	if err := Verify(e, min, max); err != nil {
		return fmt.Errorf("%s: %w", k, err)
	}
	return nil
}

// Verify recursively checks that every literal ordinal in e lies within
// [min, max) and that every range is strictly increasing. Validation is a
// pass/fail gate: it stops at the first violation.
func Verify(e Expr, min, max int) error {
	switch v := e.(type) {
	case anyExpr:
		return nil
	case singleExpr:
		if v.value < min || v.value >= max {
			return fmt.Errorf("%w: %d outside [%d,%d)", ErrInvalidFieldValue, v.value, min, max)
		}
		return nil
	case rangeExpr:
		if v.lo >= v.hi {
			return fmt.Errorf("%w: range %d-%d is not increasing", ErrInvalidFieldValue, v.lo, v.hi)
		}
		if v.lo < min || v.hi >= max {
			return fmt.Errorf("%w: range %d-%d outside [%d,%d)", ErrInvalidFieldValue, v.lo, v.hi, min, max)
		}
		return nil
	case listExpr:
		for _, item := range v.items {
			if err := Verify(item, min, max); err != nil {
				return err
			}
		}
		return nil
	case steppedExpr:
		if _, nested := v.base.(steppedExpr); nested {
			return fmt.Errorf("%w: step base cannot itself be stepped", ErrInvalidFieldValue)
		}
		if v.step < 1 || v.step >= max {
			return fmt.Errorf("%w: step %d outside [1,%d)", ErrInvalidFieldValue, v.step, max)
		}
		return Verify(v.base, min, max)
	}
	return fmt.Errorf("%w: unknown expression variant %T", ErrInvalidFieldValue, e)
}
