package field

import (
	"strconv"
	"strings"
)

// Expr is a constraint over one calendar field (minute, hour, day-of-month,
// month or day-of-week). The field's values are small non-negative ordinals;
// named months and weekdays are converted to ordinals before they reach an
// expression.
//
// The variant set is closed: Any, Single, Range, List and Stepped are the
// only implementations. Adding a variant means implementing every method and
// extending Verify.
type Expr interface {
	// Matches reports whether the ordinal value satisfies the constraint.
	Matches(value int) bool

	// NextValue returns the smallest matching value in [current, max],
	// or false if no value in that span matches.
	NextValue(current, max int) (int, bool)

	// MinValue returns the smallest value the expression can ever match.
	// A List with no items matches nothing and reports false.
	MinValue() (int, bool)

	// String renders the expression in cron field syntax.
	String() string

	isExpr()
}

type anyExpr struct{}

type singleExpr struct {
	value int
}

type rangeExpr struct {
	lo, hi int
}

type listExpr struct {
	items []Expr
}

type steppedExpr struct {
	base Expr
	step int
}

// Any matches every value in the field's domain.
func Any() Expr { return anyExpr{} }

// Single matches exactly one ordinal value.
func Single(value int) Expr { return singleExpr{value: value} }

// Range matches every value in [lo, hi] inclusive. A range whose lower
// bound is not strictly below its upper bound is rejected by Verify.
func Range(lo, hi int) Expr { return rangeExpr{lo: lo, hi: hi} }

// List matches if any of the given expressions matches. A List with no
// items matches nothing.
func List(items ...Expr) Expr { return listExpr{items: items} }

// Stepped matches the values reachable from base in increments of step.
// The base must not itself be stepped; Verify rejects that shape.
func Stepped(base Expr, step int) Expr { return steppedExpr{base: base, step: step} }

// Every matches every step-th value counted from zero. It is shorthand for
// Stepped(Any(), step).
func Every(step int) Expr { return Stepped(Any(), step) }

func (anyExpr) isExpr()     {}
func (singleExpr) isExpr()  {}
func (rangeExpr) isExpr()   {}
func (listExpr) isExpr()    {}
func (steppedExpr) isExpr() {}

func (anyExpr) Matches(int) bool { return true }

func (e singleExpr) Matches(value int) bool { return value == e.value }

func (e rangeExpr) Matches(value int) bool { return e.lo <= value && value <= e.hi }

func (e listExpr) Matches(value int) bool {
	for _, item := range e.items {
		if item.Matches(value) {
			return true
		}
	}
	return false
}

func (e steppedExpr) Matches(value int) bool {
	if e.step <= 0 {
		return false
	}
	switch base := e.base.(type) {
	case anyExpr:
		return value%e.step == 0
	case rangeExpr:
		if value < base.lo || value > base.hi {
			return false
		}
		return (value-base.lo)%e.step == 0
	case singleExpr:
		// The value must both equal the base and be divisible by the
		// step. Historical rule, kept as-is.
		return value == base.value && value%e.step == 0
	case listExpr:
		for _, item := range base.items {
			if (steppedExpr{base: item, step: e.step}).Matches(value) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// scan is the shared NextValue walk: the first value in [current, max] that
// the expression accepts.
func scan(e Expr, current, max int) (int, bool) {
	for v := current; v <= max; v++ {
		if e.Matches(v) {
			return v, true
		}
	}
	return 0, false
}

func (e anyExpr) NextValue(current, max int) (int, bool)     { return scan(e, current, max) }
func (e singleExpr) NextValue(current, max int) (int, bool)  { return scan(e, current, max) }
func (e rangeExpr) NextValue(current, max int) (int, bool)   { return scan(e, current, max) }
func (e listExpr) NextValue(current, max int) (int, bool)    { return scan(e, current, max) }
func (e steppedExpr) NextValue(current, max int) (int, bool) { return scan(e, current, max) }

func (anyExpr) MinValue() (int, bool) { return 0, true }

func (e singleExpr) MinValue() (int, bool) { return e.value, true }

func (e rangeExpr) MinValue() (int, bool) { return e.lo, true }

func (e listExpr) MinValue() (int, bool) {
	min, found := 0, false
	for _, item := range e.items {
		v, ok := item.MinValue()
		if !ok {
			continue
		}
		if !found || v < min {
			min, found = v, true
		}
	}
	return min, found
}

func (e steppedExpr) MinValue() (int, bool) {
	v, ok := e.base.MinValue()
	if !ok || e.step <= 0 {
		return 0, false
	}
	// Floor to the nearest step multiple; used only as a re-seed point
	// after an overflow, so it may undershoot the first true match.
	return v - v%e.step, true
}

func (anyExpr) String() string { return "*" }

func (e singleExpr) String() string { return strconv.Itoa(e.value) }

func (e rangeExpr) String() string {
	return strconv.Itoa(e.lo) + "-" + strconv.Itoa(e.hi)
}

func (e listExpr) String() string {
	parts := make([]string, len(e.items))
	for i, item := range e.items {
		parts[i] = item.String()
	}
	return strings.Join(parts, ",")
}

func (e steppedExpr) String() string {
	return e.base.String() + "/" + strconv.Itoa(e.step)
}
