package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FrancoisGib/cron-dsl/pkg/field"
	"github.com/FrancoisGib/cron-dsl/pkg/schedule"
)

// descriptors are the usual shorthand schedules, expanded to five fields.
var descriptors = map[string]string{
	"@yearly":   "0 0 1 1 *",
	"@annually": "0 0 1 1 *",
	"@monthly":  "0 0 1 * *",
	"@weekly":   "0 0 * * 0",
	"@daily":    "0 0 * * *",
	"@midnight": "0 0 * * *",
	"@hourly":   "0 * * * *",
}

// fieldSpec carries the per-field knowledge the parser needs: the inclusive
// value span, the name table, and whether 7 is accepted as an alias for
// Sunday.
type fieldSpec struct {
	kind        field.Kind
	min, max    int
	names       map[string]int
	sundayAlias bool
}

var (
	minuteSpec = fieldSpec{kind: field.Minute, min: 0, max: 59}
	hourSpec   = fieldSpec{kind: field.Hour, min: 0, max: 23}
	domSpec    = fieldSpec{kind: field.DayOfMonth, min: 1, max: 31}
	monthSpec  = fieldSpec{kind: field.Month, min: 1, max: 12, names: monthNames}
	dowSpec    = fieldSpec{kind: field.DayOfWeek, min: 0, max: 6, names: dayNames, sundayAlias: true}
)

// Parse parses a five-field cron expression (or an @descriptor) into a
// validated Schedule.
func Parse(expr string) (*schedule.Schedule, error) {
	def, err := Definition(expr)
	if err != nil {
		return nil, err
	}
	return schedule.New(def)
}

// MustParse is Parse, panicking on error. Intended for expressions written
// as literals in source.
func MustParse(expr string) *schedule.Schedule {
	s, err := Parse(expr)
	if err != nil {
		panic("crondsl: " + err.Error())
	}
	return s
}

// Definition parses the expression into the five field expressions without
// building a Schedule, so the caller can attach an action before
// validation. Out-of-bounds literals are caught later by schedule.New.
func Definition(expr string) (schedule.Definition, error) {
	spec := strings.TrimSpace(expr)
	if strings.HasPrefix(spec, "@") {
		expanded, ok := descriptors[strings.ToLower(spec)]
		if !ok {
			return schedule.Definition{}, fmt.Errorf("crondsl: unknown descriptor %q", spec)
		}
		spec = expanded
	}

	parts := strings.Fields(spec)
	if len(parts) != 5 {
		return schedule.Definition{}, fmt.Errorf("crondsl: expected 5 fields in %q, got %d", expr, len(parts))
	}

	var def schedule.Definition
	var err error
	if def.Minute, err = parseField(parts[0], minuteSpec); err != nil {
		return schedule.Definition{}, err
	}
	if def.Hour, err = parseField(parts[1], hourSpec); err != nil {
		return schedule.Definition{}, err
	}
	if def.DayOfMonth, err = parseField(parts[2], domSpec); err != nil {
		return schedule.Definition{}, err
	}
	if def.Month, err = parseField(parts[3], monthSpec); err != nil {
		return schedule.Definition{}, err
	}
	if def.DayOfWeek, err = parseField(parts[4], dowSpec); err != nil {
		return schedule.Definition{}, err
	}
	return def, nil
}

func parseField(text string, fs fieldSpec) (field.Expr, error) {
	items := strings.Split(text, ",")
	exprs := make([]field.Expr, 0, len(items))
	for _, item := range items {
		e, err := parseItem(item, fs)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	if len(exprs) == 1 {
		return exprs[0], nil
	}
	return field.List(exprs...), nil
}

func parseItem(item string, fs fieldSpec) (field.Expr, error) {
	if item == "" {
		return nil, fmt.Errorf("crondsl: empty %s item", fs.kind)
	}

	base := item
	step := 0
	if i := strings.IndexByte(item, '/'); i >= 0 {
		n, err := strconv.Atoi(item[i+1:])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("crondsl: invalid step in %s item %q", fs.kind, item)
		}
		base, step = item[:i], n
	}

	var e field.Expr
	switch {
	case base == "*" || base == "?":
		e = field.Any()
	case strings.Contains(base, "-"):
		lo, hi, ok := strings.Cut(base, "-")
		loV, err := fs.ordinal(lo)
		if err != nil {
			return nil, err
		}
		hiV, err := fs.ordinal(hi)
		if err != nil || !ok {
			return nil, fmt.Errorf("crondsl: invalid %s range %q", fs.kind, base)
		}
		if fs.sundayAlias && loV == 7 {
			loV = 0
		}
		if fs.sundayAlias && hiV == 7 {
			// A range ending on the Sunday alias wraps around the end of
			// the week: 5-7 is Fri, Sat and Sun.
			switch {
			case loV == 0:
				e = field.Range(0, 6)
			case loV == 6:
				e = field.List(field.Single(6), field.Single(0))
			default:
				e = field.List(field.Range(loV, 6), field.Single(0))
			}
		} else {
			e = field.Range(loV, hiV)
		}
	default:
		v, err := fs.ordinal(base)
		if err != nil {
			return nil, err
		}
		if fs.sundayAlias && v == 7 {
			v = 0
		}
		if step > 0 {
			// "N/step" means N through the end of the domain in
			// strides of step, matching classic cron.
			if v < fs.max {
				e = field.Range(v, fs.max)
			} else {
				e = field.Single(v)
				step = 0
			}
		} else {
			e = field.Single(v)
		}
	}

	if step > 0 {
		e = field.Stepped(e, step)
	}
	return e, nil
}

// ordinal resolves a literal or a name to the field's ordinal encoding.
func (fs fieldSpec) ordinal(text string) (int, error) {
	if fs.names != nil {
		if v, ok := fs.names[strings.ToLower(text)]; ok {
			return v, nil
		}
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("crondsl: invalid %s value %q", fs.kind, text)
	}
	return v, nil
}
