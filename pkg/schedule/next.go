package schedule

import (
	"errors"
	"time"

	"github.com/jinzhu/now"

	"github.com/FrancoisGib/cron-dsl/pkg/field"
)

// ErrNoOccurrence is returned when no matching timestamp exists within the
// search horizon. Some satisfiable-looking schedules never fire (day 31 of
// a 30-day month, February 30), so the search gives up after a fixed number
// of year rollovers instead of walking the calendar forever.
var ErrNoOccurrence = errors.New("crondsl: no future occurrence within horizon")

// horizonYears caps how many year rollovers NextOccurrence may perform.
const horizonYears = 5

// NextOccurrence returns the first timestamp strictly after from that the
// schedule matches, at minute granularity (seconds zeroed), in from's
// location. The search walks month, day, hour and minute most-significant
// first, carrying overflow upward and resetting lower fields to their
// minima whenever a higher field advances.
func (s *Schedule) NextOccurrence(from time.Time) (time.Time, error) {
	loc := from.Location()
	year, month, day := from.Year(), int(from.Month()), from.Day()
	hour, minute := from.Hour(), from.Minute()
	horizon := year + horizonYears

	for {
		m, ok := s.month.NextValue(month, 12)
		if !ok {
			year++
			if year > horizon {
				return time.Time{}, ErrNoOccurrence
			}
			month = reseedMonth(s.month)
			day, hour, minute = 1, 0, 0
			continue
		}
		if m != month {
			month = m
			day, hour, minute = 1, 0, 0
		}

		d, ok := s.nextDay(year, month, day, loc)
		if !ok {
			month++
			day, hour, minute = 1, 0, 0
			continue
		}
		if d != day {
			day = d
			hour, minute = 0, 0
		}

		h, ok := s.hour.NextValue(hour, 23)
		if !ok {
			day++
			hour, minute = 0, 0
			continue
		}
		if h != hour {
			hour = h
			minute = 0
		}

		mi, ok := s.minute.NextValue(minute, 59)
		if !ok {
			hour++
			minute = 0
			continue
		}
		minute = mi

		candidate := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
		// time.Date normalizes rather than rejects, so a wall time inside
		// a DST spring-forward gap silently shifts. Re-verify every field
		// before returning.
		if candidate.Day() == day && int(candidate.Month()) == month &&
			candidate.Hour() == hour && candidate.Minute() == minute &&
			candidate.After(from) {
			return candidate, nil
		}
		minute++
	}
}

// nextDay scans from day to the true last day of the month for the first
// day accepted by both the day-of-month and day-of-week constraints.
func (s *Schedule) nextDay(year, month, day int, loc *time.Location) (int, bool) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	last := now.With(first).EndOfMonth().Day()
	for d := day; d <= last; d++ {
		wd := int(first.AddDate(0, 0, d-1).Weekday())
		if s.dayOfMonth.Matches(d) && s.dayOfWeek.Matches(wd) {
			return d, true
		}
	}
	return 0, false
}

// reseedMonth picks the month to restart from after a year rollover:
// the schedule's minimum matching month, floored to the calendar's 1.
func reseedMonth(e field.Expr) int {
	m, ok := e.MinValue()
	if !ok || m < 1 {
		return 1
	}
	return m
}
