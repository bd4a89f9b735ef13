package schedule

import (
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrancoisGib/cron-dsl/pkg/field"
)

func TestNextOccurrence_EveryFiveMinutes(t *testing.T) {
	s := MustNew(Definition{Minute: field.Every(5)})
	from := time.Date(2024, 6, 15, 12, 2, 0, 0, time.UTC)

	next, err := s.NextOccurrence(from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 12, 5, 0, 0, time.UTC), next)
}

func TestNextOccurrence_StrictlyAfterFrom(t *testing.T) {
	s := MustNew(Definition{Minute: field.Every(5)})

	// From an exactly matching instant the result is the following slot.
	from := time.Date(2024, 6, 15, 12, 5, 0, 0, time.UTC)
	next, err := s.NextOccurrence(from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 12, 10, 0, 0, time.UTC), next)

	// Seconds within the matching minute also push to the next slot.
	from = time.Date(2024, 6, 15, 12, 5, 30, 0, time.UTC)
	next, err = s.NextOccurrence(from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 12, 10, 0, 0, time.UTC), next)
}

func TestNextOccurrence_SteppedMonthLandsInJune(t *testing.T) {
	// Months 1, 6 and 11; from March the next eligible month is June of
	// the same year, at its first matching instant.
	s := MustNew(Definition{Month: field.Stepped(field.Range(1, 12), 5)})
	from := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	next, err := s.NextOccurrence(from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), next)
}

func TestNextOccurrence_HourAdvanceResetsMinute(t *testing.T) {
	s := MustNew(Definition{Hour: field.Single(14)})
	from := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

	next, err := s.NextOccurrence(from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC), next)
}

func TestNextOccurrence_DayAdvanceResetsTime(t *testing.T) {
	s := MustNew(Definition{DayOfMonth: field.Single(20)})
	from := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

	next, err := s.NextOccurrence(from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), next)
}

func TestNextOccurrence_MinuteOverflowCarriesToHour(t *testing.T) {
	s := MustNew(Definition{Minute: field.Single(5)})
	from := time.Date(2024, 6, 15, 12, 6, 0, 0, time.UTC)

	next, err := s.NextOccurrence(from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 13, 5, 0, 0, time.UTC), next)
}

func TestNextOccurrence_HourOverflowCarriesToNextDay(t *testing.T) {
	s := MustNew(Definition{Hour: field.Single(8), Minute: field.Single(0)})
	from := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

	next, err := s.NextOccurrence(from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 16, 8, 0, 0, 0, time.UTC), next)
}

func TestNextOccurrence_DayThirtyOneSkipsShortMonths(t *testing.T) {
	// April has 30 days; the scan must derive real month lengths and
	// roll over to May 31 rather than invent April 31.
	s := MustNew(Definition{DayOfMonth: field.Single(31)})
	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	next, err := s.NextOccurrence(from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), next)
}

func TestNextOccurrence_LeapDay(t *testing.T) {
	s := MustNew(Definition{
		DayOfMonth: field.Single(29),
		Month:      field.Single(2),
	})
	from := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)

	next, err := s.NextOccurrence(from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), next)
}

func TestNextOccurrence_YearRollover(t *testing.T) {
	s := MustNew(Definition{Month: field.Single(2)})
	from := time.Date(2024, 12, 15, 18, 45, 0, 0, time.UTC)

	next, err := s.NextOccurrence(from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), next)
}

func TestNextOccurrence_WeekdayAndDayOfMonth(t *testing.T) {
	// Friday the 13th: both fields restricted, both must hold.
	s := MustNew(Definition{
		DayOfMonth: field.Single(13),
		DayOfWeek:  field.Single(int(time.Friday)),
	})
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	next, err := s.NextOccurrence(from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 9, 13, 0, 0, 0, 0, time.UTC), next)
}

func TestNextOccurrence_ImpossibleDateHitsHorizon(t *testing.T) {
	// February 31 never exists; the bounded horizon must terminate the
	// search instead of walking the calendar forever.
	s := MustNew(Definition{
		DayOfMonth: field.Single(31),
		Month:      field.Single(2),
	})
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.NextOccurrence(from)
	assert.ErrorIs(t, err, ErrNoOccurrence)
}

func TestNextOccurrence_EmptyListNeverFires(t *testing.T) {
	s := MustNew(Definition{Month: field.List()})
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.NextOccurrence(from)
	assert.ErrorIs(t, err, ErrNoOccurrence)
}

func TestNextOccurrence_RoundTripMatches(t *testing.T) {
	schedules := []*Schedule{
		MustNew(Definition{Minute: field.Every(5)}),
		MustNew(Definition{Minute: field.Single(30), Hour: field.Range(9, 17)}),
		MustNew(Definition{DayOfMonth: field.List(field.Single(1), field.Single(15))}),
		MustNew(Definition{Month: field.Stepped(field.Range(1, 12), 5), DayOfWeek: field.Single(0)}),
	}
	from := time.Date(2024, 6, 15, 12, 2, 17, 0, time.UTC)

	for _, s := range schedules {
		next, err := s.NextOccurrence(from)
		require.NoError(t, err, s.String())
		assert.True(t, next.After(from), s.String())
		assert.True(t, s.Matches(next), "%s should match %s", s, next)
		assert.Zero(t, next.Second(), s.String())
	}
}

func TestNextOccurrence_SkipsSpringForwardGap(t *testing.T) {
	// 2025-03-09 02:30 does not exist in New York: clocks jump from 02:00
	// to 03:00. time.Date would normalize the gap time to 03:30 EDT, which
	// the schedule does not match; the search must carry to the next day.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	s := MustNew(Definition{Hour: field.Single(2), Minute: field.Single(30)})
	from := time.Date(2025, 3, 9, 0, 0, 0, 0, loc)

	next, err := s.NextOccurrence(from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 2, 30, 0, 0, loc), next)
	assert.True(t, s.Matches(next), "%s should match %s", s, next)
}

func TestNextOccurrence_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	s := MustNew(Definition{Minute: field.Single(0)})
	from := time.Date(2024, 6, 15, 12, 30, 0, 0, loc)

	next, err := s.NextOccurrence(from)
	require.NoError(t, err)
	assert.Equal(t, loc, next.Location())
	assert.Equal(t, time.Date(2024, 6, 15, 13, 0, 0, 0, loc), next)
}

// Cross-check against robfig/cron for expressions where the AND semantics
// coincide (at most one of day-of-month and day-of-week restricted).
func TestNextOccurrence_AgreesWithRobfigCron(t *testing.T) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

	cases := []struct {
		def  Definition
		expr string
	}{
		{Definition{Minute: field.Every(5)}, "*/5 * * * *"},
		{Definition{Minute: field.Single(30), Hour: field.Single(8), DayOfWeek: field.Range(1, 5)}, "30 8 * * 1-5"},
		{Definition{Minute: field.Single(0), Hour: field.Single(0), DayOfMonth: field.Single(1), Month: field.Stepped(field.Range(1, 12), 3)}, "0 0 1 1-12/3 *"},
		{Definition{Minute: field.List(field.Single(0), field.Single(15), field.Single(45))}, "0,15,45 * * * *"},
	}

	for _, tc := range cases {
		s := MustNew(tc.def)
		ref, err := parser.Parse(tc.expr)
		require.NoError(t, err, tc.expr)

		at := time.Date(2024, 2, 28, 23, 50, 0, 0, time.UTC)
		for i := 0; i < 20; i++ {
			want := ref.Next(at)
			got, err := s.NextOccurrence(at)
			require.NoError(t, err, tc.expr)
			assert.Equal(t, want, got, "%s from %s", tc.expr, at)
			at = got
		}
	}
}

func TestCronSchedule_AdaptsToRobfigInterface(t *testing.T) {
	s := MustNew(Definition{Minute: field.Single(0)})
	var ref cron.Schedule = s.CronSchedule()

	next := ref.Next(time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 15, 13, 0, 0, 0, time.UTC), next)
}

func TestCronSchedule_ZeroTimeWhenExhausted(t *testing.T) {
	s := MustNew(Definition{DayOfMonth: field.Single(31), Month: field.Single(2)})

	next := s.CronSchedule().Next(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, next.IsZero())
}
