package schedule

import (
	"time"

	"github.com/robfig/cron/v3"
)

// CronSchedule adapts the schedule to robfig/cron's Schedule interface so
// it can be mounted into a cron runner. An exhausted search horizon maps
// to the zero time, which that runner treats as "never".
func (s *Schedule) CronSchedule() cron.Schedule {
	return cronAdapter{s: s}
}

type cronAdapter struct {
	s *Schedule
}

func (a cronAdapter) Next(t time.Time) time.Time {
	next, err := a.s.NextOccurrence(t)
	if err != nil {
		return time.Time{}
	}
	return next
}
