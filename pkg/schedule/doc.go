// Package schedule bundles five field expressions into a full calendar
// schedule and implements the next-occurrence search.
//
// This package contains:
//   - Definition, the validated-in-one-step schedule configuration
//   - Schedule.Matches, the five-field AND match against a timestamp
//   - Schedule.NextOccurrence, the carry-propagating calendar search
//   - A robfig/cron Schedule adapter for interop with cron runners
//
// Most users should import the root package github.com/FrancoisGib/cron-dsl
// which re-exports these types.
package schedule
