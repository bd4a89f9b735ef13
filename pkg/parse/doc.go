// Package parse turns five-field cron text into validated schedules.
//
// Supported syntax: *, literals, A-B ranges, comma lists, /step on wildcards,
// ranges and literals, three-letter month and weekday names, and the
// @yearly, @monthly, @weekly, @daily and @hourly descriptors.
package parse
