// Package storage persists schedule entries with GORM. Entries are stored
// as their rendered cron expression text plus the opaque command payload,
// and parsed back into a registry on load.
package storage
