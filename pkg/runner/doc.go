// Package runner polls a registry on an interval and dispatches due
// entries to a caller-supplied executor.
package runner
