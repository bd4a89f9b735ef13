// Package registry provides the ordered collection of schedule entries
// that runners and stores operate on.
package registry

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FrancoisGib/cron-dsl/pkg/schedule"
)

// Entry binds a schedule to an identity and a command payload. The command
// is opaque to the engine; only the caller's executor interprets it.
type Entry struct {
	ID       string
	Name     string
	Schedule *schedule.Schedule
	Command  string
}

// Registry is an ordered, append-only collection of schedule entries.
// Lookups are linear scans in insertion order. Safe for concurrent use, so
// a runner can poll while the owner appends.
type Registry struct {
	mu      sync.RWMutex
	entries []*Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Add appends an entry, assigning a fresh ID when it has none, and returns
// the entry.
func (r *Registry) Add(e *Entry) *Entry {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
	return e
}

// AddSchedule appends a new entry for the schedule.
func (r *Registry) AddSchedule(name string, s *schedule.Schedule, command string) *Entry {
	return r.Add(&Entry{Name: name, Schedule: s, Command: command})
}

// DueAt returns every entry whose schedule matches t, in insertion order.
func (r *Registry) DueAt(t time.Time) []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var due []*Entry
	for _, e := range r.entries {
		if e.Schedule.Matches(t) {
			due = append(due, e)
		}
	}
	return due
}

// IsDueAt reports whether any entry's schedule matches t.
func (r *Registry) IsDueAt(t time.Time) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Schedule.Matches(t) {
			return true
		}
	}
	return false
}

// Entries returns a snapshot of all entries in insertion order.
func (r *Registry) Entries() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
