package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/FrancoisGib/cron-dsl/pkg/parse"
	"github.com/FrancoisGib/cron-dsl/pkg/registry"
)

// Record is the persisted form of a schedule entry. The expression column
// holds the five-field cron text the schedule re-renders to, so a row is
// readable with any SQL client and round-trips through the parser.
type Record struct {
	ID         string    `gorm:"primaryKey;size:36"`
	Name       string    `gorm:"uniqueIndex;size:255;not null"`
	Expression string    `gorm:"size:255;not null"`
	Command    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// GormStore persists schedule entries using GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the necessary tables.
func (s *GormStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&Record{})
}

// Save upserts the entry, assigning it a fresh ID when it has none.
func (s *GormStore) Save(ctx context.Context, e *registry.Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	rec := Record{
		ID:         e.ID,
		Name:       e.Name,
		Expression: e.Schedule.String(),
		Command:    e.Command,
	}
	return s.db.WithContext(ctx).Save(&rec).Error
}

// Delete removes the entry with the given ID.
func (s *GormStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&Record{}, "id = ?", id).Error
}

// List returns all stored records in creation order.
func (s *GormStore) List(ctx context.Context) ([]Record, error) {
	var records []Record
	err := s.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

// Load reads every stored record, parses its expression and assembles a
// registry in creation order. A record whose expression no longer parses
// aborts the load; stored rows are expected to have passed validation on
// the way in.
func (s *GormStore) Load(ctx context.Context) (*registry.Registry, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	for _, rec := range records {
		sched, err := parse.Parse(rec.Expression)
		if err != nil {
			return nil, fmt.Errorf("crondsl: stored schedule %q: %w", rec.Name, err)
		}
		reg.Add(&registry.Entry{
			ID:       rec.ID,
			Name:     rec.Name,
			Schedule: sched,
			Command:  rec.Command,
		})
	}
	return reg, nil
}
