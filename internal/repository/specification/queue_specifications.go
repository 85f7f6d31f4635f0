package specification

import (
	"time"

	"gorm.io/gorm"
)

type RegisterTimeFrom struct {
	From time.Time
}

func (s RegisterTimeFrom) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("queue_entries.register_time >= ?", s.From)
}

type RegisterTimeTo struct {
	To time.Time
}

func (s RegisterTimeTo) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("queue_entries.register_time <= ?", s.To)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("queue_entries.status = ?", s.Status)
}

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("queue_entries.category = ?", s.Category)
}

type StatusNotIn struct {
	Statuses []string
}

func (s StatusNotIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("queue_entries.status NOT IN ?", s.Statuses)
}

// QueueSearch matches the free-text query case-insensitively across the
// customer name, driver name, truck number and container number. Assumes the
// customers join is already in place.
type QueueSearch struct {
	Query string
}

func (s QueueSearch) Apply(db *gorm.DB) *gorm.DB {
	like := "%" + s.Query + "%"
	return db.Where(
		"customers.name ILIKE ? OR queue_entries.driver_name ILIKE ? OR queue_entries.truck_number ILIKE ? OR queue_entries.container_number ILIKE ?",
		like, like, like, like,
	)
}
