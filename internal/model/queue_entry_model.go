package model

import (
	"time"

	"github.com/google/uuid"
)

type QueueEntry struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Category        string     `gorm:"type:varchar(16);not null;index"`
	Status          string     `gorm:"type:varchar(16);not null;index"`
	CustomerId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverName      string     `gorm:"type:varchar(100);not null"`
	TruckNumber     string     `gorm:"type:varchar(30);not null"`
	ContainerNumber *string    `gorm:"type:varchar(30)"`
	GateId          *uuid.UUID `gorm:"type:uuid;index"`
	Notes           *string    `gorm:"type:text"`
	RegisterTime    time.Time  `gorm:"not null;index"`
	InWhTime        *time.Time
	StartTime       *time.Time
	FinishTime      *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`

	Customer *Customer  `gorm:"foreignKey:CustomerId"`
	Gate     *Gate      `gorm:"foreignKey:GateId"`
	Logs     []QueueLog `gorm:"foreignKey:EntryId"`
}

func (QueueEntry) TableName() string {
	return "queue_entries"
}
