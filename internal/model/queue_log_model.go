package model

import (
	"time"

	"github.com/google/uuid"
)

type QueueLog struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EntryId   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Action    string     `gorm:"type:varchar(20);not null"`
	OldStatus *string    `gorm:"type:varchar(16)"`
	NewStatus *string    `gorm:"type:varchar(16)"`
	ActorId   *uuid.UUID `gorm:"type:uuid"`
	ActorName string     `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index"`
}

func (QueueLog) TableName() string {
	return "queue_logs"
}
