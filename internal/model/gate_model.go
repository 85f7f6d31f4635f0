package model

import (
	"time"

	"github.com/google/uuid"
)

type Gate struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GateNo    string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_gates_no_warehouse"`
	Area      string    `gorm:"type:varchar(50);not null"`
	Warehouse string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_gates_no_warehouse"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Gate) TableName() string {
	return "gates"
}
