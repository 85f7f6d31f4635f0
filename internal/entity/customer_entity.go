package entity

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	Id        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
