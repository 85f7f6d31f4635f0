package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	Name string `json:"name" validate:"required"`
}

type CustomerResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CustomerImportReport struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
