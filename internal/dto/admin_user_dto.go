package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAdminUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Position string `json:"position" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Password empty on update means keep the current hash.
type UpdateAdminUserRequest struct {
	Id       uuid.UUID `json:"-"`
	Name     string    `json:"name" validate:"required"`
	Position string    `json:"position" validate:"required"`
	Phone    string    `json:"phone" validate:"required"`
	Role     string    `json:"role" validate:"required"`
	Username string    `json:"username" validate:"required"`
	Password string    `json:"password"`
}

type AdminUserResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
