package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdminRole string

const (
	RoleAdmin     AdminRole = "ADMIN"
	RoleWarehouse AdminRole = "WAREHOUSE"
)

// NormalizeRole maps the lowercase API value to its stored role, returning ""
// for anything outside admin/warehouse.
func NormalizeRole(raw string) AdminRole {
	switch raw {
	case "admin":
		return RoleAdmin
	case "warehouse":
		return RoleWarehouse
	default:
		return ""
	}
}

type AdminUser struct {
	Id           uuid.UUID
	Name         string
	Position     string
	Phone        string
	Role         AdminRole
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SystemActorName is recorded on audit rows when no authenticated actor is
// attached to the request.
const SystemActorName = "system"
