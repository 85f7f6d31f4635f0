package contract

import (
	"context"

	"antrian-truk-be/internal/entity"

	"github.com/google/uuid"
)

type AdminUserRepository interface {
	Create(ctx context.Context, user *entity.AdminUser) error
	Update(ctx context.Context, user *entity.AdminUser) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
	FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error)
	FindAll(ctx context.Context, search string) ([]*entity.AdminUser, error)
}
