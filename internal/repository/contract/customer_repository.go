package contract

import (
	"context"

	"antrian-truk-be/internal/entity"

	"github.com/google/uuid"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	CreateMany(ctx context.Context, customers []*entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindAll(ctx context.Context) ([]*entity.Customer, error)
	// FindNamesIn returns the subset of names that already exist, for import
	// deduplication.
	FindNamesIn(ctx context.Context, names []string) ([]string, error)
}
