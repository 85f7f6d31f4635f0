package contract

import (
	"context"

	"antrian-truk-be/internal/entity"

	"github.com/google/uuid"
)

type GateFilter struct {
	Search    string
	Warehouse string
	SortBy    string
	SortDesc  bool
}

// GateKey identifies a gate by its natural key (gateNo, warehouse).
type GateKey struct {
	GateNo    string
	Warehouse string
}

type GateRepository interface {
	Create(ctx context.Context, gate *entity.Gate) error
	CreateMany(ctx context.Context, gates []*entity.Gate) error
	Update(ctx context.Context, gate *entity.Gate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Gate, error)
	FindByKey(ctx context.Context, key GateKey) (*entity.Gate, error)
	FindAll(ctx context.Context, filter GateFilter) ([]*entity.Gate, error)
	// ExistingKeys reports which of the given natural keys are already taken.
	ExistingKeys(ctx context.Context, keys []GateKey) (map[GateKey]bool, error)
}
