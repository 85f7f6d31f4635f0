package contract

import (
	"context"
	"time"

	"antrian-truk-be/internal/entity"

	"github.com/google/uuid"
)

// QueueEntryFilter is the fetch specification assembled by the list query
// builder. Sort is a logical field name already passed through the whitelist;
// the implementation maps it to its column.
type QueueEntryFilter struct {
	From         *time.Time
	To           *time.Time
	Status       string
	Category     string
	Search       string
	ExcludeFinal bool
	SortBy       string
	SortDesc     bool
}

type QueueEntryRepository interface {
	Create(ctx context.Context, entry *entity.QueueEntry) error
	Update(ctx context.Context, entry *entity.QueueEntry) error
	// FindByID loads an entry with its customer and gate, nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error)
	// FindByIDWithLogs additionally loads the audit trail ordered by creation time.
	FindByIDWithLogs(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error)
	// FindByIDForUpdate reads the bare row under a FOR UPDATE lock. Must be
	// called inside a unit-of-work transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error)
	// FindAll returns every entry matching the filter in filter order,
	// customer and gate preloaded. Pagination happens after ranking, in the
	// service layer.
	FindAll(ctx context.Context, filter QueueEntryFilter) ([]*entity.QueueEntry, error)
	CountByCustomer(ctx context.Context, customerId uuid.UUID) (int64, error)
}
