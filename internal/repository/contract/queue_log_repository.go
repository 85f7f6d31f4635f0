package contract

import (
	"context"

	"antrian-truk-be/internal/entity"

	"github.com/google/uuid"
)

type QueueLogRepository interface {
	// Append writes one audit row. Logs are never updated or deleted.
	Append(ctx context.Context, log *entity.QueueLog) error
	FindByEntryID(ctx context.Context, entryId uuid.UUID) ([]*entity.QueueLog, error)
}
