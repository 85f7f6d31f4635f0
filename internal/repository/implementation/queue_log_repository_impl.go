package implementation

import (
	"context"

	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/mapper"
	"antrian-truk-be/internal/model"
	"antrian-truk-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QueueLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QueueMapper
}

func NewQueueLogRepository(db *gorm.DB) contract.QueueLogRepository {
	return &QueueLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewQueueMapper(),
	}
}

func (r *QueueLogRepositoryImpl) Append(ctx context.Context, log *entity.QueueLog) error {
	m := r.mapper.LogToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.LogToEntity(m)
	return nil
}

func (r *QueueLogRepositoryImpl) FindByEntryID(ctx context.Context, entryId uuid.UUID) ([]*entity.QueueLog, error) {
	var models []*model.QueueLog
	err := r.db.WithContext(ctx).
		Where("entry_id = ?", entryId).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.LogsToEntities(models), nil
}
