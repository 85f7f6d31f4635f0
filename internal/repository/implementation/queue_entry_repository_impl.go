package implementation

import (
	"context"
	"errors"

	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/mapper"
	"antrian-truk-be/internal/model"
	"antrian-truk-be/internal/repository/contract"
	"antrian-truk-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sortColumns whitelists the logical sort fields the list endpoint accepts
// and maps them to their SQL expressions. Fields from joined tables work
// because FindAll always joins customers and gates.
var sortColumns = map[string]string{
	"registerTime": "queue_entries.register_time",
	"inWhTime":     "queue_entries.in_wh_time",
	"startTime":    "queue_entries.start_time",
	"finishTime":   "queue_entries.finish_time",
	"customerName": "customers.name",
	"driverName":   "queue_entries.driver_name",
	"truckNumber":  "queue_entries.truck_number",
	"gateNo":       "gates.gate_no",
	"status":       "queue_entries.status",
}

// SortableField reports whether the logical field can be sorted on.
func SortableField(field string) bool {
	_, ok := sortColumns[field]
	return ok
}

type QueueEntryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QueueMapper
}

func NewQueueEntryRepository(db *gorm.DB) contract.QueueEntryRepository {
	return &QueueEntryRepositoryImpl{
		db:     db,
		mapper: mapper.NewQueueMapper(),
	}
}

func (r *QueueEntryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QueueEntryRepositoryImpl) Create(ctx context.Context, entry *entity.QueueEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *QueueEntryRepositoryImpl) Update(ctx context.Context, entry *entity.QueueEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *QueueEntryRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error) {
	var m model.QueueEntry
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Gate").
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *QueueEntryRepositoryImpl) FindByIDWithLogs(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error) {
	var m model.QueueEntry
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Gate").
		Preload("Logs", func(db *gorm.DB) *gorm.DB {
			return db.Order("queue_logs.created_at ASC")
		}).
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *QueueEntryRepositoryImpl) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error) {
	var m model.QueueEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specification.LockForUpdate{}, specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *QueueEntryRepositoryImpl) FindAll(ctx context.Context, filter contract.QueueEntryFilter) ([]*entity.QueueEntry, error) {
	specs := make([]specification.Specification, 0, 6)
	if filter.From != nil {
		specs = append(specs, specification.RegisterTimeFrom{From: *filter.From})
	}
	if filter.To != nil {
		specs = append(specs, specification.RegisterTimeTo{To: *filter.To})
	}
	if filter.Status != "" {
		specs = append(specs, specification.ByStatus{Status: filter.Status})
	}
	if filter.Category != "" {
		specs = append(specs, specification.ByCategory{Category: filter.Category})
	}
	if filter.ExcludeFinal {
		specs = append(specs, specification.StatusNotIn{
			Statuses: []string{string(entity.StatusSelesai), string(entity.StatusBatal)},
		})
	}
	if filter.Search != "" {
		specs = append(specs, specification.QueueSearch{Query: filter.Search})
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = sortColumns["registerTime"]
	}
	specs = append(specs, specification.OrderBy{Column: column, Desc: filter.SortDesc})
	if column != "queue_entries.created_at" {
		// Deterministic tiebreaker so pages never shuffle between requests.
		specs = append(specs, specification.OrderBy{Column: "queue_entries.created_at", Desc: true})
	}

	query := r.db.WithContext(ctx).
		Model(&model.QueueEntry{}).
		Joins("LEFT JOIN customers ON customers.id = queue_entries.customer_id").
		Joins("LEFT JOIN gates ON gates.id = queue_entries.gate_id").
		Preload("Customer").
		Preload("Gate")
	query = r.applySpecifications(query, specs...)

	var models []*model.QueueEntry
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *QueueEntryRepositoryImpl) CountByCustomer(ctx context.Context, customerId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.QueueEntry{}).
		Where("customer_id = ?", customerId).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
