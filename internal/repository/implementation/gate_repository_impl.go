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

var gateSortColumns = map[string]string{
	"gateNo":    "gate_no",
	"area":      "area",
	"warehouse": "warehouse",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type GateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GateMapper
}

func NewGateRepository(db *gorm.DB) contract.GateRepository {
	return &GateRepositoryImpl{
		db:     db,
		mapper: mapper.NewGateMapper(),
	}
}

func (r *GateRepositoryImpl) Create(ctx context.Context, gate *entity.Gate) error {
	m := r.mapper.ToModel(gate)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*gate = *r.mapper.ToEntity(m)
	return nil
}

func (r *GateRepositoryImpl) CreateMany(ctx context.Context, gates []*entity.Gate) error {
	if len(gates) == 0 {
		return nil
	}
	models := make([]*model.Gate, len(gates))
	for i, g := range gates {
		models[i] = r.mapper.ToModel(g)
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *GateRepositoryImpl) Update(ctx context.Context, gate *entity.Gate) error {
	m := r.mapper.ToModel(gate)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*gate = *r.mapper.ToEntity(m)
	return nil
}

func (r *GateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Gate{}, "id = ?", id).Error
}

func (r *GateRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Gate, error) {
	var m model.Gate
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GateRepositoryImpl) FindByKey(ctx context.Context, key contract.GateKey) (*entity.Gate, error) {
	var m model.Gate
	err := r.db.WithContext(ctx).
		Where("gate_no = ? AND warehouse = ?", key.GateNo, key.Warehouse).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GateRepositoryImpl) FindAll(ctx context.Context, filter contract.GateFilter) ([]*entity.Gate, error) {
	query := r.db.WithContext(ctx).Model(&model.Gate{})
	if filter.Search != "" {
		query = specification.GateSearch{Query: filter.Search}.Apply(query)
	}
	if filter.Warehouse != "" {
		query = specification.ByWarehouse{Warehouse: filter.Warehouse}.Apply(query)
	}

	column, ok := gateSortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	query = specification.OrderBy{Column: column, Desc: filter.SortDesc}.Apply(query)
	if column != "created_at" {
		query = specification.OrderBy{Column: "created_at", Desc: true}.Apply(query)
	}

	var models []*model.Gate
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *GateRepositoryImpl) ExistingKeys(ctx context.Context, keys []contract.GateKey) (map[contract.GateKey]bool, error) {
	existing := make(map[contract.GateKey]bool, len(keys))
	if len(keys) == 0 {
		return existing, nil
	}

	query := r.db.WithContext(ctx).Model(&model.Gate{})
	orClause := r.db.Session(&gorm.Session{NewDB: true})
	for _, key := range keys {
		orClause = orClause.Or("gate_no = ? AND warehouse = ?", key.GateNo, key.Warehouse)
	}
	query = query.Where(orClause)

	var models []*model.Gate
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	for _, m := range models {
		existing[contract.GateKey{GateNo: m.GateNo, Warehouse: m.Warehouse}] = true
	}
	return existing, nil
}
