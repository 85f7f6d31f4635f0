package implementation

import (
	"context"
	"errors"

	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/mapper"
	"antrian-truk-be/internal/model"
	"antrian-truk-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CustomerMapper
}

func NewCustomerRepository(db *gorm.DB) contract.CustomerRepository {
	return &CustomerRepositoryImpl{
		db:     db,
		mapper: mapper.NewCustomerMapper(),
	}
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *entity.Customer) error {
	m := r.mapper.ToModel(customer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*customer = *r.mapper.ToEntity(m)
	return nil
}

func (r *CustomerRepositoryImpl) CreateMany(ctx context.Context, customers []*entity.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	models := make([]*model.Customer, len(customers))
	for i, c := range customers {
		models[i] = r.mapper.ToModel(c)
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *CustomerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Customer{}, "id = ?", id).Error
}

func (r *CustomerRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var m model.Customer
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CustomerRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	var models []*model.Customer
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CustomerRepositoryImpl) FindNamesIn(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var existing []string
	err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("name IN ?", names).
		Pluck("name", &existing).Error
	if err != nil {
		return nil, err
	}
	return existing, nil
}
