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

type AdminUserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdminUserMapper
}

func NewAdminUserRepository(db *gorm.DB) contract.AdminUserRepository {
	return &AdminUserRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdminUserMapper(),
	}
}

func (r *AdminUserRepositoryImpl) Create(ctx context.Context, user *entity.AdminUser) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdminUserRepositoryImpl) Update(ctx context.Context, user *entity.AdminUser) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdminUserRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.AdminUser{}, "id = ?", id).Error
}

func (r *AdminUserRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	var m model.AdminUser
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AdminUserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	var m model.AdminUser
	if err := r.db.WithContext(ctx).First(&m, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AdminUserRepositoryImpl) FindAll(ctx context.Context, search string) ([]*entity.AdminUser, error) {
	query := r.db.WithContext(ctx).Model(&model.AdminUser{})
	if search != "" {
		query = specification.AdminUserSearch{Query: search}.Apply(query)
	}
	query = specification.OrderBy{Column: "created_at", Desc: true}.Apply(query)

	var models []*model.AdminUser
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
