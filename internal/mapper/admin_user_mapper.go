package mapper

import (
	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/model"
)

type AdminUserMapper struct{}

func NewAdminUserMapper() *AdminUserMapper {
	return &AdminUserMapper{}
}

func (m *AdminUserMapper) ToEntity(u *model.AdminUser) *entity.AdminUser {
	if u == nil {
		return nil
	}

	return &entity.AdminUser{
		Id:           u.Id,
		Name:         u.Name,
		Position:     u.Position,
		Phone:        u.Phone,
		Role:         entity.AdminRole(u.Role),
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *AdminUserMapper) ToModel(u *entity.AdminUser) *model.AdminUser {
	if u == nil {
		return nil
	}

	return &model.AdminUser{
		Id:           u.Id,
		Name:         u.Name,
		Position:     u.Position,
		Phone:        u.Phone,
		Role:         string(u.Role),
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *AdminUserMapper) ToEntities(users []*model.AdminUser) []*entity.AdminUser {
	entities := make([]*entity.AdminUser, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
