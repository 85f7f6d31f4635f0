package service

import (
	"context"
	"strings"

	"antrian-truk-be/internal/dto"
	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/pkg/apperror"
	"antrian-truk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type IAdminUserService interface {
	Create(ctx context.Context, req *dto.CreateAdminUserRequest) (*dto.AdminUserResponse, error)
	Update(ctx context.Context, req *dto.UpdateAdminUserRequest) (*dto.AdminUserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]dto.AdminUserResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.AdminUserResponse, error)
}

type adminUserService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAdminUserService(uowFactory unitofwork.RepositoryFactory) IAdminUserService {
	return &adminUserService{uowFactory: uowFactory}
}

func (s *adminUserService) Create(ctx context.Context, req *dto.CreateAdminUserRequest) (*dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	role, details := validateAdminFields(req.Role, req.Username, req.Password, true)
	if len(details) > 0 {
		return nil, apperror.Validation("Data admin tidak valid", details...)
	}

	existing, err := uow.AdminUserRepository().FindByUsername(ctx, strings.ToLower(req.Username))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Username sudah dipakai")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.AdminUser{
		Id:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Position:     strings.TrimSpace(req.Position),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         role,
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		PasswordHash: string(hash),
	}
	if err := uow.AdminUserRepository().Create(ctx, user); err != nil {
		return nil, err
	}
	return toAdminUserResponse(user), nil
}

func (s *adminUserService) Update(ctx context.Context, req *dto.UpdateAdminUserRequest) (*dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.AdminUserRepository().FindByID(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("Data tidak ditemukan")
	}

	role, details := validateAdminFields(req.Role, req.Username, req.Password, false)
	if len(details) > 0 {
		return nil, apperror.Validation("Data admin tidak valid", details...)
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username != user.Username {
		existing, err := uow.AdminUserRepository().FindByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.Conflict("Username sudah dipakai")
		}
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Position = strings.TrimSpace(req.Position)
	user.Phone = strings.TrimSpace(req.Phone)
	user.Role = role
	user.Username = username
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := uow.AdminUserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	return toAdminUserResponse(user), nil
}

func (s *adminUserService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.AdminUserRepository().FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("Data tidak ditemukan")
	}
	return uow.AdminUserRepository().Delete(ctx, id)
}

func (s *adminUserService) List(ctx context.Context, search string) ([]dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.AdminUserRepository().FindAll(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}

	data := make([]dto.AdminUserResponse, len(users))
	for i, u := range users {
		data[i] = *toAdminUserResponse(u)
	}
	return data, nil
}

func (s *adminUserService) GetById(ctx context.Context, id uuid.UUID) (*dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.AdminUserRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("Data tidak ditemukan")
	}
	return toAdminUserResponse(user), nil
}

// validateAdminFields collects every field problem so the caller sees all of
// them in one response, not one per attempt.
func validateAdminFields(rawRole, username, password string, passwordRequired bool) (entity.AdminRole, []string) {
	var details []string

	role := entity.NormalizeRole(strings.ToLower(strings.TrimSpace(rawRole)))
	if role == "" {
		details = append(details, "Role harus admin atau warehouse")
	}
	if strings.TrimSpace(username) == "" {
		details = append(details, "Username wajib diisi")
	}
	if password == "" {
		if passwordRequired {
			details = append(details, "Password wajib diisi")
		}
	} else if len(password) < minPasswordLength {
		details = append(details, "Password minimal 6 karakter")
	}

	return role, details
}

func toAdminUserResponse(u *entity.AdminUser) *dto.AdminUserResponse {
	return &dto.AdminUserResponse{
		Id:        u.Id,
		Name:      u.Name,
		Position:  u.Position,
		Phone:     u.Phone,
		Role:      string(u.Role),
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
