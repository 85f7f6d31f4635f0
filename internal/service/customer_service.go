package service

import (
	"context"
	"strings"

	"antrian-truk-be/internal/dto"
	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/pkg/apperror"
	"antrian-truk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICustomerService interface {
	Create(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Import creates every name that does not exist yet and skips the rest.
	Import(ctx context.Context, names []string) (*dto.CustomerImportReport, error)
}

type customerService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCustomerService(uowFactory unitofwork.RepositoryFactory) ICustomerService {
	return &customerService{uowFactory: uowFactory}
}

func (s *customerService) Create(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("Nama customer wajib diisi")
	}

	existing, err := uow.CustomerRepository().FindNamesIn(ctx, []string{name})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperror.Conflict("Customer dengan nama tersebut sudah ada")
	}

	customer := &entity.Customer{
		Id:   uuid.New(),
		Name: name,
	}
	if err := uow.CustomerRepository().Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customers, err := uow.CustomerRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]dto.CustomerResponse, len(customers))
	for i, c := range customers {
		data[i] = *toCustomerResponse(c)
	}
	return data, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NotFound("Data tidak ditemukan")
	}

	inUse, err := uow.QueueEntryRepository().CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return apperror.Conflict("Customer masih dipakai oleh data antrian")
	}

	return uow.CustomerRepository().Delete(ctx, id)
}

func (s *customerService) Import(ctx context.Context, names []string) (*dto.CustomerImportReport, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	seen := make(map[string]bool)
	var cleaned []string
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, name)
	}
	if len(cleaned) == 0 {
		return nil, apperror.Validation("File tidak berisi nama customer")
	}

	existing, err := uow.CustomerRepository().FindNamesIn(ctx, cleaned)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(existing))
	for _, name := range existing {
		taken[strings.ToLower(name)] = true
	}

	var toCreate []*entity.Customer
	skipped := 0
	for _, name := range cleaned {
		if taken[strings.ToLower(name)] {
			skipped++
			continue
		}
		toCreate = append(toCreate, &entity.Customer{Id: uuid.New(), Name: name})
	}

	if len(toCreate) > 0 {
		if err := uow.CustomerRepository().CreateMany(ctx, toCreate); err != nil {
			return nil, err
		}
	}

	return &dto.CustomerImportReport{
		Created: len(toCreate),
		Skipped: skipped,
	}, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		Id:        c.Id,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
