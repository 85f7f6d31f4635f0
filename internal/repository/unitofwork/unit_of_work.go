package unitofwork

import (
	"context"

	"antrian-truk-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	QueueEntryRepository() contract.QueueEntryRepository
	QueueLogRepository() contract.QueueLogRepository
	CustomerRepository() contract.CustomerRepository
	GateRepository() contract.GateRepository
	AdminUserRepository() contract.AdminUserRepository
}
