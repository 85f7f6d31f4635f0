package service

import (
	"context"
	"testing"

	"antrian-truk-be/internal/dto"
	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomerServiceForTest() (ICustomerService, *fakeUnitOfWork) {
	uow := newFakeUnitOfWork()
	return NewCustomerService(&fakeUowFactory{uow: uow}), uow
}

func TestCustomerCreateRejectsDuplicateName(t *testing.T) {
	svc, _ := newCustomerServiceForTest()

	_, err := svc.Create(context.Background(), &dto.CreateCustomerRequest{Name: "PT Maju Jaya"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &dto.CreateCustomerRequest{Name: "PT Maju Jaya"})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindConflict, appErr.Kind)
}

func TestCustomerImportSkipsExistingAndFileDuplicates(t *testing.T) {
	svc, uow := newCustomerServiceForTest()

	require.NoError(t, uow.customerRepo.Create(context.Background(), &entity.Customer{
		Id: uuid.New(), Name: "PT Lama",
	}))

	report, err := svc.Import(context.Background(), []string{
		"PT Lama",      // exists
		"PT Baru",      // new
		"pt baru",      // duplicate within file, case-insensitive
		"  PT Lain  ",  // new, trimmed
		"",             // blank row
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 1, report.Skipped)

	all, err := uow.customerRepo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCustomerDeleteBlockedWhenReferenced(t *testing.T) {
	svc, uow := newCustomerServiceForTest()

	customer := &entity.Customer{Id: uuid.New(), Name: "PT Maju Jaya"}
	require.NoError(t, uow.customerRepo.Create(context.Background(), customer))
	require.NoError(t, uow.queueRepo.Create(context.Background(), &entity.QueueEntry{
		Id: uuid.New(), CustomerId: customer.Id,
		Category: entity.CategoryReceiving, Status: entity.StatusMenunggu,
	}))

	err := svc.Delete(context.Background(), customer.Id)

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindConflict, appErr.Kind)
}
