package service

import (
	"context"
	"testing"

	"antrian-truk-be/internal/dto"
	"antrian-truk-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAdminUserServiceForTest() (IAdminUserService, *fakeUnitOfWork) {
	uow := newFakeUnitOfWork()
	return NewAdminUserService(&fakeUowFactory{uow: uow}), uow
}

func validAdminRequest() *dto.CreateAdminUserRequest {
	return &dto.CreateAdminUserRequest{
		Name:     "Siti",
		Position: "Supervisor",
		Phone:    "0812000111",
		Role:     "warehouse",
		Username: "Siti.W",
		Password: "rahasia1",
	}
}

func TestAdminCreateHashesPasswordAndLowercasesUsername(t *testing.T) {
	svc, uow := newAdminUserServiceForTest()

	res, err := svc.Create(context.Background(), validAdminRequest())
	require.NoError(t, err)

	assert.Equal(t, "siti.w", res.Username)
	assert.Equal(t, "WAREHOUSE", res.Role)

	stored, err := uow.adminRepo.FindByUsername(context.Background(), "siti.w")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("rahasia1")))
}

func TestAdminCreateCollectsAllFieldErrors(t *testing.T) {
	svc, _ := newAdminUserServiceForTest()

	req := validAdminRequest()
	req.Role = "superuser"
	req.Password = "abc"

	_, err := svc.Create(context.Background(), req)

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Len(t, appErr.Details, 2)
}

func TestAdminCreateRejectsTakenUsername(t *testing.T) {
	svc, _ := newAdminUserServiceForTest()

	_, err := svc.Create(context.Background(), validAdminRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validAdminRequest())
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindConflict, appErr.Kind)
}

func TestAdminUpdateKeepsHashWhenPasswordEmpty(t *testing.T) {
	svc, uow := newAdminUserServiceForTest()

	created, err := svc.Create(context.Background(), validAdminRequest())
	require.NoError(t, err)

	before, _ := uow.adminRepo.FindByID(context.Background(), created.Id)

	_, err = svc.Update(context.Background(), &dto.UpdateAdminUserRequest{
		Id:       created.Id,
		Name:     "Siti Rahayu",
		Position: "Manager",
		Phone:    "0812000111",
		Role:     "admin",
		Username: "siti.w",
	})
	require.NoError(t, err)

	after, _ := uow.adminRepo.FindByID(context.Background(), created.Id)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
	assert.Equal(t, "Siti Rahayu", after.Name)
	assert.Equal(t, "ADMIN", string(after.Role))
}
