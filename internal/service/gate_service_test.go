package service

import (
	"context"
	"testing"

	"antrian-truk-be/internal/dto"
	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/pkg/apperror"
	"antrian-truk-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateServiceForTest() (IGateService, *fakeUnitOfWork) {
	uow := newFakeUnitOfWork()
	return NewGateService(&fakeUowFactory{uow: uow}), uow
}

func TestGateCreateRejectsDuplicateKey(t *testing.T) {
	svc, _ := newGateServiceForTest()

	req := &dto.SaveGateRequest{GateNo: "G1", Area: "Utara", Warehouse: "WH1"}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindConflict, appErr.Kind)

	// Same number in another warehouse is fine.
	_, err = svc.Create(context.Background(), &dto.SaveGateRequest{GateNo: "G1", Area: "Selatan", Warehouse: "WH2"})
	assert.NoError(t, err)
}

func TestGateCreateValidatesWarehouse(t *testing.T) {
	svc, _ := newGateServiceForTest()

	_, err := svc.Create(context.Background(), &dto.SaveGateRequest{GateNo: "G1", Area: "Utara", Warehouse: "WH9"})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
}

func TestGateImportReportsPerRowErrors(t *testing.T) {
	svc, uow := newGateServiceForTest()

	existing := &entity.Gate{Id: uuid.New(), GateNo: "G1", Area: "Utara", Warehouse: entity.WarehouseWH1}
	require.NoError(t, uow.gateRepo.Create(context.Background(), existing))

	rows := []dto.GateImportRow{
		{RowNumber: 2, GateNo: "G1", Area: "Utara", Warehouse: "WH1"},   // already registered
		{RowNumber: 3, GateNo: "G2", Area: "Utara", Warehouse: "WH1"},   // ok
		{RowNumber: 4, GateNo: "", Area: "Utara", Warehouse: "WH1"},     // missing gate no
		{RowNumber: 5, GateNo: "G3", Area: "Selatan", Warehouse: "WHX"}, // bad warehouse
		{RowNumber: 6, GateNo: "G2", Area: "Utara", Warehouse: "WH1"},   // dup within file
		{RowNumber: 7, GateNo: "g4", Area: "Khusus", Warehouse: "dg"},   // ok, warehouse normalized
	}

	report, err := svc.Import(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 6, report.TotalRows)
	assert.Equal(t, 2, report.SuccessRows)
	assert.Equal(t, 4, report.FailedRows)
	require.Len(t, report.Errors, 4)
	assert.Equal(t, 2, report.Errors[0].RowNumber)
	assert.Equal(t, "Gate sudah terdaftar", report.Errors[0].Message)

	created, err := uow.gateRepo.FindByKey(context.Background(), contract.GateKey{GateNo: "g4", Warehouse: "DG"})
	require.NoError(t, err)
	assert.NotNil(t, created)
}

func TestGateUpdateAllowsKeepingOwnKey(t *testing.T) {
	svc, _ := newGateServiceForTest()

	created, err := svc.Create(context.Background(), &dto.SaveGateRequest{GateNo: "G1", Area: "Utara", Warehouse: "WH1"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.Id, &dto.SaveGateRequest{GateNo: "G1", Area: "Timur", Warehouse: "WH1"})
	require.NoError(t, err)
	assert.Equal(t, "Timur", updated.Area)
}
