package service

import (
	"context"
	"strings"

	"antrian-truk-be/internal/dto"
	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/pkg/apperror"
	"antrian-truk-be/internal/repository/contract"
	"antrian-truk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IGateService interface {
	Create(ctx context.Context, req *dto.SaveGateRequest) (*dto.GateResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.SaveGateRequest) (*dto.GateResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, req dto.ListGateRequest) ([]dto.GateResponse, error)
	// Import validates each row independently and reports per-row failures
	// instead of aborting the whole file.
	Import(ctx context.Context, rows []dto.GateImportRow) (*dto.GateImportReport, error)
}

type gateService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewGateService(uowFactory unitofwork.RepositoryFactory) IGateService {
	return &gateService{uowFactory: uowFactory}
}

func (s *gateService) Create(ctx context.Context, req *dto.SaveGateRequest) (*dto.GateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	gate, err := buildGate(req)
	if err != nil {
		return nil, err
	}

	existing, err := uow.GateRepository().FindByKey(ctx, contract.GateKey{
		GateNo:    gate.GateNo,
		Warehouse: string(gate.Warehouse),
	})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Gate dengan nomor tersebut sudah ada di warehouse ini")
	}

	gate.Id = uuid.New()
	if err := uow.GateRepository().Create(ctx, gate); err != nil {
		return nil, err
	}
	return toGateResponse(gate), nil
}

func (s *gateService) Update(ctx context.Context, id uuid.UUID, req *dto.SaveGateRequest) (*dto.GateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	gate, err := uow.GateRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if gate == nil {
		return nil, apperror.NotFound("Data tidak ditemukan")
	}

	updated, err := buildGate(req)
	if err != nil {
		return nil, err
	}

	conflict, err := uow.GateRepository().FindByKey(ctx, contract.GateKey{
		GateNo:    updated.GateNo,
		Warehouse: string(updated.Warehouse),
	})
	if err != nil {
		return nil, err
	}
	if conflict != nil && conflict.Id != id {
		return nil, apperror.Conflict("Gate dengan nomor tersebut sudah ada di warehouse ini")
	}

	gate.GateNo = updated.GateNo
	gate.Area = updated.Area
	gate.Warehouse = updated.Warehouse
	if err := uow.GateRepository().Update(ctx, gate); err != nil {
		return nil, err
	}
	return toGateResponse(gate), nil
}

func (s *gateService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	gate, err := uow.GateRepository().FindByID(ctx, id)
	if err != nil {
		return err
	}
	if gate == nil {
		return apperror.NotFound("Data tidak ditemukan")
	}
	return uow.GateRepository().Delete(ctx, id)
}

func (s *gateService) List(ctx context.Context, req dto.ListGateRequest) ([]dto.GateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filter := contract.GateFilter{
		Search:    strings.TrimSpace(req.Search),
		Warehouse: req.Warehouse,
		SortBy:    req.SortBy,
		SortDesc:  strings.EqualFold(req.SortDir, "desc"),
	}
	gates, err := uow.GateRepository().FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := make([]dto.GateResponse, len(gates))
	for i, g := range gates {
		data[i] = *toGateResponse(g)
	}
	return data, nil
}

func (s *gateService) Import(ctx context.Context, rows []dto.GateImportRow) (*dto.GateImportReport, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if len(rows) == 0 {
		return nil, apperror.Validation("File tidak berisi data gate")
	}

	var keys []contract.GateKey
	for _, row := range rows {
		gateNo := strings.TrimSpace(row.GateNo)
		warehouse := strings.ToUpper(strings.TrimSpace(row.Warehouse))
		if gateNo == "" || warehouse == "" {
			continue
		}
		keys = append(keys, contract.GateKey{GateNo: gateNo, Warehouse: warehouse})
	}
	taken, err := uow.GateRepository().ExistingKeys(ctx, keys)
	if err != nil {
		return nil, err
	}

	report := &dto.GateImportReport{TotalRows: len(rows), Errors: []dto.GateImportError{}}
	seenInFile := make(map[contract.GateKey]bool)
	var toCreate []*entity.Gate

	for _, row := range rows {
		gateNo := strings.TrimSpace(row.GateNo)
		area := strings.TrimSpace(row.Area)
		warehouse := entity.Warehouse(strings.ToUpper(strings.TrimSpace(row.Warehouse)))

		fail := func(message string) {
			report.Errors = append(report.Errors, dto.GateImportError{
				RowNumber: row.RowNumber,
				GateNo:    gateNo,
				Warehouse: string(warehouse),
				Message:   message,
			})
		}

		switch {
		case gateNo == "":
			fail("Nomor gate wajib diisi")
			continue
		case area == "":
			fail("Area wajib diisi")
			continue
		case !warehouse.Valid():
			fail("Warehouse harus WH1, WH2, atau DG")
			continue
		}

		key := contract.GateKey{GateNo: gateNo, Warehouse: string(warehouse)}
		if taken[key] {
			fail("Gate sudah terdaftar")
			continue
		}
		if seenInFile[key] {
			fail("Duplikat di dalam file")
			continue
		}
		seenInFile[key] = true

		toCreate = append(toCreate, &entity.Gate{
			Id:        uuid.New(),
			GateNo:    gateNo,
			Area:      area,
			Warehouse: warehouse,
		})
	}

	if len(toCreate) > 0 {
		if err := uow.GateRepository().CreateMany(ctx, toCreate); err != nil {
			return nil, err
		}
	}

	report.SuccessRows = len(toCreate)
	report.FailedRows = len(report.Errors)
	return report, nil
}

func buildGate(req *dto.SaveGateRequest) (*entity.Gate, error) {
	gateNo := strings.TrimSpace(req.GateNo)
	area := strings.TrimSpace(req.Area)
	warehouse := entity.Warehouse(strings.ToUpper(strings.TrimSpace(req.Warehouse)))

	if gateNo == "" {
		return nil, apperror.Validation("Nomor gate wajib diisi")
	}
	if area == "" {
		return nil, apperror.Validation("Area wajib diisi")
	}
	if !warehouse.Valid() {
		return nil, apperror.Validation("Warehouse harus WH1, WH2, atau DG")
	}

	return &entity.Gate{
		GateNo:    gateNo,
		Area:      area,
		Warehouse: warehouse,
	}, nil
}

func toGateResponse(g *entity.Gate) *dto.GateResponse {
	return &dto.GateResponse{
		Id:        g.Id,
		GateNo:    g.GateNo,
		Area:      g.Area,
		Warehouse: string(g.Warehouse),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
