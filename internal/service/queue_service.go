package service

import (
	"context"
	"time"

	"antrian-truk-be/internal/dto"
	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/pkg/apperror"
	"antrian-truk-be/internal/pkg/dateutil"
	"antrian-truk-be/internal/pkg/logger"
	"antrian-truk-be/internal/repository/contract"
	"antrian-truk-be/internal/repository/unitofwork"
	"antrian-truk-be/pkg/events"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type IQueueService interface {
	Create(ctx context.Context, req *dto.CreateQueueRequest, actor dto.Actor) (*dto.QueueEntryResponse, error)
	List(ctx context.Context, req dto.ListQueueRequest) (*dto.ListQueueResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.QueueEntryResponse, error)
	Update(ctx context.Context, req *dto.UpdateQueueRequest, actor dto.Actor) (*dto.QueueEntryResponse, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, req *dto.ChangeStatusRequest, actor dto.Actor) (*dto.QueueEntryResponse, error)
	ListForExport(ctx context.Context, req dto.ExportQueueRequest) ([]*entity.QueueEntry, error)
	Display(ctx context.Context) ([]dto.QueueEntryResponse, error)
}

type queueService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	viewCache        *cache.Cache
	logger           logger.ILogger
	now              func() time.Time
}

func NewQueueService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	viewCache *cache.Cache,
	logger logger.ILogger,
) IQueueService {
	return &queueService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		viewCache:        viewCache,
		logger:           logger,
		now:              time.Now,
	}
}

func (s *queueService) Create(ctx context.Context, req *dto.CreateQueueRequest, actor dto.Actor) (*dto.QueueEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category := entity.QueueCategory(req.Category)
	if !category.Valid() {
		return nil, apperror.Validation("Category harus RECEIVING atau DELIVERY")
	}

	customer, err := uow.CustomerRepository().FindByID(ctx, req.CustomerId)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.Validation("Customer tidak ditemukan")
	}

	registerTime := s.now()
	if req.RegisterTime != nil {
		registerTime = *req.RegisterTime
	}

	entry := &entity.QueueEntry{
		Id:              uuid.New(),
		Category:        category,
		Status:          entity.StatusMenunggu,
		CustomerId:      req.CustomerId,
		DriverName:      req.DriverName,
		TruckNumber:     req.TruckNumber,
		ContainerNumber: req.ContainerNumber,
		Notes:           req.Notes,
		RegisterTime:    registerTime,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.QueueEntryRepository().Create(ctx, entry); err != nil {
		return nil, err
	}

	initial := entity.StatusMenunggu
	log := &entity.QueueLog{
		Id:        uuid.New(),
		EntryId:   entry.Id,
		Action:    entity.LogActionCreate,
		NewStatus: &initial,
		ActorId:   actor.Id,
		ActorName: actor.Name,
	}
	if err := uow.QueueLogRepository().Append(ctx, log); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if err := s.publisherService.Publish(ctx, events.NewQueueCreated(entry.Id.String())); err != nil {
		s.logger.Warn("queue", "Gagal publish event antrian baru", map[string]interface{}{"error": err.Error()})
	}

	return s.reload(ctx, entry.Id)
}

func (s *queueService) List(ctx context.Context, req dto.ListQueueRequest) (*dto.ListQueueResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := s.now()

	filter := buildQueueFilter(req, now)
	entries, err := uow.QueueEntryRepository().FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Rank first, paginate after: page boundaries follow urgency order, not
	// the persisted sort.
	SortByPriority(entries, now)

	page, limit, totalPages := normalizePage(req.Page, req.Limit, len(entries))
	pageEntries := paginate(entries, page, limit)

	data := make([]dto.QueueEntryResponse, len(pageEntries))
	for i, e := range pageEntries {
		data[i] = *toQueueResponse(e, now)
	}

	return &dto.ListQueueResponse{
		Data: data,
		Meta: dto.ListMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: int64(len(entries)),
			TotalPages: totalPages,
		},
	}, nil
}

func (s *queueService) GetById(ctx context.Context, id uuid.UUID) (*dto.QueueEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.QueueEntryRepository().FindByIDWithLogs(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NotFound("Data tidak ditemukan")
	}
	return toQueueResponse(entry, s.now()), nil
}

func (s *queueService) Update(ctx context.Context, req *dto.UpdateQueueRequest, actor dto.Actor) (*dto.QueueEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	entry, err := uow.QueueEntryRepository().FindByIDForUpdate(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NotFound("Data tidak ditemukan")
	}
	if entry.Status.IsFinal() {
		return nil, apperror.StateConflict("Data tidak bisa diubah karena status sudah final")
	}

	if req.Category != nil {
		category := entity.QueueCategory(*req.Category)
		if !category.Valid() {
			return nil, apperror.Validation("Category harus RECEIVING atau DELIVERY")
		}
		entry.Category = category
	}
	if req.CustomerId != nil {
		customer, err := uow.CustomerRepository().FindByID(ctx, *req.CustomerId)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.Validation("Customer tidak ditemukan")
		}
		entry.CustomerId = *req.CustomerId
	}
	if req.DriverName != nil {
		entry.DriverName = *req.DriverName
	}
	if req.TruckNumber != nil {
		entry.TruckNumber = *req.TruckNumber
	}
	if req.ContainerNumber != nil {
		entry.ContainerNumber = req.ContainerNumber
	}
	if req.Notes != nil {
		entry.Notes = req.Notes
	}

	if err := uow.QueueEntryRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	log := &entity.QueueLog{
		Id:        uuid.New(),
		EntryId:   entry.Id,
		Action:    entity.LogActionUpdate,
		ActorId:   actor.Id,
		ActorName: actor.Name,
	}
	if err := uow.QueueLogRepository().Append(ctx, log); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if err := s.publisherService.Publish(ctx, events.NewQueueUpdated(entry.Id.String())); err != nil {
		s.logger.Warn("queue", "Gagal publish event perubahan data", map[string]interface{}{"error": err.Error()})
	}

	return s.reload(ctx, entry.Id)
}

// ChangeStatus drives the transition graph:
//
//	MENUNGGU <-> IN_WH <-> PROSES -> SELESAI
//	MENUNGGU  -> BATAL
//	IN_WH     -> BATAL
//
// Forward and backward moves go one step at a time; SELESAI and BATAL are
// terminal. The read-validate-write sequence runs under a row lock so a
// concurrent change on the same entry always validates against the committed
// status.
func (s *queueService) ChangeStatus(ctx context.Context, id uuid.UUID, req *dto.ChangeStatusRequest, actor dto.Actor) (*dto.QueueEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	entry, err := uow.QueueEntryRepository().FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NotFound("Data tidak ditemukan")
	}

	current := entry.Status
	newStatus := entity.QueueStatus(req.NewStatus)

	if current == newStatus {
		return nil, apperror.StateConflict("Status baru sama dengan status saat ini")
	}
	if current.IsFinal() {
		return nil, apperror.StateConflict("Status sudah final dan tidak bisa diubah")
	}

	if newStatus == entity.StatusBatal {
		if current != entity.StatusMenunggu && current != entity.StatusInWH {
			return nil, apperror.Validation("Batal hanya bisa dilakukan sampai status IN_WH")
		}
	} else if !adjacentTransition(current, newStatus) {
		return nil, apperror.Validation("Perubahan status tidak valid")
	}

	// Gate is mandatory on first warehouse entry only. Corrections keep the
	// gate that was already assigned, so a truck sent back to MENUNGGU
	// re-enters without picking one again. A supplied gate still reassigns.
	if current == entity.StatusMenunggu && newStatus == entity.StatusInWH {
		if req.GateId == nil && entry.GateId == nil {
			return nil, apperror.Validation("Gate wajib dipilih")
		}
		if req.GateId != nil {
			gate, err := uow.GateRepository().FindByID(ctx, *req.GateId)
			if err != nil {
				return nil, err
			}
			if gate == nil {
				return nil, apperror.Validation("Gate tidak ditemukan")
			}
			entry.GateId = req.GateId
		}
	}

	now := s.now()
	switch newStatus {
	case entity.StatusInWH:
		entry.InWhTime = dateutil.SetIfAbsent(entry.InWhTime, now)
	case entity.StatusProses:
		entry.StartTime = dateutil.SetIfAbsent(entry.StartTime, now)
	case entity.StatusSelesai:
		entry.FinishTime = dateutil.SetIfAbsent(entry.FinishTime, now)
	}

	entry.Status = newStatus
	if err := uow.QueueEntryRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	log := &entity.QueueLog{
		Id:        uuid.New(),
		EntryId:   entry.Id,
		Action:    entity.LogActionStatusChange,
		OldStatus: &current,
		NewStatus: &newStatus,
		ActorId:   actor.Id,
		ActorName: actor.Name,
	}
	if err := uow.QueueLogRepository().Append(ctx, log); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("queue", "Status antrian berubah", map[string]interface{}{
		"entry_id":   entry.Id.String(),
		"old_status": string(current),
		"new_status": string(newStatus),
		"actor":      actor.Name,
	})

	evt := events.NewQueueStatusChanged(entry.Id.String(), string(current), string(newStatus))
	if err := s.publisherService.Publish(ctx, evt); err != nil {
		s.logger.Warn("queue", "Gagal publish event perubahan status", map[string]interface{}{"error": err.Error()})
	}

	return s.reload(ctx, entry.Id)
}

func (s *queueService) ListForExport(ctx context.Context, req dto.ExportQueueRequest) ([]*entity.QueueEntry, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filter := contract.QueueEntryFilter{
		SortBy:   "registerTime",
		SortDesc: false,
	}
	if from, ok := dateutil.ParseDateOnly(req.DateFrom); ok {
		filter.From = &from
	}
	if day, ok := dateutil.ParseDateOnly(req.DateTo); ok {
		_, to := dateutil.DayRange(day)
		filter.To = &to
	}

	return uow.QueueEntryRepository().FindAll(ctx, filter)
}

// Display returns today's active entries in urgency order for the floor
// monitor.
const displayCacheKey = "display:today"

func (s *queueService) Display(ctx context.Context) ([]dto.QueueEntryResponse, error) {
	if cached, found := s.viewCache.Get(displayCacheKey); found {
		return cached.([]dto.QueueEntryResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := s.now()

	from, to := dateutil.DayRange(now)
	filter := contract.QueueEntryFilter{
		From:         &from,
		To:           &to,
		ExcludeFinal: true,
		SortBy:       "registerTime",
		SortDesc:     false,
	}
	entries, err := uow.QueueEntryRepository().FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	SortByPriority(entries, now)

	data := make([]dto.QueueEntryResponse, len(entries))
	for i, e := range entries {
		data[i] = *toQueueResponse(e, now)
	}
	s.viewCache.Set(displayCacheKey, data, cache.DefaultExpiration)
	return data, nil
}

// adjacentTransition allows exactly one step forward or backward on the
// forward path. The index distance keeps the legal set a single reviewable
// check.
func adjacentTransition(current, next entity.QueueStatus) bool {
	currentIdx := entity.FlowIndex(current)
	nextIdx := entity.FlowIndex(next)
	if currentIdx == -1 || nextIdx == -1 {
		return false
	}
	return nextIdx == currentIdx+1 || nextIdx == currentIdx-1
}

func (s *queueService) reload(ctx context.Context, id uuid.UUID) (*dto.QueueEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entry, err := uow.QueueEntryRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NotFound("Data tidak ditemukan")
	}
	return toQueueResponse(entry, s.now()), nil
}

func toQueueResponse(e *entity.QueueEntry, now time.Time) *dto.QueueEntryResponse {
	res := &dto.QueueEntryResponse{
		Id:              e.Id,
		Category:        string(e.Category),
		Status:          string(e.Status),
		CustomerId:      e.CustomerId,
		DriverName:      e.DriverName,
		TruckNumber:     e.TruckNumber,
		ContainerNumber: e.ContainerNumber,
		GateId:          e.GateId,
		Notes:           e.Notes,
		RegisterTime:    e.RegisterTime,
		InWhTime:        e.InWhTime,
		StartTime:       e.StartTime,
		FinishTime:      e.FinishTime,
		PriorityRank:    PriorityRank(e, now),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}

	if e.Customer != nil {
		res.Customer = &dto.CustomerResponse{
			Id:        e.Customer.Id,
			Name:      e.Customer.Name,
			CreatedAt: e.Customer.CreatedAt,
			UpdatedAt: e.Customer.UpdatedAt,
		}
	}
	if e.Gate != nil {
		res.Gate = &dto.GateResponse{
			Id:        e.Gate.Id,
			GateNo:    e.Gate.GateNo,
			Area:      e.Gate.Area,
			Warehouse: string(e.Gate.Warehouse),
			CreatedAt: e.Gate.CreatedAt,
			UpdatedAt: e.Gate.UpdatedAt,
		}
	}
	for _, l := range e.Logs {
		item := dto.QueueLogResponse{
			Id:        l.Id,
			Action:    string(l.Action),
			ActorName: l.ActorName,
			CreatedAt: l.CreatedAt,
		}
		if l.OldStatus != nil {
			v := string(*l.OldStatus)
			item.OldStatus = &v
		}
		if l.NewStatus != nil {
			v := string(*l.NewStatus)
			item.NewStatus = &v
		}
		res.Logs = append(res.Logs, item)
	}
	return res
}
