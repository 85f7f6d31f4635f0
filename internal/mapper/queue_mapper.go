package mapper

import (
	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/model"
)

type QueueMapper struct {
	customerMapper *CustomerMapper
	gateMapper     *GateMapper
}

func NewQueueMapper() *QueueMapper {
	return &QueueMapper{
		customerMapper: NewCustomerMapper(),
		gateMapper:     NewGateMapper(),
	}
}

func (m *QueueMapper) ToEntity(e *model.QueueEntry) *entity.QueueEntry {
	if e == nil {
		return nil
	}

	logs := make([]*entity.QueueLog, len(e.Logs))
	for i := range e.Logs {
		logs[i] = m.LogToEntity(&e.Logs[i])
	}
	if len(logs) == 0 {
		logs = nil
	}

	return &entity.QueueEntry{
		Id:              e.Id,
		Category:        entity.QueueCategory(e.Category),
		Status:          entity.QueueStatus(e.Status),
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
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
		Customer:        m.customerMapper.ToEntity(e.Customer),
		Gate:            m.gateMapper.ToEntity(e.Gate),
		Logs:            logs,
	}
}

func (m *QueueMapper) ToModel(e *entity.QueueEntry) *model.QueueEntry {
	if e == nil {
		return nil
	}

	return &model.QueueEntry{
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
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func (m *QueueMapper) ToEntities(entries []*model.QueueEntry) []*entity.QueueEntry {
	entities := make([]*entity.QueueEntry, len(entries))
	for i, e := range entries {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *QueueMapper) LogToEntity(l *model.QueueLog) *entity.QueueLog {
	if l == nil {
		return nil
	}

	var oldStatus, newStatus *entity.QueueStatus
	if l.OldStatus != nil {
		s := entity.QueueStatus(*l.OldStatus)
		oldStatus = &s
	}
	if l.NewStatus != nil {
		s := entity.QueueStatus(*l.NewStatus)
		newStatus = &s
	}

	return &entity.QueueLog{
		Id:        l.Id,
		EntryId:   l.EntryId,
		Action:    entity.QueueLogAction(l.Action),
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ActorId:   l.ActorId,
		ActorName: l.ActorName,
		CreatedAt: l.CreatedAt,
	}
}

func (m *QueueMapper) LogToModel(l *entity.QueueLog) *model.QueueLog {
	if l == nil {
		return nil
	}

	var oldStatus, newStatus *string
	if l.OldStatus != nil {
		s := string(*l.OldStatus)
		oldStatus = &s
	}
	if l.NewStatus != nil {
		s := string(*l.NewStatus)
		newStatus = &s
	}

	return &model.QueueLog{
		Id:        l.Id,
		EntryId:   l.EntryId,
		Action:    string(l.Action),
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ActorId:   l.ActorId,
		ActorName: l.ActorName,
		CreatedAt: l.CreatedAt,
	}
}

func (m *QueueMapper) LogsToEntities(logs []*model.QueueLog) []*entity.QueueLog {
	entities := make([]*entity.QueueLog, len(logs))
	for i, l := range logs {
		entities[i] = m.LogToEntity(l)
	}
	return entities
}
