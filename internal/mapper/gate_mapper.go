package mapper

import (
	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/model"
)

type GateMapper struct{}

func NewGateMapper() *GateMapper {
	return &GateMapper{}
}

func (m *GateMapper) ToEntity(g *model.Gate) *entity.Gate {
	if g == nil {
		return nil
	}

	return &entity.Gate{
		Id:        g.Id,
		GateNo:    g.GateNo,
		Area:      g.Area,
		Warehouse: entity.Warehouse(g.Warehouse),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func (m *GateMapper) ToModel(g *entity.Gate) *model.Gate {
	if g == nil {
		return nil
	}

	return &model.Gate{
		Id:        g.Id,
		GateNo:    g.GateNo,
		Area:      g.Area,
		Warehouse: string(g.Warehouse),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func (m *GateMapper) ToEntities(gates []*model.Gate) []*entity.Gate {
	entities := make([]*entity.Gate, len(gates))
	for i, g := range gates {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
