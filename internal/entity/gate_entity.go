package entity

import (
	"time"

	"github.com/google/uuid"
)

type Warehouse string

const (
	WarehouseWH1 Warehouse = "WH1"
	WarehouseWH2 Warehouse = "WH2"
	WarehouseDG  Warehouse = "DG"
)

func (w Warehouse) Valid() bool {
	return w == WarehouseWH1 || w == WarehouseWH2 || w == WarehouseDG
}

type Gate struct {
	Id        uuid.UUID
	GateNo    string
	Area      string
	Warehouse Warehouse
	CreatedAt time.Time
	UpdatedAt time.Time
}
