package specification

import "gorm.io/gorm"

type GateSearch struct {
	Query string
}

func (s GateSearch) Apply(db *gorm.DB) *gorm.DB {
	like := "%" + s.Query + "%"
	return db.Where("gate_no ILIKE ? OR area ILIKE ?", like, like)
}

type ByWarehouse struct {
	Warehouse string
}

func (s ByWarehouse) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("warehouse = ?", s.Warehouse)
}

type AdminUserSearch struct {
	Query string
}

func (s AdminUserSearch) Apply(db *gorm.DB) *gorm.DB {
	like := "%" + s.Query + "%"
	return db.Where("name ILIKE ? OR position ILIKE ? OR phone ILIKE ? OR username ILIKE ?",
		like, like, like, like)
}
