package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveGateRequest struct {
	GateNo    string `json:"gate_no" validate:"required"`
	Area      string `json:"area" validate:"required"`
	Warehouse string `json:"warehouse" validate:"required"`
}

type ListGateRequest struct {
	Search    string `query:"search"`
	Warehouse string `query:"warehouse"`
	SortBy    string `query:"sortBy"`
	SortDir   string `query:"sortDir"`
}

type GateResponse struct {
	Id        uuid.UUID `json:"id"`
	GateNo    string    `json:"gate_no"`
	Area      string    `json:"area"`
	Warehouse string    `json:"warehouse"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GateImportRow struct {
	RowNumber int
	GateNo    string
	Area      string
	Warehouse string
}

type GateImportError struct {
	RowNumber int    `json:"rowNumber"`
	GateNo    string `json:"gateNo"`
	Warehouse string `json:"warehouse"`
	Message   string `json:"message"`
}

type GateImportReport struct {
	TotalRows   int               `json:"totalRows"`
	SuccessRows int               `json:"successRows"`
	FailedRows  int               `json:"failedRows"`
	Errors      []GateImportError `json:"errors"`
}
