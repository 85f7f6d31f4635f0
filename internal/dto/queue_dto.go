package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateQueueRequest struct {
	Category        string     `json:"category" validate:"required,oneof=RECEIVING DELIVERY"`
	CustomerId      uuid.UUID  `json:"customer_id" validate:"required"`
	DriverName      string     `json:"driver_name" validate:"required"`
	TruckNumber     string     `json:"truck_number" validate:"required"`
	ContainerNumber *string    `json:"container_number"`
	RegisterTime    *time.Time `json:"register_time"`
	Notes           *string    `json:"notes"`
}

// UpdateQueueRequest is a partial patch; nil fields stay untouched.
type UpdateQueueRequest struct {
	Id              uuid.UUID  `json:"-"`
	Category        *string    `json:"category" validate:"omitempty,oneof=RECEIVING DELIVERY"`
	CustomerId      *uuid.UUID `json:"customer_id"`
	DriverName      *string    `json:"driver_name"`
	TruckNumber     *string    `json:"truck_number"`
	ContainerNumber *string    `json:"container_number"`
	Notes           *string    `json:"notes"`
}

type ChangeStatusRequest struct {
	NewStatus string     `json:"new_status" validate:"required"`
	GateId    *uuid.UUID `json:"gate_id"`
}

type ListQueueRequest struct {
	Date     string `query:"date"`
	DateFrom string `query:"dateFrom"`
	DateTo   string `query:"dateTo"`
	Status   string `query:"status"`
	Category string `query:"category"`
	Search   string `query:"search"`
	SortBy   string `query:"sortBy"`
	SortDir  string `query:"sortDir"`
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
}

type ExportQueueRequest struct {
	DateFrom string `query:"dateFrom"`
	DateTo   string `query:"dateTo"`
}

type QueueLogResponse struct {
	Id        uuid.UUID `json:"id"`
	Action    string    `json:"action"`
	OldStatus *string   `json:"old_status"`
	NewStatus *string   `json:"new_status"`
	ActorName string    `json:"actor_name"`
	CreatedAt time.Time `json:"created_at"`
}

type QueueEntryResponse struct {
	Id              uuid.UUID          `json:"id"`
	Category        string             `json:"category"`
	Status          string             `json:"status"`
	CustomerId      uuid.UUID          `json:"customer_id"`
	Customer        *CustomerResponse  `json:"customer,omitempty"`
	DriverName      string             `json:"driver_name"`
	TruckNumber     string             `json:"truck_number"`
	ContainerNumber *string            `json:"container_number"`
	GateId          *uuid.UUID         `json:"gate_id"`
	Gate            *GateResponse      `json:"gate,omitempty"`
	Notes           *string            `json:"notes"`
	RegisterTime    time.Time          `json:"register_time"`
	InWhTime        *time.Time         `json:"in_wh_time"`
	StartTime       *time.Time         `json:"start_time"`
	FinishTime      *time.Time         `json:"finish_time"`
	PriorityRank    int                `json:"priority_rank"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	Logs            []QueueLogResponse `json:"logs,omitempty"`
}

type ListMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

type ListQueueResponse struct {
	Data []QueueEntryResponse `json:"data"`
	Meta ListMeta             `json:"meta"`
}

// Actor is the resolved identity performing a mutation, defaulting to the
// "system" sentinel when the request carries no authenticated user.
type Actor struct {
	Id   *uuid.UUID
	Name string
}
