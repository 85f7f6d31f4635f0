package entity

import (
	"time"

	"github.com/google/uuid"
)

type QueueStatus string

const (
	StatusMenunggu QueueStatus = "MENUNGGU"
	StatusInWH     QueueStatus = "IN_WH"
	StatusProses   QueueStatus = "PROSES"
	StatusSelesai  QueueStatus = "SELESAI"
	StatusBatal    QueueStatus = "BATAL"
)

// StatusFlow is the forward path of the queue lifecycle. BATAL branches off
// MENUNGGU and IN_WH and is not part of the flow itself.
var StatusFlow = []QueueStatus{StatusMenunggu, StatusInWH, StatusProses, StatusSelesai}

// FlowIndex returns the position of s on the forward path, or -1 for BATAL
// and unknown values.
func FlowIndex(s QueueStatus) int {
	for i, v := range StatusFlow {
		if v == s {
			return i
		}
	}
	return -1
}

// IsFinal reports whether s permits no further transitions or field edits.
func (s QueueStatus) IsFinal() bool {
	return s == StatusSelesai || s == StatusBatal
}

func (s QueueStatus) Valid() bool {
	return s == StatusBatal || FlowIndex(s) >= 0
}

type QueueCategory string

const (
	CategoryReceiving QueueCategory = "RECEIVING"
	CategoryDelivery  QueueCategory = "DELIVERY"
)

func (c QueueCategory) Valid() bool {
	return c == CategoryReceiving || c == CategoryDelivery
}

type QueueEntry struct {
	Id              uuid.UUID
	Category        QueueCategory
	Status          QueueStatus
	CustomerId      uuid.UUID
	DriverName      string
	TruckNumber     string
	ContainerNumber *string
	GateId          *uuid.UUID
	Notes           *string
	RegisterTime    time.Time
	InWhTime        *time.Time
	StartTime       *time.Time
	FinishTime      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Customer *Customer
	Gate     *Gate
	Logs     []*QueueLog
}

type QueueLogAction string

const (
	LogActionCreate       QueueLogAction = "CREATE"
	LogActionUpdate       QueueLogAction = "UPDATE"
	LogActionStatusChange QueueLogAction = "STATUS_CHANGE"
)

// QueueLog is one append-only audit row. Exactly one is written per mutating
// action on its entry.
type QueueLog struct {
	Id         uuid.UUID
	EntryId    uuid.UUID
	Action     QueueLogAction
	OldStatus  *QueueStatus
	NewStatus  *QueueStatus
	ActorId    *uuid.UUID
	ActorName  string
	CreatedAt  time.Time
}
