package events

import "time"

// Topic names on the in-process bus.
const (
	TopicQueueChanged = "QUEUE_CHANGED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "QUEUE_STATUS_CHANGE").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewQueueCreated fires when a truck is registered into the queue.
func NewQueueCreated(entryId string) Event {
	return BaseEvent{
		Type: "QUEUE_CREATE",
		Data: map[string]interface{}{
			"entry_id": entryId,
		},
		OccurredAt: time.Now(),
	}
}

// NewQueueUpdated fires when an entry's fields are patched without a
// status transition.
func NewQueueUpdated(entryId string) Event {
	return BaseEvent{
		Type: "QUEUE_UPDATE",
		Data: map[string]interface{}{
			"entry_id": entryId,
		},
		OccurredAt: time.Now(),
	}
}

// NewQueueStatusChanged fires on every committed status transition.
func NewQueueStatusChanged(entryId, oldStatus, newStatus string) Event {
	return BaseEvent{
		Type: "QUEUE_STATUS_CHANGE",
		Data: map[string]interface{}{
			"entry_id":   entryId,
			"old_status": oldStatus,
			"new_status": newStatus,
		},
		OccurredAt: time.Now(),
	}
}
