package domain

import (
	"time"

	"github.com/google/uuid"
)

const EventHotspotCreated = "hotspot.created"

type HotspotEvent struct {
	EventID    uuid.UUID `json:"eventId"`
	Type       string    `json:"type"`
	Hotspot    Hotspot   `json:"hotspot"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewHotspotCreated(h Hotspot) HotspotEvent {
	return HotspotEvent{
		EventID:    uuid.New(),
		Type:       EventHotspotCreated,
		Hotspot:    h,
		OccurredAt: time.UnixMilli(h.CreatedAt).UTC(),
	}
}
