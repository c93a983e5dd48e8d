package events

import (
	"context"
	"encoding/json"
	"log"

	"wayfarer/cache"
)

const channel = "wayfarer-events"

// Event is published to Redis whenever something worth indexing happens:
// a signup, a tour creation, an enrollment.
type Event struct {
	Name     string `json:"name"`
	EntityID string `json:"entity_id"`
	UserID   string `json:"user_id,omitempty"`
}

type Emitter struct {
	cache *cache.Cache
}

func NewEmitter(c *cache.Cache) *Emitter {
	return &Emitter{cache: c}
}

// Emit publishes the event best-effort; failures are logged, never
// surfaced to the request.
func (e *Emitter) Emit(ctx context.Context, event Event) {
	if e == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("events: marshal %s: %v", event.Name, err)
		return
	}
	if err := e.cache.Publish(ctx, channel, data); err != nil {
		log.Printf("events: publish %s: %v", event.Name, err)
	}
}
