package messagehub

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// PayloadKey is the event context key holding the published payload
const PayloadKey = "payload"

// EntityTypeCharacter is the rpg-toolkit entity type for event sources
const EntityTypeCharacter = "character"

// LocalPublisher delivers events to in-process subscribers on an rpg-toolkit
// event bus. Subscribers read the payload from the event context.
type LocalPublisher struct {
	bus events.EventBus
}

// NewLocalPublisher wraps bus
func NewLocalPublisher(bus events.EventBus) (*LocalPublisher, error) {
	if bus == nil {
		return nil, errors.InvalidArgument("event bus cannot be nil")
	}
	return &LocalPublisher{bus: bus}, nil
}

// Bus exposes the underlying bus for subscribers
func (p *LocalPublisher) Bus() events.EventBus {
	return p.bus
}

// Publish implements Publisher
func (p *LocalPublisher) Publish(ctx context.Context, topic string, payload map[string]any) error {
	if topic == "" {
		return errors.InvalidArgument("topic cannot be empty")
	}

	var source core.Entity
	if id, ok := payload["character_id"].(string); ok && id != "" {
		source = &entity{id: id, kind: EntityTypeCharacter}
	}

	event := events.NewGameEvent(topic, source, nil)
	event.Context().Set(PayloadKey, payload)

	if err := p.bus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s on local bus", topic)
	}
	return nil
}

// entity is the minimal core.Entity carried as an event source
type entity struct {
	id   string
	kind string
}

func (e *entity) GetID() string   { return e.id }
func (e *entity) GetType() string { return e.kind }
