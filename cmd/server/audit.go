package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-progression/internal/messagehub"
)

// subscribeAudit logs every locally published event at debug level
func subscribeAudit(bus events.EventBus, logger *slog.Logger) {
	for _, topic := range messagehub.Topics {
		bus.SubscribeFunc(topic, 0, func(ctx context.Context, e events.Event) error {
			payload, _ := e.Context().Get(messagehub.PayloadKey)
			logger.DebugContext(ctx, "event published",
				slog.String("topic", e.Type()),
				slog.Any("payload", payload))
			return nil
		})
	}
}
