package messagehub_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-progression/internal/messagehub"
)

func TestLocalPublisherDeliversToSubscribers(t *testing.T) {
	bus := events.NewBus()
	publisher, err := messagehub.NewLocalPublisher(bus)
	require.NoError(t, err)

	var received []map[string]any
	bus.SubscribeFunc(messagehub.TopicMilestoneAchieved, 0, func(_ context.Context, e events.Event) error {
		payload, ok := e.Context().Get(messagehub.PayloadKey)
		require.True(t, ok)
		received = append(received, payload.(map[string]any))
		assert.Equal(t, messagehub.TopicMilestoneAchieved, e.Type())
		return nil
	})

	require.NoError(t, publisher.Publish(context.Background(), messagehub.TopicMilestoneAchieved, map[string]any{
		"character_id": "char_1",
		"milestone_id": "ms_dragon",
	}))
	require.NoError(t, publisher.Publish(context.Background(), messagehub.TopicAchievementUnlocked, map[string]any{
		"character_id": "char_1",
	}))

	require.Len(t, received, 1)
	assert.Equal(t, "ms_dragon", received[0]["milestone_id"])
}

func TestNewLocalPublisherRequiresBus(t *testing.T) {
	_, err := messagehub.NewLocalPublisher(nil)
	assert.Error(t, err)
}
