// Package messagehub publishes integration events to the Message Hub. Delivery
// is best-effort and at-most-once: callers log failures and move on.
package messagehub

//go:generate mockgen -destination=mock/mock_publisher.go -package=messagehubmock github.com/KirkDiggler/rpg-progression/internal/messagehub Publisher

import (
	"context"
)

// Topics produced by this service
const (
	TopicThemeTransitionCompleted = "theme.transition.completed"
	TopicCharacterUpdated         = "character.updated"
	TopicExperienceGained         = "experience.gained"
	TopicLevelChanged             = "level.changed"
	TopicMilestoneAchieved        = "milestone.achieved"
	TopicAchievementUnlocked      = "achievement.unlocked"
)

// Topics lists every topic this service produces
var Topics = []string{
	TopicThemeTransitionCompleted,
	TopicCharacterUpdated,
	TopicExperienceGained,
	TopicLevelChanged,
	TopicMilestoneAchieved,
	TopicAchievementUnlocked,
}

// Publisher sends a JSON-compatible payload on a topic
type Publisher interface {
	Publish(ctx context.Context, topic string, payload map[string]any) error
}

// Envelope is the wire format shared by every transport
type Envelope struct {
	Topic       string         `json:"topic"`
	Payload     map[string]any `json:"payload"`
	PublishedAt int64          `json:"published_at"`
}
