package messagehub

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-progression/internal/redis"
)

// DefaultChannelPrefix namespaces Message Hub channels in Redis
const DefaultChannelPrefix = "messagehub:"

// RedisConfig contains configuration for the Redis publisher
type RedisConfig struct {
	Client        redisclient.Client
	Clock         clock.Clock
	ChannelPrefix string
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// RedisPublisher publishes envelopes with Redis PUBLISH
type RedisPublisher struct {
	client redisclient.Client
	clock  clock.Clock
	prefix string
}

// NewRedisPublisher creates a publisher on channels "<prefix><topic>"
func NewRedisPublisher(cfg *RedisConfig) (*RedisPublisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	prefix := cfg.ChannelPrefix
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}

	return &RedisPublisher{
		client: cfg.Client,
		clock:  c,
		prefix: prefix,
	}, nil
}

// Channel returns the Redis channel used for topic
func (p *RedisPublisher) Channel(topic string) string {
	return p.prefix + topic
}

// Publish implements Publisher
func (p *RedisPublisher) Publish(ctx context.Context, topic string, payload map[string]any) error {
	if topic == "" {
		return errors.InvalidArgument("topic cannot be empty")
	}

	data, err := json.Marshal(Envelope{
		Topic:       topic,
		Payload:     payload,
		PublishedAt: p.clock.Now().Unix(),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s payload", topic)
	}

	if err := p.client.Publish(ctx, p.Channel(topic), data).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to publish to message hub").
			WithMeta("topic", topic)
	}

	return nil
}
