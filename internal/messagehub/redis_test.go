package messagehub_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/messagehub"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-progression/internal/redis"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
)

type RedisPublisherTestSuite struct {
	suite.Suite
	client    redisclient.Client
	publisher *messagehub.RedisPublisher
	ctx       context.Context
}

func TestRedisPublisherSuite(t *testing.T) {
	suite.Run(t, new(RedisPublisherTestSuite))
}

func (s *RedisPublisherTestSuite) SetupTest() {
	s.client, _ = testutils.CreateTestRedis(s.T())
	s.ctx = context.Background()

	publisher, err := messagehub.NewRedisPublisher(&messagehub.RedisConfig{
		Client: s.client,
		Clock:  clock.NewFixed(time.Unix(1700000000, 0)),
	})
	s.Require().NoError(err)
	s.publisher = publisher
}

func (s *RedisPublisherTestSuite) TestConfigValidation() {
	_, err := messagehub.NewRedisPublisher(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisPublisherTestSuite) TestPublishDeliversEnvelope() {
	channel := s.publisher.Channel(messagehub.TopicLevelChanged)
	s.Equal("messagehub:level.changed", channel)

	sub := s.client.Subscribe(s.ctx, channel)
	defer func() { _ = sub.Close() }()
	_, err := sub.Receive(s.ctx)
	s.Require().NoError(err)

	s.Require().NoError(s.publisher.Publish(s.ctx, messagehub.TopicLevelChanged, map[string]any{
		"character_id": "char_1",
		"new_level":    3,
	}))

	select {
	case msg := <-sub.Channel():
		var envelope messagehub.Envelope
		s.Require().NoError(json.Unmarshal([]byte(msg.Payload), &envelope))
		s.Equal(messagehub.TopicLevelChanged, envelope.Topic)
		s.Equal("char_1", envelope.Payload["character_id"])
		s.Equal(float64(3), envelope.Payload["new_level"])
		s.Equal(int64(1700000000), envelope.PublishedAt)
	case <-time.After(2 * time.Second):
		s.Fail("timed out waiting for message")
	}
}

func (s *RedisPublisherTestSuite) TestPublishRequiresTopic() {
	s.True(errors.IsInvalidArgument(s.publisher.Publish(s.ctx, "", nil)))
}

func (s *RedisPublisherTestSuite) TestPublishFailureIsUnavailable() {
	s.Require().NoError(s.client.Close())

	err := s.publisher.Publish(s.ctx, messagehub.TopicCharacterUpdated, map[string]any{})
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}
