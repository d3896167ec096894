// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"sync"

	"go.uber.org/mock/gomock"

	equipmentmock "github.com/KirkDiggler/rpg-progression/internal/clients/equipment/mock"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	messagehubmock "github.com/KirkDiggler/rpg-progression/internal/messagehub/mock"
)

// Message is one captured Publish call
type Message struct {
	Topic   string
	Payload map[string]any
}

// Published collects messages sent through a mock publisher
type Published struct {
	mu       sync.Mutex
	messages []Message
}

// Topics returns the topics in publish order
func (p *Published) Topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	topics := make([]string, len(p.messages))
	for i, m := range p.messages {
		topics[i] = m.Topic
	}
	return topics
}

// Messages returns every message published on topic
func (p *Published) Messages(topic string) []Message {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []Message
	for _, m := range p.messages {
		if m.Topic == topic {
			out = append(out, m)
		}
	}
	return out
}

// Last returns the payload of the latest message on topic, or nil
func (p *Published) Last(topic string) map[string]any {
	messages := p.Messages(topic)
	if len(messages) == 0 {
		return nil
	}
	return messages[len(messages)-1].Payload
}

// CapturePublishes accepts any number of publishes and records them
func CapturePublishes(mockPublisher *messagehubmock.MockPublisher) *Published {
	published := &Published{}
	mockPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, topic string, payload map[string]any) error {
			published.mu.Lock()
			defer published.mu.Unlock()
			published.messages = append(published.messages, Message{Topic: topic, Payload: payload})
			return nil
		}).
		AnyTimes()
	return published
}

// ExpectPublishFailure makes every publish on topic fail with err
func ExpectPublishFailure(mockPublisher *messagehubmock.MockPublisher, topic string, err error) *gomock.Call {
	return mockPublisher.EXPECT().
		Publish(gomock.Any(), topic, gomock.Any()).
		Return(err).
		AnyTimes()
}

// ExpectItemWeights serves weights for known items and NotFound otherwise
func ExpectItemWeights(mockClient *equipmentmock.MockClient, weights map[string]float64) {
	mockClient.EXPECT().
		GetItemWeight(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, itemID string) (float64, error) {
			weight, ok := weights[itemID]
			if !ok {
				return 0, errors.NotFoundf("no weight known for item %s", itemID)
			}
			return weight, nil
		}).
		AnyTimes()
}
