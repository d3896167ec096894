package messagehub_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-progression/internal/messagehub"
	messagehubmock "github.com/KirkDiggler/rpg-progression/internal/messagehub/mock"
)

func TestFanoutPublishesToEveryPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := messagehubmock.NewMockPublisher(ctrl)
	second := messagehubmock.NewMockPublisher(ctrl)

	ctx := context.Background()
	payload := map[string]any{"character_id": "char_1"}
	failure := stderrors.New("redis down")

	first.EXPECT().Publish(ctx, messagehub.TopicCharacterUpdated, payload).Return(failure)
	second.EXPECT().Publish(ctx, messagehub.TopicCharacterUpdated, payload).Return(nil)

	err := messagehub.NewFanout(first, nil, second).Publish(ctx, messagehub.TopicCharacterUpdated, payload)
	assert.ErrorIs(t, err, failure)
}

func TestFanoutNoFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	only := messagehubmock.NewMockPublisher(ctrl)
	only.EXPECT().Publish(gomock.Any(), messagehub.TopicLevelChanged, gomock.Any()).Return(nil)

	assert.NoError(t, messagehub.NewFanout(only).Publish(context.Background(), messagehub.TopicLevelChanged, nil))
}
