package equipment

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

type mockItemSource struct {
	mock.Mock
}

func (m *mockItemSource) GetEquipment(key string) (dnd5e.EquipmentInterface, error) {
	args := m.Called(key)
	item, _ := args.Get(0).(dnd5e.EquipmentInterface)
	return item, args.Error(1)
}

func TestGetItemWeight(t *testing.T) {
	t.Run("weapon", func(t *testing.T) {
		source := new(mockItemSource)
		c := newClient(source)

		source.On("GetEquipment", "longsword").Return(&entities.Weapon{
			Key:    "longsword",
			Name:   "Longsword",
			Weight: 3.0,
		}, nil).Once()

		weight, err := c.GetItemWeight(context.Background(), "longsword")
		require.NoError(t, err)
		assert.Equal(t, 3.0, weight)

		// second lookup is served from the cache
		weight, err = c.GetItemWeight(context.Background(), "longsword")
		require.NoError(t, err)
		assert.Equal(t, 3.0, weight)

		source.AssertExpectations(t)
	})

	t.Run("armor from constant ID", func(t *testing.T) {
		source := new(mockItemSource)
		c := newClient(source)

		source.On("GetEquipment", "chain-mail").Return(&entities.Armor{
			Key:    "chain-mail",
			Name:   "Chain Mail",
			Weight: 55.0,
		}, nil)

		weight, err := c.GetItemWeight(context.Background(), "ITEM_CHAIN_MAIL")
		require.NoError(t, err)
		assert.Equal(t, 55.0, weight)
		source.AssertExpectations(t)
	})

	t.Run("gear", func(t *testing.T) {
		source := new(mockItemSource)
		c := newClient(source)

		source.On("GetEquipment", "shield").Return(&entities.Equipment{
			Key:    "shield",
			Name:   "Shield",
			Weight: 6.0,
		}, nil)

		weight, err := c.GetItemWeight(context.Background(), "shield")
		require.NoError(t, err)
		assert.Equal(t, 6.0, weight)
	})

	t.Run("api error", func(t *testing.T) {
		source := new(mockItemSource)
		c := newClient(source)

		source.On("GetEquipment", "bag-of-holding").Return(nil, stderrors.New("404"))

		_, err := c.GetItemWeight(context.Background(), "bag-of-holding")
		require.Error(t, err)
		assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
	})

	t.Run("empty ID", func(t *testing.T) {
		c := newClient(new(mockItemSource))

		_, err := c.GetItemWeight(context.Background(), "")
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestToAPIFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "ITEM_LONGSWORD", expected: "longsword"},
		{input: "ITEM_CHAIN_MAIL", expected: "chain-mail"},
		{input: "explorers-pack", expected: "explorers-pack"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, toAPIFormat(tt.input))
	}
}
