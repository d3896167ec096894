package themestate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/builders"
)

func TestComputeStateChanges(t *testing.T) {
	t.Run("from no theme", func(t *testing.T) {
		to := builders.NewThemeBuilder().
			WithAdjustment(entities.AbilityStrength, 2).
			WithFeatures("second_wind").
			WithModifiers("intimidating").
			WithEquipment("longsword", 1).
			Build()

		changes := ComputeStateChanges(nil, to)

		assert.Equal(t, entities.AbilityScores{entities.AbilityStrength: 2}, changes.AbilityChanges)
		assert.Equal(t, []entities.EquipmentChange{
			{Operation: entities.EquipmentOperationAdd, ItemID: "longsword", Quantity: 1},
		}, changes.EquipmentChanges)
		assert.Equal(t, []string{"second_wind"}, changes.AddedFeatures)
		assert.Empty(t, changes.RemovedFeatures)
		assert.Equal(t, []string{"intimidating"}, changes.AddedModifiers)
	})

	t.Run("swap themes", func(t *testing.T) {
		from := builders.NewThemeBuilder().
			WithAdjustment(entities.AbilityStrength, 1).
			WithAdjustment(entities.AbilityCharisma, 1).
			WithFeatures("mercenary_contacts", "shared").
			WithModifiers("rough").
			WithEquipment("longsword", 1).
			WithEquipment("shield", 1).
			WithEquipment("rations", 5).
			Build()
		to := builders.NewThemeBuilder().
			WithAdjustment(entities.AbilityCharisma, 1).
			WithAdjustment(entities.AbilityWisdom, 2).
			WithFeatures("shared", "oath_of_service").
			WithEquipment("shield", 1).
			WithEquipment("rations", 2).
			WithEquipment("holy-symbol", 1).
			Build()

		changes := ComputeStateChanges(from, to)

		assert.Equal(t, entities.AbilityScores{
			entities.AbilityStrength: -1,
			entities.AbilityWisdom:   2,
		}, changes.AbilityChanges)
		assert.Equal(t, []entities.EquipmentChange{
			{Operation: entities.EquipmentOperationRemove, ItemID: "longsword", Quantity: 1},
			{Operation: entities.EquipmentOperationRemove, ItemID: "rations", Quantity: 3},
			{Operation: entities.EquipmentOperationAdd, ItemID: "holy-symbol", Quantity: 1},
		}, changes.EquipmentChanges)
		assert.Equal(t, []string{"oath_of_service"}, changes.AddedFeatures)
		assert.Equal(t, []string{"mercenary_contacts"}, changes.RemovedFeatures)
		assert.Empty(t, changes.AddedModifiers)
		assert.Equal(t, []string{"rough"}, changes.RemovedModifiers)
	})

	t.Run("same theme is empty", func(t *testing.T) {
		theme := builders.NewThemeBuilder().
			WithAdjustment(entities.AbilityDexterity, 1).
			WithFeatures("skulk").
			WithEquipment("dagger", 2).
			Build()

		assert.True(t, ComputeStateChanges(theme, theme).IsEmpty())
	})
}

func TestDifference(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, difference([]string{"a", "b", "c", "a"}, []string{"b"}))
	assert.Nil(t, difference(nil, []string{"b"}))
}
