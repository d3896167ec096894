package themestate

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// ComputeStateChanges returns the delta of leaving from and entering to.
// from may be nil.
func ComputeStateChanges(from, to *entities.Theme) *entities.StateChanges {
	if from == nil {
		from = &entities.Theme{}
	}

	changes := &entities.StateChanges{
		AbilityChanges: make(entities.AbilityScores),
	}

	for _, ability := range entities.AllAbilities {
		delta := to.AbilityAdjustments[ability] - from.AbilityAdjustments[ability]
		if delta != 0 {
			changes.AbilityChanges[ability] = delta
		}
	}

	changes.EquipmentChanges = equipmentChanges(from.Equipment, to.Equipment)
	changes.AddedFeatures = difference(to.Features, from.Features)
	changes.RemovedFeatures = difference(from.Features, to.Features)
	changes.AddedModifiers = difference(to.Modifiers, from.Modifiers)
	changes.RemovedModifiers = difference(from.Modifiers, to.Modifiers)

	return changes
}

// equipmentChanges removes the old grants before adding the new ones. An
// item granted by both themes only moves by the difference.
func equipmentChanges(from, to []entities.ThemeEquipment) []entities.EquipmentChange {
	fromQty := quantities(from)
	toQty := quantities(to)

	var out []entities.EquipmentChange
	done := make(map[string]bool)
	for _, item := range from {
		if done[item.ItemID] {
			continue
		}
		done[item.ItemID] = true
		if delta := fromQty[item.ItemID] - toQty[item.ItemID]; delta > 0 {
			out = append(out, entities.EquipmentChange{
				Operation: entities.EquipmentOperationRemove,
				ItemID:    item.ItemID,
				Quantity:  delta,
			})
		}
	}

	done = make(map[string]bool)
	for _, item := range to {
		if done[item.ItemID] {
			continue
		}
		done[item.ItemID] = true
		if delta := toQty[item.ItemID] - fromQty[item.ItemID]; delta > 0 {
			out = append(out, entities.EquipmentChange{
				Operation: entities.EquipmentOperationAdd,
				ItemID:    item.ItemID,
				Quantity:  delta,
			})
		}
	}
	return out
}

func quantities(items []entities.ThemeEquipment) map[string]int32 {
	out := make(map[string]int32, len(items))
	for _, item := range items {
		out[item.ItemID] += item.Quantity
	}
	return out
}

// difference returns the members of a missing from b, keeping a's order
func difference(a, b []string) []string {
	seen := make(map[string]struct{}, len(b))
	for _, s := range b {
		seen[s] = struct{}{}
	}
	var out []string
	for _, s := range a {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
