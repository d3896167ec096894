// Package validation decides whether a character may move into a theme.
//
// Rules are pure functions of a Context. A Validator runs every rule it
// holds without stopping at the first failure, so callers see all blocking
// issues at once. The Registry hands out the validator for a theme category.
package validation

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Context is everything a rule may look at
type Context struct {
	Character *entities.Character

	// FromTheme is nil when the character has no active theme
	FromTheme      *entities.Theme
	ToTheme        *entities.Theme
	TransitionType entities.TransitionType

	// CampaignEventID is what the caller asked for. CampaignEvent is nil
	// when no ID was given or the event could not be found.
	CampaignEventID string
	CampaignEvent   *entities.CampaignEvent

	// ItemWeights holds pounds per item ID for the items the transition
	// touches. Missing entries weigh nothing.
	ItemWeights map[string]float64
}

// Findings is what one rule reports
type Findings struct {
	Errors   []*entities.ThemeValidationError
	Warnings []*entities.ThemeValidationError
}

// Rule is one independent check
type Rule interface {
	Name() string
	Validate(vctx *Context) Findings
}

func failed(errorType, message string, ctx map[string]any) Findings {
	return Findings{
		Errors: []*entities.ThemeValidationError{{
			ErrorType: errorType,
			Message:   message,
			Context:   ctx,
		}},
	}
}

// netAdjustment is the ability change of leaving from and entering to
func netAdjustment(from, to *entities.Theme, ability entities.Ability) int32 {
	var delta int32
	if from != nil {
		delta -= from.AbilityAdjustments[ability]
	}
	if to != nil {
		delta += to.AbilityAdjustments[ability]
	}
	return delta
}

// touchedAbilities lists, in sheet order, the abilities either theme adjusts
func touchedAbilities(from, to *entities.Theme) []entities.Ability {
	var out []entities.Ability
	for _, ability := range entities.AllAbilities {
		_, inFrom := adjustments(from)[ability]
		_, inTo := adjustments(to)[ability]
		if inFrom || inTo {
			out = append(out, ability)
		}
	}
	return out
}

func adjustments(theme *entities.Theme) entities.AbilityScores {
	if theme == nil {
		return nil
	}
	return theme.AbilityAdjustments
}

// projectedInventory is the inventory after the from-theme's grants are
// handed back and the to-theme's grants are added
func projectedInventory(character *entities.Character, from, to *entities.Theme) map[string]int32 {
	inventory := make(map[string]int32, len(character.Inventory))
	for _, item := range character.Inventory {
		inventory[item.ItemID] += item.Quantity
	}
	if from != nil {
		for _, granted := range from.Equipment {
			inventory[granted.ItemID] -= granted.Quantity
			if inventory[granted.ItemID] <= 0 {
				delete(inventory, granted.ItemID)
			}
		}
	}
	if to != nil {
		for _, granted := range to.Equipment {
			inventory[granted.ItemID] += granted.Quantity
		}
	}
	return inventory
}
