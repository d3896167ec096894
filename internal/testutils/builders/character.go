// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder creates a level 1 human fighter with average scores
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: &entities.Character{
			ID:       "char-test-123",
			PlayerID: "player-test-123",
			Name:     "Test Character",
			Level:    1,
			RaceID:   entities.RaceHuman,
			ClassID:  entities.ClassFighter,
			AbilityScores: entities.AbilityScores{
				entities.AbilityStrength:     10,
				entities.AbilityDexterity:    10,
				entities.AbilityConstitution: 10,
				entities.AbilityIntelligence: 10,
				entities.AbilityWisdom:       10,
				entities.AbilityCharisma:     10,
			},
			CurrentHP:        10,
			MaxHP:            10,
			ProficiencyBonus: 2,
		},
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithPlayerID sets the player ID
func (b *CharacterBuilder) WithPlayerID(playerID string) *CharacterBuilder {
	b.character.PlayerID = playerID
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithLevel sets the level and the matching proficiency bonus
func (b *CharacterBuilder) WithLevel(level int32) *CharacterBuilder {
	b.character.Level = level
	b.character.ProficiencyBonus = 2 + (level-1)/4
	return b
}

// WithExperience sets the experience points
func (b *CharacterBuilder) WithExperience(xp int32) *CharacterBuilder {
	b.character.ExperiencePoints = xp
	return b
}

// WithRace sets the race
func (b *CharacterBuilder) WithRace(raceID string) *CharacterBuilder {
	b.character.RaceID = raceID
	return b
}

// WithClass sets the class
func (b *CharacterBuilder) WithClass(classID string) *CharacterBuilder {
	b.character.ClassID = classID
	return b
}

// WithAbility sets a single ability score
func (b *CharacterBuilder) WithAbility(ability entities.Ability, score int32) *CharacterBuilder {
	b.character.AbilityScores[ability] = score
	return b
}

// WithHitPoints sets current and maximum hit points
func (b *CharacterBuilder) WithHitPoints(current, maxHP int32) *CharacterBuilder {
	b.character.CurrentHP = current
	b.character.MaxHP = maxHP
	return b
}

// WithItem adds an inventory stack
func (b *CharacterBuilder) WithItem(itemID string, quantity int32) *CharacterBuilder {
	b.character.Inventory = append(b.character.Inventory, entities.InventoryItem{
		ItemID:   itemID,
		Quantity: quantity,
	})
	return b
}

// Build returns a copy of the character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character.Clone()
}
