package builders

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// ThemeBuilder provides a fluent interface for building test Theme instances
type ThemeBuilder struct {
	theme *entities.Theme
}

// NewThemeBuilder creates an unrestricted level 1 standard theme
func NewThemeBuilder() *ThemeBuilder {
	return &ThemeBuilder{
		theme: &entities.Theme{
			ID:               "theme-test-123",
			Name:             "Test Theme",
			Category:         entities.ThemeCategoryStandard,
			LevelRequirement: 1,
		},
	}
}

// WithID sets the theme ID
func (b *ThemeBuilder) WithID(id string) *ThemeBuilder {
	b.theme.ID = id
	return b
}

// WithName sets the theme name
func (b *ThemeBuilder) WithName(name string) *ThemeBuilder {
	b.theme.Name = name
	return b
}

// WithCategory sets the category
func (b *ThemeBuilder) WithCategory(category entities.ThemeCategory) *ThemeBuilder {
	b.theme.Category = category
	return b
}

// WithLevelRequirement sets the minimum level
func (b *ThemeBuilder) WithLevelRequirement(level int32) *ThemeBuilder {
	b.theme.LevelRequirement = level
	return b
}

// WithClassRestrictions limits the theme to the given classes
func (b *ThemeBuilder) WithClassRestrictions(classes ...string) *ThemeBuilder {
	b.theme.ClassRestrictions = classes
	return b
}

// WithRaceRestrictions limits the theme to the given races
func (b *ThemeBuilder) WithRaceRestrictions(races ...string) *ThemeBuilder {
	b.theme.RaceRestrictions = races
	return b
}

// WithAdjustment sets a signed ability adjustment
func (b *ThemeBuilder) WithAdjustment(ability entities.Ability, delta int32) *ThemeBuilder {
	if b.theme.AbilityAdjustments == nil {
		b.theme.AbilityAdjustments = make(entities.AbilityScores)
	}
	b.theme.AbilityAdjustments[ability] = delta
	return b
}

// WithFeatures sets the granted features
func (b *ThemeBuilder) WithFeatures(features ...string) *ThemeBuilder {
	b.theme.Features = features
	return b
}

// WithModifiers sets the granted modifiers
func (b *ThemeBuilder) WithModifiers(modifiers ...string) *ThemeBuilder {
	b.theme.Modifiers = modifiers
	return b
}

// WithEquipment adds a granted item
func (b *ThemeBuilder) WithEquipment(itemID string, quantity int32) *ThemeBuilder {
	b.theme.Equipment = append(b.theme.Equipment, entities.ThemeEquipment{
		ItemID:   itemID,
		Quantity: quantity,
	})
	return b
}

// Build returns the theme
func (b *ThemeBuilder) Build() *entities.Theme {
	out := *b.theme
	out.AbilityAdjustments = b.theme.AbilityAdjustments.Clone()
	out.Equipment = append([]entities.ThemeEquipment(nil), b.theme.Equipment...)
	return &out
}
