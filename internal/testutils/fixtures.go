package testutils

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/builders"
)

// Fixture theme IDs
const (
	ThemeSellsword     = "theme_sellsword"
	ThemeKnight        = "theme_knight"
	ThemeDragonLord    = "theme_dragon_lord"
	ThemeShadowPact    = "theme_shadow_pact"
	ThemeArcaneScholar = "theme_arcane_scholar"

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Thorin Oakenshield"
)

// CreateTestCharacter creates a level 3 human fighter
func CreateTestCharacter(id string) *entities.Character {
	return builders.NewCharacterBuilder().
		WithID(id).
		WithName(TestCharacterName).
		WithLevel(3).
		WithExperience(900).
		WithAbility(entities.AbilityStrength, 16).
		WithAbility(entities.AbilityConstitution, 14).
		WithHitPoints(28, 28).
		Build()
}

// CreateTestThemes returns a small catalog covering every category
func CreateTestThemes() []*entities.Theme {
	return []*entities.Theme{
		builders.NewThemeBuilder().
			WithID(ThemeSellsword).
			WithName("Sellsword").
			WithAdjustment(entities.AbilityStrength, 1).
			WithFeatures("mercenary_contacts").
			WithEquipment("longsword", 1).
			Build(),
		builders.NewThemeBuilder().
			WithID(ThemeKnight).
			WithName("Knight of the Order").
			WithCategory(entities.ThemeCategoryPrestige).
			WithLevelRequirement(5).
			WithClassRestrictions(entities.ClassFighter, entities.ClassPaladin).
			WithAdjustment(entities.AbilityCharisma, 1).
			WithFeatures("oath_of_service").
			WithModifiers("mounted_combat").
			Build(),
		builders.NewThemeBuilder().
			WithID(ThemeDragonLord).
			WithName("Dragon Lord").
			WithCategory(entities.ThemeCategoryEpic).
			WithLevelRequirement(15).
			WithAdjustment(entities.AbilityStrength, 2).
			WithFeatures("draconic_presence").
			Build(),
		builders.NewThemeBuilder().
			WithID(ThemeShadowPact).
			WithName("Shadow Pact").
			WithCategory(entities.ThemeCategoryAntitheticon).
			WithAdjustment(entities.AbilityWisdom, -2).
			WithAdjustment(entities.AbilityCharisma, 2).
			WithFeatures("whispers_of_the_void").
			WithModifiers("corrupted").
			Build(),
		builders.NewThemeBuilder().
			WithID(ThemeArcaneScholar).
			WithName("Arcane Scholar").
			WithRaceRestrictions(entities.RaceElf, entities.RaceGnome).
			WithAdjustment(entities.AbilityIntelligence, 1).
			Build(),
	}
}
