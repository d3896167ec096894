package theme_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/theme"
)

const catalogYAML = `
themes:
  - id: theme_knight
    name: Knight of the Order
    category: prestige
    level_requirement: 5
    class_restrictions: [CLASS_FIGHTER, CLASS_PALADIN]
    ability_adjustments:
      charisma: 1
    features: [oath_of_service]
    equipment:
      - item_id: shield
        quantity: 1
  - id: theme_shadow_pact
    name: Shadow Pact
    category: antitheticon
    ability_adjustments:
      wisdom: -2
      charisma: 2
`

func TestParseCatalog(t *testing.T) {
	themes, err := theme.ParseCatalog(strings.NewReader(catalogYAML))
	require.NoError(t, err)
	require.Len(t, themes, 2)

	knight := themes[0]
	assert.Equal(t, entities.ThemeCategoryPrestige, knight.Category)
	assert.Equal(t, int32(5), knight.LevelRequirement)
	assert.Equal(t, []string{entities.ClassFighter, entities.ClassPaladin}, knight.ClassRestrictions)
	assert.Equal(t, int32(1), knight.AbilityAdjustments[entities.AbilityCharisma])
	assert.Equal(t, []entities.ThemeEquipment{{ItemID: "shield", Quantity: 1}}, knight.Equipment)

	assert.Equal(t, int32(-2), themes[1].AbilityAdjustments[entities.AbilityWisdom])
}

func TestParseCatalogErrors(t *testing.T) {
	testCases := []struct {
		name    string
		yaml    string
		message string
	}{
		{
			name:    "unknown category",
			yaml:    "themes:\n  - id: a\n    name: A\n    category: mythic\n",
			message: "themes[0].category",
		},
		{
			name:    "unknown ability",
			yaml:    "themes:\n  - id: a\n    name: A\n    category: standard\n    ability_adjustments:\n      luck: 1\n",
			message: "themes[0].ability_adjustments",
		},
		{
			name:    "duplicate id",
			yaml:    "themes:\n  - id: a\n    name: A\n    category: standard\n  - id: a\n    name: B\n    category: epic\n",
			message: "duplicate theme ID a",
		},
		{
			name:    "unknown field",
			yaml:    "themes:\n  - id: a\n    name: A\n    category: standard\n    flavour: spicy\n",
			message: "failed to parse theme catalog",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := theme.ParseCatalog(strings.NewReader(tc.yaml))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o600))

	themes, err := theme.LoadCatalog(path)
	require.NoError(t, err)
	assert.Len(t, themes, 2)

	_, err = theme.LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEmptyCatalog(t *testing.T) {
	themes, err := theme.ParseCatalog(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, themes)
}
