package theme

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Catalog is the on-disk theme file
//
//	themes:
//	  - id: theme_knight
//	    name: Knight of the Order
//	    category: prestige
//	    level_requirement: 5
//	    ability_adjustments:
//	      charisma: 1
type Catalog struct {
	Themes []*entities.Theme `yaml:"themes"`
}

// LoadCatalog reads and validates a YAML theme catalog
func LoadCatalog(path string) ([]*entities.Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open theme catalog %s", path)
	}
	defer func() { _ = f.Close() }()

	return ParseCatalog(f)
}

// ParseCatalog decodes and validates a YAML theme catalog
func ParseCatalog(r io.Reader) ([]*entities.Theme, error) {
	var catalog Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil {
		if err == io.EOF {
			return []*entities.Theme{}, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse theme catalog")
	}

	if err := ValidateThemes(catalog.Themes); err != nil {
		return nil, err
	}

	return catalog.Themes, nil
}

// ValidateThemes checks the invariants every stored theme must satisfy
func ValidateThemes(themes []*entities.Theme) error {
	vb := errors.NewValidationBuilder()
	seen := make(map[string]bool, len(themes))

	for i, theme := range themes {
		if theme == nil {
			vb.Fieldf(field(i, ""), "theme cannot be nil")
			continue
		}

		errors.ValidateRequired(field(i, "id"), theme.ID, vb)
		errors.ValidateRequired(field(i, "name"), theme.Name, vb)
		if theme.ID != "" {
			if seen[theme.ID] {
				vb.Fieldf(field(i, "id"), "duplicate theme ID %s", theme.ID)
			}
			seen[theme.ID] = true
		}
		if !theme.Category.IsValid() {
			vb.InvalidField(field(i, "category"), string(theme.Category))
		}
		errors.ValidateRange(field(i, "level_requirement"), int(theme.LevelRequirement), 0, 20, vb)

		for ability := range theme.AbilityAdjustments {
			if !ability.IsValid() {
				vb.InvalidField(field(i, "ability_adjustments"), string(ability))
			}
		}
		for _, item := range theme.Equipment {
			errors.ValidateRequired(field(i, "equipment.item_id"), item.ItemID, vb)
			errors.ValidatePositive(field(i, "equipment.quantity"), int64(item.Quantity), vb)
		}
	}

	return vb.Build()
}

func field(index int, name string) string {
	if name == "" {
		return fmt.Sprintf("themes[%d]", index)
	}
	return fmt.Sprintf("themes[%d].%s", index, name)
}
