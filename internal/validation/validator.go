package validation

import (
	"fmt"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Validator runs a fixed rule set
type Validator struct {
	rules []Rule
}

// NewValidator creates a validator over rules, run in the given order
func NewValidator(rules ...Rule) *Validator {
	return &Validator{rules: rules}
}

// Rules returns the rule names in run order
func (v *Validator) Rules() []string {
	names := make([]string, len(v.rules))
	for i, rule := range v.rules {
		names[i] = rule.Name()
	}
	return names
}

// Validate runs every rule and never stops early
func (v *Validator) Validate(vctx *Context) *entities.ValidationResult {
	if vctx == nil || vctx.Character == nil || vctx.ToTheme == nil {
		return entities.InvalidResult(entities.ErrorTypeValidationError,
			"validation requires a character and a target theme", nil)
	}

	result := &entities.ValidationResult{
		Errors:      []*entities.ThemeValidationError{},
		Warnings:    []*entities.ThemeValidationError{},
		Suggestions: []string{},
	}
	for _, rule := range v.rules {
		findings := rule.Validate(vctx)
		result.Errors = append(result.Errors, findings.Errors...)
		result.Warnings = append(result.Warnings, findings.Warnings...)
	}

	result.IsValid = len(result.Errors) == 0
	if !result.IsValid {
		result.Suggestions = suggestions(vctx, result)
	}

	return result
}

func suggestions(vctx *Context, result *entities.ValidationResult) []string {
	out := []string{
		fmt.Sprintf("Try a theme without %s restrictions", vctx.ToTheme.Category),
	}
	if result.HasErrorType(entities.ErrorTypeLevelRequirement) {
		out = append(out, fmt.Sprintf("Level up to %d to qualify for this theme", vctx.ToTheme.LevelRequirement))
	}
	return out
}

// Registry maps theme categories to validators. Build it once at startup
// and pass it to whoever validates.
type Registry struct {
	base     []Rule
	category map[entities.ThemeCategory]Rule
}

// BaseRules returns the rules every validator runs
func BaseRules() []Rule {
	return []Rule{
		LevelRequirementRule{},
		ClassRestrictionRule{},
		RaceRestrictionRule{},
		AbilityScoreRule{},
		AntitheticonRule{},
		EquipmentCapacityRule{},
		CampaignContextRule{},
	}
}

// NewRegistry creates a registry with the base rules and the prestige,
// epic and antitheticon category rules
func NewRegistry() *Registry {
	return &Registry{
		base: BaseRules(),
		category: map[entities.ThemeCategory]Rule{
			entities.ThemeCategoryPrestige:     PrestigeRule{},
			entities.ThemeCategoryEpic:         EpicRule{},
			entities.ThemeCategoryAntitheticon: AntitheticonEntryRule{},
		},
	}
}

// ValidatorFor returns the base rules plus the category's rule, if any
func (r *Registry) ValidatorFor(category entities.ThemeCategory) *Validator {
	rules := make([]Rule, 0, len(r.base)+1)
	rules = append(rules, r.base...)
	if rule, ok := r.category[category]; ok {
		rules = append(rules, rule)
	}
	return NewValidator(rules...)
}

// Validate picks the validator for the target theme's category
func (r *Registry) Validate(vctx *Context) *entities.ValidationResult {
	if vctx == nil || vctx.ToTheme == nil {
		return NewValidator().Validate(vctx)
	}
	return r.ValidatorFor(vctx.ToTheme.Category).Validate(vctx)
}
