package validation

import (
	"fmt"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// PrestigeRule keeps prestige themes out of reach straight from an
// antitheticon theme
type PrestigeRule struct{}

// Name implements Rule
func (PrestigeRule) Name() string { return "prestige" }

// Validate implements Rule
func (PrestigeRule) Validate(vctx *Context) Findings {
	if vctx.FromTheme == nil || vctx.FromTheme.Category != entities.ThemeCategoryAntitheticon {
		return Findings{}
	}
	return failed(entities.ErrorTypePrestigeRestriction,
		fmt.Sprintf("Prestige theme %s cannot be entered from antitheticon theme %s",
			vctx.ToTheme.Name, vctx.FromTheme.Name),
		map[string]any{
			"from_theme_id":       vctx.FromTheme.ID,
			"from_theme_category": string(vctx.FromTheme.Category),
		})
}

// EpicRule requires an epic theme to follow a prestige or epic theme
type EpicRule struct{}

// Name implements Rule
func (EpicRule) Name() string { return "epic" }

// Validate implements Rule
func (EpicRule) Validate(vctx *Context) Findings {
	if vctx.FromTheme != nil &&
		(vctx.FromTheme.Category == entities.ThemeCategoryPrestige ||
			vctx.FromTheme.Category == entities.ThemeCategoryEpic) {
		return Findings{}
	}

	from := ""
	if vctx.FromTheme != nil {
		from = string(vctx.FromTheme.Category)
	}
	return failed(entities.ErrorTypeEpicPrerequisite,
		fmt.Sprintf("Epic theme %s requires a prestige or epic theme first", vctx.ToTheme.Name),
		map[string]any{
			"from_theme_category": from,
			"required_categories": []string{
				string(entities.ThemeCategoryPrestige),
				string(entities.ThemeCategoryEpic),
			},
		})
}

// AntitheticonEntryRule only lets antitheticon themes be entered through
// an antitheticon or forced transition
type AntitheticonEntryRule struct{}

// Name implements Rule
func (AntitheticonEntryRule) Name() string { return "antitheticon_entry" }

// Validate implements Rule
func (AntitheticonEntryRule) Validate(vctx *Context) Findings {
	switch vctx.TransitionType {
	case entities.TransitionTypeAntitheticon, entities.TransitionTypeForced:
		return Findings{}
	}
	return failed(entities.ErrorTypeAntitheticonTransitionRequired,
		fmt.Sprintf("Antitheticon theme %s requires an antitheticon or forced transition", vctx.ToTheme.Name),
		map[string]any{
			"transition_type": string(vctx.TransitionType),
		})
}
