package validation

import (
	"fmt"
	"math"
	"slices"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// CarryingCapacityPerStrength is pounds carried per point of strength
const CarryingCapacityPerStrength = 15

// LevelRequirementRule rejects characters below the theme's level
type LevelRequirementRule struct{}

// Name implements Rule
func (LevelRequirementRule) Name() string { return "level_requirement" }

// Validate implements Rule
func (LevelRequirementRule) Validate(vctx *Context) Findings {
	if vctx.Character.Level >= vctx.ToTheme.LevelRequirement {
		return Findings{}
	}
	return failed(entities.ErrorTypeLevelRequirement,
		fmt.Sprintf("Character level %d is below the required level %d for %s",
			vctx.Character.Level, vctx.ToTheme.LevelRequirement, vctx.ToTheme.Name),
		map[string]any{
			"character_level": vctx.Character.Level,
			"required_level":  vctx.ToTheme.LevelRequirement,
		})
}

// ClassRestrictionRule rejects classes outside a non-empty allow list
type ClassRestrictionRule struct{}

// Name implements Rule
func (ClassRestrictionRule) Name() string { return "class_restriction" }

// Validate implements Rule
func (ClassRestrictionRule) Validate(vctx *Context) Findings {
	allowed := vctx.ToTheme.ClassRestrictions
	if len(allowed) == 0 || slices.Contains(allowed, vctx.Character.ClassID) {
		return Findings{}
	}
	return failed(entities.ErrorTypeClassRestriction,
		fmt.Sprintf("Class %s cannot take the %s theme", vctx.Character.ClassID, vctx.ToTheme.Name),
		map[string]any{
			"character_class": vctx.Character.ClassID,
			"allowed_classes": slices.Clone(allowed),
		})
}

// RaceRestrictionRule rejects races outside a non-empty allow list
type RaceRestrictionRule struct{}

// Name implements Rule
func (RaceRestrictionRule) Name() string { return "race_restriction" }

// Validate implements Rule
func (RaceRestrictionRule) Validate(vctx *Context) Findings {
	allowed := vctx.ToTheme.RaceRestrictions
	if len(allowed) == 0 || slices.Contains(allowed, vctx.Character.RaceID) {
		return Findings{}
	}
	return failed(entities.ErrorTypeRaceRestriction,
		fmt.Sprintf("Race %s cannot take the %s theme", vctx.Character.RaceID, vctx.ToTheme.Name),
		map[string]any{
			"character_race": vctx.Character.RaceID,
			"allowed_races":  slices.Clone(allowed),
		})
}

// AbilityScoreRule keeps every adjusted score inside [3, 20]
type AbilityScoreRule struct{}

// Name implements Rule
func (AbilityScoreRule) Name() string { return "ability_score" }

// Validate implements Rule
func (AbilityScoreRule) Validate(vctx *Context) Findings {
	var findings Findings
	for _, ability := range touchedAbilities(vctx.FromTheme, vctx.ToTheme) {
		current := vctx.Character.AbilityScores[ability]
		adjustment := netAdjustment(vctx.FromTheme, vctx.ToTheme, ability)
		next := current + adjustment
		if next >= entities.MinAbilityScore && next <= entities.MaxAbilityScore {
			continue
		}
		findings.Errors = append(findings.Errors, &entities.ThemeValidationError{
			ErrorType: entities.ErrorTypeAbilityScoreRange,
			Message: fmt.Sprintf("%s would become %d, outside %d-%d",
				ability, next, entities.MinAbilityScore, entities.MaxAbilityScore),
			Context: map[string]any{
				"ability":       string(ability),
				"current_score": current,
				"adjustment":    adjustment,
				"new_score":     next,
				"min_score":     entities.MinAbilityScore,
				"max_score":     entities.MaxAbilityScore,
			},
		})
	}
	return findings
}

// AntitheticonRule checks antitheticon transitions land on an antitheticon
// theme and always warns about them
type AntitheticonRule struct{}

// Name implements Rule
func (AntitheticonRule) Name() string { return "antitheticon" }

// Validate implements Rule
func (AntitheticonRule) Validate(vctx *Context) Findings {
	if vctx.TransitionType != entities.TransitionTypeAntitheticon {
		return Findings{}
	}

	var findings Findings
	if vctx.ToTheme.Category != entities.ThemeCategoryAntitheticon {
		findings.Errors = append(findings.Errors, &entities.ThemeValidationError{
			ErrorType: entities.ErrorTypeAntitheticonMismatch,
			Message:   fmt.Sprintf("An antitheticon transition cannot enter the %s theme %s", vctx.ToTheme.Category, vctx.ToTheme.Name),
			Context: map[string]any{
				"theme_category":  string(vctx.ToTheme.Category),
				"transition_type": string(vctx.TransitionType),
			},
		})
	}
	findings.Warnings = append(findings.Warnings, &entities.ThemeValidationError{
		ErrorType: entities.ErrorTypeAntitheticonConsequences,
		Message:   "Antitheticon transitions may have unforeseen consequences",
		Context: map[string]any{
			"to_theme_id": vctx.ToTheme.ID,
		},
	})
	return findings
}

// EquipmentCapacityRule rejects loads heavier than strength x 15 lb after
// the theme's equipment is swapped
type EquipmentCapacityRule struct{}

// Name implements Rule
func (EquipmentCapacityRule) Name() string { return "equipment_capacity" }

// Validate implements Rule
func (EquipmentCapacityRule) Validate(vctx *Context) Findings {
	strength := vctx.Character.AbilityScores[entities.AbilityStrength] +
		netAdjustment(vctx.FromTheme, vctx.ToTheme, entities.AbilityStrength)
	capacity := float64(strength * CarryingCapacityPerStrength)

	var load float64
	for itemID, quantity := range projectedInventory(vctx.Character, vctx.FromTheme, vctx.ToTheme) {
		load += vctx.ItemWeights[itemID] * float64(quantity)
	}
	load = math.Round(load*100) / 100

	if load <= capacity {
		return Findings{}
	}
	return failed(entities.ErrorTypeEquipmentCapacity,
		fmt.Sprintf("Carried weight %.1f lb exceeds carrying capacity %.0f lb", load, capacity),
		map[string]any{
			"current_weight": load,
			"capacity":       capacity,
			"strength":       strength,
		})
}

// CampaignContextRule ties forced and campaign transitions to a live
// campaign event owned by the same character
type CampaignContextRule struct{}

// Name implements Rule
func (CampaignContextRule) Name() string { return "campaign_context" }

// Validate implements Rule
func (CampaignContextRule) Validate(vctx *Context) Findings {
	event := vctx.CampaignEvent

	switch {
	case vctx.CampaignEventID != "" && event == nil:
		return failed(entities.ErrorTypeCampaignContext,
			fmt.Sprintf("Campaign event %s not found", vctx.CampaignEventID),
			map[string]any{"campaign_event_id": vctx.CampaignEventID})

	case event == nil && (vctx.TransitionType == entities.TransitionTypeForced ||
		vctx.TransitionType == entities.TransitionTypeCampaign):
		return failed(entities.ErrorTypeCampaignContext,
			fmt.Sprintf("A %s transition requires a campaign event", vctx.TransitionType),
			map[string]any{"transition_type": string(vctx.TransitionType)})

	case event == nil:
		return Findings{}

	case event.CharacterID != vctx.Character.ID:
		return failed(entities.ErrorTypeCampaignContext,
			fmt.Sprintf("Campaign event %s belongs to another character", event.ID),
			map[string]any{
				"campaign_event_id": event.ID,
				"character_id":      vctx.Character.ID,
			})

	case event.Status == entities.EventStatusReverted:
		return failed(entities.ErrorTypeCampaignContext,
			fmt.Sprintf("Campaign event %s has been reverted", event.ID),
			map[string]any{
				"campaign_event_id": event.ID,
				"event_status":      string(event.Status),
			})
	}

	return Findings{}
}
