package entities

import "time"

// ThemeCategory selects which category-specific rule a validator carries
type ThemeCategory string

// Theme categories
const (
	ThemeCategoryStandard     ThemeCategory = "standard"
	ThemeCategoryPrestige     ThemeCategory = "prestige"
	ThemeCategoryEpic         ThemeCategory = "epic"
	ThemeCategoryAntitheticon ThemeCategory = "antitheticon"
)

// IsValid reports whether c is a known category
func (c ThemeCategory) IsValid() bool {
	switch c {
	case ThemeCategoryStandard, ThemeCategoryPrestige, ThemeCategoryEpic, ThemeCategoryAntitheticon:
		return true
	}
	return false
}

// Theme is immutable reference data authored outside the transition flow
type Theme struct {
	ID                 string           `json:"id" yaml:"id"`
	Name               string           `json:"name" yaml:"name"`
	Description        string           `json:"description,omitempty" yaml:"description,omitempty"`
	Category           ThemeCategory    `json:"category" yaml:"category"`
	LevelRequirement   int32            `json:"level_requirement" yaml:"level_requirement"`
	ClassRestrictions  []string         `json:"class_restrictions,omitempty" yaml:"class_restrictions,omitempty"`
	RaceRestrictions   []string         `json:"race_restrictions,omitempty" yaml:"race_restrictions,omitempty"`
	AbilityAdjustments AbilityScores    `json:"ability_adjustments,omitempty" yaml:"ability_adjustments,omitempty"`
	Features           []string         `json:"features,omitempty" yaml:"features,omitempty"`
	Modifiers          []string         `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Equipment          []ThemeEquipment `json:"equipment,omitempty" yaml:"equipment,omitempty"`
}

// ThemeEquipment is granted while the theme is active
type ThemeEquipment struct {
	ItemID   string `json:"item_id" yaml:"item_id"`
	Quantity int32  `json:"quantity" yaml:"quantity"`
}

// ThemeState is the character's active theme. It is replaced on every
// transition and never mutated in place.
type ThemeState struct {
	ID              string    `json:"id"`
	CharacterID     string    `json:"character_id"`
	ThemeID         string    `json:"theme_id"`
	ActiveFeatures  []string  `json:"active_features,omitempty"`
	ActiveModifiers []string  `json:"active_modifiers,omitempty"`
	Version         int64     `json:"version"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

// TransitionType describes why a transition happened
type TransitionType string

// Transition types
const (
	TransitionTypeStandard     TransitionType = "standard"
	TransitionTypeAntitheticon TransitionType = "antitheticon"
	TransitionTypeForced       TransitionType = "forced"
	TransitionTypeCampaign     TransitionType = "campaign"
)

// IsValid reports whether t is a known transition type
func (t TransitionType) IsValid() bool {
	switch t {
	case TransitionTypeStandard, TransitionTypeAntitheticon, TransitionTypeForced, TransitionTypeCampaign:
		return true
	}
	return false
}

// ThemeTransition is an append-only audit record
type ThemeTransition struct {
	ID              string         `json:"id"`
	CharacterID     string         `json:"character_id"`
	FromThemeID     string         `json:"from_theme_id,omitempty"`
	ToThemeID       string         `json:"to_theme_id"`
	TransitionType  TransitionType `json:"transition_type"`
	TriggeredBy     string         `json:"triggered_by,omitempty"`
	CampaignEventID string         `json:"campaign_event_id,omitempty"`
	AppliedChanges  *StateChanges  `json:"applied_changes"`
	Timestamp       time.Time      `json:"timestamp"`
}

// EquipmentOperation is add or remove
type EquipmentOperation string

// Equipment operations
const (
	EquipmentOperationAdd    EquipmentOperation = "add"
	EquipmentOperationRemove EquipmentOperation = "remove"
)

// EquipmentChange is one step of an ordered inventory edit
type EquipmentChange struct {
	Operation EquipmentOperation `json:"operation"`
	ItemID    string             `json:"item_id"`
	Quantity  int32              `json:"quantity"`
}

// StateChanges is the delta between two themes
type StateChanges struct {
	AbilityChanges   AbilityScores     `json:"ability_changes,omitempty"`
	EquipmentChanges []EquipmentChange `json:"equipment_changes,omitempty"`
	AddedFeatures    []string          `json:"added_features,omitempty"`
	RemovedFeatures  []string          `json:"removed_features,omitempty"`
	AddedModifiers   []string          `json:"added_modifiers,omitempty"`
	RemovedModifiers []string          `json:"removed_modifiers,omitempty"`
}

// IsEmpty reports whether applying the changes would do nothing
func (c *StateChanges) IsEmpty() bool {
	return c == nil || (len(c.AbilityChanges) == 0 &&
		len(c.EquipmentChanges) == 0 &&
		len(c.AddedFeatures) == 0 &&
		len(c.RemovedFeatures) == 0 &&
		len(c.AddedModifiers) == 0 &&
		len(c.RemovedModifiers) == 0)
}
