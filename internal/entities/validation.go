package entities

// Validation error types. Callers branch on these, so they are stable.
const (
	ErrorTypeLevelRequirement               = "level_requirement"
	ErrorTypeClassRestriction               = "class_restriction"
	ErrorTypeRaceRestriction                = "race_restriction"
	ErrorTypeAbilityScoreRange              = "ability_score_range"
	ErrorTypeAntitheticonMismatch           = "antitheticon_mismatch"
	ErrorTypeAntitheticonConsequences       = "antitheticon_consequences"
	ErrorTypeAntitheticonTransitionRequired = "antitheticon_transition_required"
	ErrorTypePrestigeRestriction            = "prestige_restriction"
	ErrorTypeEpicPrerequisite               = "epic_prerequisite"
	ErrorTypeEquipmentCapacity              = "equipment_capacity"
	ErrorTypeCampaignContext                = "campaign_context"
	ErrorTypeCharacterNotFound              = "character_not_found"
	ErrorTypeThemeNotFound                  = "theme_not_found"
	ErrorTypeValidationError                = "validation_error"
	ErrorTypeTransitionError                = "transition_error"
)

// ThemeValidationError is a single rule finding. Warnings share the shape.
type ThemeValidationError struct {
	ErrorType string         `json:"error_type"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
}

// ValidationResult is computed per call and never stored on its own
type ValidationResult struct {
	IsValid     bool                    `json:"is_valid"`
	Errors      []*ThemeValidationError `json:"errors"`
	Warnings    []*ThemeValidationError `json:"warnings"`
	Suggestions []string                `json:"suggestions"`
}

// HasErrorType reports whether any error carries errorType
func (r *ValidationResult) HasErrorType(errorType string) bool {
	if r == nil {
		return false
	}
	for _, e := range r.Errors {
		if e.ErrorType == errorType {
			return true
		}
	}
	return false
}

// InvalidResult builds a failed result with one error
func InvalidResult(errorType, message string, ctx map[string]any) *ValidationResult {
	return &ValidationResult{
		IsValid: false,
		Errors: []*ThemeValidationError{{
			ErrorType: errorType,
			Message:   message,
			Context:   ctx,
		}},
		Warnings:    []*ThemeValidationError{},
		Suggestions: []string{},
	}
}
