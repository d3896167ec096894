package transition

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// State is where a transition attempt ended up
type State string

// Attempt states. Requested, Validating and Applying are only passed through.
const (
	StateRequested  State = "requested"
	StateValidating State = "validating"
	StateRejected   State = "rejected"
	StateApplying   State = "applying"
	StateCommitted  State = "committed"
	StateRolledBack State = "rolled_back"
)

// ValidateTransitionInput defines the request for validating a transition.
// An empty FromThemeID means the character's active theme, if any.
type ValidateTransitionInput struct {
	CharacterID     string
	FromThemeID     string
	ToThemeID       string
	TransitionType  entities.TransitionType
	CampaignEventID string
}

// ValidateTransitionOutput defines the response for validating a transition
type ValidateTransitionOutput struct {
	Result *entities.ValidationResult
}

// ApplyTransitionInput defines the request for applying a transition
type ApplyTransitionInput struct {
	CharacterID     string
	FromThemeID     string
	ToThemeID       string
	TransitionType  entities.TransitionType
	CampaignEventID string
	TriggeredBy     string
}

// ApplyTransitionOutput is the result of one transition attempt
type ApplyTransitionOutput struct {
	Success          bool
	State            State
	TransitionID     string
	OldState         *entities.ThemeState
	NewState         *entities.ThemeState
	AppliedChanges   *entities.StateChanges
	ValidationResult *entities.ValidationResult
	ErrorDetails     map[string]any
	// Character is the committed character, nil unless Success
	Character *entities.Character
}

// GetTransitionSuggestionsInput defines the request for theme suggestions
type GetTransitionSuggestionsInput struct {
	CharacterID  string
	EventContext map[string]any
}

// GetTransitionSuggestionsOutput defines the response for theme suggestions
type GetTransitionSuggestionsOutput struct {
	Themes []*entities.Theme
}

// GetTransitionHistoryInput defines the request for a transition log
type GetTransitionHistoryInput struct {
	CharacterID string
}

// GetTransitionHistoryOutput defines the response for a transition log
type GetTransitionHistoryOutput struct {
	Transitions []*entities.ThemeTransition
}
