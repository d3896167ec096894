package themestate

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/character"
)

// GetActiveThemeStateInput defines the request for the active theme state
type GetActiveThemeStateInput struct {
	CharacterID string
}

// GetActiveThemeStateOutput defines the response for the active theme state
type GetActiveThemeStateOutput struct {
	// State is nil when the character has never transitioned
	State *entities.ThemeState
}

// CalculateStateChangesInput defines the request for a theme delta.
// FromThemeID may be empty for a character without a theme.
type CalculateStateChangesInput struct {
	CharacterID string
	FromThemeID string
	ToThemeID   string
}

// CalculateStateChangesOutput defines the response for a theme delta
type CalculateStateChangesOutput struct {
	Changes   *entities.StateChanges
	FromTheme *entities.Theme
	ToTheme   *entities.Theme
}

// ApplyThemeStateInput stages a new active state inside a unit of work
type ApplyThemeStateInput struct {
	UnitOfWork  character.UnitOfWork
	CharacterID string
	ThemeID     string
	Features    []string
	Modifiers   []string
}

// ApplyThemeStateOutput defines the response for staging a theme state
type ApplyThemeStateOutput struct {
	State *entities.ThemeState
	// Previous is the state being replaced, nil on the first transition
	Previous *entities.ThemeState
}

// RecordThemeTransitionInput stages a transition log record inside a unit of work
type RecordThemeTransitionInput struct {
	UnitOfWork      character.UnitOfWork
	CharacterID     string
	FromThemeID     string
	ToThemeID       string
	TransitionType  entities.TransitionType
	TriggeredBy     string
	CampaignEventID string
	Changes         *entities.StateChanges
}

// RecordThemeTransitionOutput defines the response for recording a transition
type RecordThemeTransitionOutput struct {
	Transition *entities.ThemeTransition
}

// ListThemeStatesInput defines the request for a character's theme states
type ListThemeStatesInput struct {
	CharacterID string
}

// ListThemeStatesOutput defines the response for listing theme states
type ListThemeStatesOutput struct {
	States []*entities.ThemeState
}

// ListTransitionsInput defines the request for a character's transition log
type ListTransitionsInput struct {
	CharacterID string
}

// ListTransitionsOutput defines the response for listing transitions
type ListTransitionsOutput struct {
	Transitions []*entities.ThemeTransition
}

// DiffThemeStatesInput compares two theme state versions of one character
type DiffThemeStatesInput struct {
	CharacterID string
	FromVersion int64
	ToVersion   int64
}

// DiffThemeStatesOutput defines the response for a theme state diff
type DiffThemeStatesOutput struct {
	From             *entities.ThemeState
	To               *entities.ThemeState
	AddedFeatures    []string
	RemovedFeatures  []string
	AddedModifiers   []string
	RemovedModifiers []string
}
