// Package character provides persistence for the character aggregate and
// everything it owns: theme states, transitions, campaign events and impacts.
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-progression/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create creates a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if character with same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing character and bumps its version
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Aborted if the version in the input is stale
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a character and every record it owns
	// Returns errors.NotFound if character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID retrieves all characters for a player
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)

	// Transact runs Fn against a unit of work and commits everything it
	// staged atomically. Fn may run more than once on conflicts.
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Aborted when optimistic retries are exhausted
	// Returns whatever error Fn returned, with nothing written
	Transact(ctx context.Context, input TransactInput) (*TransactOutput, error)

	// GetActiveThemeState returns the active theme state, or nil if the
	// character has never transitioned
	GetActiveThemeState(ctx context.Context, input GetActiveThemeStateInput) (*GetActiveThemeStateOutput, error)

	// ListThemeStates returns every theme state ordered by version
	ListThemeStates(ctx context.Context, input ListThemeStatesInput) (*ListThemeStatesOutput, error)

	// ListTransitions returns the transition log oldest first
	ListTransitions(ctx context.Context, input ListTransitionsInput) (*ListTransitionsOutput, error)

	// GetCampaignEvent retrieves a campaign event by ID
	// Returns errors.NotFound if the event doesn't exist
	GetCampaignEvent(ctx context.Context, input GetCampaignEventInput) (*GetCampaignEventOutput, error)

	// ListCampaignEvents returns a character's events ordered by creation time
	ListCampaignEvents(ctx context.Context, input ListCampaignEventsInput) (*ListCampaignEventsOutput, error)

	// GetEventImpacts returns the impacts recorded for an event, possibly none
	GetEventImpacts(ctx context.Context, input GetEventImpactsInput) (*GetEventImpactsOutput, error)
}

// UnitOfWork stages mutations of one character aggregate. Nothing is visible
// to other readers until the surrounding Transact commits.
type UnitOfWork interface {
	// Character returns the working copy. Mutations on it are committed.
	Character() *entities.Character

	// AdjustAbilityScore adds delta to a single ability
	AdjustAbilityScore(ability entities.Ability, delta int32) error

	// AddEquipment adds quantity of itemID to the inventory
	AddEquipment(itemID string, quantity int32) error

	// RemoveEquipment removes quantity of itemID from the inventory
	// Returns errors.FailedPrecondition if fewer are carried
	RemoveEquipment(itemID string, quantity int32) error

	// ActiveThemeState returns the staged or stored active state, or nil
	ActiveThemeState(ctx context.Context) (*entities.ThemeState, error)

	// SetActiveThemeState replaces the active state on commit
	SetActiveThemeState(state *entities.ThemeState) error

	// AppendThemeTransition adds a record to the transition log on commit
	AppendThemeTransition(transition *entities.ThemeTransition) error

	// CampaignEvent returns the staged or stored event
	// Returns errors.NotFound if the event doesn't exist for this character
	CampaignEvent(ctx context.Context, eventID string) (*entities.CampaignEvent, error)

	// PutCampaignEvent stores the event on commit
	PutCampaignEvent(event *entities.CampaignEvent) error

	// EventImpacts returns the staged or stored impacts of an event
	EventImpacts(ctx context.Context, eventID string) ([]*entities.EventImpact, error)

	// PutEventImpacts replaces the impacts of an event on commit
	PutEventImpacts(eventID string, impacts []*entities.EventImpact) error
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *entities.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing characters by player
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing characters by player
type ListByPlayerIDOutput struct {
	Characters []*entities.Character
}

// TransactFunc mutates the aggregate through uow
type TransactFunc func(ctx context.Context, uow UnitOfWork) error

// TransactInput defines the input for a unit of work
type TransactInput struct {
	CharacterID string
	Fn          TransactFunc
}

// TransactOutput defines the output for a unit of work
type TransactOutput struct {
	// Character is the committed state with its new version
	Character *entities.Character
}

// GetActiveThemeStateInput defines the input for reading the active theme state
type GetActiveThemeStateInput struct {
	CharacterID string
}

// GetActiveThemeStateOutput defines the output for reading the active theme state
type GetActiveThemeStateOutput struct {
	State *entities.ThemeState
}

// ListThemeStatesInput defines the input for listing theme states
type ListThemeStatesInput struct {
	CharacterID string
}

// ListThemeStatesOutput defines the output for listing theme states
type ListThemeStatesOutput struct {
	States []*entities.ThemeState
}

// ListTransitionsInput defines the input for listing transitions
type ListTransitionsInput struct {
	CharacterID string
}

// ListTransitionsOutput defines the output for listing transitions
type ListTransitionsOutput struct {
	Transitions []*entities.ThemeTransition
}

// GetCampaignEventInput defines the input for getting a campaign event
type GetCampaignEventInput struct {
	ID string
}

// GetCampaignEventOutput defines the output for getting a campaign event
type GetCampaignEventOutput struct {
	Event *entities.CampaignEvent
}

// ListCampaignEventsInput defines the input for listing campaign events
type ListCampaignEventsInput struct {
	CharacterID string
}

// ListCampaignEventsOutput defines the output for listing campaign events
type ListCampaignEventsOutput struct {
	Events []*entities.CampaignEvent
}

// GetEventImpactsInput defines the input for getting event impacts
type GetEventImpactsInput struct {
	EventID string
}

// GetEventImpactsOutput defines the output for getting event impacts
type GetEventImpactsOutput struct {
	Impacts []*entities.EventImpact
}
