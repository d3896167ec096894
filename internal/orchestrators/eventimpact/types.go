package eventimpact

import "github.com/KirkDiggler/rpg-progression/internal/entities"

// CreateEventInput defines the input for creating a campaign event
type CreateEventInput struct {
	CharacterID     string
	CampaignID      string
	EventType       string
	EventData       map[string]any
	ImpactType      entities.ImpactType
	ImpactMagnitude int32
	// Impacts is required when ImpactType is composite
	Impacts []entities.ImpactSpec
}

// CreateEventOutput defines the output for creating a campaign event
type CreateEventOutput struct {
	Event *entities.CampaignEvent
}

// GetEventInput defines the input for getting a campaign event
type GetEventInput struct {
	EventID string
}

// GetEventOutput defines the output for getting a campaign event
type GetEventOutput struct {
	Event *entities.CampaignEvent
}

// ListEventsInput defines the input for listing a character's events
type ListEventsInput struct {
	CharacterID string
}

// ListEventsOutput defines the output for listing a character's events
type ListEventsOutput struct {
	Events []*entities.CampaignEvent
}

// GetEventImpactsInput defines the input for reading an event's impact log
type GetEventImpactsInput struct {
	EventID string
}

// GetEventImpactsOutput defines the output for reading an event's impact log
type GetEventImpactsOutput struct {
	Impacts []*entities.EventImpact
}

// ApplyEventInput defines the input for applying an event
type ApplyEventInput struct {
	EventID string
}

// ApplyEventOutput defines the output for applying an event
type ApplyEventOutput struct {
	// Impacts is empty when the event was already applied
	Impacts   []*entities.EventImpact
	Event     *entities.CampaignEvent
	Character *entities.Character
}

// RevertEventInput defines the input for reverting an event
type RevertEventInput struct {
	EventID string
}

// RevertEventOutput defines the output for reverting an event
type RevertEventOutput struct {
	// Impacts is empty when the event was not applied
	Impacts   []*entities.EventImpact
	Event     *entities.CampaignEvent
	Character *entities.Character
}
