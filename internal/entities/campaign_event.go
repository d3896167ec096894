package entities

import "time"

// ImpactType selects the apply/revert handler pair for an impact
type ImpactType string

// Impact types. Composite only expands into the other types.
const (
	ImpactTypeExperience   ImpactType = "experience"
	ImpactTypeAbilityScore ImpactType = "ability_score"
	ImpactTypeHitPoints    ImpactType = "hit_points"
	ImpactTypeComposite    ImpactType = "composite"
)

// EventStatus is the lifecycle position of a campaign event
type EventStatus string

// Event statuses
const (
	EventStatusCreated  EventStatus = "created"
	EventStatusApplied  EventStatus = "applied"
	EventStatusReverted EventStatus = "reverted"
)

// CampaignEvent is an in-fiction occurrence with quantified impacts
type CampaignEvent struct {
	ID              string         `json:"id"`
	CharacterID     string         `json:"character_id"`
	CampaignID      string         `json:"campaign_id,omitempty"`
	EventType       string         `json:"event_type"`
	EventData       map[string]any `json:"event_data,omitempty"`
	ImpactType      ImpactType     `json:"impact_type"`
	ImpactMagnitude int32          `json:"impact_magnitude"`

	// Impacts is read when ImpactType is composite
	Impacts    []ImpactSpec `json:"impacts,omitempty"`
	Applied    bool         `json:"applied"`
	AppliedAt  *time.Time   `json:"applied_at,omitempty"`
	RevertedAt *time.Time   `json:"reverted_at,omitempty"`
	Status     EventStatus  `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
}

// ImpactSpec is one quantified effect. Ability is set for ability_score.
type ImpactSpec struct {
	ImpactType ImpactType `json:"impact_type"`
	Ability    Ability    `json:"ability,omitempty"`
	Amount     int32      `json:"amount"`
}

// EventImpact records one applied impact and how to undo it
type EventImpact struct {
	ID            string          `json:"id"`
	EventID       string          `json:"event_id"`
	CharacterID   string          `json:"character_id"`
	ImpactType    ImpactType      `json:"impact_type"`
	ImpactData    ImpactSpec      `json:"impact_data"`
	ReversionData *ImpactSnapshot `json:"reversion_data,omitempty"`
	Applied       bool            `json:"applied"`
	IsReverted    bool            `json:"is_reverted"`
	AppliedAt     *time.Time      `json:"applied_at,omitempty"`
	RevertedAt    *time.Time      `json:"reverted_at,omitempty"`
}

// ImpactSnapshot is the pre-image of the fields an impact touches
type ImpactSnapshot struct {
	ExperiencePoints *int32  `json:"experience_points,omitempty"`
	Ability          Ability `json:"ability,omitempty"`
	AbilityScore     *int32  `json:"ability_score,omitempty"`
	CurrentHP        *int32  `json:"current_hp,omitempty"`
}

// LevelChange describes the side effects of a level-up
type LevelChange struct {
	PreviousLevel            int32    `json:"previous_level"`
	NewLevel                 int32    `json:"new_level"`
	ProficiencyBonus         int32    `json:"proficiency_bonus"`
	HitPointsGained          int32    `json:"hit_points_gained"`
	AbilityScoreImprovements []int32  `json:"ability_score_improvements,omitempty"`
	FeaturesGranted          []string `json:"features_granted,omitempty"`
}
