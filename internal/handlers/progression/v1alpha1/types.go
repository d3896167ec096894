package v1alpha1

import "github.com/KirkDiggler/rpg-progression/internal/entities"

type createCharacterRequest struct {
	Character *entities.Character `json:"character"`
}

type characterRequest struct {
	CharacterID string `json:"character_id"`
}

type characterResponse struct {
	Character *entities.Character `json:"character"`
}

type listThemesRequest struct {
	Category entities.ThemeCategory `json:"category"`
}

type listThemesResponse struct {
	Themes []*entities.Theme `json:"themes"`
}

type transitionRequest struct {
	CharacterID     string                  `json:"character_id"`
	FromThemeID     string                  `json:"from_theme_id"`
	ToThemeID       string                  `json:"to_theme_id"`
	TransitionType  entities.TransitionType `json:"transition_type"`
	CampaignEventID string                  `json:"campaign_event_id"`
	TriggeredBy     string                  `json:"triggered_by"`
}

type validateTransitionResponse struct {
	Result *entities.ValidationResult `json:"result"`
}

type applyTransitionResponse struct {
	Success          bool                       `json:"success"`
	State            string                     `json:"state"`
	TransitionID     string                     `json:"transition_id,omitempty"`
	OldState         *entities.ThemeState       `json:"old_state"`
	NewState         *entities.ThemeState       `json:"new_state"`
	AppliedChanges   *entities.StateChanges     `json:"applied_changes"`
	ValidationResult *entities.ValidationResult `json:"validation_result"`
	ErrorDetails     map[string]any             `json:"error_details,omitempty"`
	Character        *entities.Character        `json:"character,omitempty"`
}

type suggestionsRequest struct {
	CharacterID  string         `json:"character_id"`
	EventContext map[string]any `json:"event_context"`
}

type suggestionsResponse struct {
	Themes []*entities.Theme `json:"themes"`
}

type transitionHistoryResponse struct {
	Transitions []*entities.ThemeTransition `json:"transitions"`
}

type createEventRequest struct {
	CharacterID     string                `json:"character_id"`
	CampaignID      string                `json:"campaign_id"`
	EventType       string                `json:"event_type"`
	EventData       map[string]any        `json:"event_data"`
	ImpactType      entities.ImpactType   `json:"impact_type"`
	ImpactMagnitude int32                 `json:"impact_magnitude"`
	Impacts         []entities.ImpactSpec `json:"impacts"`
}

type eventRequest struct {
	EventID string `json:"event_id"`
}

type eventResponse struct {
	Event *entities.CampaignEvent `json:"event"`
}

type eventImpactsResponse struct {
	Impacts   []*entities.EventImpact `json:"impacts"`
	Event     *entities.CampaignEvent `json:"event"`
	Character *entities.Character     `json:"character,omitempty"`
}

type addExperienceRequest struct {
	CharacterID string `json:"character_id"`
	Amount      int32  `json:"amount"`
	Source      string `json:"source"`
	Reason      string `json:"reason"`
}

type addExperienceResponse struct {
	TotalExperience int32                 `json:"total_experience"`
	LeveledUp       bool                  `json:"leveled_up"`
	LevelChange     *entities.LevelChange `json:"level_change"`
	Character       *entities.Character   `json:"character"`
}

type milestoneRequest struct {
	CharacterID string `json:"character_id"`
	MilestoneID string `json:"milestone_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type milestoneResponse struct {
	Milestone *entities.Milestone `json:"milestone"`
}

type achievementRequest struct {
	CharacterID   string `json:"character_id"`
	AchievementID string `json:"achievement_id"`
	Name          string `json:"name"`
}

type achievementResponse struct {
	Achievement *entities.Achievement `json:"achievement"`
	Unlocked    bool                  `json:"unlocked"`
}

type progressResponse struct {
	Level                           int32                  `json:"level"`
	ExperiencePoints                int32                  `json:"experience_points"`
	ProficiencyBonus                int32                  `json:"proficiency_bonus"`
	NextLevelExperience             int32                  `json:"next_level_experience"`
	PercentToNextLevel              float64                `json:"percent_to_next_level"`
	Milestones                      []entities.Milestone   `json:"milestones"`
	Achievements                    []entities.Achievement `json:"achievements"`
	PendingAbilityScoreImprovements []int32                `json:"pending_ability_score_improvements"`
	Features                        []string               `json:"features"`
}
