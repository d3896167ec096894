package progress

import "github.com/KirkDiggler/rpg-progression/internal/entities"

// AddExperienceInput defines the input for awarding experience
type AddExperienceInput struct {
	CharacterID string
	Amount      int32
	Source      string
	Reason      string
}

// AddExperienceOutput defines the output for awarding experience
type AddExperienceOutput struct {
	TotalExperience int32
	LeveledUp       bool
	// LevelChange is nil unless LeveledUp
	LevelChange *entities.LevelChange
	Character   *entities.Character
}

// RecordMilestoneInput defines the input for recording a milestone
type RecordMilestoneInput struct {
	CharacterID string
	MilestoneID string
	Name        string
	Description string
}

// RecordMilestoneOutput defines the output for recording a milestone
type RecordMilestoneOutput struct {
	Milestone *entities.Milestone
}

// UnlockAchievementInput defines the input for unlocking an achievement
type UnlockAchievementInput struct {
	CharacterID   string
	AchievementID string
	Name          string
}

// UnlockAchievementOutput defines the output for unlocking an achievement
type UnlockAchievementOutput struct {
	Achievement *entities.Achievement
	// Unlocked is false when the achievement was already held
	Unlocked bool
}

// GetProgressInput defines the input for reading progress
type GetProgressInput struct {
	CharacterID string
}

// GetProgressOutput defines the output for reading progress
type GetProgressOutput struct {
	Level            int32
	ExperiencePoints int32
	ProficiencyBonus int32
	// NextLevelExperience is zero at max level
	NextLevelExperience int32
	// PercentToNextLevel is 100 at max level
	PercentToNextLevel              float64
	Milestones                      []entities.Milestone
	Achievements                    []entities.Achievement
	PendingAbilityScoreImprovements []int32
	Features                        []string
}
