// Package entities holds the data-only domain types shared by repositories,
// orchestrators and handlers. Calculations live in the orchestrators.
package entities

import "time"

// Race constants
const (
	RaceHuman      = "RACE_HUMAN"
	RaceDwarf      = "RACE_DWARF"
	RaceElf        = "RACE_ELF"
	RaceHalfling   = "RACE_HALFLING"
	RaceDragonborn = "RACE_DRAGONBORN"
	RaceGnome      = "RACE_GNOME"
	RaceHalfElf    = "RACE_HALF_ELF"
	RaceHalfOrc    = "RACE_HALF_ORC"
	RaceTiefling   = "RACE_TIEFLING"
)

// Class constants
const (
	ClassBarbarian = "CLASS_BARBARIAN"
	ClassBard      = "CLASS_BARD"
	ClassCleric    = "CLASS_CLERIC"
	ClassDruid     = "CLASS_DRUID"
	ClassFighter   = "CLASS_FIGHTER"
	ClassMonk      = "CLASS_MONK"
	ClassPaladin   = "CLASS_PALADIN"
	ClassRanger    = "CLASS_RANGER"
	ClassRogue     = "CLASS_ROGUE"
	ClassSorcerer  = "CLASS_SORCERER"
	ClassWarlock   = "CLASS_WARLOCK"
	ClassWizard    = "CLASS_WIZARD"
)

// Character is the aggregate root. Theme state, transitions, campaign events
// and impacts are all keyed by its ID and have no identity outside it.
type Character struct {
	ID               string        `json:"id"`
	PlayerID         string        `json:"player_id,omitempty"`
	Name             string        `json:"name"`
	Level            int32         `json:"level"`
	ExperiencePoints int32         `json:"experience_points"`
	RaceID           string        `json:"race_id"`
	ClassID          string        `json:"class_id"`
	AbilityScores    AbilityScores `json:"ability_scores"`
	CurrentHP        int32         `json:"current_hp"`
	MaxHP            int32         `json:"max_hp"`
	ProficiencyBonus int32         `json:"proficiency_bonus"`

	Inventory []InventoryItem `json:"inventory,omitempty"`
	Progress  Progress        `json:"progress"`

	// Version increases on every committed unit of work
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InventoryItem is a stack of one item type
type InventoryItem struct {
	ItemID   string `json:"item_id"`
	Quantity int32  `json:"quantity"`
}

// Progress tracks advancement that is not captured by level and XP alone
type Progress struct {
	Milestones   []Milestone   `json:"milestones,omitempty"`
	Achievements []Achievement `json:"achievements,omitempty"`

	// PendingAbilityScoreImprovements lists levels whose ASI is still unspent
	PendingAbilityScoreImprovements []int32  `json:"pending_ability_score_improvements,omitempty"`
	Features                        []string `json:"features,omitempty"`
}

// Milestone is a named story beat reached by the character
type Milestone struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	AchievedAt  time.Time `json:"achieved_at"`
}

// Achievement is a one-time unlock
type Achievement struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// ItemQuantity returns how many of itemID the character carries
func (c *Character) ItemQuantity(itemID string) int32 {
	for _, item := range c.Inventory {
		if item.ItemID == itemID {
			return item.Quantity
		}
	}
	return 0
}

// HasAchievement reports whether the achievement is already unlocked
func (c *Character) HasAchievement(id string) bool {
	for _, a := range c.Progress.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

// HasMilestone reports whether the milestone was already recorded
func (c *Character) HasMilestone(id string) bool {
	for _, m := range c.Progress.Milestones {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so a unit of work can mutate freely
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	out := *c
	out.AbilityScores = c.AbilityScores.Clone()
	out.Inventory = append([]InventoryItem(nil), c.Inventory...)
	out.Progress = Progress{
		Milestones:                      append([]Milestone(nil), c.Progress.Milestones...),
		Achievements:                    append([]Achievement(nil), c.Progress.Achievements...),
		PendingAbilityScoreImprovements: append([]int32(nil), c.Progress.PendingAbilityScoreImprovements...),
		Features:                        append([]string(nil), c.Progress.Features...),
	}
	return &out
}
