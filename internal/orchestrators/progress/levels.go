package progress

import (
	"slices"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// MaxLevel is the highest character level
const MaxLevel int32 = 20

// experienceThresholds[i] is the XP needed to reach level i+1
var experienceThresholds = [MaxLevel]int32{
	0, 300, 900, 2700, 6500, 14000, 23000, 34000, 48000, 64000,
	85000, 100000, 120000, 140000, 165000, 195000, 225000, 265000, 305000, 355000,
}

// LevelForExperience returns the level reached with xp
func LevelForExperience(xp int32) int32 {
	level := int32(1)
	for i, threshold := range experienceThresholds {
		if xp >= threshold {
			level = int32(i) + 1
		}
	}
	return level
}

// ExperienceForLevel returns the XP needed to reach level, or -1 outside 1-20
func ExperienceForLevel(level int32) int32 {
	if level < 1 || level > MaxLevel {
		return -1
	}
	return experienceThresholds[level-1]
}

// ProficiencyBonus returns the proficiency bonus at level
func ProficiencyBonus(level int32) int32 {
	if level < 1 {
		level = 1
	}
	return 2 + (level-1)/4
}

var abilityScoreImprovementLevels = []int32{4, 8, 12, 16, 19}

var extraAbilityScoreImprovements = map[string][]int32{
	entities.ClassFighter: {6, 14},
	entities.ClassRogue:   {10},
}

// GrantsAbilityScoreImprovement reports whether classID gains an ASI at level
func GrantsAbilityScoreImprovement(classID string, level int32) bool {
	return slices.Contains(abilityScoreImprovementLevels, level) ||
		slices.Contains(extraAbilityScoreImprovements[classID], level)
}

var hitDice = map[string]int{
	entities.ClassBarbarian: 12,
	entities.ClassFighter:   10,
	entities.ClassPaladin:   10,
	entities.ClassRanger:    10,
	entities.ClassBard:      8,
	entities.ClassCleric:    8,
	entities.ClassDruid:     8,
	entities.ClassMonk:      8,
	entities.ClassRogue:     8,
	entities.ClassWarlock:   8,
	entities.ClassSorcerer:  6,
	entities.ClassWizard:    6,
}

// HitDie returns the size of the class hit die, d8 for unknown classes
func HitDie(classID string) int {
	if size, ok := hitDice[classID]; ok {
		return size
	}
	return 8
}

// classFeatures lists the features each class gains by level
var classFeatures = map[string]map[int32][]string{
	entities.ClassBarbarian: {
		2: {"reckless_attack", "danger_sense"},
		3: {"primal_path"},
		5: {"extra_attack", "fast_movement"},
		7: {"feral_instinct"},
		9: {"brutal_critical"},
	},
	entities.ClassFighter: {
		2:  {"action_surge"},
		3:  {"martial_archetype"},
		5:  {"extra_attack"},
		9:  {"indomitable"},
		11: {"extra_attack_2"},
		20: {"extra_attack_3"},
	},
	entities.ClassPaladin: {
		2: {"fighting_style", "spellcasting", "divine_smite"},
		3: {"divine_health", "sacred_oath"},
		5: {"extra_attack"},
		6: {"aura_of_protection"},
	},
	entities.ClassRogue: {
		2:  {"cunning_action"},
		3:  {"roguish_archetype"},
		5:  {"uncanny_dodge"},
		7:  {"evasion"},
		11: {"reliable_talent"},
	},
	entities.ClassWizard: {
		2:  {"arcane_tradition"},
		18: {"spell_mastery"},
		20: {"signature_spells"},
	},
	entities.ClassCleric: {
		2:  {"channel_divinity"},
		5:  {"destroy_undead"},
		10: {"divine_intervention"},
	},
}

// FeaturesAt returns the class features gained at level
func FeaturesAt(classID string, level int32) []string {
	return classFeatures[classID][level]
}
