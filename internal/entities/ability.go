package entities

// Ability names one of the six D&D ability scores
type Ability string

// Abilities
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Ability score bounds enforced on theme transitions
const (
	MinAbilityScore int32 = 3
	MaxAbilityScore int32 = 20
)

// AllAbilities lists abilities in sheet order
var AllAbilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// IsValid reports whether a is one of the six abilities
func (a Ability) IsValid() bool {
	for _, known := range AllAbilities {
		if a == known {
			return true
		}
	}
	return false
}

// AbilityScores maps each ability to its score
type AbilityScores map[Ability]int32

// Clone copies the map
func (s AbilityScores) Clone() AbilityScores {
	if s == nil {
		return nil
	}
	out := make(AbilityScores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// AbilityModifier returns floor((score - 10) / 2)
func AbilityModifier(score int32) int32 {
	modifier := (score - 10) / 2
	if score < 10 && (score-10)%2 != 0 {
		modifier--
	}
	return modifier
}
