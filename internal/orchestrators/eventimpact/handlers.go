package eventimpact

import (
	"math"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Hard limits for ability scores changed by campaign events
const (
	minEventAbilityScore int32 = 1
	maxEventAbilityScore int32 = 30
)

// handler applies one impact and undoes it from the snapshot apply returned.
// Every impact type needs both halves.
type handler struct {
	apply  func(c *entities.Character, spec entities.ImpactSpec) (*entities.ImpactSnapshot, error)
	revert func(c *entities.Character, snapshot *entities.ImpactSnapshot) error
}

var handlers = map[entities.ImpactType]handler{
	entities.ImpactTypeExperience:   {apply: applyExperience, revert: revertExperience},
	entities.ImpactTypeAbilityScore: {apply: applyAbilityScore, revert: revertAbilityScore},
	entities.ImpactTypeHitPoints:    {apply: applyHitPoints, revert: revertHitPoints},
}

func handlerFor(impactType entities.ImpactType) (handler, error) {
	h, ok := handlers[impactType]
	if !ok {
		return handler{}, errors.InvalidArgumentf("no handler for impact type %q", impactType)
	}
	return h, nil
}

func applyExperience(c *entities.Character, spec entities.ImpactSpec) (*entities.ImpactSnapshot, error) {
	next := int64(c.ExperiencePoints) + int64(spec.Amount)
	if next > math.MaxInt32 {
		return nil, errors.OutOfRangef("experience for %s would overflow", c.ID)
	}
	if next < 0 {
		return nil, errors.FailedPreconditionf("character %s has %d XP, cannot apply %d",
			c.ID, c.ExperiencePoints, spec.Amount)
	}

	previous := c.ExperiencePoints
	c.ExperiencePoints = int32(next)
	return &entities.ImpactSnapshot{ExperiencePoints: &previous}, nil
}

func revertExperience(c *entities.Character, snapshot *entities.ImpactSnapshot) error {
	if snapshot == nil || snapshot.ExperiencePoints == nil {
		return errors.FailedPrecondition("experience impact has no reversion data")
	}
	c.ExperiencePoints = *snapshot.ExperiencePoints
	return nil
}

func applyAbilityScore(c *entities.Character, spec entities.ImpactSpec) (*entities.ImpactSnapshot, error) {
	if !spec.Ability.IsValid() {
		return nil, errors.InvalidArgumentf("unknown ability %q", spec.Ability)
	}

	previous := c.AbilityScores[spec.Ability]
	next := int64(previous) + int64(spec.Amount)
	if next < int64(minEventAbilityScore) || next > int64(maxEventAbilityScore) {
		return nil, errors.OutOfRangef("%s would become %d, outside %d-%d",
			spec.Ability, next, minEventAbilityScore, maxEventAbilityScore)
	}

	if c.AbilityScores == nil {
		c.AbilityScores = make(entities.AbilityScores)
	}
	c.AbilityScores[spec.Ability] = int32(next)
	return &entities.ImpactSnapshot{Ability: spec.Ability, AbilityScore: &previous}, nil
}

func revertAbilityScore(c *entities.Character, snapshot *entities.ImpactSnapshot) error {
	if snapshot == nil || snapshot.AbilityScore == nil || !snapshot.Ability.IsValid() {
		return errors.FailedPrecondition("ability score impact has no reversion data")
	}
	if c.AbilityScores == nil {
		c.AbilityScores = make(entities.AbilityScores)
	}
	c.AbilityScores[snapshot.Ability] = *snapshot.AbilityScore
	return nil
}

func applyHitPoints(c *entities.Character, spec entities.ImpactSpec) (*entities.ImpactSnapshot, error) {
	previous := c.CurrentHP

	next := min(max(int64(c.CurrentHP)+int64(spec.Amount), 0), int64(c.MaxHP))
	c.CurrentHP = int32(next)
	return &entities.ImpactSnapshot{CurrentHP: &previous}, nil
}

func revertHitPoints(c *entities.Character, snapshot *entities.ImpactSnapshot) error {
	if snapshot == nil || snapshot.CurrentHP == nil {
		return errors.FailedPrecondition("hit point impact has no reversion data")
	}
	c.CurrentHP = *snapshot.CurrentHP
	return nil
}

// impactSpecs expands an event into the impacts it produces, in order
func impactSpecs(event *entities.CampaignEvent) ([]entities.ImpactSpec, error) {
	if event.ImpactType != entities.ImpactTypeComposite {
		spec := entities.ImpactSpec{
			ImpactType: event.ImpactType,
			Amount:     event.ImpactMagnitude,
		}
		if ability, ok := event.EventData["ability"].(string); ok {
			spec.Ability = entities.Ability(ability)
		}
		return []entities.ImpactSpec{spec}, nil
	}

	if len(event.Impacts) == 0 {
		return nil, errors.InvalidArgumentf("composite event %s has no impacts", event.ID)
	}
	for i, spec := range event.Impacts {
		if spec.ImpactType == entities.ImpactTypeComposite {
			return nil, errors.InvalidArgumentf("impact %d of event %s is nested composite", i, event.ID)
		}
	}
	return event.Impacts, nil
}
