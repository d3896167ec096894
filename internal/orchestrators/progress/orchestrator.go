// Package progress tracks experience, levels, milestones and achievements
package progress

//go:generate mockgen -destination=mock/mock_service.go -package=progressmock github.com/KirkDiggler/rpg-progression/internal/orchestrators/progress Service

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/messagehub"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/character"
)

var tracer = otel.Tracer("github.com/KirkDiggler/rpg-progression/internal/orchestrators/progress")

// Service defines the interface for progress tracking
type Service interface {
	// AddExperience applies level-up side effects only when the level rises
	AddExperience(ctx context.Context, input *AddExperienceInput) (*AddExperienceOutput, error)

	// RecordMilestone returns errors.AlreadyExists for a repeated milestone ID
	RecordMilestone(ctx context.Context, input *RecordMilestoneInput) (*RecordMilestoneOutput, error)

	// UnlockAchievement is idempotent
	UnlockAchievement(ctx context.Context, input *UnlockAchievementInput) (*UnlockAchievementOutput, error)

	GetProgress(ctx context.Context, input *GetProgressInput) (*GetProgressOutput, error)
}

// Config holds the dependencies for the progress orchestrator
type Config struct {
	CharacterRepo character.Repository
	Publisher     messagehub.Publisher
	// DiceRoller defaults to dice.DefaultRoller
	DiceRoller dice.Roller
	// Clock defaults to the real clock
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}
	return vb.Build()
}

type orchestrator struct {
	characterRepo character.Repository
	publisher     messagehub.Publisher
	roller        dice.Roller
	clock         clock.Clock
}

// NewOrchestrator creates a new progress orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		publisher:     cfg.Publisher,
		roller:        roller,
		clock:         c,
	}, nil
}

func (o *orchestrator) AddExperience(ctx context.Context, input *AddExperienceInput) (*AddExperienceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidatePositive("amount", int64(input.Amount), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "progress.AddExperience", trace.WithAttributes(
		attribute.String("character_id", input.CharacterID),
		attribute.Int("amount", int(input.Amount)),
	))
	defer span.End()

	var change *entities.LevelChange
	txOut, err := o.characterRepo.Transact(ctx, character.TransactInput{
		CharacterID: input.CharacterID,
		Fn: func(_ context.Context, uow character.UnitOfWork) error {
			c := uow.Character()
			if int64(c.ExperiencePoints)+int64(input.Amount) > math.MaxInt32 {
				return errors.OutOfRangef("experience for %s would overflow", c.ID)
			}
			c.ExperiencePoints += input.Amount

			change = nil
			newLevel := LevelForExperience(c.ExperiencePoints)
			if newLevel <= c.Level {
				return nil
			}

			var err error
			change, err = o.levelUp(c, newLevel)
			return err
		},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "add experience failed")
		return nil, errors.Wrapf(err, "failed to add experience")
	}

	updated := txOut.Character
	slog.InfoContext(ctx, "Added experience",
		"character_id", updated.ID,
		"amount", input.Amount,
		"source", input.Source,
		"total_experience", updated.ExperiencePoints,
		"level", updated.Level)

	o.publish(ctx, messagehub.TopicExperienceGained, map[string]any{
		"character_id":     updated.ID,
		"amount":           input.Amount,
		"source":           input.Source,
		"reason":           input.Reason,
		"total_experience": updated.ExperiencePoints,
	})
	if change != nil {
		span.SetAttributes(attribute.Int("new_level", int(change.NewLevel)))
		o.publish(ctx, messagehub.TopicLevelChanged, map[string]any{
			"character_id":               updated.ID,
			"previous_level":             change.PreviousLevel,
			"new_level":                  change.NewLevel,
			"proficiency_bonus":          change.ProficiencyBonus,
			"hit_points_gained":          change.HitPointsGained,
			"ability_score_improvements": change.AbilityScoreImprovements,
			"features_granted":           change.FeaturesGranted,
		})
	}
	o.publishUpdated(ctx, updated, "experience_gained")

	return &AddExperienceOutput{
		TotalExperience: updated.ExperiencePoints,
		LeveledUp:       change != nil,
		LevelChange:     change,
		Character:       updated,
	}, nil
}

// levelUp raises c to newLevel, granting every level in between
func (o *orchestrator) levelUp(c *entities.Character, newLevel int32) (*entities.LevelChange, error) {
	change := &entities.LevelChange{
		PreviousLevel: c.Level,
		NewLevel:      newLevel,
	}

	die := HitDie(c.ClassID)
	conModifier := entities.AbilityModifier(c.AbilityScores[entities.AbilityConstitution])
	for level := c.Level + 1; level <= newLevel; level++ {
		roll, err := o.roller.Roll(die)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll hit die for level %d", level)
		}
		change.HitPointsGained += max(int32(roll)+conModifier, 1)

		if GrantsAbilityScoreImprovement(c.ClassID, level) {
			change.AbilityScoreImprovements = append(change.AbilityScoreImprovements, level)
		}
		change.FeaturesGranted = append(change.FeaturesGranted, FeaturesAt(c.ClassID, level)...)
	}
	change.ProficiencyBonus = ProficiencyBonus(newLevel)

	c.Level = newLevel
	c.ProficiencyBonus = change.ProficiencyBonus
	c.MaxHP += change.HitPointsGained
	c.CurrentHP += change.HitPointsGained
	c.Progress.PendingAbilityScoreImprovements = append(c.Progress.PendingAbilityScoreImprovements,
		change.AbilityScoreImprovements...)
	c.Progress.Features = append(c.Progress.Features, change.FeaturesGranted...)

	return change, nil
}

func (o *orchestrator) RecordMilestone(
	ctx context.Context,
	input *RecordMilestoneInput,
) (*RecordMilestoneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateRequired("milestone_id", input.MilestoneID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	milestone := &entities.Milestone{
		ID:          input.MilestoneID,
		Name:        input.Name,
		Description: input.Description,
		AchievedAt:  o.clock.Now(),
	}
	_, err := o.characterRepo.Transact(ctx, character.TransactInput{
		CharacterID: input.CharacterID,
		Fn: func(_ context.Context, uow character.UnitOfWork) error {
			c := uow.Character()
			if c.HasMilestone(input.MilestoneID) {
				return errors.AlreadyExistsf("milestone %s already recorded for character %s",
					input.MilestoneID, input.CharacterID)
			}
			c.Progress.Milestones = append(c.Progress.Milestones, *milestone)
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to record milestone")
	}

	slog.InfoContext(ctx, "Recorded milestone",
		"character_id", input.CharacterID,
		"milestone_id", milestone.ID)

	o.publish(ctx, messagehub.TopicMilestoneAchieved, map[string]any{
		"character_id": input.CharacterID,
		"milestone_id": milestone.ID,
		"name":         milestone.Name,
		"description":  milestone.Description,
	})

	return &RecordMilestoneOutput{Milestone: milestone}, nil
}

func (o *orchestrator) UnlockAchievement(
	ctx context.Context,
	input *UnlockAchievementInput,
) (*UnlockAchievementOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateRequired("achievement_id", input.AchievementID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	current, err := o.characterRepo.Get(ctx, character.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}
	if existing := findAchievement(current.Character, input.AchievementID); existing != nil {
		return &UnlockAchievementOutput{Achievement: existing}, nil
	}

	var (
		achievement *entities.Achievement
		unlocked    bool
	)
	_, err = o.characterRepo.Transact(ctx, character.TransactInput{
		CharacterID: input.CharacterID,
		Fn: func(_ context.Context, uow character.UnitOfWork) error {
			c := uow.Character()
			if existing := findAchievement(c, input.AchievementID); existing != nil {
				achievement, unlocked = existing, false
				return nil
			}

			name := input.Name
			if name == "" {
				name = input.AchievementID
			}
			achievement = &entities.Achievement{
				ID:         input.AchievementID,
				Name:       name,
				UnlockedAt: o.clock.Now(),
			}
			unlocked = true
			c.Progress.Achievements = append(c.Progress.Achievements, *achievement)
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unlock achievement")
	}

	if unlocked {
		slog.InfoContext(ctx, "Unlocked achievement",
			"character_id", input.CharacterID,
			"achievement_id", achievement.ID)
		o.publish(ctx, messagehub.TopicAchievementUnlocked, map[string]any{
			"character_id":   input.CharacterID,
			"achievement_id": achievement.ID,
			"name":           achievement.Name,
		})
	}

	return &UnlockAchievementOutput{Achievement: achievement, Unlocked: unlocked}, nil
}

func findAchievement(c *entities.Character, id string) *entities.Achievement {
	for i := range c.Progress.Achievements {
		if c.Progress.Achievements[i].ID == id {
			found := c.Progress.Achievements[i]
			return &found
		}
	}
	return nil
}

func (o *orchestrator) GetProgress(ctx context.Context, input *GetProgressInput) (*GetProgressOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.Get(ctx, character.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}
	c := out.Character

	progress := &GetProgressOutput{
		Level:                           c.Level,
		ExperiencePoints:                c.ExperiencePoints,
		ProficiencyBonus:                ProficiencyBonus(c.Level),
		PercentToNextLevel:              100,
		Milestones:                      c.Progress.Milestones,
		Achievements:                    c.Progress.Achievements,
		PendingAbilityScoreImprovements: c.Progress.PendingAbilityScoreImprovements,
		Features:                        c.Progress.Features,
	}
	if c.Level < MaxLevel {
		floor := ExperienceForLevel(c.Level)
		next := ExperienceForLevel(c.Level + 1)
		progress.NextLevelExperience = next
		progress.PercentToNextLevel = percent(c.ExperiencePoints-floor, next-floor)
	}

	return progress, nil
}

// percent returns part/whole as a percentage rounded to 2 decimals, clamped to 0-100
func percent(part, whole int32) float64 {
	if whole <= 0 {
		return 100
	}
	p := float64(part) / float64(whole) * 100
	p = math.Max(0, math.Min(100, p))
	return math.Round(p*100) / 100
}

func (o *orchestrator) publishUpdated(ctx context.Context, c *entities.Character, reason string) {
	o.publish(ctx, messagehub.TopicCharacterUpdated, map[string]any{
		"character_id":      c.ID,
		"reason":            reason,
		"version":           c.Version,
		"level":             c.Level,
		"experience_points": c.ExperiencePoints,
		"max_hp":            c.MaxHP,
	})
}

// publish is best-effort; the operation it reports has already committed
func (o *orchestrator) publish(ctx context.Context, topic string, payload map[string]any) {
	if err := o.publisher.Publish(ctx, topic, payload); err != nil {
		slog.WarnContext(ctx, "Failed to publish event",
			"topic", topic,
			"character_id", payload["character_id"],
			"error", err)
	}
}
