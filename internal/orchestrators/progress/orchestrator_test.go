package progress_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/messagehub"
	messagehubmock "github.com/KirkDiggler/rpg-progression/internal/messagehub/mock"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/progress"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/mocks"
)

// fixedRoller rolls the same value on every die
type fixedRoller struct {
	value int
	rolls []int
}

func (r *fixedRoller) Roll(size int) (int, error) {
	r.rolls = append(r.rolls, size)
	return min(r.value, size), nil
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	published     *mocks.Published
	roller        *fixedRoller
	characterRepo character.Repository
	orchestrator  progress.Service
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	mockPublisher := messagehubmock.NewMockPublisher(s.ctrl)
	s.published = mocks.CapturePublishes(mockPublisher)
	s.roller = &fixedRoller{value: 6}

	client, _ := testutils.CreateTestRedis(s.T())
	fixed := clock.NewFixed(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	var err error
	s.characterRepo, err = character.NewRedis(&character.RedisConfig{Client: client, Clock: fixed})
	s.Require().NoError(err)

	s.orchestrator, err = progress.NewOrchestrator(&progress.Config{
		CharacterRepo: s.characterRepo,
		Publisher:     mockPublisher,
		DiceRoller:    s.roller,
		Clock:         fixed,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) createCharacter(c *entities.Character) {
	_, err := s.characterRepo.Create(s.ctx, character.CreateInput{Character: c})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) getCharacter(id string) *entities.Character {
	out, err := s.characterRepo.Get(s.ctx, character.GetInput{ID: id})
	s.Require().NoError(err)
	return out.Character
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := progress.NewOrchestrator(&progress.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAddExperienceLevelsUpTwice() {
	s.createCharacter(builders.NewCharacterBuilder().WithID("char-new").Build())

	out, err := s.orchestrator.AddExperience(s.ctx, &progress.AddExperienceInput{
		CharacterID: "char-new",
		Amount:      1000,
		Source:      "quest",
		Reason:      "rescued the miller",
	})
	s.Require().NoError(err)

	s.Equal(int32(1000), out.TotalExperience)
	s.True(out.LeveledUp)
	s.Require().NotNil(out.LevelChange)
	s.Equal(int32(1), out.LevelChange.PreviousLevel)
	s.Equal(int32(3), out.LevelChange.NewLevel)
	s.Equal(int32(2), out.LevelChange.ProficiencyBonus)
	s.Equal(int32(12), out.LevelChange.HitPointsGained)
	s.Empty(out.LevelChange.AbilityScoreImprovements)
	s.Equal([]string{"action_surge", "martial_archetype"}, out.LevelChange.FeaturesGranted)
	s.Equal([]int{10, 10}, s.roller.rolls)

	stored := s.getCharacter("char-new")
	s.Equal(int32(3), stored.Level)
	s.Equal(int32(22), stored.MaxHP)
	s.Equal(int32(22), stored.CurrentHP)
	s.Equal([]string{"action_surge", "martial_archetype"}, stored.Progress.Features)

	s.Equal([]string{
		messagehub.TopicExperienceGained,
		messagehub.TopicLevelChanged,
		messagehub.TopicCharacterUpdated,
	}, s.published.Topics())

	levelChanged := s.published.Last(messagehub.TopicLevelChanged)
	s.Equal("char-new", levelChanged["character_id"])
	s.Equal(int32(1), levelChanged["previous_level"])
	s.Equal(int32(3), levelChanged["new_level"])

	gained := s.published.Last(messagehub.TopicExperienceGained)
	s.Equal(int32(1000), gained["amount"])
	s.Equal(int32(1000), gained["total_experience"])
	s.Equal("quest", gained["source"])
}

func (s *OrchestratorTestSuite) TestAddExperienceWithoutLevelUp() {
	s.createCharacter(testutils.CreateTestCharacter("char-1"))

	out, err := s.orchestrator.AddExperience(s.ctx, &progress.AddExperienceInput{
		CharacterID: "char-1",
		Amount:      200,
	})
	s.Require().NoError(err)

	s.Equal(int32(1100), out.TotalExperience)
	s.False(out.LeveledUp)
	s.Nil(out.LevelChange)
	s.Empty(s.roller.rolls)
	s.Equal(int32(3), s.getCharacter("char-1").Level)
	s.Empty(s.published.Messages(messagehub.TopicLevelChanged))
	s.Len(s.published.Messages(messagehub.TopicCharacterUpdated), 1)
}

func (s *OrchestratorTestSuite) TestAddExperienceGrantsAbilityScoreImprovements() {
	s.createCharacter(testutils.CreateTestCharacter("char-1"))

	out, err := s.orchestrator.AddExperience(s.ctx, &progress.AddExperienceInput{
		CharacterID: "char-1",
		Amount:      23000 - 900,
	})
	s.Require().NoError(err)

	change := out.LevelChange
	s.Require().NotNil(change)
	s.Equal(int32(7), change.NewLevel)
	s.Equal(int32(3), change.ProficiencyBonus)
	s.Equal([]int32{4, 6}, change.AbilityScoreImprovements)
	s.Equal([]string{"extra_attack"}, change.FeaturesGranted)
	// d10 rolls 6, CON 14 adds 2, four levels
	s.Equal(int32(32), change.HitPointsGained)

	stored := s.getCharacter("char-1")
	s.Equal(int32(3), stored.ProficiencyBonus)
	s.Equal(int32(60), stored.MaxHP)
	s.Equal([]int32{4, 6}, stored.Progress.PendingAbilityScoreImprovements)
}

func (s *OrchestratorTestSuite) TestHitPointsGainedAtLeastOnePerLevel() {
	s.roller.value = 1
	s.createCharacter(builders.NewCharacterBuilder().
		WithID("char-frail").
		WithClass(entities.ClassWizard).
		WithAbility(entities.AbilityConstitution, 3).
		Build())

	out, err := s.orchestrator.AddExperience(s.ctx, &progress.AddExperienceInput{
		CharacterID: "char-frail",
		Amount:      2700,
	})
	s.Require().NoError(err)
	s.Equal(int32(4), out.LevelChange.NewLevel)
	s.Equal(int32(3), out.LevelChange.HitPointsGained)
	s.Equal([]int32{4}, out.LevelChange.AbilityScoreImprovements)
}

func (s *OrchestratorTestSuite) TestAddExperienceErrors() {
	_, err := s.orchestrator.AddExperience(s.ctx, &progress.AddExperienceInput{CharacterID: "char-1"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.AddExperience(s.ctx, &progress.AddExperienceInput{
		CharacterID: "char-missing",
		Amount:      10,
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestRecordMilestone() {
	s.createCharacter(testutils.CreateTestCharacter("char-1"))
	input := &progress.RecordMilestoneInput{
		CharacterID: "char-1",
		MilestoneID: "ms-dragon",
		Name:        "Slew the dragon",
	}

	out, err := s.orchestrator.RecordMilestone(s.ctx, input)
	s.Require().NoError(err)
	s.Equal("ms-dragon", out.Milestone.ID)

	_, err = s.orchestrator.RecordMilestone(s.ctx, input)
	s.True(errors.IsAlreadyExists(err))

	s.Len(s.getCharacter("char-1").Progress.Milestones, 1)
	s.Len(s.published.Messages(messagehub.TopicMilestoneAchieved), 1)
	s.Equal("Slew the dragon", s.published.Last(messagehub.TopicMilestoneAchieved)["name"])
}

func (s *OrchestratorTestSuite) TestUnlockAchievementIsIdempotent() {
	s.createCharacter(testutils.CreateTestCharacter("char-1"))
	input := &progress.UnlockAchievementInput{
		CharacterID:   "char-1",
		AchievementID: "first-blood",
		Name:          "First Blood",
	}

	first, err := s.orchestrator.UnlockAchievement(s.ctx, input)
	s.Require().NoError(err)
	s.True(first.Unlocked)

	second, err := s.orchestrator.UnlockAchievement(s.ctx, input)
	s.Require().NoError(err)
	s.False(second.Unlocked)
	s.Equal(first.Achievement, second.Achievement)

	stored := s.getCharacter("char-1")
	s.Len(stored.Progress.Achievements, 1)
	s.Equal(int64(2), stored.Version)
	s.Len(s.published.Messages(messagehub.TopicAchievementUnlocked), 1)
}

func (s *OrchestratorTestSuite) TestGetProgress() {
	s.createCharacter(testutils.CreateTestCharacter("char-1"))
	_, err := s.orchestrator.AddExperience(s.ctx, &progress.AddExperienceInput{
		CharacterID: "char-1",
		Amount:      900,
	})
	s.Require().NoError(err)

	out, err := s.orchestrator.GetProgress(s.ctx, &progress.GetProgressInput{CharacterID: "char-1"})
	s.Require().NoError(err)
	s.Equal(int32(3), out.Level)
	s.Equal(int32(1800), out.ExperiencePoints)
	s.Equal(int32(2700), out.NextLevelExperience)
	s.Equal(50.0, out.PercentToNextLevel)
	s.Equal(int32(2), out.ProficiencyBonus)

	s.createCharacter(builders.NewCharacterBuilder().
		WithID("char-max").
		WithLevel(20).
		WithExperience(400000).
		Build())
	maxed, err := s.orchestrator.GetProgress(s.ctx, &progress.GetProgressInput{CharacterID: "char-max"})
	s.Require().NoError(err)
	s.Equal(int32(0), maxed.NextLevelExperience)
	s.Equal(100.0, maxed.PercentToNextLevel)
}
