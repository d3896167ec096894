package transition_test

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	equipmentmock "github.com/KirkDiggler/rpg-progression/internal/clients/equipment/mock"
	llmmock "github.com/KirkDiggler/rpg-progression/internal/clients/llm/mock"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/messagehub"
	messagehubmock "github.com/KirkDiggler/rpg-progression/internal/messagehub/mock"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/themestate"
	themestatemock "github.com/KirkDiggler/rpg-progression/internal/orchestrators/themestate/mock"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/transition"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/theme"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/mocks"
	"github.com/KirkDiggler/rpg-progression/internal/validation"
)

const characterID = "char-1"

type OrchestratorTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	mockPublisher   *messagehubmock.MockPublisher
	mockLLM         *llmmock.MockClient
	mockEquipment   *equipmentmock.MockClient
	characterRepo   character.Repository
	themeRepo       theme.Repository
	themeStates     themestate.Service
	orchestrator    transition.Service
	suggestionDelay time.Duration
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockPublisher = messagehubmock.NewMockPublisher(s.ctrl)
	s.mockLLM = llmmock.NewMockClient(s.ctrl)
	s.mockEquipment = equipmentmock.NewMockClient(s.ctrl)

	mocks.ExpectItemWeights(s.mockEquipment, map[string]float64{
		"longsword":   3,
		"plate-armor": 65,
	})

	client, _ := testutils.CreateTestRedis(s.T())
	fixed := clock.NewFixed(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	var err error
	s.characterRepo, err = character.NewRedis(&character.RedisConfig{Client: client, Clock: fixed})
	s.Require().NoError(err)
	s.themeRepo, err = theme.NewRedis(&theme.RedisConfig{Client: client})
	s.Require().NoError(err)
	_, err = s.themeRepo.Put(s.ctx, theme.PutInput{Themes: testutils.CreateTestThemes()})
	s.Require().NoError(err)

	s.themeStates, err = themestate.NewOrchestrator(&themestate.Config{
		CharacterRepo: s.characterRepo,
		ThemeRepo:     s.themeRepo,
		StateIDGen:    idgen.NewSequential("state"),
		TransitionGen: idgen.NewSequential("transition"),
		Clock:         fixed,
	})
	s.Require().NoError(err)

	s.orchestrator = s.newOrchestrator(time.Second)
	s.createCharacter(testutils.CreateTestCharacter(characterID))
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) config(timeout time.Duration) *transition.Config {
	return &transition.Config{
		CharacterRepo:     s.characterRepo,
		ThemeRepo:         s.themeRepo,
		ThemeStates:       s.themeStates,
		Registry:          validation.NewRegistry(),
		Publisher:         s.mockPublisher,
		LLMClient:         s.mockLLM,
		EquipmentClient:   s.mockEquipment,
		SuggestionTimeout: timeout,
	}
}

func (s *OrchestratorTestSuite) newOrchestrator(timeout time.Duration) transition.Service {
	svc, err := transition.NewOrchestrator(s.config(timeout))
	s.Require().NoError(err)
	return svc
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

func (s *OrchestratorTestSuite) apply(to string, transitionType entities.TransitionType) *transition.ApplyTransitionOutput {
	out, err := s.orchestrator.ApplyTransition(s.ctx, &transition.ApplyTransitionInput{
		CharacterID:    characterID,
		ToThemeID:      to,
		TransitionType: transitionType,
		TriggeredBy:    "game_master",
	})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) history() []*entities.ThemeTransition {
	out, err := s.orchestrator.GetTransitionHistory(s.ctx, &transition.GetTransitionHistoryInput{CharacterID: characterID})
	s.Require().NoError(err)
	return out.Transitions
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := transition.NewOrchestrator(&transition.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestValidatePrestigeBelowLevel() {
	out, err := s.orchestrator.ValidateTransition(s.ctx, &transition.ValidateTransitionInput{
		CharacterID: characterID,
		ToThemeID:   testutils.ThemeKnight,
	})
	s.Require().NoError(err)

	result := out.Result
	s.False(result.IsValid)
	s.Require().Len(result.Errors, 1)
	s.Equal(entities.ErrorTypeLevelRequirement, result.Errors[0].ErrorType)
	s.Equal(int32(3), result.Errors[0].Context["character_level"])
	s.Equal(int32(5), result.Errors[0].Context["required_level"])
	s.Contains(result.Suggestions, "Level up to 5 to qualify for this theme")
}

func (s *OrchestratorTestSuite) TestValidateMissingRecords() {
	out, err := s.orchestrator.ValidateTransition(s.ctx, &transition.ValidateTransitionInput{
		CharacterID: "char-missing",
		ToThemeID:   testutils.ThemeSellsword,
	})
	s.Require().NoError(err)
	s.False(out.Result.IsValid)
	s.True(out.Result.HasErrorType(entities.ErrorTypeCharacterNotFound))

	out, err = s.orchestrator.ValidateTransition(s.ctx, &transition.ValidateTransitionInput{
		CharacterID: characterID,
		ToThemeID:   "theme_missing",
	})
	s.Require().NoError(err)
	s.False(out.Result.IsValid)
	s.True(out.Result.HasErrorType(entities.ErrorTypeThemeNotFound))
}

func (s *OrchestratorTestSuite) TestValidateRejectsMalformedInput() {
	_, err := s.orchestrator.ValidateTransition(s.ctx, &transition.ValidateTransitionInput{CharacterID: characterID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ValidateTransition(s.ctx, &transition.ValidateTransitionInput{
		CharacterID:    characterID,
		ToThemeID:      testutils.ThemeSellsword,
		TransitionType: "sideways",
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestApplyTransitionCommits() {
	published := mocks.CapturePublishes(s.mockPublisher)

	out := s.apply(testutils.ThemeSellsword, "")

	s.True(out.Success)
	s.Equal(transition.StateCommitted, out.State)
	s.NotEmpty(out.TransitionID)
	s.Nil(out.OldState)
	s.Require().NotNil(out.NewState)
	s.Equal(int64(1), out.NewState.Version)
	s.Equal(testutils.ThemeSellsword, out.NewState.ThemeID)
	s.True(out.ValidationResult.IsValid)
	s.Equal(entities.AbilityScores{entities.AbilityStrength: 1}, out.AppliedChanges.AbilityChanges)

	stored := s.getCharacter(characterID)
	s.Equal(int32(17), stored.AbilityScores[entities.AbilityStrength])
	s.Equal(int32(1), stored.ItemQuantity("longsword"))
	s.Equal(int64(2), stored.Version)
	s.Equal(stored.Version, out.Character.Version)

	transitions := s.history()
	s.Require().Len(transitions, 1)
	s.Equal(out.TransitionID, transitions[0].ID)
	s.Equal("game_master", transitions[0].TriggeredBy)

	s.Equal([]string{messagehub.TopicThemeTransitionCompleted}, published.Topics())
	payload := published.Last(messagehub.TopicThemeTransitionCompleted)
	s.Equal(characterID, payload["character_id"])
	s.Nil(payload["from_theme_id"])
	s.Equal(testutils.ThemeSellsword, payload["to_theme_id"])
	s.Equal("standard", payload["transition_type"])
	s.Nil(payload["campaign_event_id"])
	s.Equal(out.AppliedChanges, payload["changes"])
}

func (s *OrchestratorTestSuite) TestApplyTransitionRejectedWritesNothing() {
	out := s.apply(testutils.ThemeKnight, "")

	s.False(out.Success)
	s.Equal(transition.StateRejected, out.State)
	s.True(out.ValidationResult.HasErrorType(entities.ErrorTypeLevelRequirement))
	s.NotEmpty(out.ErrorDetails["message"])

	s.Equal(int64(1), s.getCharacter(characterID).Version)
	s.Empty(s.history())
}

func (s *OrchestratorTestSuite) TestApplyTransitionRollsBackOnFailure() {
	// staging succeeds, then the transition log write fails
	states := themestatemock.NewMockService(s.ctrl)
	states.EXPECT().CalculateStateChanges(gomock.Any(), gomock.Any()).
		DoAndReturn(s.themeStates.CalculateStateChanges)
	states.EXPECT().ApplyThemeState(gomock.Any(), gomock.Any()).
		DoAndReturn(s.themeStates.ApplyThemeState)
	states.EXPECT().RecordThemeTransition(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("transition log unavailable"))

	cfg := s.config(time.Second)
	cfg.ThemeStates = states
	svc, err := transition.NewOrchestrator(cfg)
	s.Require().NoError(err)

	before := s.getCharacter(characterID)

	out, err := svc.ApplyTransition(s.ctx, &transition.ApplyTransitionInput{
		CharacterID: characterID,
		ToThemeID:   testutils.ThemeSellsword,
	})
	s.Require().NoError(err)

	s.False(out.Success)
	s.Equal(transition.StateRolledBack, out.State)
	s.True(out.ValidationResult.HasErrorType(entities.ErrorTypeTransitionError))
	s.Equal(string(errors.CodeInternal), out.ValidationResult.Errors[0].Context["code"])
	s.NotEmpty(out.ErrorDetails["message"])

	after := s.getCharacter(characterID)
	s.Equal(before, after)
	s.Zero(after.ItemQuantity("longsword"))
	s.Empty(s.history())

	active, err := s.themeStates.GetActiveThemeState(s.ctx, &themestate.GetActiveThemeStateInput{CharacterID: characterID})
	s.Require().NoError(err)
	s.Nil(active.State)
}

func (s *OrchestratorTestSuite) TestLeavingThemeAfterGrantedItemIsGone() {
	mocks.CapturePublishes(s.mockPublisher)
	_, err := s.themeRepo.Put(s.ctx, theme.PutInput{Themes: []*entities.Theme{
		builders.NewThemeBuilder().WithID("wanderer").WithName("Wanderer").Build(),
	}})
	s.Require().NoError(err)

	s.Require().True(s.apply(testutils.ThemeSellsword, "").Success)

	// the granted longsword was sold
	current := s.getCharacter(characterID)
	current.Inventory = nil
	_, err = s.characterRepo.Update(s.ctx, character.UpdateInput{Character: current})
	s.Require().NoError(err)

	validated, err := s.orchestrator.ValidateTransition(s.ctx, &transition.ValidateTransitionInput{
		CharacterID: characterID,
		ToThemeID:   "wanderer",
	})
	s.Require().NoError(err)
	s.True(validated.Result.IsValid)

	out := s.apply("wanderer", "")

	s.Require().True(out.Success, "validate and apply must agree")
	s.Equal(transition.StateCommitted, out.State)
	s.Empty(out.AppliedChanges.EquipmentChanges)
	s.Equal(entities.AbilityScores{entities.AbilityStrength: -1}, out.AppliedChanges.AbilityChanges)

	stored := s.getCharacter(characterID)
	s.Equal(int32(16), stored.AbilityScores[entities.AbilityStrength])
	s.Empty(stored.Inventory)

	transitions := s.history()
	s.Require().Len(transitions, 2)
	s.Empty(transitions[1].AppliedChanges.EquipmentChanges)
}

func (s *OrchestratorTestSuite) TestLeavingThemeTakesBackOnlyWhatIsCarried() {
	mocks.CapturePublishes(s.mockPublisher)
	_, err := s.themeRepo.Put(s.ctx, theme.PutInput{Themes: []*entities.Theme{
		builders.NewThemeBuilder().
			WithID("quartermaster").
			WithName("Quartermaster").
			WithEquipment("rations", 10).
			Build(),
		builders.NewThemeBuilder().WithID("wanderer").WithName("Wanderer").Build(),
	}})
	s.Require().NoError(err)

	s.Require().True(s.apply("quartermaster", "").Success)

	current := s.getCharacter(characterID)
	current.Inventory = []entities.InventoryItem{{ItemID: "rations", Quantity: 4}}
	_, err = s.characterRepo.Update(s.ctx, character.UpdateInput{Character: current})
	s.Require().NoError(err)

	out := s.apply("wanderer", "")

	s.Require().True(out.Success)
	s.Equal([]entities.EquipmentChange{{
		Operation: entities.EquipmentOperationRemove,
		ItemID:    "rations",
		Quantity:  4,
	}}, out.AppliedChanges.EquipmentChanges)
	s.Zero(s.getCharacter(characterID).ItemQuantity("rations"))
}

func (s *OrchestratorTestSuite) TestItemWeightsResolvedOncePerApply() {
	mocks.CapturePublishes(s.mockPublisher)
	equipment := equipmentmock.NewMockClient(s.ctrl)
	equipment.EXPECT().GetItemWeight(gomock.Any(), "longsword").Return(float64(3), nil).Times(1)

	cfg := s.config(time.Second)
	cfg.EquipmentClient = equipment
	svc, err := transition.NewOrchestrator(cfg)
	s.Require().NoError(err)

	out, err := svc.ApplyTransition(s.ctx, &transition.ApplyTransitionInput{
		CharacterID: characterID,
		ToThemeID:   testutils.ThemeSellsword,
	})
	s.Require().NoError(err)
	s.True(out.Success)
}

func (s *OrchestratorTestSuite) TestSequentialTransitionsKeepOneActiveState() {
	mocks.CapturePublishes(s.mockPublisher)

	s.Require().True(s.apply(testutils.ThemeSellsword, "").Success)
	shadow := s.apply(testutils.ThemeShadowPact, entities.TransitionTypeAntitheticon)
	s.Require().True(shadow.Success)
	s.Len(shadow.ValidationResult.Warnings, 1)
	back := s.apply(testutils.ThemeSellsword, "")
	s.Require().True(back.Success)
	s.Equal(int64(3), back.NewState.Version)
	s.Equal(testutils.ThemeShadowPact, back.OldState.ThemeID)

	stored := s.getCharacter(characterID)
	s.Equal(int32(17), stored.AbilityScores[entities.AbilityStrength])
	s.Equal(int32(10), stored.AbilityScores[entities.AbilityWisdom])
	s.Equal(int32(10), stored.AbilityScores[entities.AbilityCharisma])
	s.Equal(int32(1), stored.ItemQuantity("longsword"))

	states, err := s.themeStates.ListThemeStates(s.ctx, &themestate.ListThemeStatesInput{CharacterID: characterID})
	s.Require().NoError(err)
	active := 0
	for _, state := range states.States {
		if state.Active {
			active++
		}
	}
	s.Equal(1, active)
	s.Len(s.history(), 3)
}

func (s *OrchestratorTestSuite) TestStaleFromTheme() {
	out, err := s.orchestrator.ApplyTransition(s.ctx, &transition.ApplyTransitionInput{
		CharacterID: characterID,
		FromThemeID: testutils.ThemeSellsword,
		ToThemeID:   testutils.ThemeShadowPact,
	})
	s.Require().NoError(err)
	s.Equal(transition.StateRejected, out.State)
	s.True(out.ValidationResult.HasErrorType(entities.ErrorTypeValidationError))
}

func (s *OrchestratorTestSuite) TestPublishFailureDoesNotFailTransition() {
	mocks.ExpectPublishFailure(s.mockPublisher, messagehub.TopicThemeTransitionCompleted,
		errors.Unavailable("hub down"))

	out := s.apply(testutils.ThemeSellsword, "")

	s.True(out.Success)
	s.Len(s.history(), 1)
}

func (s *OrchestratorTestSuite) TestEquipmentCapacity() {
	s.createCharacter(builders.NewCharacterBuilder().
		WithID("char-heavy").
		WithAbility(entities.AbilityStrength, 16).
		WithItem("plate-armor", 4).
		Build())

	out, err := s.orchestrator.ApplyTransition(s.ctx, &transition.ApplyTransitionInput{
		CharacterID: "char-heavy",
		ToThemeID:   testutils.ThemeSellsword,
	})
	s.Require().NoError(err)

	s.Equal(transition.StateRejected, out.State)
	s.Require().True(out.ValidationResult.HasErrorType(entities.ErrorTypeEquipmentCapacity))
	s.Equal(float64(263), out.ValidationResult.Errors[0].Context["current_weight"])
	s.Equal(float64(255), out.ValidationResult.Errors[0].Context["capacity"])
}

func (s *OrchestratorTestSuite) TestCampaignTransition() {
	published := mocks.CapturePublishes(s.mockPublisher)

	_, err := s.characterRepo.Transact(s.ctx, character.TransactInput{
		CharacterID: characterID,
		Fn: func(_ context.Context, uow character.UnitOfWork) error {
			return uow.PutCampaignEvent(&entities.CampaignEvent{
				ID:          "event-1",
				CharacterID: characterID,
				EventType:   "betrayal",
				ImpactType:  entities.ImpactTypeExperience,
				Status:      entities.EventStatusApplied,
				Applied:     true,
			})
		},
	})
	s.Require().NoError(err)

	out, err := s.orchestrator.ApplyTransition(s.ctx, &transition.ApplyTransitionInput{
		CharacterID:     characterID,
		ToThemeID:       testutils.ThemeShadowPact,
		TransitionType:  entities.TransitionTypeForced,
		CampaignEventID: "event-1",
		TriggeredBy:     "campaign",
	})
	s.Require().NoError(err)
	s.Require().True(out.Success, "result: %+v", out.ValidationResult)

	s.Equal("event-1", s.history()[0].CampaignEventID)
	s.Equal("event-1", published.Last(messagehub.TopicThemeTransitionCompleted)["campaign_event_id"])

	missing, err := s.orchestrator.ApplyTransition(s.ctx, &transition.ApplyTransitionInput{
		CharacterID:    characterID,
		ToThemeID:      testutils.ThemeSellsword,
		TransitionType: entities.TransitionTypeCampaign,
	})
	s.Require().NoError(err)
	s.True(missing.ValidationResult.HasErrorType(entities.ErrorTypeCampaignContext))
}

func (s *OrchestratorTestSuite) TestConcurrentAppliesSerialize() {
	mocks.CapturePublishes(s.mockPublisher)

	const workers = 8
	var wg sync.WaitGroup
	results := make([]*transition.ApplyTransitionOutput, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := s.orchestrator.ApplyTransition(s.ctx, &transition.ApplyTransitionInput{
				CharacterID: characterID,
				ToThemeID:   testutils.ThemeSellsword,
			})
			if err == nil {
				results[i] = out
			}
		}(i)
	}
	wg.Wait()

	committed := 0
	for _, out := range results {
		s.Require().NotNil(out)
		if out.Success {
			committed++
		} else {
			s.Equal(transition.StateRejected, out.State)
		}
	}
	s.Equal(1, committed)

	stored := s.getCharacter(characterID)
	s.Equal(int32(17), stored.AbilityScores[entities.AbilityStrength])
	s.Equal(int32(1), stored.ItemQuantity("longsword"))
	s.Len(s.history(), 1)
}

func (s *OrchestratorTestSuite) TestSuggestions() {
	mocks.CapturePublishes(s.mockPublisher)
	s.Require().True(s.apply(testutils.ThemeSellsword, "").Success)

	s.mockLLM.EXPECT().
		GetThemeSuggestions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, suggestionContext map[string]any) ([]map[string]any, error) {
			_, hasDeadline := ctx.Deadline()
			s.True(hasDeadline)
			s.Equal(map[string]any{"event": "dragon attack"}, suggestionContext["event_context"])
			return []map[string]any{
				{"theme_id": testutils.ThemeKnight, "reason": "sworn to protect"},
				{"name": "shadow pact"},
				{"theme_id": "theme_unknown"},
				{"theme_id": testutils.ThemeSellsword},
				{"theme_id": testutils.ThemeKnight},
			}, nil
		})

	out, err := s.orchestrator.GetTransitionSuggestions(s.ctx, &transition.GetTransitionSuggestionsInput{
		CharacterID:  characterID,
		EventContext: map[string]any{"event": "dragon attack"},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Themes, 2)
	s.Equal(testutils.ThemeKnight, out.Themes[0].ID)
	s.Equal(testutils.ThemeShadowPact, out.Themes[1].ID)
}

func (s *OrchestratorTestSuite) TestSuggestionsDegradeToEmpty() {
	s.Run("provider error", func() {
		s.mockLLM.EXPECT().
			GetThemeSuggestions(gomock.Any(), gomock.Any()).
			Return(nil, stderrors.New("rate limited"))

		out, err := s.orchestrator.GetTransitionSuggestions(s.ctx, &transition.GetTransitionSuggestionsInput{
			CharacterID: characterID,
		})
		s.Require().NoError(err)
		s.Empty(out.Themes)
	})

	s.Run("timeout", func() {
		svc := s.newOrchestrator(10 * time.Millisecond)
		s.mockLLM.EXPECT().
			GetThemeSuggestions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ map[string]any) ([]map[string]any, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			})

		out, err := svc.GetTransitionSuggestions(s.ctx, &transition.GetTransitionSuggestionsInput{
			CharacterID: characterID,
		})
		s.Require().NoError(err)
		s.Empty(out.Themes)
	})

	s.Run("missing character", func() {
		out, err := s.orchestrator.GetTransitionSuggestions(s.ctx, &transition.GetTransitionSuggestionsInput{
			CharacterID: "char-missing",
		})
		s.Require().NoError(err)
		s.Empty(out.Themes)
	})
}
