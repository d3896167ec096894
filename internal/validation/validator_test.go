package validation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-progression/internal/validation"
)

type ValidatorTestSuite struct {
	suite.Suite
	registry *validation.Registry
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	s.registry = validation.NewRegistry()
}

func (s *ValidatorTestSuite) TestPrestigeBelowLevel() {
	character := builders.NewCharacterBuilder().WithLevel(3).Build()
	prestige := builders.NewThemeBuilder().
		WithID("theme_knight").
		WithCategory(entities.ThemeCategoryPrestige).
		WithLevelRequirement(5).
		Build()

	result := s.registry.Validate(&validation.Context{
		Character:      character,
		ToTheme:        prestige,
		TransitionType: entities.TransitionTypeStandard,
	})

	s.False(result.IsValid)
	s.Require().Len(result.Errors, 1)
	s.Equal(entities.ErrorTypeLevelRequirement, result.Errors[0].ErrorType)
	s.Equal(map[string]any{
		"character_level": int32(3),
		"required_level":  int32(5),
	}, result.Errors[0].Context)
	s.Contains(result.Suggestions, "Level up to 5 to qualify for this theme")
	s.Contains(result.Suggestions, "Try a theme without prestige restrictions")
}

func (s *ValidatorTestSuite) TestStrengthAboveMaximum() {
	character := builders.NewCharacterBuilder().
		WithAbility(entities.AbilityStrength, 18).
		Build()
	theme := builders.NewThemeBuilder().
		WithAdjustment(entities.AbilityStrength, 3).
		Build()

	result := s.registry.Validate(&validation.Context{
		Character:      character,
		ToTheme:        theme,
		TransitionType: entities.TransitionTypeStandard,
	})

	s.False(result.IsValid)
	s.Require().Len(result.Errors, 1)
	s.Equal(entities.ErrorTypeAbilityScoreRange, result.Errors[0].ErrorType)
	s.Equal(int32(21), result.Errors[0].Context["new_score"])
	s.Equal("strength", result.Errors[0].Context["ability"])
	s.NotContains(result.Suggestions, "Level up to 1 to qualify for this theme")
}

func (s *ValidatorTestSuite) TestReportsEveryFailure() {
	character := builders.NewCharacterBuilder().
		WithLevel(2).
		WithAbility(entities.AbilityDexterity, 19).
		Build()
	theme := builders.NewThemeBuilder().
		WithLevelRequirement(4).
		WithAdjustment(entities.AbilityDexterity, 2).
		Build()

	result := s.registry.Validate(&validation.Context{
		Character:      character,
		ToTheme:        theme,
		TransitionType: entities.TransitionTypeStandard,
	})

	s.False(result.IsValid)
	s.True(result.HasErrorType(entities.ErrorTypeLevelRequirement))
	s.True(result.HasErrorType(entities.ErrorTypeAbilityScoreRange))
	s.Len(result.Errors, 2)
}

func (s *ValidatorTestSuite) TestAbilityBoundaries() {
	testCases := []struct {
		name       string
		score      int32
		from       int32
		to         int32
		shouldPass bool
	}{
		{name: "up to 20", score: 17, to: 3, shouldPass: true},
		{name: "up to 21", score: 18, to: 3, shouldPass: false},
		{name: "down to 3", score: 5, to: -2, shouldPass: true},
		{name: "down to 2", score: 4, to: -2, shouldPass: false},
		{name: "leaving a bonus lands on 3", score: 5, from: 2, shouldPass: true},
		{name: "leaving a bonus lands on 2", score: 4, from: 2, shouldPass: false},
		{name: "swap nets to 20", score: 19, from: 1, to: 2, shouldPass: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			character := builders.NewCharacterBuilder().
				WithAbility(entities.AbilityWisdom, tc.score).
				Build()

			var from *entities.Theme
			if tc.from != 0 {
				from = builders.NewThemeBuilder().
					WithID("theme_from").
					WithAdjustment(entities.AbilityWisdom, tc.from).
					Build()
			}
			to := builders.NewThemeBuilder().WithID("theme_to")
			if tc.to != 0 {
				to = to.WithAdjustment(entities.AbilityWisdom, tc.to)
			}

			result := s.registry.Validate(&validation.Context{
				Character:      character,
				FromTheme:      from,
				ToTheme:        to.Build(),
				TransitionType: entities.TransitionTypeStandard,
			})

			s.Equal(tc.shouldPass, result.IsValid)
			if !tc.shouldPass {
				s.True(result.HasErrorType(entities.ErrorTypeAbilityScoreRange))
			}
		})
	}
}

func (s *ValidatorTestSuite) TestValidResultHasNoSuggestions() {
	result := s.registry.Validate(&validation.Context{
		Character:      builders.NewCharacterBuilder().Build(),
		ToTheme:        builders.NewThemeBuilder().Build(),
		TransitionType: entities.TransitionTypeStandard,
	})

	s.True(result.IsValid)
	s.Empty(result.Errors)
	s.Empty(result.Warnings)
	s.Empty(result.Suggestions)
}

func (s *ValidatorTestSuite) TestAntitheticonTransitionWarnsEvenWhenValid() {
	theme := builders.NewThemeBuilder().
		WithCategory(entities.ThemeCategoryAntitheticon).
		Build()

	result := s.registry.Validate(&validation.Context{
		Character:      builders.NewCharacterBuilder().Build(),
		ToTheme:        theme,
		TransitionType: entities.TransitionTypeAntitheticon,
	})

	s.True(result.IsValid)
	s.Require().Len(result.Warnings, 1)
	s.Equal(entities.ErrorTypeAntitheticonConsequences, result.Warnings[0].ErrorType)
}

func (s *ValidatorTestSuite) TestAntitheticonTransitionToStandardTheme() {
	result := s.registry.Validate(&validation.Context{
		Character:      builders.NewCharacterBuilder().Build(),
		ToTheme:        builders.NewThemeBuilder().Build(),
		TransitionType: entities.TransitionTypeAntitheticon,
	})

	s.False(result.IsValid)
	s.True(result.HasErrorType(entities.ErrorTypeAntitheticonMismatch))
	s.Len(result.Warnings, 1)
	s.Contains(result.Suggestions, "Try a theme without standard restrictions")
}

func (s *ValidatorTestSuite) TestCategoryRules() {
	antitheticon := builders.NewThemeBuilder().
		WithID("theme_pact").
		WithCategory(entities.ThemeCategoryAntitheticon).
		Build()
	prestige := builders.NewThemeBuilder().
		WithID("theme_knight").
		WithCategory(entities.ThemeCategoryPrestige).
		Build()
	epic := builders.NewThemeBuilder().
		WithID("theme_dragon").
		WithCategory(entities.ThemeCategoryEpic).
		Build()
	standard := builders.NewThemeBuilder().Build()

	testCases := []struct {
		name           string
		from           *entities.Theme
		to             *entities.Theme
		transitionType entities.TransitionType
		errorType      string
	}{
		{name: "prestige from antitheticon", from: antitheticon, to: prestige,
			transitionType: entities.TransitionTypeStandard, errorType: entities.ErrorTypePrestigeRestriction},
		{name: "prestige from standard", from: standard, to: prestige,
			transitionType: entities.TransitionTypeStandard},
		{name: "epic from nothing", to: epic,
			transitionType: entities.TransitionTypeStandard, errorType: entities.ErrorTypeEpicPrerequisite},
		{name: "epic from standard", from: standard, to: epic,
			transitionType: entities.TransitionTypeStandard, errorType: entities.ErrorTypeEpicPrerequisite},
		{name: "epic from prestige", from: prestige, to: epic,
			transitionType: entities.TransitionTypeStandard},
		{name: "epic from epic", from: epic, to: epic,
			transitionType: entities.TransitionTypeStandard},
		{name: "antitheticon by standard transition", from: standard, to: antitheticon,
			transitionType: entities.TransitionTypeStandard, errorType: entities.ErrorTypeAntitheticonTransitionRequired},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := s.registry.Validate(&validation.Context{
				Character:      builders.NewCharacterBuilder().Build(),
				FromTheme:      tc.from,
				ToTheme:        tc.to,
				TransitionType: tc.transitionType,
			})

			if tc.errorType == "" {
				s.True(result.IsValid, "unexpected errors: %v", result.Errors)
				return
			}
			s.False(result.IsValid)
			s.Require().Len(result.Errors, 1)
			s.Equal(tc.errorType, result.Errors[0].ErrorType)
		})
	}
}

func (s *ValidatorTestSuite) TestForcedAntitheticonWithCampaignEvent() {
	character := builders.NewCharacterBuilder().Build()
	theme := builders.NewThemeBuilder().
		WithCategory(entities.ThemeCategoryAntitheticon).
		Build()

	result := s.registry.Validate(&validation.Context{
		Character:       character,
		ToTheme:         theme,
		TransitionType:  entities.TransitionTypeForced,
		CampaignEventID: "event-1",
		CampaignEvent: &entities.CampaignEvent{
			ID:          "event-1",
			CharacterID: character.ID,
			Status:      entities.EventStatusApplied,
		},
	})

	s.True(result.IsValid, "unexpected errors: %v", result.Errors)
}

func (s *ValidatorTestSuite) TestRegistryComposition() {
	base := []string{
		"level_requirement",
		"class_restriction",
		"race_restriction",
		"ability_score",
		"antitheticon",
		"equipment_capacity",
		"campaign_context",
	}

	s.Equal(base, s.registry.ValidatorFor(entities.ThemeCategoryStandard).Rules())
	s.Equal(append(append([]string{}, base...), "prestige"),
		s.registry.ValidatorFor(entities.ThemeCategoryPrestige).Rules())
	s.Equal(append(append([]string{}, base...), "epic"),
		s.registry.ValidatorFor(entities.ThemeCategoryEpic).Rules())
	s.Equal(append(append([]string{}, base...), "antitheticon_entry"),
		s.registry.ValidatorFor(entities.ThemeCategoryAntitheticon).Rules())
}

func (s *ValidatorTestSuite) TestIncompleteContext() {
	result := s.registry.Validate(&validation.Context{
		Character: builders.NewCharacterBuilder().Build(),
	})

	s.False(result.IsValid)
	s.True(result.HasErrorType(entities.ErrorTypeValidationError))
}
