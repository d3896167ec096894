// Package themestate computes theme deltas and manages a character's active
// theme state and transition log
package themestate

//go:generate mockgen -destination=mock/mock_service.go -package=themestatemock github.com/KirkDiggler/rpg-progression/internal/orchestrators/themestate Service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/theme"
)

// Service defines the interface for theme state operations
type Service interface {
	GetActiveThemeState(ctx context.Context, input *GetActiveThemeStateInput) (*GetActiveThemeStateOutput, error)
	CalculateStateChanges(ctx context.Context, input *CalculateStateChangesInput) (*CalculateStateChangesOutput, error)

	// ApplyThemeState and RecordThemeTransition stage writes on the unit of
	// work in the input. Nothing is stored until it commits.
	ApplyThemeState(ctx context.Context, input *ApplyThemeStateInput) (*ApplyThemeStateOutput, error)
	RecordThemeTransition(ctx context.Context, input *RecordThemeTransitionInput) (*RecordThemeTransitionOutput, error)

	ListThemeStates(ctx context.Context, input *ListThemeStatesInput) (*ListThemeStatesOutput, error)
	ListTransitions(ctx context.Context, input *ListTransitionsInput) (*ListTransitionsOutput, error)
	DiffThemeStates(ctx context.Context, input *DiffThemeStatesInput) (*DiffThemeStatesOutput, error)
}

// Config holds the dependencies for the theme state orchestrator
type Config struct {
	CharacterRepo character.Repository
	ThemeRepo     theme.Repository
	StateIDGen    idgen.Generator
	TransitionGen idgen.Generator
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
	if c.ThemeRepo == nil {
		vb.RequiredField("ThemeRepo")
	}
	if c.StateIDGen == nil {
		vb.RequiredField("StateIDGen")
	}
	if c.TransitionGen == nil {
		vb.RequiredField("TransitionGen")
	}
	return vb.Build()
}

type orchestrator struct {
	characterRepo character.Repository
	themeRepo     theme.Repository
	stateIDGen    idgen.Generator
	transitionGen idgen.Generator
	clock         clock.Clock
}

// NewOrchestrator creates a new theme state orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		themeRepo:     cfg.ThemeRepo,
		stateIDGen:    cfg.StateIDGen,
		transitionGen: cfg.TransitionGen,
		clock:         c,
	}, nil
}

func (o *orchestrator) GetActiveThemeState(
	ctx context.Context,
	input *GetActiveThemeStateInput,
) (*GetActiveThemeStateOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.GetActiveThemeState(ctx, character.GetActiveThemeStateInput{
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get active theme state")
	}

	return &GetActiveThemeStateOutput{State: out.State}, nil
}

func (o *orchestrator) CalculateStateChanges(
	ctx context.Context,
	input *CalculateStateChangesInput,
) (*CalculateStateChangesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ToThemeID == "" {
		return nil, errors.InvalidArgument("target theme ID is required")
	}

	var from *entities.Theme
	if input.FromThemeID != "" {
		out, err := o.themeRepo.Get(ctx, theme.GetInput{ID: input.FromThemeID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get theme %s", input.FromThemeID)
		}
		from = out.Theme
	}

	toOut, err := o.themeRepo.Get(ctx, theme.GetInput{ID: input.ToThemeID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get theme %s", input.ToThemeID)
	}

	changes := ComputeStateChanges(from, toOut.Theme)

	slog.DebugContext(ctx, "Calculated theme state changes",
		"character_id", input.CharacterID,
		"from_theme_id", input.FromThemeID,
		"to_theme_id", input.ToThemeID,
		"ability_changes", len(changes.AbilityChanges),
		"equipment_changes", len(changes.EquipmentChanges))

	return &CalculateStateChangesOutput{
		Changes:   changes,
		FromTheme: from,
		ToTheme:   toOut.Theme,
	}, nil
}

func (o *orchestrator) ApplyThemeState(
	ctx context.Context,
	input *ApplyThemeStateInput,
) (*ApplyThemeStateOutput, error) {
	if input == nil || input.UnitOfWork == nil {
		return nil, errors.InvalidArgument("unit of work is required")
	}
	if input.ThemeID == "" {
		return nil, errors.InvalidArgument("theme ID is required")
	}

	previous, err := input.UnitOfWork.ActiveThemeState(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read active theme state")
	}

	var version int64 = 1
	if previous != nil {
		version = previous.Version + 1
	}

	state := &entities.ThemeState{
		ID:              o.stateIDGen.Generate(),
		CharacterID:     input.CharacterID,
		ThemeID:         input.ThemeID,
		ActiveFeatures:  slices.Clone(input.Features),
		ActiveModifiers: slices.Clone(input.Modifiers),
		Version:         version,
		Active:          true,
		CreatedAt:       o.clock.Now(),
	}
	if err := input.UnitOfWork.SetActiveThemeState(state); err != nil {
		return nil, err
	}

	return &ApplyThemeStateOutput{
		State:    state,
		Previous: previous,
	}, nil
}

func (o *orchestrator) RecordThemeTransition(
	_ context.Context,
	input *RecordThemeTransitionInput,
) (*RecordThemeTransitionOutput, error) {
	if input == nil || input.UnitOfWork == nil {
		return nil, errors.InvalidArgument("unit of work is required")
	}
	if !input.TransitionType.IsValid() {
		return nil, errors.InvalidArgumentf("unknown transition type %q", input.TransitionType)
	}

	changes := input.Changes
	if changes == nil {
		changes = &entities.StateChanges{}
	}

	transition := &entities.ThemeTransition{
		ID:              o.transitionGen.Generate(),
		CharacterID:     input.CharacterID,
		FromThemeID:     input.FromThemeID,
		ToThemeID:       input.ToThemeID,
		TransitionType:  input.TransitionType,
		TriggeredBy:     input.TriggeredBy,
		CampaignEventID: input.CampaignEventID,
		AppliedChanges:  changes,
		Timestamp:       o.clock.Now(),
	}
	if err := input.UnitOfWork.AppendThemeTransition(transition); err != nil {
		return nil, err
	}

	return &RecordThemeTransitionOutput{Transition: transition}, nil
}

func (o *orchestrator) ListThemeStates(
	ctx context.Context,
	input *ListThemeStatesInput,
) (*ListThemeStatesOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.ListThemeStates(ctx, character.ListThemeStatesInput{
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list theme states")
	}

	return &ListThemeStatesOutput{States: out.States}, nil
}

func (o *orchestrator) ListTransitions(
	ctx context.Context,
	input *ListTransitionsInput,
) (*ListTransitionsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.ListTransitions(ctx, character.ListTransitionsInput{
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list transitions")
	}

	return &ListTransitionsOutput{Transitions: out.Transitions}, nil
}

func (o *orchestrator) DiffThemeStates(
	ctx context.Context,
	input *DiffThemeStatesInput,
) (*DiffThemeStatesOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	listed, err := o.ListThemeStates(ctx, &ListThemeStatesInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	from := findVersion(listed.States, input.FromVersion)
	if from == nil {
		return nil, errors.NotFoundf("theme state version %d not found", input.FromVersion).
			WithMeta("character_id", input.CharacterID)
	}
	to := findVersion(listed.States, input.ToVersion)
	if to == nil {
		return nil, errors.NotFoundf("theme state version %d not found", input.ToVersion).
			WithMeta("character_id", input.CharacterID)
	}

	return &DiffThemeStatesOutput{
		From:             from,
		To:               to,
		AddedFeatures:    difference(to.ActiveFeatures, from.ActiveFeatures),
		RemovedFeatures:  difference(from.ActiveFeatures, to.ActiveFeatures),
		AddedModifiers:   difference(to.ActiveModifiers, from.ActiveModifiers),
		RemovedModifiers: difference(from.ActiveModifiers, to.ActiveModifiers),
	}, nil
}

func findVersion(states []*entities.ThemeState, version int64) *entities.ThemeState {
	for _, state := range states {
		if state.Version == version {
			return state
		}
	}
	return nil
}
