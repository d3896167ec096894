// Package transition moves characters between themes. A transition is
// validated, then applied as one unit of work: ability scores, equipment,
// the active theme state and the transition log commit together or not at all.
package transition

//go:generate mockgen -destination=mock/mock_service.go -package=transitionmock github.com/KirkDiggler/rpg-progression/internal/orchestrators/transition Service

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-progression/internal/clients/equipment"
	"github.com/KirkDiggler/rpg-progression/internal/clients/llm"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/messagehub"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/themestate"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/theme"
	"github.com/KirkDiggler/rpg-progression/internal/validation"
)

// DefaultSuggestionTimeout bounds a suggestion request
const DefaultSuggestionTimeout = 5 * time.Second

var tracer = otel.Tracer("github.com/KirkDiggler/rpg-progression/internal/orchestrators/transition")

// Service defines the interface for theme transitions
type Service interface {
	// ValidateTransition never fails for a missing character or theme; the
	// result is invalid instead
	ValidateTransition(ctx context.Context, input *ValidateTransitionInput) (*ValidateTransitionOutput, error)

	// ApplyTransition reports rejections and rollbacks in the output.
	// Returns an error only for malformed input.
	ApplyTransition(ctx context.Context, input *ApplyTransitionInput) (*ApplyTransitionOutput, error)

	// GetTransitionSuggestions degrades to an empty list on any failure
	GetTransitionSuggestions(ctx context.Context, input *GetTransitionSuggestionsInput) (*GetTransitionSuggestionsOutput, error)

	GetTransitionHistory(ctx context.Context, input *GetTransitionHistoryInput) (*GetTransitionHistoryOutput, error)
}

// Config holds the dependencies for the transition orchestrator
type Config struct {
	CharacterRepo character.Repository
	ThemeRepo     theme.Repository
	ThemeStates   themestate.Service
	Registry      *validation.Registry
	Publisher     messagehub.Publisher

	// LLMClient is optional; without it there are no suggestions
	LLMClient llm.Client
	// EquipmentClient is optional; without it every item weighs nothing
	EquipmentClient   equipment.Client
	SuggestionTimeout time.Duration
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
	if c.ThemeStates == nil {
		vb.RequiredField("ThemeStates")
	}
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}
	if c.SuggestionTimeout < 0 {
		vb.InvalidField("SuggestionTimeout", "must not be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	characterRepo     character.Repository
	themeRepo         theme.Repository
	themeStates       themestate.Service
	registry          *validation.Registry
	publisher         messagehub.Publisher
	llmClient         llm.Client
	equipmentClient   equipment.Client
	suggestionTimeout time.Duration
}

// NewOrchestrator creates a new transition orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	timeout := cfg.SuggestionTimeout
	if timeout == 0 {
		timeout = DefaultSuggestionTimeout
	}

	return &orchestrator{
		characterRepo:     cfg.CharacterRepo,
		themeRepo:         cfg.ThemeRepo,
		themeStates:       cfg.ThemeStates,
		registry:          cfg.Registry,
		publisher:         cfg.Publisher,
		llmClient:         cfg.LLMClient,
		equipmentClient:   cfg.EquipmentClient,
		suggestionTimeout: timeout,
	}, nil
}

// rejection carries an invalid result out of a unit of work
type rejection struct {
	result *entities.ValidationResult
}

func (r *rejection) Error() string { return "transition rejected" }

func checkInput(characterID, toThemeID string, transitionType entities.TransitionType) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", characterID, vb)
	errors.ValidateRequired("to_theme_id", toThemeID, vb)
	if transitionType != "" && !transitionType.IsValid() {
		vb.Fieldf("transition_type", "unknown transition type %q", transitionType)
	}
	return vb.Build()
}

func normalizeType(t entities.TransitionType) entities.TransitionType {
	if t == "" {
		return entities.TransitionTypeStandard
	}
	return t
}

func (o *orchestrator) ValidateTransition(
	ctx context.Context,
	input *ValidateTransitionInput,
) (*ValidateTransitionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := checkInput(input.CharacterID, input.ToThemeID, input.TransitionType); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "transition.ValidateTransition", trace.WithAttributes(
		attribute.String("character_id", input.CharacterID),
		attribute.String("to_theme_id", input.ToThemeID),
	))
	defer span.End()

	normalized := *input
	normalized.TransitionType = normalizeType(input.TransitionType)

	vctx, invalid := o.buildContext(ctx, &repoSnapshot{repo: o.characterRepo, characterID: input.CharacterID}, &normalized, nil)
	if invalid != nil {
		return &ValidateTransitionOutput{Result: invalid}, nil
	}

	result := o.registry.Validate(vctx)
	span.SetAttributes(attribute.Bool("valid", result.IsValid))

	return &ValidateTransitionOutput{Result: result}, nil
}

func (o *orchestrator) ApplyTransition(
	ctx context.Context,
	input *ApplyTransitionInput,
) (*ApplyTransitionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := checkInput(input.CharacterID, input.ToThemeID, input.TransitionType); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "transition.ApplyTransition", trace.WithAttributes(
		attribute.String("character_id", input.CharacterID),
		attribute.String("to_theme_id", input.ToThemeID),
	))
	defer span.End()

	vin := &ValidateTransitionInput{
		CharacterID:     input.CharacterID,
		FromThemeID:     input.FromThemeID,
		ToThemeID:       input.ToThemeID,
		TransitionType:  normalizeType(input.TransitionType),
		CampaignEventID: input.CampaignEventID,
	}

	slog.InfoContext(ctx, "Applying theme transition",
		"character_id", vin.CharacterID,
		"from_theme_id", vin.FromThemeID,
		"to_theme_id", vin.ToThemeID,
		"transition_type", vin.TransitionType)

	// Dry run against the store so rejections never take the character lock
	vctx, invalid := o.buildContext(ctx, &repoSnapshot{repo: o.characterRepo, characterID: vin.CharacterID}, vin, nil)
	if invalid == nil {
		if result := o.registry.Validate(vctx); !result.IsValid {
			invalid = result
		}
	}
	if invalid != nil {
		span.SetAttributes(attribute.String("state", string(StateRejected)))
		return rejected(invalid), nil
	}
	// Fn may run more than once; weights are looked up once, outside the lock
	weights := vctx.ItemWeights

	var (
		result     *entities.ValidationResult
		changes    *entities.StateChanges
		fromTheme  string
		applied    *themestate.ApplyThemeStateOutput
		transition *entities.ThemeTransition
	)
	txOut, err := o.characterRepo.Transact(ctx, character.TransactInput{
		CharacterID: vin.CharacterID,
		Fn: func(ctx context.Context, uow character.UnitOfWork) error {
			vctx, invalid := o.buildContext(ctx, &uowSnapshot{uow: uow}, vin, weights)
			if invalid != nil {
				return &rejection{result: invalid}
			}
			result = o.registry.Validate(vctx)
			if !result.IsValid {
				return &rejection{result: result}
			}

			fromTheme = ""
			if vctx.FromTheme != nil {
				fromTheme = vctx.FromTheme.ID
			}

			calc, err := o.themeStates.CalculateStateChanges(ctx, &themestate.CalculateStateChangesInput{
				CharacterID: vin.CharacterID,
				FromThemeID: fromTheme,
				ToThemeID:   vin.ToThemeID,
			})
			if err != nil {
				return err
			}
			changes = settleRemovals(ctx, uow.Character(), calc.Changes)

			if err := applyChanges(uow, changes); err != nil {
				return err
			}

			applied, err = o.themeStates.ApplyThemeState(ctx, &themestate.ApplyThemeStateInput{
				UnitOfWork:  uow,
				CharacterID: vin.CharacterID,
				ThemeID:     calc.ToTheme.ID,
				Features:    calc.ToTheme.Features,
				Modifiers:   calc.ToTheme.Modifiers,
			})
			if err != nil {
				return err
			}

			recorded, err := o.themeStates.RecordThemeTransition(ctx, &themestate.RecordThemeTransitionInput{
				UnitOfWork:      uow,
				CharacterID:     vin.CharacterID,
				FromThemeID:     fromTheme,
				ToThemeID:       vin.ToThemeID,
				TransitionType:  vin.TransitionType,
				TriggeredBy:     input.TriggeredBy,
				CampaignEventID: vin.CampaignEventID,
				Changes:         changes,
			})
			if err != nil {
				return err
			}
			transition = recorded.Transition
			return nil
		},
	})

	var rej *rejection
	switch {
	case stderrors.As(err, &rej):
		span.SetAttributes(attribute.String("state", string(StateRejected)))
		return rejected(rej.result), nil

	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, "transition rolled back")
		slog.ErrorContext(ctx, "Theme transition rolled back",
			"character_id", vin.CharacterID,
			"to_theme_id", vin.ToThemeID,
			"error", err)
		return rolledBack(vin, err), nil
	}

	span.SetAttributes(
		attribute.String("state", string(StateCommitted)),
		attribute.String("transition_id", transition.ID),
	)
	slog.InfoContext(ctx, "Theme transition committed",
		"character_id", vin.CharacterID,
		"transition_id", transition.ID,
		"to_theme_id", vin.ToThemeID,
		"version", txOut.Character.Version)

	o.publish(ctx, messagehub.TopicThemeTransitionCompleted, map[string]any{
		"transition_id":     transition.ID,
		"character_id":      vin.CharacterID,
		"from_theme_id":     nullable(fromTheme),
		"to_theme_id":       vin.ToThemeID,
		"transition_type":   string(vin.TransitionType),
		"triggered_by":      input.TriggeredBy,
		"campaign_event_id": nullable(vin.CampaignEventID),
		"changes":           changes,
	})

	return &ApplyTransitionOutput{
		Success:          true,
		State:            StateCommitted,
		TransitionID:     transition.ID,
		OldState:         applied.Previous,
		NewState:         applied.State,
		AppliedChanges:   changes,
		ValidationResult: result,
		Character:        txOut.Character,
	}, nil
}

// settleRemovals caps every removal at what the character still carries.
// Granted items may have been sold or lost since the theme handed them out;
// leaving the theme takes back only what is left. The returned changes hold
// the quantities actually removed.
func settleRemovals(ctx context.Context, char *entities.Character, changes *entities.StateChanges) *entities.StateChanges {
	held := make(map[string]int32, len(char.Inventory))
	for _, item := range char.Inventory {
		held[item.ItemID] += item.Quantity
	}

	settled := *changes
	settled.EquipmentChanges = make([]entities.EquipmentChange, 0, len(changes.EquipmentChanges))
	for _, change := range changes.EquipmentChanges {
		switch change.Operation {
		case entities.EquipmentOperationAdd:
			held[change.ItemID] += change.Quantity
		case entities.EquipmentOperationRemove:
			quantity := min(change.Quantity, held[change.ItemID])
			if quantity < change.Quantity {
				slog.InfoContext(ctx, "Granted equipment no longer carried",
					"character_id", char.ID,
					"item_id", change.ItemID,
					"granted", change.Quantity,
					"carried", held[change.ItemID])
			}
			if quantity <= 0 {
				continue
			}
			change.Quantity = quantity
			held[change.ItemID] -= quantity
		}
		settled.EquipmentChanges = append(settled.EquipmentChanges, change)
	}
	if len(settled.EquipmentChanges) == 0 {
		settled.EquipmentChanges = nil
	}
	return &settled
}

// applyChanges stages ability and equipment edits in delta order
func applyChanges(uow character.UnitOfWork, changes *entities.StateChanges) error {
	for _, ability := range entities.AllAbilities {
		delta, ok := changes.AbilityChanges[ability]
		if !ok {
			continue
		}
		if err := uow.AdjustAbilityScore(ability, delta); err != nil {
			return err
		}
	}

	for _, change := range changes.EquipmentChanges {
		var err error
		switch change.Operation {
		case entities.EquipmentOperationAdd:
			err = uow.AddEquipment(change.ItemID, change.Quantity)
		case entities.EquipmentOperationRemove:
			err = uow.RemoveEquipment(change.ItemID, change.Quantity)
		default:
			err = errors.Internalf("unknown equipment operation %q", change.Operation)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func rejected(result *entities.ValidationResult) *ApplyTransitionOutput {
	return &ApplyTransitionOutput{
		Success:          false,
		State:            StateRejected,
		ValidationResult: result,
		ErrorDetails: map[string]any{
			"message": "Transition validation failed",
		},
	}
}

func rolledBack(input *ValidateTransitionInput, err error) *ApplyTransitionOutput {
	message := err.Error()
	return &ApplyTransitionOutput{
		Success: false,
		State:   StateRolledBack,
		ErrorDetails: map[string]any{
			"message": message,
		},
		ValidationResult: entities.InvalidResult(entities.ErrorTypeTransitionError, message, map[string]any{
			"character_id": input.CharacterID,
			"to_theme_id":  input.ToThemeID,
			"code":         string(errors.GetCode(err)),
		}),
	}
}

func (o *orchestrator) GetTransitionHistory(
	ctx context.Context,
	input *GetTransitionHistoryInput,
) (*GetTransitionHistoryOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.themeStates.ListTransitions(ctx, &themestate.ListTransitionsInput{
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return nil, err
	}

	return &GetTransitionHistoryOutput{Transitions: out.Transitions}, nil
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

func nullable(id string) any {
	if id == "" {
		return nil
	}
	return id
}
