package transition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/theme"
	"github.com/KirkDiggler/rpg-progression/internal/validation"
)

// snapshot is where a validation context reads character state from:
// the store for a dry run, the unit of work while applying
type snapshot interface {
	character(ctx context.Context) (*entities.Character, error)
	activeState(ctx context.Context) (*entities.ThemeState, error)
	campaignEvent(ctx context.Context, id string) (*entities.CampaignEvent, error)
}

type repoSnapshot struct {
	repo        character.Repository
	characterID string
}

func (s *repoSnapshot) character(ctx context.Context) (*entities.Character, error) {
	out, err := s.repo.Get(ctx, character.GetInput{ID: s.characterID})
	if err != nil {
		return nil, err
	}
	return out.Character, nil
}

func (s *repoSnapshot) activeState(ctx context.Context) (*entities.ThemeState, error) {
	out, err := s.repo.GetActiveThemeState(ctx, character.GetActiveThemeStateInput{CharacterID: s.characterID})
	if err != nil {
		return nil, err
	}
	return out.State, nil
}

func (s *repoSnapshot) campaignEvent(ctx context.Context, id string) (*entities.CampaignEvent, error) {
	out, err := s.repo.GetCampaignEvent(ctx, character.GetCampaignEventInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.Event, nil
}

type uowSnapshot struct {
	uow character.UnitOfWork
}

func (s *uowSnapshot) character(context.Context) (*entities.Character, error) {
	return s.uow.Character(), nil
}

func (s *uowSnapshot) activeState(ctx context.Context) (*entities.ThemeState, error) {
	return s.uow.ActiveThemeState(ctx)
}

func (s *uowSnapshot) campaignEvent(ctx context.Context, id string) (*entities.CampaignEvent, error) {
	return s.uow.CampaignEvent(ctx, id)
}

// buildContext gathers what the rules need. A non-nil result means the
// transition is already invalid and the context must not be used. Nil
// weights are resolved from the equipment client.
func (o *orchestrator) buildContext(
	ctx context.Context,
	snap snapshot,
	input *ValidateTransitionInput,
	weights map[string]float64,
) (*validation.Context, *entities.ValidationResult) {
	char, err := snap.character(ctx)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, entities.InvalidResult(entities.ErrorTypeCharacterNotFound,
				fmt.Sprintf("Character %s not found", input.CharacterID),
				map[string]any{"character_id": input.CharacterID})
		}
		return nil, validationFailure(ctx, input, err)
	}

	active, err := snap.activeState(ctx)
	if err != nil {
		return nil, validationFailure(ctx, input, err)
	}

	activeThemeID := ""
	if active != nil {
		activeThemeID = active.ThemeID
	}
	fromThemeID := input.FromThemeID
	if fromThemeID == "" {
		fromThemeID = activeThemeID
	}
	if fromThemeID != activeThemeID {
		return nil, entities.InvalidResult(entities.ErrorTypeValidationError,
			fmt.Sprintf("Character %s is not on theme %s", input.CharacterID, fromThemeID),
			map[string]any{
				"from_theme_id":   fromThemeID,
				"active_theme_id": activeThemeID,
			})
	}

	if input.ToThemeID == activeThemeID {
		return nil, entities.InvalidResult(entities.ErrorTypeValidationError,
			fmt.Sprintf("Character %s is already on theme %s", input.CharacterID, activeThemeID),
			map[string]any{"active_theme_id": activeThemeID})
	}

	var from *entities.Theme
	if fromThemeID != "" {
		if from, err = o.getTheme(ctx, fromThemeID); err != nil {
			return nil, themeFailure(ctx, input, fromThemeID, err)
		}
	}
	to, err := o.getTheme(ctx, input.ToThemeID)
	if err != nil {
		return nil, themeFailure(ctx, input, input.ToThemeID, err)
	}

	var event *entities.CampaignEvent
	if input.CampaignEventID != "" {
		event, err = snap.campaignEvent(ctx, input.CampaignEventID)
		if err != nil && !errors.IsNotFound(err) {
			return nil, validationFailure(ctx, input, err)
		}
	}

	if weights == nil {
		weights = o.itemWeights(ctx, char, from, to)
	}

	return &validation.Context{
		Character:       char,
		FromTheme:       from,
		ToTheme:         to,
		TransitionType:  input.TransitionType,
		CampaignEventID: input.CampaignEventID,
		CampaignEvent:   event,
		ItemWeights:     weights,
	}, nil
}

func (o *orchestrator) getTheme(ctx context.Context, id string) (*entities.Theme, error) {
	out, err := o.themeRepo.Get(ctx, theme.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.Theme, nil
}

// itemWeights resolves weights for every item the transition could carry.
// Lookups that fail leave the item out, so it weighs nothing.
func (o *orchestrator) itemWeights(
	ctx context.Context,
	char *entities.Character,
	from, to *entities.Theme,
) map[string]float64 {
	weights := make(map[string]float64)
	if o.equipmentClient == nil {
		return weights
	}

	var itemIDs []string
	for _, item := range char.Inventory {
		itemIDs = append(itemIDs, item.ItemID)
	}
	for _, t := range []*entities.Theme{from, to} {
		if t == nil {
			continue
		}
		for _, item := range t.Equipment {
			itemIDs = append(itemIDs, item.ItemID)
		}
	}

	for _, itemID := range itemIDs {
		if _, ok := weights[itemID]; ok {
			continue
		}
		weight, err := o.equipmentClient.GetItemWeight(ctx, itemID)
		if err != nil {
			slog.DebugContext(ctx, "Item weight unavailable, counting as zero",
				"item_id", itemID,
				"error", err)
			continue
		}
		weights[itemID] = weight
	}
	return weights
}

func themeFailure(ctx context.Context, input *ValidateTransitionInput, themeID string, err error) *entities.ValidationResult {
	if errors.IsNotFound(err) {
		return entities.InvalidResult(entities.ErrorTypeThemeNotFound,
			fmt.Sprintf("Theme %s not found", themeID),
			map[string]any{"theme_id": themeID})
	}
	return validationFailure(ctx, input, err)
}

func validationFailure(ctx context.Context, input *ValidateTransitionInput, err error) *entities.ValidationResult {
	slog.ErrorContext(ctx, "Transition validation failed",
		"character_id", input.CharacterID,
		"to_theme_id", input.ToThemeID,
		"error", err)
	return entities.InvalidResult(entities.ErrorTypeValidationError,
		fmt.Sprintf("Validation failed: %s", errors.GetMessage(err)),
		map[string]any{"character_id": input.CharacterID})
}
