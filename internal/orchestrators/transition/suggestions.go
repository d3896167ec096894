package transition

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/theme"
)

func (o *orchestrator) GetTransitionSuggestions(
	ctx context.Context,
	input *GetTransitionSuggestionsInput,
) (*GetTransitionSuggestionsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	empty := &GetTransitionSuggestionsOutput{Themes: []*entities.Theme{}}
	if o.llmClient == nil {
		return empty, nil
	}

	ctx, span := tracer.Start(ctx, "transition.GetTransitionSuggestions")
	defer span.End()

	themes, err := o.suggestThemes(ctx, input)
	if err != nil {
		slog.WarnContext(ctx, "Theme suggestions unavailable",
			"character_id", input.CharacterID,
			"error", err)
		return empty, nil
	}

	return &GetTransitionSuggestionsOutput{Themes: themes}, nil
}

func (o *orchestrator) suggestThemes(
	ctx context.Context,
	input *GetTransitionSuggestionsInput,
) ([]*entities.Theme, error) {
	charOut, err := o.characterRepo.Get(ctx, character.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	char := charOut.Character

	stateOut, err := o.characterRepo.GetActiveThemeState(ctx, character.GetActiveThemeStateInput{
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return nil, err
	}
	currentThemeID := ""
	if stateOut.State != nil {
		currentThemeID = stateOut.State.ThemeID
	}

	catalog, err := o.themeRepo.List(ctx, theme.ListInput{})
	if err != nil {
		return nil, err
	}

	available := make([]map[string]any, 0, len(catalog.Themes))
	for _, t := range catalog.Themes {
		if t.ID == currentThemeID {
			continue
		}
		available = append(available, map[string]any{
			"theme_id":          t.ID,
			"name":              t.Name,
			"category":          string(t.Category),
			"level_requirement": t.LevelRequirement,
			"description":       t.Description,
		})
	}

	llmCtx, cancel := context.WithTimeout(ctx, o.suggestionTimeout)
	defer cancel()

	raw, err := o.llmClient.GetThemeSuggestions(llmCtx, map[string]any{
		"character": map[string]any{
			"id":               char.ID,
			"name":             char.Name,
			"level":            char.Level,
			"race":             char.RaceID,
			"class":            char.ClassID,
			"ability_scores":   char.AbilityScores,
			"current_theme_id": currentThemeID,
		},
		"event_context":    input.EventContext,
		"available_themes": available,
	})
	if err != nil {
		return nil, err
	}

	return matchSuggestions(raw, catalog.Themes, currentThemeID), nil
}

// matchSuggestions maps free-form suggestions onto catalog themes by ID,
// then by name. Unknown suggestions, repeats and the current theme are
// dropped.
func matchSuggestions(raw []map[string]any, catalog []*entities.Theme, currentThemeID string) []*entities.Theme {
	byID := make(map[string]*entities.Theme, len(catalog))
	byName := make(map[string]*entities.Theme, len(catalog))
	for _, t := range catalog {
		byID[t.ID] = t
		byName[strings.ToLower(strings.TrimSpace(t.Name))] = t
	}

	seen := map[string]bool{currentThemeID: true}
	out := []*entities.Theme{}
	for _, suggestion := range raw {
		var match *entities.Theme
		if id, ok := suggestion["theme_id"].(string); ok {
			match = byID[id]
		}
		if match == nil {
			if name, ok := suggestion["name"].(string); ok {
				match = byName[strings.ToLower(strings.TrimSpace(name))]
			}
		}
		if match == nil || seen[match.ID] {
			continue
		}
		seen[match.ID] = true
		out = append(out, match)
	}
	return out
}
