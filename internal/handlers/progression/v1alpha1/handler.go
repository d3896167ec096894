package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/eventimpact"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/progress"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/transition"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/theme"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterRepo character.Repository
	ThemeRepo     theme.Repository
	Transitions   transition.Service
	Events        eventimpact.Service
	Progress      progress.Service
	// CharacterIDGen defaults to UUIDs prefixed with "char"
	CharacterIDGen idgen.Generator
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
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
	if c.Transitions == nil {
		vb.RequiredField("Transitions")
	}
	if c.Events == nil {
		vb.RequiredField("Events")
	}
	if c.Progress == nil {
		vb.RequiredField("Progress")
	}
	return vb.Build()
}

// Handler implements ProgressionServiceServer
type Handler struct {
	characterRepo  character.Repository
	themeRepo      theme.Repository
	transitions    transition.Service
	events         eventimpact.Service
	progress       progress.Service
	characterIDGen idgen.Generator
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen := cfg.CharacterIDGen
	if gen == nil {
		gen = idgen.NewUUID(idgen.PrefixCharacter)
	}

	return &Handler{
		characterRepo:  cfg.CharacterRepo,
		themeRepo:      cfg.ThemeRepo,
		transitions:    cfg.Transitions,
		events:         cfg.Events,
		progress:       cfg.Progress,
		characterIDGen: gen,
	}, nil
}

// respond encodes out or converts err to a status error
func respond(out any, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	resp, err := encode(out)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// CreateCharacter stores a new character. Missing ID, level, proficiency
// bonus and current hit points are filled in.
func (h *Handler) CreateCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in createCharacterRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}
	if in.Character == nil {
		return respond(nil, errors.InvalidArgument("character is required"))
	}

	c := in.Character
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character.name", c.Name, vb)
	errors.ValidateRange("character.level", int(c.Level), 0, int(progress.MaxLevel), vb)
	for ability := range c.AbilityScores {
		if !ability.IsValid() {
			vb.Fieldf("character.ability_scores", "unknown ability %q", ability)
		}
	}
	if err := vb.Build(); err != nil {
		return respond(nil, err)
	}

	if c.ID == "" {
		c.ID = h.characterIDGen.Generate()
	}
	if c.Level == 0 {
		c.Level = progress.LevelForExperience(c.ExperiencePoints)
	}
	if c.ProficiencyBonus == 0 {
		c.ProficiencyBonus = progress.ProficiencyBonus(c.Level)
	}
	if c.CurrentHP == 0 {
		c.CurrentHP = c.MaxHP
	}

	out, err := h.characterRepo.Create(ctx, character.CreateInput{Character: c})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&characterResponse{Character: out.Character}, nil)
}

// GetCharacter returns a character
func (h *Handler) GetCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in characterRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.characterRepo.Get(ctx, character.GetInput{ID: in.CharacterID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&characterResponse{Character: out.Character}, nil)
}

// ListThemes returns the catalog, optionally for one category
func (h *Handler) ListThemes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listThemesRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.themeRepo.List(ctx, theme.ListInput{Category: in.Category})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&listThemesResponse{Themes: out.Themes}, nil)
}

// ValidateTransition checks a transition without applying it
func (h *Handler) ValidateTransition(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in transitionRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.transitions.ValidateTransition(ctx, &transition.ValidateTransitionInput{
		CharacterID:     in.CharacterID,
		FromThemeID:     in.FromThemeID,
		ToThemeID:       in.ToThemeID,
		TransitionType:  in.TransitionType,
		CampaignEventID: in.CampaignEventID,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&validateTransitionResponse{Result: out.Result}, nil)
}

// ApplyTransition moves a character to a new theme. Rejections and
// rollbacks are reported in the response, not as errors.
func (h *Handler) ApplyTransition(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in transitionRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.transitions.ApplyTransition(ctx, &transition.ApplyTransitionInput{
		CharacterID:     in.CharacterID,
		FromThemeID:     in.FromThemeID,
		ToThemeID:       in.ToThemeID,
		TransitionType:  in.TransitionType,
		CampaignEventID: in.CampaignEventID,
		TriggeredBy:     in.TriggeredBy,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&applyTransitionResponse{
		Success:          out.Success,
		State:            string(out.State),
		TransitionID:     out.TransitionID,
		OldState:         out.OldState,
		NewState:         out.NewState,
		AppliedChanges:   out.AppliedChanges,
		ValidationResult: out.ValidationResult,
		ErrorDetails:     out.ErrorDetails,
		Character:        out.Character,
	}, nil)
}

// GetTransitionSuggestions returns suggested themes, possibly none
func (h *Handler) GetTransitionSuggestions(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in suggestionsRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.transitions.GetTransitionSuggestions(ctx, &transition.GetTransitionSuggestionsInput{
		CharacterID:  in.CharacterID,
		EventContext: in.EventContext,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&suggestionsResponse{Themes: out.Themes}, nil)
}

// GetTransitionHistory returns the transition log oldest first
func (h *Handler) GetTransitionHistory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in characterRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.transitions.GetTransitionHistory(ctx, &transition.GetTransitionHistoryInput{
		CharacterID: in.CharacterID,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&transitionHistoryResponse{Transitions: out.Transitions}, nil)
}

// CreateEvent records a campaign event without applying it
func (h *Handler) CreateEvent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in createEventRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.events.CreateEvent(ctx, &eventimpact.CreateEventInput{
		CharacterID:     in.CharacterID,
		CampaignID:      in.CampaignID,
		EventType:       in.EventType,
		EventData:       in.EventData,
		ImpactType:      in.ImpactType,
		ImpactMagnitude: in.ImpactMagnitude,
		Impacts:         in.Impacts,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&eventResponse{Event: out.Event}, nil)
}

// ApplyEvent applies a campaign event's impacts
func (h *Handler) ApplyEvent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in eventRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.events.ApplyEvent(ctx, &eventimpact.ApplyEventInput{EventID: in.EventID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&eventImpactsResponse{
		Impacts:   nonNil(out.Impacts),
		Event:     out.Event,
		Character: out.Character,
	}, nil)
}

// RevertEvent undoes a campaign event's impacts
func (h *Handler) RevertEvent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in eventRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.events.RevertEvent(ctx, &eventimpact.RevertEventInput{EventID: in.EventID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&eventImpactsResponse{
		Impacts:   nonNil(out.Impacts),
		Event:     out.Event,
		Character: out.Character,
	}, nil)
}

// AddExperience awards experience and levels the character up
func (h *Handler) AddExperience(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in addExperienceRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.progress.AddExperience(ctx, &progress.AddExperienceInput{
		CharacterID: in.CharacterID,
		Amount:      in.Amount,
		Source:      in.Source,
		Reason:      in.Reason,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&addExperienceResponse{
		TotalExperience: out.TotalExperience,
		LeveledUp:       out.LeveledUp,
		LevelChange:     out.LevelChange,
		Character:       out.Character,
	}, nil)
}

// RecordMilestone records a story milestone once
func (h *Handler) RecordMilestone(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in milestoneRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.progress.RecordMilestone(ctx, &progress.RecordMilestoneInput{
		CharacterID: in.CharacterID,
		MilestoneID: in.MilestoneID,
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&milestoneResponse{Milestone: out.Milestone}, nil)
}

// UnlockAchievement unlocks an achievement if not already held
func (h *Handler) UnlockAchievement(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in achievementRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.progress.UnlockAchievement(ctx, &progress.UnlockAchievementInput{
		CharacterID:   in.CharacterID,
		AchievementID: in.AchievementID,
		Name:          in.Name,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&achievementResponse{Achievement: out.Achievement, Unlocked: out.Unlocked}, nil)
}

// GetProgress summarizes level, experience and unlocks
func (h *Handler) GetProgress(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in characterRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.progress.GetProgress(ctx, &progress.GetProgressInput{CharacterID: in.CharacterID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(&progressResponse{
		Level:                           out.Level,
		ExperiencePoints:                out.ExperiencePoints,
		ProficiencyBonus:                out.ProficiencyBonus,
		NextLevelExperience:             out.NextLevelExperience,
		PercentToNextLevel:              out.PercentToNextLevel,
		Milestones:                      out.Milestones,
		Achievements:                    out.Achievements,
		PendingAbilityScoreImprovements: out.PendingAbilityScoreImprovements,
		Features:                        out.Features,
	}, nil)
}

func nonNil(impacts []*entities.EventImpact) []*entities.EventImpact {
	if impacts == nil {
		return []*entities.EventImpact{}
	}
	return impacts
}

var _ ProgressionServiceServer = (*Handler)(nil)
