// Package eventimpact applies campaign events to characters and reverts them.
// Each applied impact stores the pre-image it overwrote, so a revert restores
// the character exactly.
package eventimpact

//go:generate mockgen -destination=mock/mock_service.go -package=eventimpactmock github.com/KirkDiggler/rpg-progression/internal/orchestrators/eventimpact Service

import (
	"context"
	stderrors "errors"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/messagehub"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/character"
)

var tracer = otel.Tracer("github.com/KirkDiggler/rpg-progression/internal/orchestrators/eventimpact")

// Service defines the interface for campaign event operations
type Service interface {
	// CreateEvent returns errors.NotFound if the character doesn't exist
	CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error)
	GetEvent(ctx context.Context, input *GetEventInput) (*GetEventOutput, error)
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)
	GetEventImpacts(ctx context.Context, input *GetEventImpactsInput) (*GetEventImpactsOutput, error)

	// ApplyEvent is a no-op for an applied event. If any impact fails the
	// earlier ones are undone and an *ApplicationError is returned.
	ApplyEvent(ctx context.Context, input *ApplyEventInput) (*ApplyEventOutput, error)

	// RevertEvent is a no-op for an event that is not applied
	RevertEvent(ctx context.Context, input *RevertEventInput) (*RevertEventOutput, error)
}

// Config holds the dependencies for the event impact orchestrator
type Config struct {
	CharacterRepo character.Repository
	Publisher     messagehub.Publisher
	EventIDGen    idgen.Generator
	ImpactIDGen   idgen.Generator
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
	if c.EventIDGen == nil {
		vb.RequiredField("EventIDGen")
	}
	if c.ImpactIDGen == nil {
		vb.RequiredField("ImpactIDGen")
	}
	return vb.Build()
}

type orchestrator struct {
	characterRepo character.Repository
	publisher     messagehub.Publisher
	eventIDGen    idgen.Generator
	impactIDGen   idgen.Generator
	clock         clock.Clock
}

// NewOrchestrator creates a new event impact orchestrator
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
		publisher:     cfg.Publisher,
		eventIDGen:    cfg.EventIDGen,
		impactIDGen:   cfg.ImpactIDGen,
		clock:         c,
	}, nil
}

// errAlreadyApplied aborts a unit of work that lost a race to another apply
var errAlreadyApplied = stderrors.New("event already applied")

// errNotApplied aborts a unit of work that lost a race to another revert
var errNotApplied = stderrors.New("event not applied")

func validateCreate(input *CreateEventInput) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateRequired("event_type", input.EventType, vb)

	switch input.ImpactType {
	case entities.ImpactTypeComposite:
		if len(input.Impacts) == 0 {
			vb.RequiredField("impacts")
		}
		for i, spec := range input.Impacts {
			if err := validateSpec(spec); err != nil {
				vb.Fieldf("impacts", "impact %d: %s", i, errors.GetMessage(err))
			}
		}
	case entities.ImpactTypeAbilityScore:
		ability, _ := input.EventData["ability"].(string)
		if !entities.Ability(ability).IsValid() {
			vb.Fieldf("event_data.ability", "unknown ability %q", ability)
		}
	case entities.ImpactTypeExperience, entities.ImpactTypeHitPoints:
	default:
		vb.Fieldf("impact_type", "unknown impact type %q", input.ImpactType)
	}
	return vb.Build()
}

func validateSpec(spec entities.ImpactSpec) error {
	if _, err := handlerFor(spec.ImpactType); err != nil {
		return err
	}
	if spec.ImpactType == entities.ImpactTypeAbilityScore && !spec.Ability.IsValid() {
		return errors.InvalidArgumentf("unknown ability %q", spec.Ability)
	}
	return nil
}

func (o *orchestrator) CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	event := &entities.CampaignEvent{
		ID:              o.eventIDGen.Generate(),
		CharacterID:     input.CharacterID,
		CampaignID:      input.CampaignID,
		EventType:       input.EventType,
		EventData:       input.EventData,
		ImpactType:      input.ImpactType,
		ImpactMagnitude: input.ImpactMagnitude,
		Impacts:         slices.Clone(input.Impacts),
		Status:          entities.EventStatusCreated,
		CreatedAt:       o.clock.Now(),
	}

	_, err := o.characterRepo.Transact(ctx, character.TransactInput{
		CharacterID: input.CharacterID,
		Fn: func(_ context.Context, uow character.UnitOfWork) error {
			return uow.PutCampaignEvent(event)
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create campaign event")
	}

	slog.InfoContext(ctx, "Created campaign event",
		"event_id", event.ID,
		"character_id", event.CharacterID,
		"event_type", event.EventType,
		"impact_type", event.ImpactType)

	return &CreateEventOutput{Event: event}, nil
}

func (o *orchestrator) GetEvent(ctx context.Context, input *GetEventInput) (*GetEventOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.InvalidArgument("event ID is required")
	}

	out, err := o.characterRepo.GetCampaignEvent(ctx, character.GetCampaignEventInput{ID: input.EventID})
	if err != nil {
		return nil, err
	}

	return &GetEventOutput{Event: out.Event}, nil
}

func (o *orchestrator) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.ListCampaignEvents(ctx, character.ListCampaignEventsInput{
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return nil, err
	}

	return &ListEventsOutput{Events: out.Events}, nil
}

func (o *orchestrator) GetEventImpacts(
	ctx context.Context,
	input *GetEventImpactsInput,
) (*GetEventImpactsOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.InvalidArgument("event ID is required")
	}

	out, err := o.characterRepo.GetEventImpacts(ctx, character.GetEventImpactsInput{EventID: input.EventID})
	if err != nil {
		return nil, err
	}

	return &GetEventImpactsOutput{Impacts: out.Impacts}, nil
}

func (o *orchestrator) ApplyEvent(ctx context.Context, input *ApplyEventInput) (*ApplyEventOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.InvalidArgument("event ID is required")
	}

	ctx, span := tracer.Start(ctx, "eventimpact.ApplyEvent", trace.WithAttributes(
		attribute.String("event_id", input.EventID),
	))
	defer span.End()

	stored, err := o.characterRepo.GetCampaignEvent(ctx, character.GetCampaignEventInput{ID: input.EventID})
	if err != nil {
		return nil, err
	}
	if stored.Event.Applied {
		slog.DebugContext(ctx, "Campaign event already applied", "event_id", input.EventID)
		return &ApplyEventOutput{Impacts: []*entities.EventImpact{}, Event: stored.Event}, nil
	}

	var (
		applied []*entities.EventImpact
		event   *entities.CampaignEvent
	)
	txOut, err := o.characterRepo.Transact(ctx, character.TransactInput{
		CharacterID: stored.Event.CharacterID,
		Fn: func(ctx context.Context, uow character.UnitOfWork) error {
			current, err := uow.CampaignEvent(ctx, input.EventID)
			if err != nil {
				return err
			}
			if current.Applied {
				return errAlreadyApplied
			}

			specs, err := impactSpecs(current)
			if err != nil {
				return err
			}

			applied, err = o.applyImpacts(uow.Character(), current.ID, specs)
			if err != nil {
				return err
			}

			now := o.clock.Now()
			for _, impact := range applied {
				impact.AppliedAt = &now
			}

			history, err := uow.EventImpacts(ctx, current.ID)
			if err != nil {
				return err
			}
			if err := uow.PutEventImpacts(current.ID, append(slices.Clone(history), applied...)); err != nil {
				return err
			}

			next := *current
			next.Applied = true
			next.Status = entities.EventStatusApplied
			next.AppliedAt = &now
			next.RevertedAt = nil
			event = &next
			return uow.PutCampaignEvent(event)
		},
	})
	switch {
	case stderrors.Is(err, errAlreadyApplied):
		return &ApplyEventOutput{Impacts: []*entities.EventImpact{}, Event: stored.Event}, nil
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, "event application failed")
		slog.ErrorContext(ctx, "Failed to apply campaign event",
			"event_id", input.EventID,
			"character_id", stored.Event.CharacterID,
			"error", err)
		return nil, err
	}

	slog.InfoContext(ctx, "Applied campaign event",
		"event_id", event.ID,
		"character_id", event.CharacterID,
		"impacts", len(applied),
		"version", txOut.Character.Version)

	o.publishUpdated(ctx, txOut.Character, event.ID, "event_applied")

	return &ApplyEventOutput{
		Impacts:   applied,
		Event:     event,
		Character: txOut.Character,
	}, nil
}

// applyImpacts applies specs in order. On failure the impacts already
// applied are reverted newest first before the error is returned.
func (o *orchestrator) applyImpacts(
	c *entities.Character,
	eventID string,
	specs []entities.ImpactSpec,
) ([]*entities.EventImpact, error) {
	applied := make([]*entities.EventImpact, 0, len(specs))

	for i, spec := range specs {
		h, err := handlerFor(spec.ImpactType)
		if err == nil {
			var snapshot *entities.ImpactSnapshot
			snapshot, err = h.apply(c, spec)
			if err == nil {
				applied = append(applied, &entities.EventImpact{
					ID:            o.impactIDGen.Generate(),
					EventID:       eventID,
					CharacterID:   c.ID,
					ImpactType:    spec.ImpactType,
					ImpactData:    spec,
					ReversionData: snapshot,
					Applied:       true,
				})
				continue
			}
		}

		if undoErr := revertImpacts(c, applied); undoErr != nil {
			err = stderrors.Join(err, undoErr)
		}
		return nil, &ApplicationError{
			EventID:    eventID,
			Index:      i,
			ImpactType: spec.ImpactType,
			Cause:      err,
		}
	}

	return applied, nil
}

// revertImpacts restores snapshots newest first
func revertImpacts(c *entities.Character, impacts []*entities.EventImpact) error {
	for i := len(impacts) - 1; i >= 0; i-- {
		h, err := handlerFor(impacts[i].ImpactType)
		if err != nil {
			return err
		}
		if err := h.revert(c, impacts[i].ReversionData); err != nil {
			return errors.Wrapf(err, "failed to revert impact %s", impacts[i].ID)
		}
	}
	return nil
}

func (o *orchestrator) RevertEvent(ctx context.Context, input *RevertEventInput) (*RevertEventOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.InvalidArgument("event ID is required")
	}

	ctx, span := tracer.Start(ctx, "eventimpact.RevertEvent", trace.WithAttributes(
		attribute.String("event_id", input.EventID),
	))
	defer span.End()

	stored, err := o.characterRepo.GetCampaignEvent(ctx, character.GetCampaignEventInput{ID: input.EventID})
	if err != nil {
		return nil, err
	}
	if !stored.Event.Applied {
		slog.DebugContext(ctx, "Campaign event not applied", "event_id", input.EventID)
		return &RevertEventOutput{Impacts: []*entities.EventImpact{}, Event: stored.Event}, nil
	}

	var (
		reverted []*entities.EventImpact
		event    *entities.CampaignEvent
	)
	txOut, err := o.characterRepo.Transact(ctx, character.TransactInput{
		CharacterID: stored.Event.CharacterID,
		Fn: func(ctx context.Context, uow character.UnitOfWork) error {
			current, err := uow.CampaignEvent(ctx, input.EventID)
			if err != nil {
				return err
			}
			if !current.Applied {
				return errNotApplied
			}

			history, err := uow.EventImpacts(ctx, current.ID)
			if err != nil {
				return err
			}

			now := o.clock.Now()
			next := make([]*entities.EventImpact, len(history))
			reverted = reverted[:0]
			for i := len(history) - 1; i >= 0; i-- {
				impact := *history[i]
				next[i] = &impact
				if !impact.Applied || impact.IsReverted {
					continue
				}

				h, err := handlerFor(impact.ImpactType)
				if err != nil {
					return err
				}
				if err := h.revert(uow.Character(), impact.ReversionData); err != nil {
					return errors.Wrapf(err, "failed to revert impact %s", impact.ID)
				}

				next[i].Applied = false
				next[i].IsReverted = true
				next[i].RevertedAt = &now
				next[i].ReversionData = nil
				reverted = append(reverted, next[i])
			}

			if err := uow.PutEventImpacts(current.ID, next); err != nil {
				return err
			}

			updated := *current
			updated.Applied = false
			updated.Status = entities.EventStatusReverted
			updated.RevertedAt = &now
			event = &updated
			return uow.PutCampaignEvent(event)
		},
	})
	switch {
	case stderrors.Is(err, errNotApplied):
		return &RevertEventOutput{Impacts: []*entities.EventImpact{}, Event: stored.Event}, nil
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, "event revert failed")
		return nil, errors.Wrapf(err, "failed to revert campaign event %s", input.EventID)
	}

	slog.InfoContext(ctx, "Reverted campaign event",
		"event_id", event.ID,
		"character_id", event.CharacterID,
		"impacts", len(reverted),
		"version", txOut.Character.Version)

	o.publishUpdated(ctx, txOut.Character, event.ID, "event_reverted")

	return &RevertEventOutput{
		Impacts:   reverted,
		Event:     event,
		Character: txOut.Character,
	}, nil
}

func (o *orchestrator) publishUpdated(ctx context.Context, c *entities.Character, eventID, reason string) {
	payload := map[string]any{
		"character_id":      c.ID,
		"campaign_event_id": eventID,
		"reason":            reason,
		"version":           c.Version,
		"experience_points": c.ExperiencePoints,
		"current_hp":        c.CurrentHP,
		"ability_scores":    c.AbilityScores,
	}
	if err := o.publisher.Publish(ctx, messagehub.TopicCharacterUpdated, payload); err != nil {
		slog.WarnContext(ctx, "Failed to publish event",
			"topic", messagehub.TopicCharacterUpdated,
			"character_id", c.ID,
			"error", err)
	}
}
