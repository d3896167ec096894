package character

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// unitOfWork reads through a WATCHed transaction and buffers writes until
// commit queues them in a single MULTI/EXEC.
type unitOfWork struct {
	tx             *redis.Tx
	character      *entities.Character
	storedPlayerID string

	activeState    *entities.ThemeState
	activeStateSet bool
	transitions    []*entities.ThemeTransition
	events         map[string]*entities.CampaignEvent
	eventOrder     []string
	impacts        map[string][]*entities.EventImpact
	impactOrder    []string
}

func newUnitOfWork(tx *redis.Tx, character *entities.Character) *unitOfWork {
	return &unitOfWork{
		tx:             tx,
		character:      character.Clone(),
		storedPlayerID: character.PlayerID,
		events:         make(map[string]*entities.CampaignEvent),
		impacts:        make(map[string][]*entities.EventImpact),
	}
}

func (u *unitOfWork) Character() *entities.Character {
	return u.character
}

func (u *unitOfWork) replaceCharacter(next *entities.Character) {
	u.character = next
}

func (u *unitOfWork) AdjustAbilityScore(ability entities.Ability, delta int32) error {
	if !ability.IsValid() {
		return errors.InvalidArgumentf("unknown ability %q", ability)
	}
	if u.character.AbilityScores == nil {
		u.character.AbilityScores = make(entities.AbilityScores)
	}
	u.character.AbilityScores[ability] += delta
	return nil
}

func (u *unitOfWork) AddEquipment(itemID string, quantity int32) error {
	if itemID == "" {
		return errors.InvalidArgument("item ID cannot be empty")
	}
	if quantity <= 0 {
		return errors.InvalidArgumentf("quantity must be positive, got %d", quantity)
	}

	for i := range u.character.Inventory {
		if u.character.Inventory[i].ItemID == itemID {
			u.character.Inventory[i].Quantity += quantity
			return nil
		}
	}
	u.character.Inventory = append(u.character.Inventory, entities.InventoryItem{
		ItemID:   itemID,
		Quantity: quantity,
	})
	return nil
}

func (u *unitOfWork) RemoveEquipment(itemID string, quantity int32) error {
	if itemID == "" {
		return errors.InvalidArgument("item ID cannot be empty")
	}
	if quantity <= 0 {
		return errors.InvalidArgumentf("quantity must be positive, got %d", quantity)
	}

	for i := range u.character.Inventory {
		item := &u.character.Inventory[i]
		if item.ItemID != itemID {
			continue
		}
		if item.Quantity < quantity {
			break
		}
		item.Quantity -= quantity
		if item.Quantity == 0 {
			u.character.Inventory = append(u.character.Inventory[:i], u.character.Inventory[i+1:]...)
		}
		return nil
	}

	return errors.FailedPreconditionf("character %s carries %d of %s, cannot remove %d",
		u.character.ID, u.character.ItemQuantity(itemID), itemID, quantity).
		WithMeta("item_id", itemID)
}

func (u *unitOfWork) ActiveThemeState(ctx context.Context) (*entities.ThemeState, error) {
	if u.activeStateSet {
		return u.activeState, nil
	}
	return loadActiveThemeState(ctx, u.tx, u.character.ID)
}

func (u *unitOfWork) SetActiveThemeState(state *entities.ThemeState) error {
	if state == nil {
		return errors.InvalidArgument("theme state cannot be nil")
	}
	if state.ID == "" {
		return errors.InvalidArgument("theme state ID cannot be empty")
	}
	if state.CharacterID != u.character.ID {
		return errors.InvalidArgumentf("theme state belongs to %s, not %s", state.CharacterID, u.character.ID)
	}

	staged := *state
	staged.Active = true
	u.activeState = &staged
	u.activeStateSet = true
	return nil
}

func (u *unitOfWork) AppendThemeTransition(transition *entities.ThemeTransition) error {
	if transition == nil {
		return errors.InvalidArgument("transition cannot be nil")
	}
	if transition.ID == "" {
		return errors.InvalidArgument("transition ID cannot be empty")
	}
	if transition.CharacterID != u.character.ID {
		return errors.InvalidArgumentf("transition belongs to %s, not %s", transition.CharacterID, u.character.ID)
	}

	u.transitions = append(u.transitions, transition)
	return nil
}

func (u *unitOfWork) CampaignEvent(ctx context.Context, eventID string) (*entities.CampaignEvent, error) {
	if eventID == "" {
		return nil, errors.InvalidArgument(errEventIDEmpty)
	}
	if event, ok := u.events[eventID]; ok {
		return event, nil
	}

	event, err := loadCampaignEvent(ctx, u.tx, eventID)
	if err != nil {
		return nil, err
	}
	if event.CharacterID != u.character.ID {
		return nil, errors.NotFoundf("campaign event %s not found for character %s", eventID, u.character.ID)
	}
	return event, nil
}

func (u *unitOfWork) PutCampaignEvent(event *entities.CampaignEvent) error {
	if event == nil {
		return errors.InvalidArgument("campaign event cannot be nil")
	}
	if event.ID == "" {
		return errors.InvalidArgument(errEventIDEmpty)
	}
	if event.CharacterID != u.character.ID {
		return errors.InvalidArgumentf("campaign event belongs to %s, not %s", event.CharacterID, u.character.ID)
	}

	if _, ok := u.events[event.ID]; !ok {
		u.eventOrder = append(u.eventOrder, event.ID)
	}
	u.events[event.ID] = event
	return nil
}

func (u *unitOfWork) EventImpacts(ctx context.Context, eventID string) ([]*entities.EventImpact, error) {
	if eventID == "" {
		return nil, errors.InvalidArgument(errEventIDEmpty)
	}
	if impacts, ok := u.impacts[eventID]; ok {
		return impacts, nil
	}
	return loadEventImpacts(ctx, u.tx, eventID)
}

func (u *unitOfWork) PutEventImpacts(eventID string, impacts []*entities.EventImpact) error {
	if eventID == "" {
		return errors.InvalidArgument(errEventIDEmpty)
	}
	for _, impact := range impacts {
		if impact.CharacterID != u.character.ID {
			return errors.InvalidArgumentf("impact %s belongs to %s, not %s", impact.ID, impact.CharacterID, u.character.ID)
		}
	}

	if _, ok := u.impacts[eventID]; !ok {
		u.impactOrder = append(u.impactOrder, eventID)
	}
	u.impacts[eventID] = impacts
	return nil
}

// commit queues every staged write in one MULTI/EXEC. The character key is
// always rewritten so its version moves and concurrent WATCHers abort.
func (u *unitOfWork) commit(ctx context.Context, now time.Time) (*entities.Character, error) {
	next := u.character
	next.Version++
	next.UpdatedAt = now

	characterData, err := json.Marshal(next)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	// Stored states are never rewritten. Which one is active is decided by
	// the theme_state pointer alone.
	var stateData []byte
	if u.activeStateSet {
		if stateData, err = json.Marshal(u.activeState); err != nil {
			return nil, errors.Wrapf(err, "failed to marshal theme state")
		}
	}

	transitionData := make([]interface{}, 0, len(u.transitions))
	for _, transition := range u.transitions {
		data, err := json.Marshal(transition)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal transition")
		}
		transitionData = append(transitionData, data)
	}

	eventData := make(map[string][]byte, len(u.events))
	for _, id := range u.eventOrder {
		data, err := json.Marshal(u.events[id])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal campaign event")
		}
		eventData[id] = data
	}

	impactData := make(map[string][]byte, len(u.impacts))
	for _, id := range u.impactOrder {
		impacts := u.impacts[id]
		if impacts == nil {
			impacts = []*entities.EventImpact{}
		}
		data, err := json.Marshal(impacts)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal event impacts")
		}
		impactData[id] = data
	}

	_, err = u.tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, characterKey(next.ID), characterData, 0)

		if u.storedPlayerID != next.PlayerID {
			if u.storedPlayerID != "" {
				pipe.SRem(ctx, playerIndexPrefix+u.storedPlayerID, next.ID)
			}
			if next.PlayerID != "" {
				pipe.SAdd(ctx, playerIndexPrefix+next.PlayerID, next.ID)
			}
		}

		if u.activeStateSet {
			pipe.Set(ctx, activeThemeStateKey(next.ID), stateData, 0)
			pipe.HSetNX(ctx, themeStatesKey(next.ID), u.activeState.ID, stateData)
		}

		if len(transitionData) > 0 {
			pipe.RPush(ctx, transitionsKey(next.ID), transitionData...)
		}

		for _, id := range u.eventOrder {
			pipe.Set(ctx, campaignEventKey(id), eventData[id], 0)
			pipe.SAdd(ctx, characterEventsKey(next.ID), id)
		}

		for _, id := range u.impactOrder {
			pipe.Set(ctx, eventImpactsKey(id), impactData[id], 0)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return next, nil
}
