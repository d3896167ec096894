package character

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/keylock"
	redisclient "github.com/KirkDiggler/rpg-progression/internal/redis"
)

const (
	characterKeyPrefix     = "character:"
	playerIndexPrefix      = "character:player:"
	campaignEventKeyPrefix = "campaign_event:"

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errPlayerIDEmpty    = "player ID cannot be empty"
	errEventIDEmpty     = "event ID cannot be empty"
)

func characterKey(id string) string        { return characterKeyPrefix + id }
func activeThemeStateKey(id string) string { return characterKeyPrefix + id + ":theme_state" }
func themeStatesKey(id string) string      { return characterKeyPrefix + id + ":theme_states" }
func transitionsKey(id string) string      { return characterKeyPrefix + id + ":transitions" }
func characterEventsKey(id string) string  { return characterKeyPrefix + id + ":events" }
func campaignEventKey(id string) string    { return campaignEventKeyPrefix + id }
func eventImpactsKey(id string) string     { return campaignEventKeyPrefix + id + ":impacts" }

// fnError carries the caller's error out of the WATCH callback untouched
type fnError struct {
	err error
}

func (e *fnError) Error() string { return e.err.Error() }
func (e *fnError) Unwrap() error { return e.err }

// reader is the read surface shared by the client and a WATCHed *redis.Tx
type reader interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
}

type redisRepository struct {
	client     redisclient.Client
	clock      clock.Clock
	locker     *keylock.Locker
	txAttempts int
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// Locker serializes units of work per character inside this process.
	// A private locker is created when nil.
	Locker *keylock.Locker
	// TxAttempts bounds optimistic retries; defaults to redis.DefaultTxAttempts
	TxAttempts int
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	locker := cfg.Locker
	if locker == nil {
		locker = keylock.New()
	}
	attempts := cfg.TxAttempts
	if attempts <= 0 {
		attempts = redisclient.DefaultTxAttempts
	}

	return &redisRepository{
		client:     cfg.Client,
		clock:      c,
		locker:     locker,
		txAttempts: attempts,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKey(input.Character.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	character := input.Character.Clone()
	now := r.clock.Now()
	character.Version = 1
	character.CreatedAt = now
	character.UpdatedAt = now

	data, err := json.Marshal(character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if character.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+character.PlayerID, character.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	character, err := loadCharacter(ctx, r.client, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Character: character}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var updated *entities.Character
	_, err := r.Transact(ctx, TransactInput{
		CharacterID: input.Character.ID,
		Fn: func(_ context.Context, uow UnitOfWork) error {
			current := uow.Character()
			if input.Character.Version != 0 && input.Character.Version != current.Version {
				return errors.Abortedf("character %s changed: have version %d, stored version %d",
					input.Character.ID, input.Character.Version, current.Version)
			}

			next := input.Character.Clone()
			next.Version = current.Version
			next.CreatedAt = current.CreatedAt
			uow.(*unitOfWork).replaceCharacter(next)
			updated = next
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return &UpdateOutput{Character: updated}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}
	character := getOutput.Character

	eventIDs, err := r.client.SMembers(ctx, characterEventsKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list events for character %s", input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx,
		characterKey(input.ID),
		activeThemeStateKey(input.ID),
		themeStatesKey(input.ID),
		transitionsKey(input.ID),
		characterEventsKey(input.ID),
	)
	for _, eventID := range eventIDs {
		pipe.Del(ctx, campaignEventKey(eventID), eventImpactsKey(eventID))
	}
	if character.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+character.PlayerID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	indexKey := playerIndexPrefix + input.PlayerID
	characterIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}
	sort.Strings(characterIDs)

	characters := make([]*entities.Character, 0, len(characterIDs))
	for _, id := range characterIDs {
		character, err := loadCharacter(ctx, r.client, id)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "character not found, cleaning up index",
					"character_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		characters = append(characters, character)
	}

	return &ListByPlayerIDOutput{Characters: characters}, nil
}

func (r *redisRepository) Transact(ctx context.Context, input TransactInput) (*TransactOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Fn == nil {
		return nil, errors.InvalidArgument("transaction function cannot be nil")
	}

	unlock, err := r.locker.Lock(ctx, input.CharacterID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to lock character %s", input.CharacterID)
	}
	defer unlock()

	var committed *entities.Character
	attempt := 0
	err = redisclient.RunTx(ctx, r.client, r.txAttempts, func(tx *redis.Tx) error {
		attempt++
		if attempt > 1 {
			slog.DebugContext(ctx, "retrying character unit of work",
				"character_id", input.CharacterID,
				"attempt", attempt)
		}

		character, err := loadCharacter(ctx, tx, input.CharacterID)
		if err != nil {
			return err
		}

		uow := newUnitOfWork(tx, character)
		if err := input.Fn(ctx, uow); err != nil {
			return &fnError{err: err}
		}

		// Nothing has been queued yet, so a cancellation here writes nothing
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := uow.commit(ctx, r.clock.Now())
		if err != nil {
			return err
		}
		committed = next
		return nil
	}, characterKey(input.CharacterID))
	if err != nil {
		var fe *fnError
		if stderrors.As(err, &fe) {
			return nil, fe.err
		}

		switch {
		case stderrors.Is(err, redisclient.ErrTxConflict):
			return nil, errors.WrapWithCode(err, errors.CodeAborted, "character was modified concurrently").
				WithMeta("character_id", input.CharacterID)
		case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
			return nil, errors.Wrapf(err, "unit of work for character %s aborted", input.CharacterID)
		}

		var appErr *errors.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "unit of work for character %s failed", input.CharacterID)
	}

	return &TransactOutput{Character: committed}, nil
}

func (r *redisRepository) GetActiveThemeState(
	ctx context.Context,
	input GetActiveThemeStateInput,
) (*GetActiveThemeStateOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	state, err := loadActiveThemeState(ctx, r.client, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &GetActiveThemeStateOutput{State: state}, nil
}

func (r *redisRepository) ListThemeStates(
	ctx context.Context,
	input ListThemeStatesInput,
) (*ListThemeStatesOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	// Read the states and the active pointer in one MULTI so a concurrent
	// transition cannot leave the list without an active state
	var all *redis.MapStringStringCmd
	var pointer *redis.StringCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		all = pipe.HGetAll(ctx, themeStatesKey(input.CharacterID))
		pointer = pipe.Get(ctx, activeThemeStateKey(input.CharacterID))
		return nil
	})
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to list theme states")
	}

	raw, err := all.Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list theme states")
	}

	var active entities.ThemeState
	if data, err := pointer.Result(); err == nil {
		if err := json.Unmarshal([]byte(data), &active); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal theme state")
		}
	} else if err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to get active theme state")
	}

	states := make([]*entities.ThemeState, 0, len(raw))
	for _, data := range raw {
		var state entities.ThemeState
		if err := json.Unmarshal([]byte(data), &state); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal theme state")
		}
		state.Active = active.ID != "" && state.ID == active.ID
		states = append(states, &state)
	}
	sort.Slice(states, func(i, j int) bool { return states[i].Version < states[j].Version })

	return &ListThemeStatesOutput{States: states}, nil
}

func (r *redisRepository) ListTransitions(
	ctx context.Context,
	input ListTransitionsInput,
) (*ListTransitionsOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	raw, err := r.client.LRange(ctx, transitionsKey(input.CharacterID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list transitions")
	}

	transitions := make([]*entities.ThemeTransition, 0, len(raw))
	for _, data := range raw {
		var transition entities.ThemeTransition
		if err := json.Unmarshal([]byte(data), &transition); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal transition")
		}
		transitions = append(transitions, &transition)
	}

	return &ListTransitionsOutput{Transitions: transitions}, nil
}

func (r *redisRepository) GetCampaignEvent(
	ctx context.Context,
	input GetCampaignEventInput,
) (*GetCampaignEventOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEventIDEmpty)
	}

	event, err := loadCampaignEvent(ctx, r.client, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetCampaignEventOutput{Event: event}, nil
}

func (r *redisRepository) ListCampaignEvents(
	ctx context.Context,
	input ListCampaignEventsInput,
) (*ListCampaignEventsOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	indexKey := characterEventsKey(input.CharacterID)
	eventIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get events from index %s", indexKey)
	}

	events := make([]*entities.CampaignEvent, 0, len(eventIDs))
	for _, id := range eventIDs {
		event, err := loadCampaignEvent(ctx, r.client, id)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "campaign event not found, skipping index entry",
					"event_id", id,
					"index_key", indexKey)
				continue
			}
			return nil, err
		}
		events = append(events, event)
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].CreatedAt.Equal(events[j].CreatedAt) {
			return events[i].ID < events[j].ID
		}
		return events[i].CreatedAt.Before(events[j].CreatedAt)
	})

	return &ListCampaignEventsOutput{Events: events}, nil
}

func (r *redisRepository) GetEventImpacts(
	ctx context.Context,
	input GetEventImpactsInput,
) (*GetEventImpactsOutput, error) {
	if input.EventID == "" {
		return nil, errors.InvalidArgument(errEventIDEmpty)
	}

	impacts, err := loadEventImpacts(ctx, r.client, input.EventID)
	if err != nil {
		return nil, err
	}

	return &GetEventImpactsOutput{Impacts: impacts}, nil
}

func loadCharacter(ctx context.Context, rd reader, id string) (*entities.Character, error) {
	result, err := rd.Get(ctx, characterKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var character entities.Character
	if err := json.Unmarshal([]byte(result), &character); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character data")
	}

	return &character, nil
}

func loadActiveThemeState(ctx context.Context, rd reader, characterID string) (*entities.ThemeState, error) {
	result, err := rd.Get(ctx, activeThemeStateKey(characterID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get active theme state")
	}

	var state entities.ThemeState
	if err := json.Unmarshal([]byte(result), &state); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal theme state")
	}

	return &state, nil
}

func loadCampaignEvent(ctx context.Context, rd reader, id string) (*entities.CampaignEvent, error) {
	result, err := rd.Get(ctx, campaignEventKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("campaign event with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get campaign event")
	}

	var event entities.CampaignEvent
	if err := json.Unmarshal([]byte(result), &event); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal campaign event")
	}

	return &event, nil
}

func loadEventImpacts(ctx context.Context, rd reader, eventID string) ([]*entities.EventImpact, error) {
	result, err := rd.Get(ctx, eventImpactsKey(eventID)).Result()
	if err != nil {
		if err == redis.Nil {
			return []*entities.EventImpact{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get event impacts")
	}

	var impacts []*entities.EventImpact
	if err := json.Unmarshal([]byte(result), &impacts); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal event impacts")
	}

	return impacts, nil
}
