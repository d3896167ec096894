package theme

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-progression/internal/redis"
)

const (
	themeKeyPrefix = "theme:"
	themeIndexKey  = "themes:all"

	// Error messages
	errThemeIDEmpty = "theme ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis theme repository.
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed theme repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errThemeIDEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("theme with ID %s not found", input.ID).
				WithMeta("theme_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get theme %s", input.ID)
	}

	var theme entities.Theme
	if err := json.Unmarshal([]byte(result), &theme); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal theme data")
	}

	return &GetOutput{Theme: &theme}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, themeIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list theme IDs")
	}
	sort.Strings(ids)

	themes := make([]*entities.Theme, 0, len(ids))
	if len(ids) == 0 {
		return &ListOutput{Themes: themes}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = GetKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load themes")
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Index entry without a theme document
			continue
		}

		var theme entities.Theme
		if err := json.Unmarshal([]byte(raw), &theme); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal theme %s", ids[i])
		}
		if input.Category != "" && theme.Category != input.Category {
			continue
		}
		themes = append(themes, &theme)
	}

	return &ListOutput{Themes: themes}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := ValidateThemes(input.Themes); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	for _, theme := range input.Themes {
		data, err := json.Marshal(theme)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal theme %s", theme.ID)
		}
		pipe.Set(ctx, GetKey(theme.ID), data, 0)
		pipe.SAdd(ctx, themeIndexKey, theme.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store themes")
	}

	return &PutOutput{Count: len(input.Themes)}, nil
}

// GetKey returns the Redis key for a theme
// Exposed for testing purposes
func GetKey(themeID string) string {
	return themeKeyPrefix + themeID
}
