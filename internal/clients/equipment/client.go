// Package equipment looks up item data in the D&D 5e API
package equipment

//go:generate mockgen -destination=mock/mock_client.go -package=equipmentmock github.com/KirkDiggler/rpg-progression/internal/clients/equipment Client

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Client defines the interface for item catalog lookups
type Client interface {
	// GetItemWeight returns the weight of one item in pounds
	// Returns errors.NotFound if the catalog does not know the item
	// Returns errors.Unavailable if the catalog cannot be reached
	GetItemWeight(ctx context.Context, itemID string) (float64, error)
}

// itemSource is the slice of dnd5e.Interface this package reads
type itemSource interface {
	GetEquipment(key string) (dnd5e.EquipmentInterface, error)
}

type client struct {
	source itemSource

	mu      sync.RWMutex
	weights map[string]float64
}

// Config contains configuration options for the equipment client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a new equipment client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create D&D 5e API client")
	}

	return newClient(dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)), nil
}

func newClient(source itemSource) *client {
	return &client{
		source:  source,
		weights: make(map[string]float64),
	}
}

// toAPIFormat converts an internal item constant to the API key
// e.g., "ITEM_CHAIN_MAIL" -> "chain-mail"
func toAPIFormat(itemID string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(itemID, "ITEM_"), "_", "-"))
}

func (c *client) GetItemWeight(ctx context.Context, itemID string) (float64, error) {
	if itemID == "" {
		return 0, errors.InvalidArgument("item ID is required")
	}

	c.mu.RLock()
	weight, ok := c.weights[itemID]
	c.mu.RUnlock()
	if ok {
		return weight, nil
	}

	if err := ctx.Err(); err != nil {
		return 0, errors.Wrap(err, "item lookup cancelled")
	}

	apiID := toAPIFormat(itemID)
	slog.DebugContext(ctx, "Calling D&D 5e API to get equipment", "item_id", itemID, "api", apiID)

	item, err := c.source.GetEquipment(apiID)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get equipment").
			WithMeta("item_id", itemID)
	}

	weight, ok = weightOf(item)
	if !ok {
		return 0, errors.NotFoundf("no weight known for item %s", itemID).WithMeta("item_id", itemID)
	}

	c.mu.Lock()
	c.weights[itemID] = weight
	c.mu.Unlock()

	return weight, nil
}

func weightOf(item dnd5e.EquipmentInterface) (float64, bool) {
	switch eq := item.(type) {
	case *entities.Weapon:
		return float64(eq.Weight), true
	case *entities.Armor:
		return float64(eq.Weight), true
	case *entities.Equipment:
		return float64(eq.Weight), true
	default:
		return 0, false
	}
}
