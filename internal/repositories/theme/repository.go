// Package theme provides persistence for theme reference data
package theme

//go:generate mockgen -destination=mock/mock_repository.go -package=thememock github.com/KirkDiggler/rpg-progression/internal/repositories/theme Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Repository defines the interface for theme persistence. Themes are
// authored content: the transition flow only reads them.
type Repository interface {
	// Get retrieves a theme by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the theme doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every theme ordered by ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Put creates or replaces themes
	// Returns errors.InvalidArgument when a theme fails catalog validation
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}

// GetInput defines the input for getting a theme
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a theme
type GetOutput struct {
	Theme *entities.Theme
}

// ListInput defines the input for listing themes
type ListInput struct {
	// Category filters the result when set
	Category entities.ThemeCategory
}

// ListOutput defines the output for listing themes
type ListOutput struct {
	Themes []*entities.Theme
}

// PutInput defines the input for storing themes
type PutInput struct {
	Themes []*entities.Theme
}

// PutOutput defines the output for storing themes
type PutOutput struct {
	Count int
}
