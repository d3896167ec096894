package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

func TestMatchSuggestions(t *testing.T) {
	catalog := []*entities.Theme{
		{ID: "theme_a", Name: "Sellsword"},
		{ID: "theme_b", Name: "Knight of the Order"},
		{ID: "theme_c", Name: "Shadow Pact"},
	}

	tests := []struct {
		name    string
		raw     []map[string]any
		current string
		want    []string
	}{
		{
			name: "by id",
			raw:  []map[string]any{{"theme_id": "theme_b"}},
			want: []string{"theme_b"},
		},
		{
			name: "by name ignoring case and padding",
			raw:  []map[string]any{{"name": "  shadow PACT "}},
			want: []string{"theme_c"},
		},
		{
			name: "unknown id falls back to name",
			raw:  []map[string]any{{"theme_id": "theme_x", "name": "Sellsword"}},
			want: []string{"theme_a"},
		},
		{
			name:    "current theme dropped",
			raw:     []map[string]any{{"theme_id": "theme_a"}, {"theme_id": "theme_b"}},
			current: "theme_a",
			want:    []string{"theme_b"},
		},
		{
			name: "duplicates and junk dropped",
			raw: []map[string]any{
				{"theme_id": "theme_c"},
				{"theme_id": 42},
				{"name": "Shadow Pact"},
				{},
			},
			want: []string{"theme_c"},
		},
		{
			name: "nothing matches",
			raw:  []map[string]any{{"name": "Pirate King"}},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchSuggestions(tt.raw, catalog, tt.current)
			ids := make([]string, 0, len(got))
			for _, theme := range got {
				ids = append(ids, theme.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
