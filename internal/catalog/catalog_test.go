package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hobbyhub/internal/domain"
)

func TestAllReturnsFullCatalog(t *testing.T) {
	all := All()
	assert.Len(t, all, 18)

	seen := make(map[string]struct{}, len(all))
	for _, h := range all {
		_, dup := seen[h.ID]
		assert.False(t, dup, "duplicate id %s", h.ID)
		seen[h.ID] = struct{}{}
		assert.NotEmpty(t, h.Title)
		assert.NotEmpty(t, h.Description)
		assert.NotEmpty(t, h.ImageKey)
		assert.True(t, domain.ValidCategory(string(h.Category)))
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0].Title = "mutated"
	assert.NotEqual(t, "mutated", All()[0].Title)
}

func TestByCategory(t *testing.T) {
	tests := []struct {
		name     string
		category domain.Category
		want     int
	}{
		{"sports", domain.CategorySports, 6},
		{"intelligence", domain.CategoryIntelligence, 6},
		{"art", domain.CategoryArt, 6},
		{"empty returns all", "", 18},
		{"unknown returns none", "cooking-shows", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByCategory(tt.category)
			assert.Len(t, got, tt.want)
			if tt.category != "" {
				for _, h := range got {
					assert.Equal(t, tt.category, h.Category)
				}
			}
		})
	}
}

func TestByID(t *testing.T) {
	hobby, ok := ByID("chess")
	require.True(t, ok)
	assert.Equal(t, "Chess", hobby.Title)
	assert.Equal(t, domain.CategoryIntelligence, hobby.Category)

	_, ok = ByID("skydiving")
	assert.False(t, ok)
}
