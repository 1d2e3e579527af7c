package rarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tierOrder = []string{"Mythic", "Legendary", "Epic", "Rare", "Uncommon", "Common"}

func orderOf(t *testing.T, name string) int {
	for i, n := range tierOrder {
		if n == name {
			return i
		}
	}
	t.Fatalf("unknown tier %q", name)
	return -1
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		rank       int
		population int
		expected   string
		glyph      string
	}{
		{
			name:       "rank 5 of 10000 is mythic",
			rank:       5,
			population: 10000,
			expected:   "Mythic",
			glyph:      "🔴",
		},
		{
			name:       "mythic ceiling is inclusive",
			rank:       100,
			population: 10000,
			expected:   "Mythic",
			glyph:      "🔴",
		},
		{
			name:       "one past mythic ceiling is legendary",
			rank:       101,
			population: 10000,
			expected:   "Legendary",
			glyph:      "🟠",
		},
		{
			name:       "legendary ceiling",
			rank:       500,
			population: 10000,
			expected:   "Legendary",
			glyph:      "🟠",
		},
		{
			name:       "epic band",
			rank:       1500,
			population: 10000,
			expected:   "Epic",
			glyph:      "🟣",
		},
		{
			name:       "rare band",
			rank:       3500,
			population: 10000,
			expected:   "Rare",
			glyph:      "🔵",
		},
		{
			name:       "uncommon band",
			rank:       6000,
			population: 10000,
			expected:   "Uncommon",
			glyph:      "🟢",
		},
		{
			name:       "common band",
			rank:       6001,
			population: 10000,
			expected:   "Common",
			glyph:      "⚪",
		},
		{
			name:       "last rank is common",
			rank:       10000,
			population: 10000,
			expected:   "Common",
			glyph:      "⚪",
		},
		{
			name:       "single item collection",
			rank:       1,
			population: 1,
			expected:   "Common",
			glyph:      "⚪",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := Classify(tt.rank, tt.population)
			assert.Equal(t, tt.expected, tier.Name)
			assert.Equal(t, tt.glyph, tier.Glyph)
		})
	}
}

func TestClassify_FallbackPopulation(t *testing.T) {
	// Zero and negative population sizes fall back to the known supply of 10k
	assert.Equal(t, "Mythic", Classify(5, 0).Name)
	assert.Equal(t, "Mythic", Classify(100, 0).Name)
	assert.Equal(t, "Legendary", Classify(101, -1).Name)
}

func TestClassify_TotalForOutOfRangeRanks(t *testing.T) {
	// Ranks past the population still classify instead of panicking
	assert.Equal(t, "Common", Classify(20000, 10000).Name)
}

func TestClassify_MonotonicOverRanks(t *testing.T) {
	const population = 10000

	prev := 0
	for rank := 1; rank <= population; rank++ {
		tier := Classify(rank, population)
		cur := orderOf(t, tier.Name)
		require.GreaterOrEqual(t, cur, prev, "rarity regressed at rank %d", rank)
		prev = cur
	}
}
