package rarity

import (
	"github.com/josephtaylor/tensorians-sales/internal/domain"
)

// Tier is a named band over the rank distribution of a collection
type Tier struct {
	Name  string
	Glyph string

	// ceiling is the inclusive upper bound on rank/population covered by the band
	ceiling float64
}

// Bands from rarest to most common. A rank belongs to the first band whose
// ceiling covers its population fraction.
var tiers = []Tier{
	{Name: "Mythic", Glyph: "🔴", ceiling: 0.01},
	{Name: "Legendary", Glyph: "🟠", ceiling: 0.05},
	{Name: "Epic", Glyph: "🟣", ceiling: 0.15},
	{Name: "Rare", Glyph: "🔵", ceiling: 0.35},
	{Name: "Uncommon", Glyph: "🟢", ceiling: 0.60},
	{Name: "Common", Glyph: "⚪", ceiling: 1.0},
}

// Classify places a rank within its collection's rarity band.
// A non-positive populationSize falls back to the collection's known supply.
// Callers must not pass a sentinel for an unknown rank; absence is rendered
// upstream, not classified.
func Classify(rank, populationSize int) Tier {
	if populationSize <= 0 {
		populationSize = domain.FALLBACK_TOTAL_SUPPLY
	}

	fraction := float64(rank) / float64(populationSize)
	for _, t := range tiers {
		if fraction <= t.ceiling {
			return t
		}
	}

	// Ranks past the population size land in the widest band
	return tiers[len(tiers)-1]
}
