package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephtaylor/tensorians-sales/internal/compose"
	"github.com/josephtaylor/tensorians-sales/internal/domain"
)

func TestSampleInput(t *testing.T) {
	in := sampleInput("tensorians", 150.0)

	assert.Equal(t, "tensorians", in.Slug)
	assert.True(t, in.Tx.Valid())

	faction, ok := in.Tx.Mint.Traits.Get("Faction")
	assert.True(t, ok)
	assert.Equal(t, "Undead", faction)
}

func TestSampleInput_Composes(t *testing.T) {
	in := sampleInput("tensorians", 150.0)

	note, err := compose.NewComposer(nil).Note(in)
	require.NoError(t, err)

	assert.Equal(t, "Sale buy now - Tensorian #2287", note.Embed.Title)
	assert.Equal(t, domain.ItemURL(in.Tx.Mint.Address), note.Embed.URL)
	// No image rides along, the thumbnail falls back to the raw URI
	assert.Nil(t, note.Attachment)
	assert.Equal(t, "https://example.com/tensorians/2287.png", note.Embed.Thumbnail)

	fields := map[string]string{}
	for _, f := range note.Embed.Fields {
		fields[f.Name] = f.Value
	}
	assert.Contains(t, fields["Rarity"], "Rank 421")
	assert.Equal(t, "Undead", fields["Faction"])
	assert.Equal(t, "2.50 SOL ($375.00)", fields["Price"])
	assert.Equal(t, "19.50 SOL ($2,925.00)", fields["Floor"])
}
