package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephtaylor/tensorians-sales/internal/domain"
	"github.com/josephtaylor/tensorians-sales/internal/rarity"
	"github.com/josephtaylor/tensorians-sales/internal/types"
)

func saleInput() *Input {
	return &Input{
		Slug: "tensorians",
		Tx: &domain.Transaction{
			ID:          "5igAbCdEfSig",
			Type:        domain.TxTypeSaleBuyNow,
			GrossAmount: "2500000000",
			BuyerID:     types.StringPtr("BuyerWallet111"),
			SellerID:    types.StringPtr("SellerWallet22"),
			Mint: domain.NewMint(
				"Tensorian #1234",
				"M1ntAddr11111",
				"https://img.example/1234.png",
				types.IntPtr(5),
				[]domain.Attribute{
					{TraitType: "Eyes", Value: "Laser"},
					{TraitType: "Faction", Value: "Androids"},
				},
			),
		},
		Stats: &domain.CollectionStats{FloorPrice: "1500000000", TotalSupply: 10000},
		Spot:  150.0,
	}
}

func fieldValue(t *testing.T, embed *Embed, name string) string {
	t.Helper()
	for _, f := range embed.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	t.Fatalf("embed has no %q field", name)
	return ""
}

func TestComposer_Note(t *testing.T) {
	composer := NewComposer(nil)

	note, err := composer.Note(saleInput())
	require.NoError(t, err)
	require.NotNil(t, note.Embed)

	embed := note.Embed
	assert.Equal(t, "Sale buy now - Tensorian #1234", embed.Title)
	assert.Equal(t, "https://www.tensor.trade/item/M1ntAddr11111", embed.URL)
	assert.Equal(t, 0x57F287, embed.Color)

	assert.Equal(t, "🔴 Mythic (Rank 5)", fieldValue(t, embed, "Rarity"))
	assert.Equal(t, "Androids", fieldValue(t, embed, "Faction"))
	assert.Equal(t, "2.50 SOL ($375.00)", fieldValue(t, embed, "Price"))
	assert.Equal(t, "1.50 SOL ($225.00)", fieldValue(t, embed, "Floor"))
	assert.Equal(t,
		"[Sell](https://www.tensor.trade/portfolio?wallet=SellerWallet22) → [Buye](https://www.tensor.trade/portfolio?wallet=BuyerWallet111)",
		fieldValue(t, embed, "Wallets"))
	assert.Equal(t,
		"[Tensor](https://www.tensor.trade/item/M1ntAddr11111) | [Solscan](https://solscan.io/tx/5igAbCdEfSig)",
		fieldValue(t, embed, "Links"))

	// No image fetched: thumbnail falls back to the raw URI, no attachment
	assert.Equal(t, "https://img.example/1234.png", embed.Thumbnail)
	assert.Nil(t, note.Attachment)
}

func TestComposer_NoteWithImage(t *testing.T) {
	composer := NewComposer(nil)

	in := saleInput()
	in.Image = &domain.ImageAsset{
		Bytes: []byte{0x89, 0x50, 0x4E, 0x47},
		Ext:   ".png",
		MIME:  "image/png",
	}

	note, err := composer.Note(in)
	require.NoError(t, err)

	require.NotNil(t, note.Attachment)
	assert.Equal(t, "M1nt.png", note.Attachment.Name)
	assert.Equal(t, "image/png", note.Attachment.ContentType)
	assert.Equal(t, in.Image.Bytes, note.Attachment.Data)
	assert.Equal(t, "attachment://M1nt.png", note.Embed.Thumbnail)
}

func TestComposer_NoteNullRankNeverClassifies(t *testing.T) {
	composer := NewComposer(func(rank, populationSize int) rarity.Tier {
		t.Fatal("classifier must not run for an absent rank")
		return rarity.Tier{}
	})

	in := saleInput()
	in.Tx.Mint.Rank = nil

	note, err := composer.Note(in)
	require.NoError(t, err)
	assert.Equal(t, "TBD", fieldValue(t, note.Embed, "Rarity"))
}

func TestComposer_NoteMissingFaction(t *testing.T) {
	composer := NewComposer(nil)

	in := saleInput()
	in.Tx.Mint = domain.NewMint(
		"Tensorian #1234", "M1ntAddr11111", "https://img.example/1234.png",
		types.IntPtr(5),
		[]domain.Attribute{{TraitType: "Eyes", Value: "Laser"}},
	)

	note, err := composer.Note(in)
	require.NoError(t, err)
	assert.Equal(t, "", fieldValue(t, note.Embed, "Faction"))
}

func TestComposer_NoteMissingWallets(t *testing.T) {
	composer := NewComposer(nil)

	in := saleInput()
	in.Tx.Type = domain.TxTypeList
	in.Tx.BuyerID = nil

	note, err := composer.Note(in)
	require.NoError(t, err)
	assert.Equal(t,
		"[Sell](https://www.tensor.trade/portfolio?wallet=SellerWallet22) → Unknown",
		fieldValue(t, note.Embed, "Wallets"))
	assert.Equal(t, 0x5865F2, note.Embed.Color)

	in.Tx.SellerID = nil
	note, err = composer.Note(in)
	require.NoError(t, err)
	assert.Equal(t, "n/a → Unknown", fieldValue(t, note.Embed, "Wallets"))
}

func TestComposer_NoteBadFloorPrice(t *testing.T) {
	composer := NewComposer(nil)

	in := saleInput()
	in.Stats = &domain.CollectionStats{FloorPrice: "junk", TotalSupply: 10000}

	_, err := composer.Note(in)
	assert.Error(t, err)
}

func TestComposer_Post(t *testing.T) {
	composer := NewComposer(nil)

	post, err := composer.Post(saleInput())
	require.NoError(t, err)

	expected := "Sale buy now - Tensorian #1234 for 2.50 SOL\n" +
		"$375.00 USD\n" +
		"Floor: 1.50 SOL ($225.00)\n" +
		"Rarity: 🔴 Mythic (Rank 5)\n" +
		"Faction: Androids\n" +
		"https://www.tensor.trade/item/M1ntAddr11111\n" +
		"https://solscan.io/tx/5igAbCdEfSig"
	assert.Equal(t, expected, post.Text)
}

func TestComposer_PostOmitsEmptyFaction(t *testing.T) {
	composer := NewComposer(nil)

	in := saleInput()
	in.Tx.Mint = domain.NewMint(
		"Tensorian #1234", "M1ntAddr11111", "https://img.example/1234.png",
		types.IntPtr(5),
		[]domain.Attribute{{TraitType: "Eyes", Value: "Laser"}},
	)

	post, err := composer.Post(in)
	require.NoError(t, err)
	assert.NotContains(t, post.Text, "Faction:")
	assert.Contains(t, post.Text, "Rarity: 🔴 Mythic (Rank 5)")
}
