package main

import (
	"github.com/josephtaylor/tensorians-sales/internal/compose"
	"github.com/josephtaylor/tensorians-sales/internal/domain"
	"github.com/josephtaylor/tensorians-sales/internal/types"
)

// sampleInput fabricates one representative sale so the rendered embed
// exercises every field: rarity rank, faction trait, both wallets, price
// and floor lines. The image is left nil so nothing is fetched; the
// thumbnail falls back to the raw image URI.
func sampleInput(slug string, spot float64) *compose.Input {
	mint := domain.NewMint(
		"Tensorian #2287",
		"SMoKEtEstM1ntAddr11111111111111111111111111",
		"https://example.com/tensorians/2287.png",
		types.IntPtr(421),
		[]domain.Attribute{
			{TraitType: "Faction", Value: "Undead"},
			{TraitType: "Eyes", Value: "Laser"},
		},
	)

	return &compose.Input{
		Slug: slug,
		Tx: &domain.Transaction{
			ID:          "SMoKEtEstTxSignature111111111111111111111111",
			Type:        domain.TxTypeSaleBuyNow,
			GrossAmount: "2500000000",
			BuyerID:     types.StringPtr("BuyERWaLLetAddr11111111111111111111111111111"),
			SellerID:    types.StringPtr("SeLLERWaLLetAddr1111111111111111111111111111"),
			Mint:        mint,
		},
		Stats: &domain.CollectionStats{
			FloorPrice:  "19500000000",
			TotalSupply: 10000,
		},
		Spot: spot,
	}
}
