package pricing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/josephtaylor/tensorians-sales/internal/domain"
)

// Source provides fiat spot prices for a crypto asset
//
//go:generate mockgen -source=formatter.go -destination=../mocks/price_source.go -package=mocks -mock_names=Source=MockPriceSource
type Source interface {
	// SpotPrice returns the current price of one whole unit of asset in fiat
	SpotPrice(ctx context.Context, asset string, fiat string) (float64, error)
}

// Display carries both renderings of one amount
type Display struct {
	Native string // e.g. "2.50"
	Fiat   string // e.g. "$375.00"
}

var lamportsPerSOL = decimal.NewFromInt(domain.LAMPORTS_PER_SOL)

// usdPrinter applies American English digit grouping to the fiat rendering
var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// Format renders a lamport amount as SOL and USD strings. Both renderings
// round half away from zero at two decimal places.
func Format(grossLamports string, spotPrice float64) (Display, error) {
	amount, err := decimal.NewFromString(grossLamports)
	if err != nil {
		return Display{}, fmt.Errorf("invalid lamport amount %q: %w", grossLamports, err)
	}

	native := amount.Div(lamportsPerSOL)
	fiatValue, _ := native.Mul(decimal.NewFromFloat(spotPrice)).Round(2).Float64()

	return Display{
		Native: native.StringFixed(2),
		Fiat:   usdPrinter.Sprintf("$%.2f", fiatValue),
	}, nil
}
