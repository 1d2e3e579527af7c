package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int {
	return &i
}

func TestTransactionTypeValid(t *testing.T) {
	tests := []struct {
		name     string
		txType   TransactionType
		expected bool
	}{
		{
			name:     "sale buy now",
			txType:   TxTypeSaleBuyNow,
			expected: true,
		},
		{
			name:     "sale accept bid",
			txType:   TxTypeSaleAcceptBid,
			expected: true,
		},
		{
			name:     "list",
			txType:   TxTypeList,
			expected: true,
		},
		{
			name:     "delist",
			txType:   TxTypeDelist,
			expected: true,
		},
		{
			name:     "adjust price",
			txType:   TxTypeAdjustPrice,
			expected: true,
		},
		{
			name:     "unknown type",
			txType:   TransactionType("SWAP"),
			expected: false,
		},
		{
			name:     "empty type",
			txType:   TransactionType(""),
			expected: false,
		},
		{
			name:     "lowercase variant",
			txType:   TransactionType("sale_buy_now"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.txType.Valid())
		})
	}
}

func TestTransactionTypeHumanize(t *testing.T) {
	tests := []struct {
		name     string
		txType   TransactionType
		expected string
	}{
		{
			name:     "sale buy now",
			txType:   TxTypeSaleBuyNow,
			expected: "Sale buy now",
		},
		{
			name:     "sale accept bid",
			txType:   TxTypeSaleAcceptBid,
			expected: "Sale accept bid",
		},
		{
			name:     "single word",
			txType:   TxTypeList,
			expected: "List",
		},
		{
			name:     "adjust price",
			txType:   TxTypeAdjustPrice,
			expected: "Adjust price",
		},
		{
			name:     "empty",
			txType:   TransactionType(""),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.txType.Humanize())
		})
	}
}

func TestNewTraitMap(t *testing.T) {
	tests := []struct {
		name     string
		attrs    []Attribute
		trait    string
		expected string
		present  bool
	}{
		{
			name: "present trait",
			attrs: []Attribute{
				{TraitType: "Eyes", Value: "Laser"},
				{TraitType: "Faction", Value: "Androids"},
			},
			trait:    "Faction",
			expected: "Androids",
			present:  true,
		},
		{
			name: "absent trait",
			attrs: []Attribute{
				{TraitType: "Eyes", Value: "Laser"},
			},
			trait:    "Background",
			expected: "",
			present:  false,
		},
		{
			name: "duplicate trait keeps first occurrence",
			attrs: []Attribute{
				{TraitType: "Eyes", Value: "Laser"},
				{TraitType: "Eyes", Value: "Closed"},
			},
			trait:    "Eyes",
			expected: "Laser",
			present:  true,
		},
		{
			name:     "empty attribute list",
			attrs:    nil,
			trait:    "Eyes",
			expected: "",
			present:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewTraitMap(tt.attrs)
			v, ok := m.Get(tt.trait)
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestNewMint(t *testing.T) {
	attrs := []Attribute{
		{TraitType: "Eyes", Value: "Laser"},
		{TraitType: "Faction", Value: "Androids"},
	}

	mint := NewMint("Tensorian #1234", "M1ntAddr11111", "ipfs://Qm1234", intPtr(5), attrs)

	assert.Equal(t, "Tensorian #1234", mint.Name)
	assert.Equal(t, "M1ntAddr11111", mint.Address)
	assert.Equal(t, "ipfs://Qm1234", mint.ImageURI)
	assert.Equal(t, 5, *mint.Rank)
	assert.Equal(t, attrs, mint.Attributes)

	v, ok := mint.Traits.Get("Faction")
	assert.True(t, ok)
	assert.Equal(t, "Androids", v)
}

func TestTransactionValid(t *testing.T) {
	mint := NewMint("Tensorian #1234", "M1ntAddr11111", "", nil, nil)

	tests := []struct {
		name     string
		tx       Transaction
		expected bool
	}{
		{
			name: "valid sale",
			tx: Transaction{
				ID:          "5igAbCdEfSig",
				Type:        TxTypeSaleBuyNow,
				GrossAmount: "2500000000",
				Mint:        mint,
			},
			expected: true,
		},
		{
			name: "valid listing with zero amount",
			tx: Transaction{
				ID:          "5igAbCdEfSig",
				Type:        TxTypeList,
				GrossAmount: "0",
				Mint:        mint,
			},
			expected: true,
		},
		{
			name: "missing id",
			tx: Transaction{
				Type:        TxTypeSaleBuyNow,
				GrossAmount: "2500000000",
				Mint:        mint,
			},
			expected: false,
		},
		{
			name: "missing mint",
			tx: Transaction{
				ID:          "5igAbCdEfSig",
				Type:        TxTypeSaleBuyNow,
				GrossAmount: "2500000000",
			},
			expected: false,
		},
		{
			name: "unknown type",
			tx: Transaction{
				ID:          "5igAbCdEfSig",
				Type:        TransactionType("SWAP"),
				GrossAmount: "2500000000",
				Mint:        mint,
			},
			expected: false,
		},
		{
			name: "non-numeric amount",
			tx: Transaction{
				ID:          "5igAbCdEfSig",
				Type:        TxTypeSaleBuyNow,
				GrossAmount: "2.5 SOL",
				Mint:        mint,
			},
			expected: false,
		},
		{
			name: "negative amount",
			tx: Transaction{
				ID:          "5igAbCdEfSig",
				Type:        TxTypeSaleBuyNow,
				GrossAmount: "-1",
				Mint:        mint,
			},
			expected: false,
		},
		{
			name: "empty amount",
			tx: Transaction{
				ID:   "5igAbCdEfSig",
				Type: TxTypeSaleBuyNow,
				Mint: mint,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tx.Valid())
		})
	}
}

func TestCollectionStatsSupply(t *testing.T) {
	tests := []struct {
		name     string
		stats    *CollectionStats
		expected int
	}{
		{
			name:     "reported supply",
			stats:    &CollectionStats{TotalSupply: 8888},
			expected: 8888,
		},
		{
			name:     "zero supply falls back",
			stats:    &CollectionStats{TotalSupply: 0},
			expected: FALLBACK_TOTAL_SUPPLY,
		},
		{
			name:     "negative supply falls back",
			stats:    &CollectionStats{TotalSupply: -1},
			expected: FALLBACK_TOTAL_SUPPLY,
		},
		{
			name:     "nil stats falls back",
			stats:    nil,
			expected: FALLBACK_TOTAL_SUPPLY,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stats.Supply())
		})
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{
			name:     "long id truncated",
			id:       "5igAbCdEfSig",
			expected: "5igA",
		},
		{
			name:     "exactly four characters",
			id:       "abcd",
			expected: "abcd",
		},
		{
			name:     "shorter than four",
			id:       "ab",
			expected: "ab",
		},
		{
			name:     "empty",
			id:       "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShortID(tt.id))
		})
	}
}

func TestNotificationURLs(t *testing.T) {
	assert.Equal(t, "https://www.tensor.trade/item/M1ntAddr11111", ItemURL("M1ntAddr11111"))
	assert.Equal(t, "https://www.tensor.trade/portfolio?wallet=BuyerWallet111", WalletURL("BuyerWallet111"))
	assert.Equal(t, "https://solscan.io/tx/5igAbCdEfSig", TxURL("5igAbCdEfSig"))
}
