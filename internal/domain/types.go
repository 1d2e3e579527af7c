package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TransactionType represents the kind of marketplace activity
type TransactionType string

const (
	TxTypeSaleBuyNow    TransactionType = "SALE_BUY_NOW"
	TxTypeSaleAcceptBid TransactionType = "SALE_ACCEPT_BID"
	TxTypeList          TransactionType = "LIST"
	TxTypeDelist        TransactionType = "DELIST"
	TxTypeAdjustPrice   TransactionType = "ADJUST_PRICE"
)

// Valid checks if the transaction type is one the pipeline knows
func (t TransactionType) Valid() bool {
	switch t {
	case TxTypeSaleBuyNow, TxTypeSaleAcceptBid, TxTypeList, TxTypeDelist, TxTypeAdjustPrice:
		return true
	default:
		return false
	}
}

// Humanize returns the display form of the type: lower-cased, underscores
// replaced with spaces, first letter upper-cased ("SALE_BUY_NOW" -> "Sale buy now")
func (t TransactionType) Humanize() string {
	s := strings.ToLower(string(t))
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Attribute is a single trait name/value pair on a mint
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// TraitMap provides present/absent lookups over a mint's attributes.
// Duplicate trait names keep their first occurrence.
type TraitMap map[string]string

// NewTraitMap builds the lookup from an ordered attribute list
func NewTraitMap(attrs []Attribute) TraitMap {
	m := make(TraitMap, len(attrs))
	for _, a := range attrs {
		if _, ok := m[a.TraitType]; !ok {
			m[a.TraitType] = a.Value
		}
	}
	return m
}

// Get returns the value for a trait name and whether the trait is present
func (t TraitMap) Get(name string) (string, bool) {
	v, ok := t[name]
	return v, ok
}

// Mint represents the traded item
type Mint struct {
	Name       string      `json:"name"`       // display name, e.g. "Tensorian #1234"
	Address    string      `json:"address"`    // on-chain mint address
	ImageURI   string      `json:"image_uri"`  // may be an ipfs:// or ar:// URI
	Rank       *int        `json:"rank"`       // statistical rarity rank, nil when not computed upstream
	Attributes []Attribute `json:"attributes"` // ordered as delivered by the marketplace
	Traits     TraitMap    `json:"-"`          // built once at construction
}

// NewMint builds a mint with its trait lookup built once
func NewMint(name, address, imageURI string, rank *int, attrs []Attribute) *Mint {
	return &Mint{
		Name:       name,
		Address:    address,
		ImageURI:   imageURI,
		Rank:       rank,
		Attributes: attrs,
		Traits:     NewTraitMap(attrs),
	}
}

// Transaction represents one marketplace activity record.
// The pipeline treats it as read-only.
type Transaction struct {
	ID          string          `json:"id"`           // transaction signature
	Type        TransactionType `json:"type"`         // activity kind
	GrossAmount string          `json:"gross_amount"` // lamports as a decimal string
	BuyerID     *string         `json:"buyer_id"`     // nil for listings and delists
	SellerID    *string         `json:"seller_id"`
	Mint        *Mint           `json:"mint"`
}

// Valid checks the fields the pipeline depends on
func (t *Transaction) Valid() bool {
	if t.ID == "" || t.Mint == nil {
		return false
	}
	if !t.Type.Valid() {
		return false
	}
	if _, err := strconv.ParseUint(t.GrossAmount, 10, 64); err != nil {
		return false
	}
	return true
}

// TransactionEvent is one activity notification for a subscribed slug
type TransactionEvent struct {
	Slug        string       `json:"slug"`
	Transaction *Transaction `json:"transaction"`
}

// CollectionStats is the market state fetched per accepted event
type CollectionStats struct {
	FloorPrice  string `json:"floor_price"` // lamports as a decimal string
	TotalSupply int    `json:"total_supply"`
}

// Supply returns the population size, falling back when the marketplace omits it
func (s *CollectionStats) Supply() int {
	if s == nil || s.TotalSupply <= 0 {
		return FALLBACK_TOTAL_SUPPLY
	}
	return s.TotalSupply
}

// ImageAsset is a downloaded item image with its sniffed type
type ImageAsset struct {
	Bytes []byte
	Ext   string // includes the leading dot, e.g. ".png"
	MIME  string
}

// ShortID returns the leading characters of an identifier for display
func ShortID(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[:4]
}

// ItemURL returns the marketplace page for a mint
func ItemURL(mintAddress string) string {
	return fmt.Sprintf("%s/%s", ITEM_URL_BASE, mintAddress)
}

// WalletURL returns the portfolio page for a wallet
func WalletURL(wallet string) string {
	return fmt.Sprintf("%s?wallet=%s", WALLET_URL_BASE, wallet)
}

// TxURL returns the explorer page for a transaction signature
func TxURL(txID string) string {
	return fmt.Sprintf("%s/%s", TX_EXPLORER_BASE, txID)
}
