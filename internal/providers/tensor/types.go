package tensor

import (
	"fmt"

	"github.com/josephtaylor/tensorians-sales/internal/domain"
)

// Frame types pushed on the stream
const (
	FrameTypeTransaction = "transaction"
	FrameTypeSubscribed  = "subscribed"
	FrameTypePong        = "pong"
)

// StreamFrame is the envelope for every message pushed on the websocket
type StreamFrame struct {
	Type        string           `json:"type"`
	Slug        string           `json:"slug,omitempty"`
	Transaction *TransactionData `json:"transaction,omitempty"`
}

// subscribeFrame is the request sent to start receiving a collection's activity
type subscribeFrame struct {
	Event string `json:"event"`
	Slug  string `json:"slug"`
}

// TransactionData represents one activity record on the wire
type TransactionData struct {
	TxID        string    `json:"txId"`
	TxType      string    `json:"txType"`
	GrossAmount string    `json:"grossAmount"`
	BuyerID     *string   `json:"buyerId"`
	SellerID    *string   `json:"sellerId"`
	Mint        *MintData `json:"mint"`
}

// MintData represents the traded item on the wire
type MintData struct {
	Name       string          `json:"name"`
	OnchainID  string          `json:"onchainId"`
	ImageURI   string          `json:"imageUri"`
	RarityRank *int            `json:"rarityRank"`
	Attributes []AttributeData `json:"attributes"`
}

// AttributeData represents a single trait on the wire
type AttributeData struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// CollectionStatsResponse represents the response from the collection stats endpoint
type CollectionStatsResponse struct {
	FloorPrice  string `json:"floorPrice"`
	TotalSupply int    `json:"totalSupply"`
}

// ToDomain maps the wire transaction to the domain model
func (t *TransactionData) ToDomain() (*domain.Transaction, error) {
	if t.Mint == nil {
		return nil, fmt.Errorf("transaction %s has no mint", t.TxID)
	}

	attrs := make([]domain.Attribute, 0, len(t.Mint.Attributes))
	for _, a := range t.Mint.Attributes {
		attrs = append(attrs, domain.Attribute{
			TraitType: a.TraitType,
			Value:     a.Value,
		})
	}

	tx := &domain.Transaction{
		ID:          t.TxID,
		Type:        domain.TransactionType(t.TxType),
		GrossAmount: t.GrossAmount,
		BuyerID:     t.BuyerID,
		SellerID:    t.SellerID,
		Mint:        domain.NewMint(t.Mint.Name, t.Mint.OnchainID, t.Mint.ImageURI, t.Mint.RarityRank, attrs),
	}

	if !tx.Valid() {
		return nil, fmt.Errorf("transaction %s failed validation", t.TxID)
	}

	return tx, nil
}
