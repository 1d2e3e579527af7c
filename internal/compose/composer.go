package compose

import (
	"fmt"
	"strings"

	"github.com/josephtaylor/tensorians-sales/internal/domain"
	"github.com/josephtaylor/tensorians-sales/internal/pricing"
	"github.com/josephtaylor/tensorians-sales/internal/rarity"
	"github.com/josephtaylor/tensorians-sales/internal/types"
)

// FACTION_TRAIT is the advisory attribute surfaced on notifications when present
const FACTION_TRAIT = "Faction"

// Embed accent colors per transaction type
var embedColors = map[domain.TransactionType]int{
	domain.TxTypeSaleBuyNow:    0x57F287,
	domain.TxTypeSaleAcceptBid: 0x57F287,
	domain.TxTypeList:          0x5865F2,
	domain.TxTypeDelist:        0x99AAB5,
	domain.TxTypeAdjustPrice:   0xFEE75C,
}

const defaultEmbedColor = 0x99AAB5

// ClassifyFunc places a rank within a population
type ClassifyFunc func(rank, populationSize int) rarity.Tier

// Input gathers everything needed to render one event's notifications
type Input struct {
	Slug  string
	Tx    *domain.Transaction
	Stats *domain.CollectionStats
	Image *domain.ImageAsset // nil when the image fetch degraded
	Spot  float64            // USD per SOL at composition time
}

// EmbedField is one name/value row of a rich embed
type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// Embed is the transport-neutral rich embed rendering of an event
type Embed struct {
	Title     string
	URL       string
	Color     int
	Thumbnail string // attachment://<name> when an image rides along, else the raw URI
	Fields    []EmbedField
}

// FilePayload is an attachment riding along with an embed
type FilePayload struct {
	Name        string
	ContentType string
	Data        []byte
}

// WebhookNote is the webhook-bound rendering of one event
type WebhookNote struct {
	Embed      *Embed
	Attachment *FilePayload // nil when no image was fetched
}

// SocialPost is the social-bound rendering of one event
type SocialPost struct {
	Text string
}

// Composer renders notification payloads for marketplace events.
// It is pure: everything it needs arrives in the Input.
type Composer struct {
	classify ClassifyFunc
}

// NewComposer builds a composer. A nil classify falls back to the
// standard rarity bands.
func NewComposer(classify ClassifyFunc) *Composer {
	if classify == nil {
		classify = rarity.Classify
	}
	return &Composer{classify: classify}
}

// Note renders the webhook embed for one event
func (c *Composer) Note(in *Input) (*WebhookNote, error) {
	tx := in.Tx
	mint := tx.Mint

	price, err := pricing.Format(tx.GrossAmount, in.Spot)
	if err != nil {
		return nil, fmt.Errorf("failed to format price: %w", err)
	}
	floor, err := pricing.Format(in.Stats.FloorPrice, in.Spot)
	if err != nil {
		return nil, fmt.Errorf("failed to format floor price: %w", err)
	}

	note := &WebhookNote{
		Embed: &Embed{
			Title:     fmt.Sprintf("%s - %s", tx.Type.Humanize(), mint.Name),
			URL:       domain.ItemURL(mint.Address),
			Color:     embedColor(tx.Type),
			Thumbnail: mint.ImageURI,
			Fields: []EmbedField{
				{Name: "Rarity", Value: c.rarityLine(mint, in.Stats), Inline: true},
				{Name: "Faction", Value: factionOf(mint), Inline: true},
				{Name: "Price", Value: fmt.Sprintf("%s SOL (%s)", price.Native, price.Fiat), Inline: true},
				{Name: "Floor", Value: fmt.Sprintf("%s SOL (%s)", floor.Native, floor.Fiat), Inline: true},
				{Name: "Wallets", Value: c.walletsLine(tx), Inline: true},
				{Name: "Links", Value: c.linksLine(tx), Inline: false},
			},
		},
	}

	if in.Image != nil {
		name := attachmentName(mint, in.Image)
		note.Attachment = &FilePayload{
			Name:        name,
			ContentType: in.Image.MIME,
			Data:        in.Image.Bytes,
		}
		note.Embed.Thumbnail = "attachment://" + name
	}

	return note, nil
}

// Post renders the social post text for one event
func (c *Composer) Post(in *Input) (*SocialPost, error) {
	tx := in.Tx
	mint := tx.Mint

	price, err := pricing.Format(tx.GrossAmount, in.Spot)
	if err != nil {
		return nil, fmt.Errorf("failed to format price: %w", err)
	}
	floor, err := pricing.Format(in.Stats.FloorPrice, in.Spot)
	if err != nil {
		return nil, fmt.Errorf("failed to format floor price: %w", err)
	}

	lines := []string{
		fmt.Sprintf("%s - %s for %s SOL", tx.Type.Humanize(), mint.Name, price.Native),
		fmt.Sprintf("%s USD", price.Fiat),
		fmt.Sprintf("Floor: %s SOL (%s)", floor.Native, floor.Fiat),
		fmt.Sprintf("Rarity: %s", c.rarityLine(mint, in.Stats)),
	}
	if faction := factionOf(mint); faction != "" {
		lines = append(lines, fmt.Sprintf("Faction: %s", faction))
	}
	lines = append(lines, domain.ItemURL(mint.Address), domain.TxURL(tx.ID))

	return &SocialPost{Text: strings.Join(lines, "\n")}, nil
}

// rarityLine renders the rarity display for a mint. An absent rank renders
// "TBD" and never reaches the classifier.
func (c *Composer) rarityLine(mint *domain.Mint, stats *domain.CollectionStats) string {
	if mint.Rank == nil {
		return "TBD"
	}
	tier := c.classify(*mint.Rank, stats.Supply())
	return fmt.Sprintf("%s %s (Rank %d)", tier.Glyph, tier.Name, *mint.Rank)
}

func (c *Composer) walletsLine(tx *domain.Transaction) string {
	return fmt.Sprintf("%s → %s", walletEntry(tx.SellerID, "n/a"), walletEntry(tx.BuyerID, "Unknown"))
}

func (c *Composer) linksLine(tx *domain.Transaction) string {
	return fmt.Sprintf("[Tensor](%s) | [Solscan](%s)", domain.ItemURL(tx.Mint.Address), domain.TxURL(tx.ID))
}

// walletEntry renders a 4-char short id linking to the wallet portfolio,
// or the fallback when the id is absent
func walletEntry(id *string, fallback string) string {
	if types.StringNilOrEmpty(id) {
		return fallback
	}
	return fmt.Sprintf("[%s](%s)", domain.ShortID(*id), domain.WalletURL(*id))
}

func factionOf(mint *domain.Mint) string {
	value, _ := mint.Traits.Get(FACTION_TRAIT)
	return value
}

func attachmentName(mint *domain.Mint, image *domain.ImageAsset) string {
	base := domain.ShortID(mint.Address)
	if base == "" {
		base = "item"
	}
	return base + image.Ext
}

func embedColor(t domain.TransactionType) int {
	if color, ok := embedColors[t]; ok {
		return color
	}
	return defaultEmbedColor
}
