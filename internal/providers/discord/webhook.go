package discord

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/josephtaylor/tensorians-sales/internal/adapter"
	"github.com/josephtaylor/tensorians-sales/internal/compose"
	"github.com/josephtaylor/tensorians-sales/internal/domain"
)

const PROVIDER_NAME = "discord"

// Webhook delivers composed notes to one Discord webhook
type Webhook struct {
	session adapter.DiscordSession
	id      string
	token   string
}

// ParseWebhookURL extracts the webhook id and token from a Discord
// webhook URL (.../api/webhooks/{id}/{token})
func ParseWebhookURL(webhookURL string) (string, string, error) {
	u, err := url.Parse(webhookURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid webhook URL: %w", err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 4 || parts[len(parts)-3] != "webhooks" {
		return "", "", fmt.Errorf("webhook URL path %q is not a Discord webhook path", u.Path)
	}

	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// NewWebhook creates a webhook sink from its URL
func NewWebhook(session adapter.DiscordSession, webhookURL string) (*Webhook, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}

	return &Webhook{
		session: session,
		id:      id,
		token:   token,
	}, nil
}

// Name returns a log-safe sink label. The token never appears in logs.
func (w *Webhook) Name() string {
	return fmt.Sprintf("%s:%s", PROVIDER_NAME, domain.ShortID(w.id))
}

// Send executes the webhook with the embed and optional image attachment.
// wait=true so delivery failures surface as errors instead of fire-and-forget.
func (w *Webhook) Send(ctx context.Context, note *compose.WebhookNote) error {
	params := &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{toMessageEmbed(note.Embed)},
	}

	if note.Attachment != nil {
		params.Files = []*discordgo.File{
			{
				Name:        note.Attachment.Name,
				ContentType: note.Attachment.ContentType,
				Reader:      bytes.NewReader(note.Attachment.Data),
			},
		}
	}

	if _, err := w.session.WebhookExecute(w.id, w.token, true, params, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to execute webhook %s: %w", domain.ShortID(w.id), err)
	}

	return nil
}

func toMessageEmbed(e *compose.Embed) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(e.Fields))
	for _, f := range e.Fields {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:  e.Title,
		URL:    e.URL,
		Color:  e.Color,
		Fields: fields,
	}

	if e.Thumbnail != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: e.Thumbnail}
	}

	return embed
}
