package adapter

import (
	"github.com/bwmarrin/discordgo"
)

// DiscordSession defines an interface for Discord webhook operations to enable mocking
//
//go:generate mockgen -source=discord.go -destination=../mocks/discord.go -package=mocks -mock_names=DiscordSession=MockDiscordSession
type DiscordSession interface {
	// WebhookExecute executes a webhook identified by id and token
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// RealDiscordSession implements DiscordSession using the discordgo SDK
type RealDiscordSession struct {
	session *discordgo.Session
}

// NewDiscordSession creates a new real Discord session. Webhook execution
// authenticates with the webhook token itself, so no bot token is needed.
func NewDiscordSession() (DiscordSession, error) {
	session, err := discordgo.New("")
	if err != nil {
		return nil, err
	}
	return &RealDiscordSession{
		session: session,
	}, nil
}

// WebhookExecute executes a webhook identified by id and token
func (s *RealDiscordSession) WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	return s.session.WebhookExecute(webhookID, token, wait, data, options...)
}
