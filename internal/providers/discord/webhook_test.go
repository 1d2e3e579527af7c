package discord_test

import (
	"context"
	"io"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephtaylor/tensorians-sales/internal/compose"
	"github.com/josephtaylor/tensorians-sales/internal/mocks"
	"github.com/josephtaylor/tensorians-sales/internal/providers/discord"
)

func TestParseWebhookURL(t *testing.T) {
	tests := []struct {
		name          string
		url           string
		expectedID    string
		expectedToken string
		expectError   bool
	}{
		{
			name:          "valid webhook URL",
			url:           "https://discord.com/api/webhooks/123456789/secret-token",
			expectedID:    "123456789",
			expectedToken: "secret-token",
		},
		{
			name:          "trailing slash is tolerated",
			url:           "https://discord.com/api/webhooks/123456789/secret-token/",
			expectedID:    "123456789",
			expectedToken: "secret-token",
		},
		{
			name:        "missing token segment",
			url:         "https://discord.com/api/webhooks/123456789",
			expectError: true,
		},
		{
			name:        "not a webhook path",
			url:         "https://discord.com/api/channels/123456789/messages",
			expectError: true,
		},
		{
			name:        "empty URL",
			url:         "",
			expectError: true,
		},
		{
			name:        "unparseable URL",
			url:         "://not-a-url",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, token, err := discord.ParseWebhookURL(tt.url)
			if tt.expectError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
			assert.Equal(t, tt.expectedToken, token)
		})
	}
}

func TestWebhook_Name(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSession := mocks.NewMockDiscordSession(ctrl)

	webhook, err := discord.NewWebhook(mockSession, "https://discord.com/api/webhooks/123456789/secret-token")
	require.NoError(t, err)

	// The sink label carries a truncated id and never the token
	assert.Equal(t, "discord:1234", webhook.Name())
	assert.NotContains(t, webhook.Name(), "secret-token")
}

func TestWebhook_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSession := mocks.NewMockDiscordSession(ctrl)

	webhook, err := discord.NewWebhook(mockSession, "https://discord.com/api/webhooks/123456789/secret-token")
	require.NoError(t, err)

	note := &compose.WebhookNote{
		Embed: &compose.Embed{
			Title:     "Tensorian #1234 - Sale buy now",
			URL:       "https://www.tensor.trade/item/M1ntAddr11111",
			Color:     0x00FF00,
			Thumbnail: "https://img.example/1234.png",
			Fields: []compose.EmbedField{
				{Name: "Price", Value: "2.50 SOL ($375.00)", Inline: true},
				{Name: "Buyer", Value: "[Buye](https://www.tensor.trade/portfolio?wallet=BuyerWallet111)", Inline: true},
			},
		},
	}

	mockSession.EXPECT().
		WebhookExecute("123456789", "secret-token", true, gomock.Any(), gomock.Any()).
		DoAndReturn(func(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
			require.Len(t, data.Embeds, 1)
			embed := data.Embeds[0]
			assert.Equal(t, "Tensorian #1234 - Sale buy now", embed.Title)
			assert.Equal(t, "https://www.tensor.trade/item/M1ntAddr11111", embed.URL)
			assert.Equal(t, 0x00FF00, embed.Color)
			require.NotNil(t, embed.Thumbnail)
			assert.Equal(t, "https://img.example/1234.png", embed.Thumbnail.URL)
			require.Len(t, embed.Fields, 2)
			assert.Equal(t, "Price", embed.Fields[0].Name)
			assert.True(t, embed.Fields[0].Inline)
			assert.Empty(t, data.Files)
			return &discordgo.Message{ID: "msg-1"}, nil
		})

	err = webhook.Send(context.Background(), note)
	assert.NoError(t, err)
}

func TestWebhook_Send_WithAttachment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSession := mocks.NewMockDiscordSession(ctrl)

	webhook, err := discord.NewWebhook(mockSession, "https://discord.com/api/webhooks/123456789/secret-token")
	require.NoError(t, err)

	imageBytes := []byte{0x89, 0x50, 0x4E, 0x47}

	note := &compose.WebhookNote{
		Embed: &compose.Embed{
			Title: "Tensorian #1234 - Sale buy now",
		},
		Attachment: &compose.FilePayload{
			Name:        "M1ntAddr11111.png",
			ContentType: "image/png",
			Data:        imageBytes,
		},
	}

	mockSession.EXPECT().
		WebhookExecute("123456789", "secret-token", true, gomock.Any(), gomock.Any()).
		DoAndReturn(func(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
			require.Len(t, data.Files, 1)
			file := data.Files[0]
			assert.Equal(t, "M1ntAddr11111.png", file.Name)
			assert.Equal(t, "image/png", file.ContentType)

			content, err := io.ReadAll(file.Reader)
			require.NoError(t, err)
			assert.Equal(t, imageBytes, content)
			return &discordgo.Message{ID: "msg-1"}, nil
		})

	err = webhook.Send(context.Background(), note)
	assert.NoError(t, err)
}

func TestWebhook_Send_ExecuteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSession := mocks.NewMockDiscordSession(ctrl)

	webhook, err := discord.NewWebhook(mockSession, "https://discord.com/api/webhooks/123456789/secret-token")
	require.NoError(t, err)

	mockSession.EXPECT().
		WebhookExecute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	err = webhook.Send(context.Background(), &compose.WebhookNote{Embed: &compose.Embed{Title: "x"}})

	assert.Error(t, err)
	// The wrapped error exposes only the truncated webhook id
	assert.Contains(t, err.Error(), "failed to execute webhook 1234")
	assert.NotContains(t, err.Error(), "secret-token")
}

func TestWebhook_NewWebhook_InvalidURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSession := mocks.NewMockDiscordSession(ctrl)

	webhook, err := discord.NewWebhook(mockSession, "https://discord.com/api/channels/123")
	assert.Error(t, err)
	assert.Nil(t, webhook)
}
