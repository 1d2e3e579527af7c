package coingecko_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/josephtaylor/tensorians-sales/internal/mocks"
	"github.com/josephtaylor/tensorians-sales/internal/providers/coingecko"
)

func TestClient_SpotPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	client := coingecko.NewClient(mockHTTPClient, "https://api.coingecko.com", mockJSON)

	ctx := context.Background()

	responseJSON := []byte(`{"solana": {"usd": 150.25}}`)

	expectedURL := "https://api.coingecko.com/api/v3/simple/price?ids=solana&vs_currencies=usd"

	mockHTTPClient.EXPECT().
		GetBytes(ctx, expectedURL, nil, int64(0)).
		Return(responseJSON, nil)

	mockJSON.EXPECT().
		Unmarshal(responseJSON, gomock.Any()).
		DoAndReturn(func(data []byte, v interface{}) error {
			return json.Unmarshal(data, v)
		})

	price, err := client.SpotPrice(ctx, "solana", "usd")

	assert.NoError(t, err)
	assert.Equal(t, 150.25, price)
}

func TestClient_SpotPrice_APIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	client := coingecko.NewClient(mockHTTPClient, "https://api.coingecko.com", mockJSON)

	ctx := context.Background()

	mockHTTPClient.EXPECT().
		GetBytes(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	price, err := client.SpotPrice(ctx, "solana", "usd")

	assert.Error(t, err)
	assert.Zero(t, price)
	assert.Contains(t, err.Error(), "failed to call coingecko API")
}

func TestClient_SpotPrice_UnmarshalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	client := coingecko.NewClient(mockHTTPClient, "https://api.coingecko.com", mockJSON)

	ctx := context.Background()

	responseJSON := []byte(`invalid json`)

	mockHTTPClient.EXPECT().
		GetBytes(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(responseJSON, nil)

	mockJSON.EXPECT().
		Unmarshal(responseJSON, gomock.Any()).
		Return(assert.AnError)

	price, err := client.SpotPrice(ctx, "solana", "usd")

	assert.Error(t, err)
	assert.Zero(t, price)
	assert.Contains(t, err.Error(), "failed to unmarshal coingecko response")
}

func TestClient_SpotPrice_MissingAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	client := coingecko.NewClient(mockHTTPClient, "https://api.coingecko.com", mockJSON)

	ctx := context.Background()

	responseJSON := []byte(`{}`)

	mockHTTPClient.EXPECT().
		GetBytes(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(responseJSON, nil)

	mockJSON.EXPECT().
		Unmarshal(responseJSON, gomock.Any()).
		DoAndReturn(func(data []byte, v interface{}) error {
			return json.Unmarshal(data, v)
		})

	price, err := client.SpotPrice(ctx, "solana", "usd")

	assert.Error(t, err)
	assert.Zero(t, price)
	assert.Contains(t, err.Error(), "no quotes for asset solana")
}

func TestClient_SpotPrice_MissingCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	client := coingecko.NewClient(mockHTTPClient, "https://api.coingecko.com", mockJSON)

	ctx := context.Background()

	responseJSON := []byte(`{"solana": {"eur": 140.0}}`)

	mockHTTPClient.EXPECT().
		GetBytes(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(responseJSON, nil)

	mockJSON.EXPECT().
		Unmarshal(responseJSON, gomock.Any()).
		DoAndReturn(func(data []byte, v interface{}) error {
			return json.Unmarshal(data, v)
		})

	price, err := client.SpotPrice(ctx, "solana", "usd")

	assert.Error(t, err)
	assert.Zero(t, price)
	assert.Contains(t, err.Error(), "no usd quote for asset solana")
}
