package coingecko

import (
	"context"
	"fmt"

	"github.com/josephtaylor/tensorians-sales/internal/adapter"
)

const PROVIDER_NAME = "coingecko"

// Client serves spot prices from the CoinGecko simple price API
type Client struct {
	httpClient adapter.HTTPClient
	apiURL     string
	json       adapter.JSON
}

// NewClient creates a new CoinGecko client
func NewClient(httpClient adapter.HTTPClient, apiURL string, json adapter.JSON) *Client {
	return &Client{
		httpClient: httpClient,
		apiURL:     apiURL,
		json:       json,
	}
}

// SpotPrice returns the current fiat price for one unit of the asset,
// e.g. SpotPrice(ctx, "solana", "usd"). A response that omits the asset
// or the currency is an error.
func (c *Client) SpotPrice(ctx context.Context, asset string, fiat string) (float64, error) {
	url := fmt.Sprintf("%s/api/v3/simple/price?ids=%s&vs_currencies=%s", c.apiURL, asset, fiat)

	respBody, err := c.httpClient.GetBytes(ctx, url, nil, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to call %s API: %w", PROVIDER_NAME, err)
	}

	// Response shape: {"solana": {"usd": 150.0}}
	var response map[string]map[string]float64
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return 0, fmt.Errorf("failed to unmarshal %s response: %w", PROVIDER_NAME, err)
	}

	quotes, ok := response[asset]
	if !ok {
		return 0, fmt.Errorf("%s response has no quotes for asset %s", PROVIDER_NAME, asset)
	}

	price, ok := quotes[fiat]
	if !ok {
		return 0, fmt.Errorf("%s response has no %s quote for asset %s", PROVIDER_NAME, fiat, asset)
	}

	return price, nil
}
