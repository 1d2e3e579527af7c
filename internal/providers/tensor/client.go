package tensor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/josephtaylor/tensorians-sales/internal/adapter"
	"github.com/josephtaylor/tensorians-sales/internal/domain"
	"github.com/josephtaylor/tensorians-sales/internal/logger"
)

const (
	PROVIDER_NAME = "tensor"

	PING_INTERVAL = 30 * time.Second
	PONG_WAIT     = 75 * time.Second
	WRITE_WAIT    = 10 * time.Second

	EVENT_BUFFER_SIZE = 64
)

// Config holds the marketplace endpoints and credentials
type Config struct {
	APIURL string // REST base URL
	WSURL  string // stream URL
	APIKey string
}

// Client subscribes to the marketplace activity stream and serves
// collection stats over REST
type Client struct {
	config     Config
	dialer     adapter.WebSocketDialer
	httpClient adapter.HTTPClient
	json       adapter.JSON
	clock      adapter.Clock

	mu         sync.Mutex
	conn       adapter.WebSocketConn
	connected  bool
	subscribed map[string]bool

	events     chan *domain.TransactionEvent
	eventsOnce sync.Once
	done       chan struct{}
	closeOnce  sync.Once
}

// NewClient creates a new marketplace client
func NewClient(cfg Config, dialer adapter.WebSocketDialer, httpClient adapter.HTTPClient, json adapter.JSON, clock adapter.Clock) *Client {
	return &Client{
		config:     cfg,
		dialer:     dialer,
		httpClient: httpClient,
		json:       json,
		clock:      clock,
		subscribed: make(map[string]bool),
		events:     make(chan *domain.TransactionEvent, EVENT_BUFFER_SIZE),
		done:       make(chan struct{}),
	}
}

// Connect dials the activity stream and starts the read loop and keepalive.
// The stream is authenticated with the x-api-key header.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		logger.WarnCtx(ctx, "Already connected to activity stream")
		return nil
	}

	headers := http.Header{}
	headers.Set("x-api-key", c.config.APIKey)

	conn, err := c.dialer.DialContext(ctx, c.config.WSURL, headers)
	if err != nil {
		return fmt.Errorf("failed to connect to activity stream: %w", err)
	}

	if err := conn.SetReadDeadline(c.clock.Now().Add(PONG_WAIT)); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.WarnCtx(ctx, "failed to close stream connection", zap.Error(closeErr))
		}
		return fmt.Errorf("failed to set read deadline: %w", err)
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(c.clock.Now().Add(PONG_WAIT))
	})

	c.conn = conn
	c.connected = true

	go c.readLoop(ctx)
	go c.keepalive(ctx)

	logger.InfoCtx(ctx, "Connected to activity stream",
		zap.String("provider", PROVIDER_NAME),
		zap.String("url", c.config.WSURL))
	return nil
}

// SubscribeSlug requests activity for one collection. Subscribing the same
// slug twice is a no-op.
func (c *Client) SubscribeSlug(ctx context.Context, slug string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return fmt.Errorf("cannot subscribe to %s: %w", slug, domain.ErrNotConnected)
	}

	if c.subscribed[slug] {
		logger.WarnCtx(ctx, "Already subscribed to collection", zap.String("slug", slug))
		return nil
	}

	frame := subscribeFrame{Event: "subscribe", Slug: slug}
	if err := c.conn.WriteJSON(frame); err != nil {
		return fmt.Errorf("failed to send subscribe frame for %s: %w", slug, err)
	}

	c.subscribed[slug] = true
	logger.InfoCtx(ctx, "Subscribed to collection activity", zap.String("slug", slug))
	return nil
}

// Events returns the channel of decoded activity events. The channel is
// closed when the stream read loop stops, which signals the caller that
// the transport is gone.
func (c *Client) Events() <-chan *domain.TransactionEvent {
	return c.events
}

// CollectionStats fetches the current floor price and supply for a collection
func (c *Client) CollectionStats(ctx context.Context, slug string) (*domain.CollectionStats, error) {
	url := fmt.Sprintf("%s/api/v1/collections/%s/stats", c.config.APIURL, slug)

	headers := map[string]string{
		"x-api-key": c.config.APIKey,
	}

	respBody, err := c.httpClient.GetBytes(ctx, url, headers, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch collection stats for %s: %w", slug, err)
	}

	var response CollectionStatsResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal collection stats: %w", err)
	}

	return &domain.CollectionStats{
		FloorPrice:  response.FloorPrice,
		TotalSupply: response.TotalSupply,
	}, nil
}

// Close tears down the stream connection
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		close(c.done)
		if c.conn != nil {
			if err := c.conn.Close(); err != nil {
				logger.Warn("failed to close stream connection", zap.Error(err))
			}
		}
		c.connected = false
		logger.Info("Activity stream connection closed")
	})
}

// readLoop consumes frames until the connection dies, then closes Events()
func (c *Client) readLoop(ctx context.Context) {
	defer c.closeEvents()

	for {
		data, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case <-ctx.Done():
				logger.InfoCtx(ctx, "Stream reader stopped", zap.Error(ctx.Err()))
			case <-c.done:
				logger.Info("Stream reader stopped after close")
			default:
				logger.Error(errors.New("stream read failed"), zap.Error(err))
			}
			return
		}

		c.handleFrame(ctx, data)
	}
}

func (c *Client) handleFrame(ctx context.Context, data []byte) {
	var frame StreamFrame
	if err := c.json.Unmarshal(data, &frame); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to decode stream frame: %w", err))
		return
	}

	switch frame.Type {
	case FrameTypeTransaction:
		if frame.Transaction == nil {
			logger.WarnCtx(ctx, "Transaction frame without payload", zap.String("slug", frame.Slug))
			return
		}

		tx, err := frame.Transaction.ToDomain()
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to map transaction: %w", err),
				zap.String("slug", frame.Slug),
				zap.String("txId", frame.Transaction.TxID))
			return
		}

		select {
		case c.events <- &domain.TransactionEvent{Slug: frame.Slug, Transaction: tx}:
		case <-ctx.Done():
		case <-c.done:
		}
	case FrameTypeSubscribed:
		logger.DebugCtx(ctx, "Subscription confirmed", zap.String("slug", frame.Slug))
	case FrameTypePong:
		logger.DebugCtx(ctx, "Received stream pong")
	default:
		logger.DebugCtx(ctx, "Ignoring stream frame", zap.String("type", frame.Type))
	}
}

// keepalive pings the stream so intermediaries keep the connection open.
// The pong handler extends the read deadline.
func (c *Client) keepalive(ctx context.Context) {
	ticker := c.clock.NewTicker(PING_INTERVAL)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case <-ticker.C:
			if err := c.conn.Ping(c.clock.Now().Add(WRITE_WAIT)); err != nil {
				logger.WarnCtx(ctx, "stream ping failed", zap.Error(err))
				return
			}
		}
	}
}

func (c *Client) closeEvents() {
	c.eventsOnce.Do(func() {
		close(c.events)
	})
}
