package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/josephtaylor/tensorians-sales/internal/logger"
)

// WebSocketConn defines an interface for websocket connection operations to enable mocking
//
//go:generate mockgen -source=websocket.go -destination=../mocks/websocket.go -package=mocks -mock_names=WebSocketConn=MockWebSocketConn,WebSocketDialer=MockWebSocketDialer
type WebSocketConn interface {
	// ReadMessage reads the next data message from the connection
	ReadMessage() ([]byte, error)

	// WriteJSON writes v as a JSON text message
	WriteJSON(v interface{}) error

	// Ping sends a ping control frame with the given write deadline
	Ping(deadline time.Time) error

	// SetReadDeadline sets the read deadline on the underlying connection
	SetReadDeadline(t time.Time) error

	// SetPongHandler sets the handler invoked when a pong control frame arrives
	SetPongHandler(h func(appData string) error)

	// Close closes the underlying connection
	Close() error
}

// WebSocketDialer defines an interface for dialing websocket connections
type WebSocketDialer interface {
	DialContext(ctx context.Context, url string, headers http.Header) (WebSocketConn, error)
}

// RealWebSocketDialer implements WebSocketDialer using the gorilla websocket package
type RealWebSocketDialer struct {
	handshakeTimeout time.Duration
}

// NewWebSocketDialer creates a new real websocket dialer
func NewWebSocketDialer(handshakeTimeout time.Duration) WebSocketDialer {
	return &RealWebSocketDialer{
		handshakeTimeout: handshakeTimeout,
	}
}

func (d *RealWebSocketDialer) DialContext(ctx context.Context, url string, headers http.Header) (WebSocketConn, error) {
	dialer := &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: d.handshakeTimeout,
	}

	conn, resp, err := dialer.DialContext(ctx, url, headers)
	if err != nil {
		if resp != nil {
			if closeErr := resp.Body.Close(); closeErr != nil {
				logger.Warn("failed to close handshake response body", zap.Error(closeErr))
			}
			return nil, fmt.Errorf("websocket handshake failed with status %d: %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("failed to dial websocket: %w", err)
	}

	return &RealWebSocketConn{conn: conn}, nil
}

// RealWebSocketConn wraps a gorilla websocket connection
type RealWebSocketConn struct {
	conn *websocket.Conn
}

func (c *RealWebSocketConn) ReadMessage() ([]byte, error) {
	_, data, err := c.conn.ReadMessage()
	return data, err
}

func (c *RealWebSocketConn) WriteJSON(v interface{}) error {
	return c.conn.WriteJSON(v)
}

func (c *RealWebSocketConn) Ping(deadline time.Time) error {
	return c.conn.WriteControl(websocket.PingMessage, nil, deadline)
}

func (c *RealWebSocketConn) SetReadDeadline(t time.Time) error {
	return c.conn.SetReadDeadline(t)
}

func (c *RealWebSocketConn) SetPongHandler(h func(appData string) error) {
	c.conn.SetPongHandler(h)
}

func (c *RealWebSocketConn) Close() error {
	return c.conn.Close()
}
