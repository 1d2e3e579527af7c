package domain

import "errors"

var (
	// ErrStreamClosed is returned when the upstream event stream terminates
	ErrStreamClosed = errors.New("event stream closed")

	// ErrNotConnected is returned when a stream operation is attempted before Connect
	ErrNotConnected = errors.New("client not connected")

	// ErrSubscriptionFailed is returned when subscribing a slug to the event stream fails
	ErrSubscriptionFailed = errors.New("subscription failed")

	// ErrTraitMissing is returned when a mint lacks the configured gating trait
	ErrTraitMissing = errors.New("gating trait missing")
)
