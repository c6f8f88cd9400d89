package wsbridge

import (
	"time"

	"github.com/audioglyph/helix/pkg/internal/types"
)

// WithLogger creates an option to add a logger to a Bridge.
func WithLogger(logger ...types.Logger) types.Option[*Bridge] {
	return func(b *Bridge) {
		b.ConnectLogger(logger...)
	}
}

// WithComponentMetadata creates an option to set the Bridge's name and ID.
func WithComponentMetadata(name string, id string) types.Option[*Bridge] {
	return func(b *Bridge) {
		b.SetComponentMetadata(name, id)
	}
}

// WithAddress creates an option to set the listen address.
func WithAddress(address string) types.Option[*Bridge] {
	return func(b *Bridge) {
		b.address = address
	}
}

// WithEndpoint creates an option to set the WebSocket path.
func WithEndpoint(endpoint string) types.Option[*Bridge] {
	return func(b *Bridge) {
		b.endpoint = endpoint
	}
}

// WithAllowedOrigins creates an option to set the accepted Origin patterns.
func WithAllowedOrigins(origins ...string) types.Option[*Bridge] {
	return func(b *Bridge) {
		b.allowedOrigins = append(b.allowedOrigins, origins...)
	}
}

// WithWriteTimeout creates an option to bound each frame write.
func WithWriteTimeout(d time.Duration) types.Option[*Bridge] {
	return func(b *Bridge) {
		if d > 0 {
			b.writeTimeout = d
		}
	}
}

// WithSendBuffer creates an option to size the per-client outbound buffer.
func WithSendBuffer(n int) types.Option[*Bridge] {
	return func(b *Bridge) {
		if n > 0 {
			b.sendBuffer = n
		}
	}
}

// WithMaxConnections creates an option to cap concurrent clients; 0 means
// unlimited.
func WithMaxConnections(n int) types.Option[*Bridge] {
	return func(b *Bridge) {
		if n >= 0 {
			b.maxConnections = n
		}
	}
}
