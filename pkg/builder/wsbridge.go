package builder

import (
	"time"

	"github.com/audioglyph/helix/pkg/internal/types"
	"github.com/audioglyph/helix/pkg/internal/wsbridge"
)

// WSBridge serves structures and telemetry over a WebSocket endpoint.
type WSBridge = wsbridge.Bridge

// NewWSBridge creates a new bridge with the provided configuration options.
func NewWSBridge(options ...types.Option[*wsbridge.Bridge]) *wsbridge.Bridge {
	return wsbridge.NewBridge(options...)
}

// WSBridgeWithLogger adds one or more loggers to the bridge.
func WSBridgeWithLogger(logger ...types.Logger) types.Option[*wsbridge.Bridge] {
	return wsbridge.WithLogger(logger...)
}

// WSBridgeWithComponentMetadata adds component metadata overrides.
func WSBridgeWithComponentMetadata(name string, id string) types.Option[*wsbridge.Bridge] {
	return wsbridge.WithComponentMetadata(name, id)
}

// WSBridgeWithAddress sets the listen address.
func WSBridgeWithAddress(address string) types.Option[*wsbridge.Bridge] {
	return wsbridge.WithAddress(address)
}

// WSBridgeWithEndpoint sets the WebSocket path.
func WSBridgeWithEndpoint(endpoint string) types.Option[*wsbridge.Bridge] {
	return wsbridge.WithEndpoint(endpoint)
}

// WSBridgeWithAllowedOrigins sets the accepted Origin patterns.
func WSBridgeWithAllowedOrigins(origins ...string) types.Option[*wsbridge.Bridge] {
	return wsbridge.WithAllowedOrigins(origins...)
}

// WSBridgeWithWriteTimeout bounds each frame write.
func WSBridgeWithWriteTimeout(d time.Duration) types.Option[*wsbridge.Bridge] {
	return wsbridge.WithWriteTimeout(d)
}

// WSBridgeWithSendBuffer sizes the per-client outbound buffer.
func WSBridgeWithSendBuffer(n int) types.Option[*wsbridge.Bridge] {
	return wsbridge.WithSendBuffer(n)
}

// WSBridgeWithMaxConnections caps concurrent clients; 0 means unlimited.
func WSBridgeWithMaxConnections(n int) types.Option[*wsbridge.Bridge] {
	return wsbridge.WithMaxConnections(n)
}
