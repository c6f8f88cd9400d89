// Package wsbridge exposes the live pipeline over a WebSocket endpoint:
// structure documents on load, frame telemetry on demand. Publishing is
// non-blocking; a slow or absent client never stalls the frame loop, messages
// are dropped instead.
package wsbridge

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"nhooyr.io/websocket"

	"github.com/audioglyph/helix/pkg/internal/types"
	"github.com/audioglyph/helix/pkg/internal/utils"
)

var (
	// ErrNotStarted is returned by Publish before Start.
	ErrNotStarted = errors.New("wsbridge: not started")
	// ErrClosed is returned by Publish and Start after Close.
	ErrClosed = errors.New("wsbridge: closed")
)

// Bridge serves the WebSocket endpoint. Safe for concurrent use.
type Bridge struct {
	componentMetadata types.ComponentMetadata

	address        string
	endpoint       string
	allowedOrigins []string
	writeTimeout   time.Duration
	sendBuffer     int
	maxConnections int

	started int32
	closed  int32

	server   *http.Server
	listener net.Listener
	serverMu sync.Mutex

	conns   map[*websocket.Conn]*bridgeConn
	connsMu sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewBridge creates a Bridge configured with the provided options.
func NewBridge(options ...types.Option[*Bridge]) *Bridge {
	b := &Bridge{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "WS_BRIDGE",
		},
		address:        ":8173",
		endpoint:       "/live",
		writeTimeout:   5 * time.Second,
		sendBuffer:     64,
		maxConnections: 1,
		conns:          make(map[*websocket.Conn]*bridgeConn),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}

	return b
}

func (b *Bridge) GetComponentMetadata() types.ComponentMetadata {
	return b.componentMetadata
}

func (b *Bridge) SetComponentMetadata(name string, id string) {
	b.componentMetadata.Name = name
	if id != "" {
		b.componentMetadata.ID = id
	}
}

// ConnectLogger registers loggers. Nil loggers are ignored.
func (b *Bridge) ConnectLogger(loggers ...types.Logger) {
	b.loggersLock.Lock()
	defer b.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			b.loggers = append(b.loggers, l)
		}
	}
}

// Start binds the listener and begins serving. Must be called once; a closed
// bridge cannot be restarted.
func (b *Bridge) Start(ctx context.Context) error {
	if atomic.LoadInt32(&b.closed) == 1 {
		return ErrClosed
	}
	if !atomic.CompareAndSwapInt32(&b.started, 0, 1) {
		return nil
	}

	ln, err := net.Listen("tcp", b.address)
	if err != nil {
		atomic.StoreInt32(&b.started, 0)
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc(b.endpoint, func(w http.ResponseWriter, r *http.Request) {
		b.accept(ctx, w, r)
	})

	srv := &http.Server{Handler: mux}
	b.serverMu.Lock()
	b.listener = ln
	b.server = srv
	b.serverMu.Unlock()

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			b.NotifyLoggers(types.ErrorLevel, "wsbridge: serve stopped",
				"component", b.componentMetadata, "event", "Start", "error", err)
		}
	}()

	b.NotifyLoggers(types.InfoLevel, "wsbridge: listening",
		"component", b.componentMetadata, "event", "Start",
		"address", ln.Addr().String(), "endpoint", b.endpoint)
	return nil
}

// Addr returns the bound listener address, or "" before Start.
func (b *Bridge) Addr() string {
	b.serverMu.Lock()
	defer b.serverMu.Unlock()
	if b.listener == nil {
		return ""
	}
	return b.listener.Addr().String()
}

// ConnectionCount reports the number of live clients.
func (b *Bridge) ConnectionCount() int {
	b.connsMu.Lock()
	defer b.connsMu.Unlock()
	return len(b.conns)
}

// Publish marshals v to JSON and enqueues it to every connected client
// without blocking. Clients whose send buffer is full miss the message.
func (b *Bridge) Publish(v interface{}) error {
	if atomic.LoadInt32(&b.closed) == 1 {
		return ErrClosed
	}
	if atomic.LoadInt32(&b.started) == 0 {
		return ErrNotStarted
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	for _, c := range b.snapshotConns() {
		if !c.enqueue(payload) {
			b.NotifyLoggers(types.DebugLevel, "wsbridge: message dropped",
				"component", b.componentMetadata, "event", "Publish", "bytes", len(payload))
		}
	}
	return nil
}

// Close stops the listener and drops all clients. Idempotent.
func (b *Bridge) Close(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&b.closed, 0, 1) {
		return nil
	}

	for _, c := range b.snapshotConns() {
		c.close(websocket.StatusNormalClosure, "shutting down")
	}

	b.serverMu.Lock()
	srv := b.server
	b.serverMu.Unlock()
	if srv == nil {
		return nil
	}

	err := srv.Shutdown(ctx)
	b.NotifyLoggers(types.InfoLevel, "wsbridge: closed",
		"component", b.componentMetadata, "event", "Close")
	return err
}

// accept upgrades one HTTP request, registers the connection and runs its
// pumps until either side goes away.
func (b *Bridge) accept(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: b.allowedOrigins,
	})
	if err != nil {
		b.NotifyLoggers(types.WarnLevel, "wsbridge: accept failed",
			"component", b.componentMetadata, "event", "accept", "error", err)
		return
	}

	bc, err := b.addConn(conn)
	if err != nil {
		_ = conn.Close(websocket.StatusTryAgainLater, err.Error())
		return
	}
	defer b.dropConn(bc)

	b.NotifyLoggers(types.InfoLevel, "wsbridge: client connected",
		"component", b.componentMetadata, "event", "accept", "remote", r.RemoteAddr)

	go bc.writePump(ctx, b.writeTimeout)
	bc.readUntilClosed(ctx)
}

func (b *Bridge) addConn(conn *websocket.Conn) (*bridgeConn, error) {
	b.connsMu.Lock()
	defer b.connsMu.Unlock()
	if b.maxConnections > 0 && len(b.conns) >= b.maxConnections {
		return nil, errors.New("max connections reached")
	}
	bc := newBridgeConn(conn, b.sendBuffer)
	b.conns[conn] = bc
	return bc, nil
}

func (b *Bridge) dropConn(bc *bridgeConn) {
	bc.close(websocket.StatusNormalClosure, "done")
	b.connsMu.Lock()
	for k, v := range b.conns {
		if v == bc {
			delete(b.conns, k)
			break
		}
	}
	b.connsMu.Unlock()
}

func (b *Bridge) snapshotConns() []*bridgeConn {
	b.connsMu.Lock()
	defer b.connsMu.Unlock()
	if len(b.conns) == 0 {
		return nil
	}
	out := make([]*bridgeConn, 0, len(b.conns))
	for _, c := range b.conns {
		out = append(out, c)
	}
	return out
}
