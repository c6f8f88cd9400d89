package wsbridge

import (
	"context"
	"sync"
	"time"

	"nhooyr.io/websocket"
)

type bridgeConn struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}

	mu     sync.Mutex
	closed bool
	once   sync.Once
}

func newBridgeConn(conn *websocket.Conn, buffer int) *bridgeConn {
	if buffer <= 0 {
		buffer = 64
	}
	return &bridgeConn{
		conn: conn,
		send: make(chan []byte, buffer),
		done: make(chan struct{}),
	}
}

// enqueue offers a payload without blocking. Returns false when the client is
// gone or its buffer is full.
func (c *bridgeConn) enqueue(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *bridgeConn) close(code websocket.StatusCode, reason string) {
	c.once.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.done)
		close(c.send)
		c.mu.Unlock()
		_ = c.conn.Close(code, reason)
	})
}

// writePump drains the send buffer onto the wire until the connection closes.
func (c *bridgeConn) writePump(ctx context.Context, timeout time.Duration) {
	for payload := range c.send {
		wctx, cancel := context.WithTimeout(ctx, timeout)
		err := c.conn.Write(wctx, websocket.MessageText, payload)
		cancel()
		if err != nil {
			c.close(websocket.StatusAbnormalClosure, "write failed")
			return
		}
	}
}

// readUntilClosed discards inbound frames so control messages are processed,
// returning when the peer disconnects.
func (c *bridgeConn) readUntilClosed(ctx context.Context) {
	for {
		select {
		case <-c.done:
			return
		default:
		}
		if _, _, err := c.conn.Read(ctx); err != nil {
			return
		}
	}
}
