package wsbridge_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"nhooyr.io/websocket"

	"github.com/audioglyph/helix/pkg/internal/wsbridge"
)

func TestLifecycle(t *testing.T) {
	b := wsbridge.NewBridge()

	if err := b.Publish(map[string]int{"x": 1}); err != wsbridge.ErrNotStarted {
		t.Fatalf("expected ErrNotStarted before Start, got %v", err)
	}

	ctx := context.Background()
	if err := b.Close(ctx); err != nil {
		t.Fatalf("close before start: %v", err)
	}
	if err := b.Close(ctx); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if err := b.Start(ctx); err != wsbridge.ErrClosed {
		t.Fatalf("expected ErrClosed on start after close, got %v", err)
	}
	if err := b.Publish(nil); err != wsbridge.ErrClosed {
		t.Fatalf("expected ErrClosed on publish after close, got %v", err)
	}
}

func TestPublishReachesClient(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	b := wsbridge.NewBridge(
		wsbridge.WithAddress("127.0.0.1:0"),
		wsbridge.WithEndpoint("/live"),
	)
	if err := b.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer b.Close(context.Background())

	conn, _, err := websocket.Dial(ctx, "ws://"+b.Addr()+"/live", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	// Wait for the server to register the client before publishing.
	deadline := time.Now().Add(5 * time.Second)
	for b.ConnectionCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	want := map[string]interface{}{"kind": "telemetry", "frames": float64(42)}
	if err := b.Publish(want); err != nil {
		t.Fatal(err)
	}

	_, payload, err := conn.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatal(err)
	}
	if got["kind"] != want["kind"] || got["frames"] != want["frames"] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPublishWithoutClientsDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	b := wsbridge.NewBridge(wsbridge.WithAddress("127.0.0.1:0"))
	if err := b.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer b.Close(ctx)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			_ = b.Publish(map[string]int{"i": i})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publish blocked without clients")
	}
}
