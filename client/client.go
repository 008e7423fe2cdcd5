// Package client is the register-side sync adapter: it keeps a
// connection to the /ws endpoint, registers the terminal's identity and
// turns fanout events into local cache invalidations, mirroring what
// the browser frontend does.
package client

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lucabarone/trattoria-pos/realtime"
	"github.com/lucabarone/trattoria-pos/utils"
)

// Query keys invalidated when the server pushes a change. The register
// refetches these endpoints on its next render/poll.
const (
	KeyOrders    = "/api/orders"
	KeyAnalytics = "/api/analytics"
)

const defaultReconnectDelay = 3 * time.Second

// SyncClient connects one register terminal to the hub. OnInvalidate is
// called with the query keys affected by each event; invalidation is
// idempotent, so the register's own echoed events are harmless.
type SyncClient struct {
	URL        string // ws:// or wss:// URL of the /ws endpoint
	RegisterID int    // 1 or 2

	// OnInvalidate is required; OnEvent is an optional tap on every
	// decoded frame.
	OnInvalidate func(keys ...string)
	OnEvent      func(msg realtime.Message)

	// ReconnectDelay defaults to 3s. The retry is fixed-interval and
	// indefinite; there is no backoff growth.
	ReconnectDelay time.Duration

	dialer *websocket.Dialer
}

func New(url string, registerID int, onInvalidate func(keys ...string)) *SyncClient {
	return &SyncClient{
		URL:            url,
		RegisterID:     registerID,
		OnInvalidate:   onInvalidate,
		ReconnectDelay: defaultReconnectDelay,
		dialer:         websocket.DefaultDialer,
	}
}

// Run connects and processes events until ctx is cancelled. Every
// failure — dial, write, read — leads to the same fixed-delay retry.
func (sc *SyncClient) Run(ctx context.Context) {
	delay := sc.ReconnectDelay
	if delay <= 0 {
		delay = defaultReconnectDelay
	}

	for {
		if err := sc.runOnce(ctx); err != nil {
			utils.ErrorLogger.Printf("sync client CASSA %d: %v, riconnessione in %v", sc.RegisterID, err, delay)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

func (sc *SyncClient) runOnce(ctx context.Context) error {
	dialer := sc.dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	conn, _, err := dialer.DialContext(ctx, sc.URL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Unblock the read loop when the context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	if err := conn.WriteJSON(realtime.Message{
		Type:       realtime.EventRegisterClient,
		RegisterID: sc.RegisterID,
	}); err != nil {
		return err
	}
	utils.InfoLogger.Printf("CASSA %d sincronizzazione attiva", sc.RegisterID)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		var msg realtime.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			// A bad frame is not worth a reconnect.
			utils.ErrorLogger.Printf("sync client CASSA %d: malformed message: %v", sc.RegisterID, err)
			continue
		}
		sc.dispatch(msg)
	}
}

func (sc *SyncClient) dispatch(msg realtime.Message) {
	if sc.OnEvent != nil {
		sc.OnEvent(msg)
	}

	switch msg.Type {
	case realtime.EventOrderCreated,
		realtime.EventOrderCompleted,
		realtime.EventInitialSync,
		realtime.EventDataCleared:
		if sc.OnInvalidate != nil {
			sc.OnInvalidate(KeyOrders, KeyAnalytics)
		}
	default:
		// Unknown event types are ignored; the poll loop covers them.
	}
}
