package comm

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// wsTransport adapts a websocket connection to Transport so the tool can
// talk to a simulated device. Each Write becomes one binary message;
// Read drains received messages byte by byte.
type wsTransport struct {
	conn    *websocket.Conn
	timeout time.Duration
	buf     []byte
}

func isWebsocketAddress(addr string) bool {
	return strings.HasPrefix(addr, "ws://") || strings.HasPrefix(addr, "wss://")
}

func openWebsocket(cfg Config) (Transport, error) {
	dialer := websocket.Dialer{HandshakeTimeout: cfg.Timeout}
	conn, _, err := dialer.Dial(cfg.Address, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.Address, err)
	}
	return &wsTransport{conn: conn, timeout: cfg.Timeout}, nil
}

func (t *wsTransport) Write(p []byte) (int, error) {
	if err := t.conn.SetWriteDeadline(time.Now().Add(t.timeout)); err != nil {
		return 0, err
	}
	if err := t.conn.WriteMessage(websocket.BinaryMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (t *wsTransport) Read(p []byte) (int, error) {
	for len(t.buf) == 0 {
		if err := t.conn.SetReadDeadline(time.Now().Add(t.timeout)); err != nil {
			return 0, err
		}
		_, msg, err := t.conn.ReadMessage()
		if err != nil {
			return 0, err
		}
		t.buf = msg
	}
	n := copy(p, t.buf)
	t.buf = t.buf[n:]
	return n, nil
}

func (t *wsTransport) Close() error {
	return t.conn.Close()
}
