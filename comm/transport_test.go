package comm

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func TestIsWebsocketAddress(t *testing.T) {
	testCases := []struct {
		addr string
		want bool
	}{
		{"ws://localhost:8080/device", true},
		{"wss://sim.example.com/device", true},
		{"/dev/ttyUSB0", false},
		{"COM6", false},
		{"http://localhost:8080", false},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.want, isWebsocketAddress(tc.addr), tc.addr)
	}
}

func TestOpenSerialFailsOnMissingPort(t *testing.T) {
	_, err := Open(Config{Address: "/dev/nonexistent-todo-threader", Baud: 9600, Timeout: time.Second})
	require.Error(t, err)
}

func TestWebsocketTransportExchange(t *testing.T) {
	received := make(chan []byte, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		received <- msg
		_ = conn.WriteMessage(websocket.BinaryMessage, []byte{0x06})
	}))
	defer srv.Close()

	addr := "ws" + strings.TrimPrefix(srv.URL, "http")
	device, err := Open(Config{Address: addr, Baud: 9600, Timeout: time.Second})
	require.NoError(t, err)
	defer device.Close()

	err = Send(device, NewAddCommand("Buy milk", "#FF8800"))
	require.NoError(t, err)
	require.Equal(t, "ADDBuy milk;FF8800", string(<-received))
}
