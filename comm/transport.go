package comm

import (
	"io"
	"time"

	"github.com/tarm/serial"
)

// Transport is the open, timeout-bounded connection used for all writes
// and reads. The dispatcher only ever sees this interface; the concrete
// backend is picked in Open.
type Transport interface {
	io.ReadWriteCloser
}

// Config holds the transport settings.
type Config struct {
	Address string
	Baud    int
	Timeout time.Duration
}

// Open connects to the device. Addresses of the form ws:// or wss:// use
// the websocket backend, anything else is treated as a serial port.
func Open(cfg Config) (Transport, error) {
	if isWebsocketAddress(cfg.Address) {
		return openWebsocket(cfg)
	}
	return serial.OpenPort(&serial.Config{
		Name:        cfg.Address,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.Timeout,
	})
}
