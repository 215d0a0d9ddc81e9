package comm

import (
	"fmt"
	"math/rand"
	"strings"
)

// RandomColor returns a random color in HTML notation, zero-padded to
// six hex digits.
func RandomColor() string {
	return fmt.Sprintf("#%06X", rand.Intn(0x1000000))
}

// stripHash drops a leading # so the color can be embedded in a command.
// The color itself is passed through unvalidated.
func stripHash(color string) string {
	return strings.TrimPrefix(color, "#")
}
