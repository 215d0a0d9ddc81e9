package comm

type commandKind int

// commandKind values
const (
	invalid = iota
	test
	raw
	next
	swap
	following
	add
)

type Command struct {
	command commandKind
	payload []byte
	task    string
	color   string
}

// Mutating reports whether the command changes task state on the device,
// as opposed to a diagnostic probe.
func (c Command) Mutating() bool {
	switch c.command {
	case next, swap, following, add:
		return true
	default:
		return false
	}
}
