package hasher

// Mode is the construction mode of a Hasher.
type Mode byte

const (
	Plain Mode = iota
	Keyed
	Derived
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	switch m {
	case Plain:
		return "plain"
	case Keyed:
		return "keyed"
	case Derived:
		return "derived"
	default:
		return "unknown"
	}
}
