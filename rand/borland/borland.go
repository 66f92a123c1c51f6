// The Borland C++ rand() linear congruential generator
// Derived from the Turbo C runtime

package borland

const (
	mult = 22695477
	inc  = 1
	mod  = 1 << 32
)

type State struct {
	value uint64
}

func Srand(seed uint32) *State {
	return &State{value: uint64(seed)}
}

// Rand advances the generator and returns the full 32-bit internal state.
// Borland's rand() exposes only bits 16..30; callers that want the library
// behavior can shift, but the detectors work on whole states.
func Rand(s *State) uint64 {
	s.value = (mult*s.value + inc) % mod
	return s.value
}
