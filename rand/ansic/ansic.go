// The TYPE_0 linear congruential generator from glibc (ANSI C rand)
// Derived from stdlib/random_r.c

package ansic

const (
	mult = 1103515245
	inc  = 12345
	mod  = 1 << 31
)

type State struct {
	value uint64
}

func Srand(seed uint32) *State {
	return &State{value: uint64(seed) % mod}
}

// Rand advances the generator and returns the full internal state. glibc
// masks the sign bit before returning; with mod 2^31 the state is already
// in range, so the state and the output coincide.
func Rand(s *State) uint64 {
	s.value = (mult*s.value + inc) % mod
	return s.value
}
