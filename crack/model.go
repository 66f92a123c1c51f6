package crack

import "errors"

const ErrorNegativeCount = "future count is negative"

// Model is a recovered generator model. The implementation set is closed:
// *LCGModel and *AffineModel.
type Model interface {
	// Kind names the model family, "lcg" or "affine".
	Kind() string
	// Future predicts the count outputs that follow the third sample.
	Future(count int) ([]uint64, error)
}

// LCGModel describes a generator with recurrence
// state' = (A*state + C) mod M whose observable outputs are the states
// reduced modulo TruncMod. LastState is the untruncated state behind the
// third sample.
type LCGModel struct {
	A, C, M   uint64
	TruncMod  uint64
	LastState uint64
}

func (m *LCGModel) Kind() string { return "lcg" }

// Future steps the recurrence from LastState, truncating each new state.
// The walk is pure: identical receiver and count always reproduce the same
// sequence.
func (m *LCGModel) Future(count int) ([]uint64, error) {
	if count < 0 {
		return nil, errors.New(ErrorNegativeCount)
	}
	out := make([]uint64, 0, count)
	state := m.LastState
	for i := 0; i < count; i++ {
		state = (m.A*state + m.C) % m.M
		out = append(out, state%m.TruncMod)
	}
	return out, nil
}

// AffineModel describes an arithmetic progression
// value(n) = (A*n + B) mod D over the sequence position n, counted from 1.
type AffineModel struct {
	A          int64
	B, D       uint64
	LastOutput uint64
}

func (m *AffineModel) Kind() string { return "affine" }

// Future evaluates positions 4, 5, ... directly from the progression
// formula. This assumes the three samples the model was recovered from sat
// at positions 1-3 of the sequence; LastOutput is informational, not a
// computational anchor.
func (m *AffineModel) Future(count int) ([]uint64, error) {
	if count < 0 {
		return nil, errors.New(ErrorNegativeCount)
	}
	out := make([]uint64, 0, count)
	for i := 1; i <= count; i++ {
		v := (m.A*int64(3+i) + int64(m.B)) % int64(m.D)
		if v < 0 {
			v += int64(m.D)
		}
		out = append(out, uint64(v))
	}
	return out, nil
}
