// Package crack recovers the parameters of reversible linear generators
// (truncated LCGs and affine counters) from three consecutive outputs, and
// predicts the outputs that follow.
package crack

import (
	"errors"
	"fmt"

	"github.com/kzre/lincrack/modmath"
)

const (
	// Samples wider than this cannot match any supported modulus, so they
	// are rejected up front instead of searched.
	maxSampleDigits = 10
)

const (
	ErrorSampleCount      = "expected exactly 3 samples"
	ErrorMismatchedWidths = "samples have mismatched digit widths"
	ErrorSampleTooWide    = "sample is wider than 10 digits"
)

// Samples holds three consecutive truncated generator outputs, oldest first.
// The decimal width of the first sample fixes the truncation base for all
// three.
type Samples [3]uint64

func NewSamples(values []uint64) (Samples, error) {
	var s Samples
	if len(values) != 3 {
		return s, errors.New(ErrorSampleCount)
	}
	width := digitWidth(values[0])
	if width > maxSampleDigits {
		return s, errors.New(ErrorSampleTooWide)
	}
	for i, v := range values {
		if digitWidth(v) != width {
			return s, fmt.Errorf("%s: %d is %d digits wide, want %d", ErrorMismatchedWidths, v, digitWidth(v), width)
		}
		s[i] = v
	}
	return s, nil
}

// TruncMod returns the truncation base 10^digits implied by the first sample.
func (s Samples) TruncMod() uint64 {
	return pow10(digitWidth(s[0]))
}

func digitWidth(v uint64) int {
	w := 1
	for v >= 10 {
		v /= 10
		w++
	}
	return w
}

func pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// Detect runs both hypothesis detectors independently and returns every
// model that matched: zero, one, or both.
func Detect(s Samples) []Model {
	var models []Model
	if m := DetectLCG(s); m != nil {
		models = append(models, m)
	}
	if m := DetectAffine(s); m != nil {
		models = append(models, m)
	}
	return models
}

// DetectLCG searches for a truncated linear congruential generator
// consistent with the samples, using the default profile (moduli 2^31 then
// 2^32, at most 500 truncation offsets per sample). A nil result means no
// candidate modulus admits a consistent model within those bounds; that is a
// conclusive negative, not an error.
func DetectLCG(s Samples) *LCGModel {
	return DetectLCGProfile(s, DefaultProfile())
}

// DetectLCGProfile is DetectLCG with explicit search bounds. For each
// candidate modulus it enumerates truncation offsets k1, k2, k3 ascending
// from zero, reconstructs candidate untruncated states si = oi + ki*trunc,
// solves a and c from the first two states, and accepts the first triple
// whose states satisfy (a*s2 + c) mod m == s3. Pairs whose state difference
// has no inverse modulo m are skipped outright, since a cannot be solved
// from them. The nesting order makes the result deterministic when several
// parameter sets fit: earlier modulus and smaller offsets win.
func DetectLCGProfile(s Samples, p Profile) *LCGModel {
	trunc := s.TruncMod()
	for _, m := range p.Moduli {
		maxK := m / trunc
		if maxK > p.MaxOffset {
			maxK = p.MaxOffset
		}
		for k1 := uint64(0); k1 < maxK; k1++ {
			s1 := s[0] + k1*trunc
			for k2 := uint64(0); k2 < maxK; k2++ {
				s2 := s[1] + k2*trunc
				diff := (s2 + m - s1) % m
				inv, ok := modmath.Inverse(int64(diff), int64(m))
				if !ok {
					continue
				}
				for k3 := uint64(0); k3 < maxK; k3++ {
					s3 := s[2] + k3*trunc
					a := (s3 + m - s2) % m * uint64(inv) % m
					c := (s2 + m - a*s1%m) % m
					if (a*s2+c)%m == s3 {
						return &LCGModel{A: a, C: c, M: m, TruncMod: trunc, LastState: s3}
					}
				}
			}
		}
	}
	return nil
}

// DetectAffine tests whether the samples form a constant-step arithmetic
// progression modulo the truncation base. There is no search: the hypothesis
// either matches exactly or is rejected with a nil result.
func DetectAffine(s Samples) *AffineModel {
	d := s.TruncMod()
	delta1 := int64(s[1]) - int64(s[0])
	delta2 := int64(s[2]) - int64(s[1])
	if delta1 != delta2 {
		return nil
	}
	b := (int64(s[0]) - delta1) % int64(d)
	if b < 0 {
		b += int64(d)
	}
	return &AffineModel{A: delta1, B: uint64(b), D: d, LastOutput: s[2]}
}
