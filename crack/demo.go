package crack

import (
	"errors"
	"fmt"

	"github.com/kzre/lincrack/rand/ansic"
	"github.com/kzre/lincrack/rand/borland"
)

// DemoSamples seeds a reference generator family and returns three
// consecutive outputs truncated to the requested decimal width, for feeding
// back into the detectors. Truncation can shorten an output below the
// requested width, which NewSamples rejects, so the window slides forward
// until the three outputs agree; a qualifying window almost always appears
// within a few steps.
func DemoSamples(family string, seed uint32, digits int) (Samples, error) {
	var next func() uint64
	switch family {
	case "ansic":
		st := ansic.Srand(seed)
		next = func() uint64 { return ansic.Rand(st) }
	case "borland":
		st := borland.Srand(seed)
		next = func() uint64 { return borland.Rand(st) }
	default:
		return Samples{}, fmt.Errorf("unknown generator family: %q", family)
	}
	if digits < 1 || digits > maxSampleDigits {
		return Samples{}, fmt.Errorf("digits must be between 1 and %d", maxSampleDigits)
	}

	trunc := pow10(digits)
	window := []uint64{next() % trunc, next() % trunc, next() % trunc}
	for tries := 0; tries < 1000; tries++ {
		if s, err := NewSamples(window); err == nil {
			return s, nil
		}
		window[0], window[1], window[2] = window[1], window[2], next()%trunc
	}
	return Samples{}, errors.New("no uniform-width sample window found")
}
