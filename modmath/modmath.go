// Package modmath provides the small amount of modular arithmetic the
// detectors need.
package modmath

// Inverse returns the multiplicative inverse of a modulo m, in [0, m), and
// whether it exists (gcd(a, m) == 1). a may be negative or >= m; it is
// normalized first. m must be positive.
func Inverse(a, m int64) (int64, bool) {
	if m <= 0 {
		return 0, false
	}
	a = ((a % m) + m) % m

	// Extended Euclid: maintain x such that a*x == r (mod m).
	r0, r1 := a, m
	x0, x1 := int64(1), int64(0)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		x0, x1 = x1, x0-q*x1
	}
	if r0 != 1 {
		return 0, false
	}
	return ((x0 % m) + m) % m, true
}
