package modinv

// GCD returns the greatest common divisor (GCD) of a and b.
// The GCD is the largest integer that divides both a and b.
// GCD(a, 0) is a, so GCD(0, 0) is 0.
func GCD(a, b uint64) uint64 {
	if b == 0 {
		return a
	}
	return GCD(b, a%b)
}

// IsCoprime reports whether a and b are relatively prime, i.e. GCD(a, b) == 1.
func IsCoprime(a, b uint64) bool {
	return GCD(a, b) == 1
}

// ExtGCD returns the GCD of m and n along with the Bézout coefficients.
// That is, it returns a, b, d such that:
//
//	a*m + b*n == d == GCD(m, n)
//
// m and n must not exceed MaxModulus or the coefficients may overflow.
func ExtGCD(m, n uint64) (a, b int64, d uint64) {
	if n == 0 {
		if m == 0 {
			return 0, 0, 0
		}
		return 1, 0, m
	}
	// per Donald Knuth, TAOCP Vol 1 (3e), pp 13-14, Algorithm E
	var a0, b0 int64
	a0, a = 1, 0
	b0, b = 0, 1
	c := m
	d = n
	for {
		q, r := c/d, c%d
		if r == 0 {
			return a, b, d
		}
		c = d
		d = r
		t := a0
		a0 = a
		a = t - int64(q)*a
		t = b0
		b0 = b
		b = t - int64(q)*b
	}
}
