package imatrix

// GCD returns the non-negative greatest common divisor of a and b,
// matching std::gcd's contract (GCD(0, 0) == 0), used throughout
// Fourier-Motzkin elimination to keep constraint coefficients in
// reduced form (spec.md §4.G "setBounds").
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
