package numtheory

// GCD returns the greatest common divisor of a and b.
// The result is non-negative except when it equals 2^63, which wraps to math.MinInt64.
// GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	x, y := abs(a), abs(b)
	for y != 0 {
		x, y = y, x%y
	}
	return int64(x) // nolint: gosec
}

func abs(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1 // nolint: gosec
	}
	return uint64(v)
}
