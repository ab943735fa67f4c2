package glimmer

// Next returns a pseudo-random value in [0, modulus) derived only from seed.
// It keeps no state: the same seed always yields the same value, which lets a
// level be redrawn from (level, coordinates, offset) without storing the grid.
// modulus must be at least 1.
func Next(seed uint, modulus int) int {
	r := seed ^ ((seed >> 7) ^ (seed << 3))
	return int(r % uint(modulus))
}

// WrappedAdd returns (a + b) mod limit for a, b in [0, limit).
// Backward steps are expressed as limit-1.
func WrappedAdd(a, b, limit int) int {
	return ((a+b)%limit + limit) % limit
}

// Add1 steps value forward by one, wrapping at limit.
func Add1(value, limit int) int {
	return WrappedAdd(value, 1, limit)
}

// Sub1 steps value backward by one, wrapping at limit.
func Sub1(value, limit int) int {
	return WrappedAdd(value, limit-1, limit)
}
