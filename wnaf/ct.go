package wnaf

// ctEq64 returns 1 when x == y and 0 otherwise, without branching.
func ctEq64(x, y uint64) uint64 {
	z := x ^ y
	return 1 ^ ((z | -z) >> 63)
}
