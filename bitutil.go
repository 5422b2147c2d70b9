package deepline

import "math/bits"

// leastSignificantBit returns the index of the lowest set bit in bb. The
// caller guarantees bb != 0.
func leastSignificantBit(bb uint64) int {
	return bits.TrailingZeros64(bb)
}

// popCount returns the number of set bits in bb.
func popCount(bb uint64) int {
	return bits.OnesCount64(bb)
}
