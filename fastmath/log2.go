package fastmath

import "math/bits"

// IntegerLog2 returns the position of the highest set bit of val, which is
// floor(log2(val)) for val >= 1.
//
// IntegerLog2(0) is 0. Negative values are shifted as uint32, so their sign
// bit is the highest set bit and the result is 31.
func IntegerLog2(val int32) int32 {
	u := uint32(val)
	if u == 0 {
		return 0
	}
	return int32(bits.Len32(u) - 1)
}
