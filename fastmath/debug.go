//go:build mathcdebug

package fastmath

import "math"

func checkResult(y float32) {
	if math.IsNaN(float64(y)) {
		panic("fastmath: InvSqrt produced NaN")
	}
}
