// Command mathc builds the fastmath primitives as a C shared library for
// hosts that load native code at runtime (ctypes, ffi, dlopen).
//
// Build:
//
//	go build -buildmode=c-shared -o mathc.so ./cmd/mathc
//
// Exported symbols:
//
//	float InvSqrt(float n);
//	int IntegerLog2(int val);
package main

import "C"

import "github.com/cwbudde/algo-mathc/fastmath"

//export InvSqrt
func InvSqrt(n C.float) C.float {
	return C.float(fastmath.InvSqrt(float32(n)))
}

//export IntegerLog2
func IntegerLog2(val C.int) C.int {
	return C.int(fastmath.IntegerLog2(int32(val)))
}

func main() {}
