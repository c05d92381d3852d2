//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-mathc/fastmath"
)

var funcs []js.Func

func main() {
	api := js.Global().Get("Object").New()

	api.Set("invSqrt", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.Null()
		}
		return fastmath.InvSqrt(float32(args[0].Float()))
	}))

	api.Set("integerLog2", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.Null()
		}
		return fastmath.IntegerLog2(int32(args[0].Int()))
	}))

	api.Set("invSqrtBlock", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}
		input := args[0]
		src := make([]float32, input.Length())
		for i := range src {
			src[i] = float32(input.Index(i).Float())
		}
		dst := make([]float32, len(src))
		fastmath.InvSqrtBlock(dst, src)
		arr := js.Global().Get("Float32Array").New(len(dst))
		for i := range dst {
			arr.SetIndex(i, dst[i])
		}
		return arr
	}))

	js.Global().Set("AlgoMathC", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
