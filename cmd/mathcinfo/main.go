// Command mathcinfo prints accuracy tables for the fastmath primitives.
//
// Usage:
//
//	mathcinfo [flags] [value ...]
//
// Without arguments it prints a logarithmic sweep of InvSqrt inputs.
//
// Examples:
//
//	mathcinfo 4 100 0.25
//	mathcinfo -sweep 16 -min 1e-6 -max 1e6
//	mathcinfo -log2 1 7 8 1024
//	mathcinfo -cpu
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-mathc/fastmath"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func main() {
	sweep := flag.Int("sweep", 13, "number of sweep points when no values are given")
	lo := flag.Float64("min", 1e-3, "lowest sweep input (> 0)")
	hi := flag.Float64("max", 1e3, "highest sweep input (> min)")
	log2 := flag.Bool("log2", false, "treat values as integers and print IntegerLog2")
	showCPU := flag.Bool("cpu", false, "print detected CPU features")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mathcinfo [flags] [value ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints InvSqrt accuracy or IntegerLog2 tables.\n")
		fmt.Fprintf(os.Stderr, "Without values, prints a logarithmic InvSqrt sweep.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mathcinfo 4 100 0.25\n")
		fmt.Fprintf(os.Stderr, "  mathcinfo -sweep 16 -min 1e-6 -max 1e6\n")
		fmt.Fprintf(os.Stderr, "  mathcinfo -log2 1 7 8 1024\n")
		fmt.Fprintf(os.Stderr, "  mathcinfo -cpu\n")
	}
	flag.Parse()

	if *showCPU {
		if err := printCPU(os.Stdout, cpu.DetectFeatures()); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *log2 {
		vals, err := parseInts(flag.Args())
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if err := printLog2(os.Stdout, vals); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var vals []float32
	if flag.NArg() > 0 {
		var err error
		if vals, err = parseFloats(flag.Args()); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		var err error
		if vals, err = sweepInputs(*lo, *hi, *sweep); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := printInvSqrt(os.Stdout, vals); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFloats(args []string) ([]float32, error) {
	out := make([]float32, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid float %q: %w", a, err)
		}
		out = append(out, float32(v))
	}
	return out, nil
}

func parseInts(args []string) ([]int32, error) {
	if len(args) == 0 {
		return nil, errors.New("-log2 needs at least one integer")
	}
	out := make([]int32, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseInt(a, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid int32 %q: %w", a, err)
		}
		out = append(out, int32(v))
	}
	return out, nil
}

func sweepInputs(lo, hi float64, n int) ([]float32, error) {
	if lo <= 0 || hi <= lo {
		return nil, fmt.Errorf("sweep range must satisfy 0 < min < max: [%g, %g]", lo, hi)
	}
	if n < 2 {
		return nil, fmt.Errorf("sweep must have >= 2 points: %d", n)
	}
	out := make([]float32, n)
	ratio := math.Log(hi / lo)
	for i := range out {
		out[i] = float32(lo * math.Exp(ratio*float64(i)/float64(n-1)))
	}
	return out, nil
}

func printInvSqrt(w io.Writer, vals []float32) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Input\tInvSqrt\tExact\tRel Err [%%]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t-------\t-----\t-----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, v := range vals {
		got := fastmath.InvSqrt(v)
		exact := 1 / math.Sqrt(float64(v))
		rel := math.Abs(float64(got)-exact) / exact * 100
		if _, err := fmt.Fprintf(tw, "%g\t%.9g\t%.9g\t%.4f\n", v, got, exact, rel); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}

func printLog2(w io.Writer, vals []int32) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Input\tIntegerLog2\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t-----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, v := range vals {
		if _, err := fmt.Fprintf(tw, "%d\t%d\n", v, fastmath.IntegerLog2(v)); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}

func printCPU(w io.Writer, f cpu.Features) error {
	rows := []struct {
		label string
		value any
	}{
		{"arch", f.Architecture},
		{"sse2", f.HasSSE2},
		{"avx", f.HasAVX},
		{"avx2", f.HasAVX2},
		{"avx512", f.HasAVX512},
		{"neon", f.HasNEON},
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-8s%v\n", r.label+":", r.value); err != nil {
			return fmt.Errorf("failed to write cpu feature %s: %w", r.label, err)
		}
	}
	return nil
}
