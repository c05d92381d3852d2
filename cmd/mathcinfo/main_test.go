package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestParseFloats(t *testing.T) {
	got, err := parseFloats([]string{"4", "0.25", "1e3"})
	if err != nil {
		t.Fatalf("parseFloats error: %v", err)
	}
	want := []float32{4, 0.25, 1000}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := parseFloats([]string{"abc"}); err == nil {
		t.Fatal("expected error for invalid float")
	}
}

func TestParseInts(t *testing.T) {
	got, err := parseInts([]string{"1", "-8", "2147483647"})
	if err != nil {
		t.Fatalf("parseInts error: %v", err)
	}
	if got[0] != 1 || got[1] != -8 || got[2] != 2147483647 {
		t.Fatalf("unexpected values: %v", got)
	}

	if _, err := parseInts([]string{"2147483648"}); err == nil {
		t.Fatal("expected error for out-of-range int32")
	}
	if _, err := parseInts(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestSweepInputs(t *testing.T) {
	vals, err := sweepInputs(1, 100, 3)
	if err != nil {
		t.Fatalf("sweepInputs error: %v", err)
	}
	if len(vals) != 3 || vals[0] != 1 || vals[2] < 99.999 || vals[2] > 100.001 {
		t.Fatalf("unexpected sweep: %v", vals)
	}

	for _, tc := range []struct {
		lo, hi float64
		n      int
	}{
		{0, 1, 4},
		{2, 1, 4},
		{1, 2, 1},
	} {
		if _, err := sweepInputs(tc.lo, tc.hi, tc.n); err == nil {
			t.Fatalf("expected error for %+v", tc)
		}
	}
}

func TestPrintInvSqrt(t *testing.T) {
	var buf bytes.Buffer
	if err := printInvSqrt(&buf, []float32{4, 100}); err != nil {
		t.Fatalf("printInvSqrt error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[2], "4 ") || !strings.Contains(lines[2], "0.5") {
		t.Fatalf("unexpected row: %q", lines[2])
	}
}

func TestPrintLog2(t *testing.T) {
	var buf bytes.Buffer
	if err := printLog2(&buf, []int32{1024}); err != nil {
		t.Fatalf("printLog2 error: %v", err)
	}

	fields := strings.Fields(strings.Split(strings.TrimSpace(buf.String()), "\n")[2])
	if len(fields) != 2 || fields[0] != "1024" || fields[1] != "10" {
		t.Fatalf("unexpected row: %v", fields)
	}
}

func TestPrintCPU(t *testing.T) {
	var buf bytes.Buffer
	if err := printCPU(&buf, cpu.Features{Architecture: "amd64", HasSSE2: true}); err != nil {
		t.Fatalf("printCPU error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "arch:   amd64") || !strings.Contains(out, "sse2:   true") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestPrintCPUWriteError(t *testing.T) {
	if err := printCPU(failingWriter{}, cpu.Features{Architecture: "arm64"}); err == nil {
		t.Fatal("expected error from failing writer")
	}
}
