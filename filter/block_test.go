package filter

import (
	"errors"
	"testing"
)

func TestSmooth(t *testing.T) {
	src := []float64{2, 2, 2, 2}
	dst := make([]float64, len(src))

	if err := Smooth(dst, src, 1, 0.8); err != nil {
		t.Fatalf("Smooth() error: %v", err)
	}

	// same recurrence as the generic filter, step by step
	prev := 1.0
	for i, x := range src {
		prev = x*0.8 + prev*0.2
		if diff := dst[i] - prev; diff < -1e-12 || diff > 1e-12 {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], prev)
		}
	}

	if diff := dst[0] - 1.8; diff < -0.01 || diff > 0.01 {
		t.Fatalf("dst[0] = %v, want ~1.8", dst[0])
	}
}

func TestSmoothLengthMismatch(t *testing.T) {
	err := Smooth(make([]float64, 2), make([]float64, 3), 0, 0.5)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestSmoothEmpty(t *testing.T) {
	if err := Smooth(nil, nil, 0, 0.5); err != nil {
		t.Fatalf("empty input should be a no-op, got %v", err)
	}
}

func TestSmoothInPlace(t *testing.T) {
	buf := []float64{4, 4, 4}
	want := make([]float64, len(buf))
	if err := Smooth(want, []float64{4, 4, 4}, 0, 0.5); err != nil {
		t.Fatalf("Smooth() error: %v", err)
	}

	SmoothInPlace(buf, 0, 0.5)

	for i := range buf {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}
