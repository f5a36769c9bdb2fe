package mathx

import (
	"math"
	"testing"
)

func TestModulo(t *testing.T) {
	tests := []struct {
		name string
		v, n int
		want int
	}{
		{"zero", 0, 800, 0},
		{"inside", 795, 800, 795},
		{"exact boundary", 800, 800, 0},
		{"above", 805, 800, 5},
		{"negative", -5, 800, 795},
		{"negative multiple", -1600, 800, 0},
		{"far negative", -2405, 800, 795},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Modulo(tt.v, tt.n); got != tt.want {
				t.Errorf("Modulo(%d, %d) = %d, want %d", tt.v, tt.n, got, tt.want)
			}
		})
	}
}

func TestModuloIntegerWidths(t *testing.T) {
	if got := Modulo[int8](-3, 7); got != 4 {
		t.Errorf("int8: got %d, want 4", got)
	}
	if got := Modulo[int64](-10, 3); got != 2 {
		t.Errorf("int64: got %d, want 2", got)
	}
	if got := Modulo[uint32](10, 3); got != 1 {
		t.Errorf("uint32: got %d, want 1", got)
	}
}

func TestModuloNearTypeLimits(t *testing.T) {
	if got := Modulo[int8](50, 100); got != 50 {
		t.Errorf("int8(50, 100): got %d, want 50", got)
	}
	if got := Modulo[int8](127, 100); got != 27 {
		t.Errorf("int8(127, 100): got %d, want 27", got)
	}
	if got := Modulo[int8](-128, 127); got != 126 {
		t.Errorf("int8(-128, 127): got %d, want 126", got)
	}
	if got := Modulo[uint8](100, 200); got != 100 {
		t.Errorf("uint8(100, 200): got %d, want 100", got)
	}
	if got := Modulo[uint8](255, 200); got != 55 {
		t.Errorf("uint8(255, 200): got %d, want 55", got)
	}
	if got := Modulo[int32](2e9, 2.1e9); got != 2e9 {
		t.Errorf("int32(2e9, 2.1e9): got %d, want 2e9", got)
	}
	if got := Modulo[int32](-2e9, 2.1e9); got != 1e8 {
		t.Errorf("int32(-2e9, 2.1e9): got %d, want 1e8", got)
	}
	if got := Modulo[int64](math.MaxInt64, math.MaxInt64-1); got != 1 {
		t.Errorf("int64 max: got %d, want 1", got)
	}

	for v := int8(-128); ; v++ {
		if got := Modulo(v, int8(100)); got < 0 || got >= 100 {
			t.Fatalf("Modulo[int8](%d, 100) = %d, outside [0, 100)", v, got)
		}
		if v == 127 {
			break
		}
	}
}

func TestModuloFloat(t *testing.T) {
	tests := []struct {
		v, n, want float64
	}{
		{-5, 800, 795},
		{795, 800, 795},
		{805, 800, 5},
		{800, 800, 0},
		{-0.5, 1, 0.5},
		{2.25, 1, 0.25},
	}
	for _, tt := range tests {
		if got := ModuloFloat(tt.v, tt.n); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ModuloFloat(%v, %v) = %v, want %v", tt.v, tt.n, got, tt.want)
		}
	}

	if got := ModuloFloat[float32](-5, 800); got != 795 {
		t.Errorf("float32: got %v, want 795", got)
	}
}

func TestModuloFloatRange(t *testing.T) {
	const n = 800.0
	for v := -5000.0; v <= 5000; v += 7.3 {
		got := ModuloFloat(v, n)
		if got < 0 || got >= n {
			t.Fatalf("ModuloFloat(%v, %v) = %v, outside [0, %v)", v, n, got, n)
		}
	}
	// Values just below zero must not round up to n.
	if got := ModuloFloat(-1e-20, n); got < 0 || got >= n {
		t.Errorf("ModuloFloat(-1e-20) = %v, outside [0, %v)", got, n)
	}
}

func TestModuloCongruence(t *testing.T) {
	const n = 800
	for v := -3000; v <= 3000; v += 13 {
		for k := -3; k <= 3; k++ {
			if a, b := Modulo(v, n), Modulo(v+k*n, n); a != b {
				t.Fatalf("Modulo(%d) = %d but Modulo(%d) = %d", v, a, v+k*n, b)
			}
			fa, fb := ModuloFloat(float64(v), n), ModuloFloat(float64(v+k*n), n)
			if math.Abs(fa-fb) > 1e-9 {
				t.Fatalf("ModuloFloat(%d) = %v but ModuloFloat(%d) = %v", v, fa, v+k*n, fb)
			}
		}
	}
}
