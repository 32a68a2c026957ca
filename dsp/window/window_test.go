package window

import (
	"math"
	"testing"
)

const eps = 1e-12

func TestGenerateRectangular(t *testing.T) {
	w := Generate(TypeRectangular, 8)
	for i, v := range w {
		if v != 1 {
			t.Errorf("coeff %d: got %v, want 1", i, v)
		}
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if Generate(TypeHann, 0) != nil {
		t.Error("length 0 must return nil")
	}
	if Generate(TypeHann, -3) != nil {
		t.Error("negative length must return nil")
	}
}

func TestGenerateSingleSample(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman, TypeBartlett} {
		w := Generate(typ, 1)
		if len(w) != 1 || w[0] != 1 {
			t.Errorf("%s: single-sample window must be [1], got %v", typ, w)
		}
	}
}

func TestSymmetry(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming, TypeBlackman, TypeBartlett} {
		w := Generate(typ, 33)
		for i := range len(w) / 2 {
			if math.Abs(w[i]-w[len(w)-1-i]) > eps {
				t.Errorf("%s: asymmetric at %d: %v vs %v", typ, i, w[i], w[len(w)-1-i])
			}
		}
	}
}

func TestHannEndpointsAndPeak(t *testing.T) {
	w := Generate(TypeHann, 9)
	if math.Abs(w[0]) > eps || math.Abs(w[8]) > eps {
		t.Errorf("Hann endpoints must be 0, got %v and %v", w[0], w[8])
	}
	if math.Abs(w[4]-1) > eps {
		t.Errorf("Hann midpoint must be 1, got %v", w[4])
	}
}

func TestBlackmanEndpoints(t *testing.T) {
	w := Generate(TypeBlackman, 11)
	// 0.42 - 0.5 + 0.08 = 0 at the edges.
	if math.Abs(w[0]) > eps || math.Abs(w[10]) > eps {
		t.Errorf("Blackman endpoints must be 0, got %v and %v", w[0], w[10])
	}
}

func TestApply(t *testing.T) {
	buf := []float64{1, 1, 1, 1, 1}
	Apply(TypeBartlett, buf)
	want := Generate(TypeBartlett, 5)
	for i := range buf {
		if math.Abs(buf[i]-want[i]) > eps {
			t.Errorf("sample %d: got %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestApplyCoefficientsLengthMismatch(t *testing.T) {
	_, err := ApplyCoefficients([]float64{1, 2}, []float64{1})
	if err == nil {
		t.Fatal("expected error on mismatched lengths")
	}
}

func TestCoherentGain(t *testing.T) {
	g, err := CoherentGain(Generate(TypeRectangular, 16))
	if err != nil {
		t.Fatalf("CoherentGain: %v", err)
	}
	if math.Abs(g-1) > eps {
		t.Errorf("rectangular coherent gain: got %v, want 1", g)
	}

	if _, err := CoherentGain(nil); err == nil {
		t.Error("expected error for empty coefficients")
	}
}
