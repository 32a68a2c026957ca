package fir

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/window"
)

func TestForceOdd(t *testing.T) {
	h, err := LowPass(1000, 44100, 10, window.TypeRectangular)
	if err != nil {
		t.Fatalf("LowPass: %v", err)
	}
	if len(h)%2 == 0 {
		t.Errorf("tap count must be odd, got %d", len(h))
	}
	if len(h) != 11 {
		t.Errorf("even tap count must be bumped by one: got %d, want 11", len(h))
	}
}

func TestLowPassNyquistIsAllpass(t *testing.T) {
	const fs = 44100
	h, err := LowPass(fs/2, fs, 31, window.TypeRectangular)
	if err != nil {
		t.Fatalf("LowPass: %v", err)
	}

	// At omega = pi the ideal kernel collapses to a unit impulse.
	center := len(h) / 2
	if math.Abs(h[center]-1) > 1e-9 {
		t.Errorf("center tap: got %v, want 1", h[center])
	}
	for i, c := range h {
		if i == center {
			continue
		}
		if math.Abs(c) > 1e-9 {
			t.Errorf("tap %d: got %v, want 0", i, c)
		}
	}
}

func TestLowPassZeroCutoffSuppressesEverything(t *testing.T) {
	const fs = 44100
	h, err := LowPass(0, fs, 31, window.TypeRectangular)
	if err != nil {
		t.Fatalf("LowPass: %v", err)
	}
	for i, c := range h {
		if math.Abs(c) > 1e-12 {
			t.Errorf("tap %d: got %v, want 0", i, c)
		}
	}
}

func TestLowPassResponseShape(t *testing.T) {
	const fs = 44100
	h, err := LowPass(2000, fs, 101, window.TypeBlackman)
	if err != nil {
		t.Fatalf("LowPass: %v", err)
	}

	pass := cmplx.Abs(Response(h, 100, fs))
	stop := cmplx.Abs(Response(h, 10000, fs))

	if math.Abs(pass-1) > 0.01 {
		t.Errorf("passband gain: got %v, want ~1", pass)
	}
	if stop > 0.001 {
		t.Errorf("stopband gain: got %v, want <0.001", stop)
	}
}

func TestHighPassResponseShape(t *testing.T) {
	const fs = 44100
	h, err := HighPass(2000, fs, 101, window.TypeBlackman)
	if err != nil {
		t.Fatalf("HighPass: %v", err)
	}

	if dc := cmplx.Abs(Response(h, 0, fs)); dc > 0.001 {
		t.Errorf("DC gain: got %v, want ~0", dc)
	}
	if hi := cmplx.Abs(Response(h, 15000, fs)); math.Abs(hi-1) > 0.01 {
		t.Errorf("highband gain: got %v, want ~1", hi)
	}
}

func TestBandPassResponseShape(t *testing.T) {
	const fs = 44100
	h, err := BandPass(1000, 4000, fs, 201, window.TypeHann)
	if err != nil {
		t.Fatalf("BandPass: %v", err)
	}

	if mid := cmplx.Abs(Response(h, 2500, fs)); math.Abs(mid-1) > 0.02 {
		t.Errorf("band center gain: got %v, want ~1", mid)
	}
	if dc := cmplx.Abs(Response(h, 0, fs)); dc > 0.01 {
		t.Errorf("DC gain: got %v, want ~0", dc)
	}
	if hi := cmplx.Abs(Response(h, 15000, fs)); hi > 0.01 {
		t.Errorf("upper stopband gain: got %v, want ~0", hi)
	}
}

func TestBandStopResponseShape(t *testing.T) {
	const fs = 44100
	h, err := BandStop(1000, 4000, fs, 201, window.TypeHann)
	if err != nil {
		t.Fatalf("BandStop: %v", err)
	}

	if mid := cmplx.Abs(Response(h, 2500, fs)); mid > 0.02 {
		t.Errorf("stopband center gain: got %v, want ~0", mid)
	}
	if dc := cmplx.Abs(Response(h, 0, fs)); math.Abs(dc-1) > 0.02 {
		t.Errorf("DC gain: got %v, want ~1", dc)
	}
}

func TestDesignErrors(t *testing.T) {
	if _, err := LowPass(1000, 0, 11, window.TypeRectangular); err == nil {
		t.Error("expected error for zero sample rate")
	}
	if _, err := LowPass(30000, 44100, 11, window.TypeRectangular); err == nil {
		t.Error("expected error for cutoff above Nyquist")
	}
	if _, err := BandPass(4000, 1000, 44100, 11, window.TypeRectangular); err == nil {
		t.Error("expected error for reversed band edges")
	}
}

func TestSinc(t *testing.T) {
	if Sinc(0) != 1 {
		t.Errorf("Sinc(0): got %v, want 1", Sinc(0))
	}
	if math.Abs(Sinc(math.Pi)) > 1e-12 {
		t.Errorf("Sinc(pi): got %v, want 0", Sinc(math.Pi))
	}
}
