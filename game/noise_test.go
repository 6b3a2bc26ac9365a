package game

import (
	"math"
	"testing"
)

func TestNoiseDeterministicForSeed(t *testing.T) {
	a := NewNoiseField(42)
	b := NewNoiseField(42)

	for i := 0; i < 50; i++ {
		x := float64(i) * 0.37
		y := float64(i) * 1.91
		if a.Sample(x, y) != b.Sample(x, y) {
			t.Fatalf("same seed diverged at (%f, %f)", x, y)
		}
	}
}

func TestNoiseSeedsDiffer(t *testing.T) {
	a := NewNoiseField(1)
	b := NewNoiseField(2)

	same := true
	for i := 0; i < 20; i++ {
		x := float64(i)*0.73 + 0.1
		if a.Sample(x, x) != b.Sample(x, x) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical fields")
	}
}

func TestNoiseRange(t *testing.T) {
	n := NewNoiseField(7)
	for i := 0; i < 2000; i++ {
		x := float64(i) * 0.173
		y := float64(i) * 0.311
		v := n.Sample(x, y)
		if math.Abs(v) > 1.5 {
			t.Fatalf("sample at (%f, %f) = %f, outside expected range", x, y, v)
		}
	}
}

func TestNoiseZeroOnLattice(t *testing.T) {
	n := NewNoiseField(3)
	if v := n.Sample(3, 7); v != 0 {
		t.Fatalf("lattice sample = %f, want 0", v)
	}
}

func TestNoiseSmooth(t *testing.T) {
	n := NewNoiseField(11)
	const step = 0.001
	for i := 0; i < 500; i++ {
		x := float64(i) * 0.219
		y := float64(i) * 0.157
		delta := math.Abs(n.Sample(x+step, y) - n.Sample(x, y))
		if delta > 0.05 {
			t.Fatalf("discontinuity at (%f, %f): delta %f over step %f", x, y, delta, step)
		}
	}
}
