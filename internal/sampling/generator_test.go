package sampling

import (
	"math"
	"testing"
)

func TestNormal_ZeroStdIsConstant(t *testing.T) {
	g := NewGenerator(42)
	samples := g.Normal(150000, 0, 100)

	if len(samples) != 100 {
		t.Fatalf("expected 100 samples, got %d", len(samples))
	}
	for i, s := range samples {
		if s != 150000 {
			t.Errorf("sample %d: expected 150000, got %f", i, s)
		}
	}
}

func TestNormal_ZeroStdDoesNotConsumeRNG(t *testing.T) {
	// Two generators with the same seed; one takes a degenerate draw first.
	// The subsequent stochastic draws must still line up.
	g1 := NewGenerator(7)
	g2 := NewGenerator(7)

	g1.Normal(10, 0, 50) // must not advance the sequence

	a := g1.Normal(10, 2, 10)
	b := g2.Normal(10, 2, 10)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sequence diverged at %d: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestNormal_Deterministic(t *testing.T) {
	a := NewGenerator(42).Normal(12, 2, 1000)
	b := NewGenerator(42).Normal(12, 2, 1000)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestNormal_NonPositiveReplacedByMean(t *testing.T) {
	// Huge std forces many non-positive raw draws
	samples := NewGenerator(1).Normal(1, 100, 5000)

	for i, s := range samples {
		if s <= 0 {
			t.Fatalf("sample %d is non-positive: %f", i, s)
		}
	}
}

func TestNormal_Moments(t *testing.T) {
	// With a tight std the truncation almost never fires, so sample moments
	// should track the requested distribution.
	mean, std := 150000.0, 15000.0
	samples := NewGenerator(42).Normal(mean, std, 20000)

	var sum float64
	for _, s := range samples {
		sum += s
	}
	m := sum / float64(len(samples))
	if math.Abs(m-mean) > std/10 {
		t.Errorf("sample mean %f too far from %f", m, mean)
	}

	var sq float64
	for _, s := range samples {
		sq += (s - m) * (s - m)
	}
	sd := math.Sqrt(sq / float64(len(samples)-1))
	if math.Abs(sd-std) > std/10 {
		t.Errorf("sample std %f too far from %f", sd, std)
	}
}
