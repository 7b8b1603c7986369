package wnaf

import "testing"

func TestWindowForMultiplications(t *testing.T) {
	if w := WindowForMultiplications(0); w != MinWindow {
		t.Errorf("n=0: got %d", w)
	}
	if w := WindowForMultiplications(1); w > 4 {
		t.Errorf("n=1: window %d cannot amortize its table", w)
	}

	// widths grow with the workload and never leave the valid range
	last := uint(0)
	for _, n := range []uint64{1, 8, 64, 1 << 12, 1 << 24, 1 << 40, 1<<64 - 1} {
		w := WindowForMultiplications(n)
		if w < MinWindow || w > MaxWindow {
			t.Fatalf("n=%d: window %d out of range", n, w)
		}
		if w < last {
			t.Errorf("n=%d: window %d shrank from %d", n, w, last)
		}
		last = w
	}
	if last != MaxWindow {
		t.Errorf("huge workloads should saturate at %d, got %d", MaxWindow, last)
	}

	// exact model check for a small n
	n := uint64(10)
	best, bestCost := uint(0), uint64(1<<63)
	for w := uint(MinWindow); w <= MaxWindow; w++ {
		cost := (256/(uint64(w)+1)+1)*n + 1<<(w-2)
		if cost < bestCost {
			best, bestCost = w, cost
		}
	}
	if w := WindowForMultiplications(n); w != best {
		t.Errorf("n=%d: got %d, expected %d", n, w, best)
	}
}
