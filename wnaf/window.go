package wnaf

import (
	"git.gammaspectra.live/P2Pool/group"
	"lukechampine.com/uint128"
)

// WindowForMultiplications picks a window width for n expected multiplications
// against one base, trading the one-time table build against per-multiplication
// additions.
//
// The model charges 2^(w-2) group operations for the table and
// ScalarBits/(w+1)+1 additions per multiplication; doublings are identical for
// every width and cancel out. The total is accumulated in 128 bits so the
// comparison stays exact for any n. Callers with better knowledge of their
// workload should pass an explicit width instead.
func WindowForMultiplications(n uint64) uint {
	if n == 0 {
		return MinWindow
	}
	best := uint(MinWindow)
	bestCost := uint128.Max
	for w := uint(MinWindow); w <= MaxWindow; w++ {
		table := uint64(1) << (w - 2)
		perMult := uint64(group.ScalarBits)/(uint64(w)+1) + 1
		cost := uint128.From64(perMult).Mul64(n).Add64(table)
		if cost.Cmp(bestCost) < 0 {
			best, bestCost = w, cost
		}
	}
	return best
}
