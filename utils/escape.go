package utils

import (
	"hash"

	_ "unsafe"
)

// These functions allow defeat of the escape analysis to prevent heap allocations.
// It is the caller responsibility to ensure this is safe

func _sum(hasher hash.Hash, buf []byte) []byte {
	return hasher.Sum(buf)
}

//go:noescape
//go:linkname SumNoEscape git.gammaspectra.live/P2Pool/group/utils._sum
func SumNoEscape(hasher hash.Hash, buf []byte) []byte
