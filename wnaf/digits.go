// Package wnaf implements windowed non-adjacent-form scalar multiplication over
// any group satisfying the capability contract of the parent package.
//
// The engine recodes a scalar into signed odd digits, precomputes a table of
// odd multiples of the base, then multiplies by repeated doubling and masked
// table lookups. Digit extraction, table lookup and accumulation take no
// secret-dependent branch and no secret-dependent memory access.
package wnaf

import (
	"errors"
	"math/bits"

	"git.gammaspectra.live/P2Pool/group"
)

const (
	// MinWindow Smallest supported window width; the table degenerates to the
	// single entry 1·P and the recoding to plain NAF.
	MinWindow = 2
	// MaxWindow Largest supported window width; digits are stored as int8 so
	// their magnitude must stay below 2^7.
	MaxWindow = 8
	// MaxDigits Recoding a ScalarBits-wide scalar can carry into one extra
	// position.
	MaxDigits = group.ScalarBits + 1
)

var (
	ErrWindow         = errors.New("window width out of range")
	ErrWindowMismatch = errors.New("digit sequence exceeds table window")
)

// DigitSequence A scalar recoded into windowed non-adjacent form.
//
// Digit i is the signed coefficient of 2^i; nonzero digits are odd, bounded by
// ±(2^(w-1)-1), and separated by at least w-1 zero positions. The sequence has
// fixed length MaxDigits so consumers can iterate it without leaking where the
// nonzero digits sit.
type DigitSequence struct {
	window uint
	digits [MaxDigits]int8
}

func (d *DigitSequence) Window() uint {
	return d.window
}

func (d *DigitSequence) Len() int {
	return len(d.digits)
}

func (d *DigitSequence) Digit(i int) int8 {
	return d.digits[i]
}

// Encode recodes k with window width w, reusing the receiver's digit storage.
//
// The loop always runs MaxDigits iterations and extracts each digit with mask
// arithmetic, so neither timing nor memory access depends on k.
func (d *DigitSequence) Encode(k *group.Scalar, w uint) error {
	if w < MinWindow || w > MaxWindow {
		return ErrWindow
	}
	d.window = w

	// Working copy of the scalar, one limb wider: compensating a negative
	// digit can carry past bit 255.
	var v [5]uint64
	v[0], v[1], v[2], v[3] = k[0], k[1], k[2], k[3]

	width := uint64(1) << w
	half := width >> 1
	mask := width - 1

	for i := range d.digits {
		odd := v[0] & 1
		win := v[0] & mask
		// Windows of 2^(w-1) and above wrap to negative digits.
		neg := (half - 1 - win) >> 63
		digit := (int64(win) - int64(neg<<w)) & -int64(odd)
		d.digits[i] = int8(digit)

		// v -= digit, sign-extended across all limbs.
		lo := uint64(digit)
		hi := uint64(digit >> 63)
		var borrow uint64
		v[0], borrow = bits.Sub64(v[0], lo, 0)
		v[1], borrow = bits.Sub64(v[1], hi, borrow)
		v[2], borrow = bits.Sub64(v[2], hi, borrow)
		v[3], borrow = bits.Sub64(v[3], hi, borrow)
		v[4], _ = bits.Sub64(v[4], hi, borrow)

		v[0] = v[0]>>1 | v[1]<<63
		v[1] = v[1]>>1 | v[2]<<63
		v[2] = v[2]>>1 | v[3]<<63
		v[3] = v[3]>>1 | v[4]<<63
		v[4] >>= 1
	}

	return nil
}

// Encode recodes k with window width w into a fresh sequence.
func Encode(k *group.Scalar, w uint) (*DigitSequence, error) {
	d := new(DigitSequence)
	if err := d.Encode(k, w); err != nil {
		return nil, err
	}
	return d, nil
}
