package wnaf

import (
	"git.gammaspectra.live/P2Pool/group"
)

// Multiply sets v = k·P where digits is the recoding of k and t holds the
// precomputed multiples of P. Fails when the digits were produced with a wider
// window than the table covers.
//
// Every digit position is visited and every table entry scanned per position;
// timing does not depend on k.
func Multiply[E any, O group.Ops[E]](v *E, t *Table[E, O], digits *DigitSequence) (*E, error) {
	if digits.window > t.window {
		return nil, ErrWindowMismatch
	}
	var op O
	op.SetIdentity(v)
	for i := len(digits.digits) - 1; i >= 0; i-- {
		op.Double(v, v)
		t.SelectAndAdd(v, digits.digits[i])
	}
	return v, nil
}

// MultiplyVartime is Multiply skipping zero digits and leading zeros.
//
// Unsafe to use with secret scalars.
func MultiplyVartime[E any, O group.Ops[E]](v *E, t *Table[E, O], digits *DigitSequence) (*E, error) {
	if digits.window > t.window {
		return nil, ErrWindowMismatch
	}
	var op O
	op.SetIdentity(v)
	i := len(digits.digits) - 1
	for i >= 0 && digits.digits[i] == 0 {
		i--
	}
	for ; i >= 0; i-- {
		op.Double(v, v)
		t.SelectAndAddVartime(v, digits.digits[i])
	}
	return v, nil
}

// MultiplyDoubleBase sets v = k1·P1 + k2·P2 in one fused pass, doubling the
// shared accumulator once per digit position and adding contributions from both
// tables, without materializing either product.
func MultiplyDoubleBase[E any, O group.Ops[E]](v *E, t1 *Table[E, O], d1 *DigitSequence, t2 *Table[E, O], d2 *DigitSequence) (*E, error) {
	if d1.window > t1.window || d2.window > t2.window {
		return nil, ErrWindowMismatch
	}
	var op O
	op.SetIdentity(v)
	for i := MaxDigits - 1; i >= 0; i-- {
		op.Double(v, v)
		t1.SelectAndAdd(v, d1.digits[i])
		t2.SelectAndAdd(v, d2.digits[i])
	}
	return v, nil
}
