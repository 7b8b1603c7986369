package wnaf

import (
	"git.gammaspectra.live/P2Pool/group"
)

// Table Precomputed odd multiples 1·P, 3·P, ..., (2^(w-1)-1)·P of a base
// element, used to satisfy digit lookups during multiplication.
type Table[E any, O group.Ops[E]] struct {
	window  uint
	entries []E
}

// NewTable builds the table of odd multiples of p for window width w, using one
// doubling and 2^(w-2)-1 additions. Construction time may depend on p (the base
// is public); lookups via SelectAndAdd do not depend on the digit looked up.
func NewTable[E any, O group.Ops[E]](p *E, w uint) (*Table[E, O], error) {
	if w < MinWindow || w > MaxWindow {
		return nil, ErrWindow
	}
	var op O
	t := &Table[E, O]{
		window:  w,
		entries: make([]E, 1<<(w-2)),
	}
	op.Set(&t.entries[0], p)
	if len(t.entries) > 1 {
		// 2·P is the additive step between consecutive odd multiples.
		var step E
		op.Double(&step, p)
		for i := 1; i < len(t.entries); i++ {
			op.Add(&t.entries[i], &t.entries[i-1], &step)
		}
	}
	return t, nil
}

func (t *Table[E, O]) Window() uint {
	return t.window
}

func (t *Table[E, O]) Len() int {
	return len(t.entries)
}

// MemoryBytes reports the heap footprint of the precomputed entries, for
// caller-side allocation budgeting.
func (t *Table[E, O]) MemoryBytes() int {
	var op O
	return len(t.entries) * int(op.ElementSize())
}

// Entry copies entry i, equal to (2i+1)·P, into v.
func (t *Table[E, O]) Entry(v *E, i int) *E {
	var op O
	return op.Set(v, &t.entries[i])
}

// SelectAndAdd sets sum += digit·P and returns sum.
//
// The lookup scans every entry and combines them with data-independent masks,
// so it is safe for secret digits. digit magnitude must stay within the
// window the table was built for.
func (t *Table[E, O]) SelectAndAdd(sum *E, digit int8) *E {
	var op O

	s := int64(digit)
	m := s >> 63
	mag := uint64((s ^ m) - m)
	neg := uint64(m & 1)
	// 1-based entry index; 0 selects the identity for a zero digit.
	sel := (mag + 1) >> 1

	var e E
	op.SetIdentity(&e)
	for i := range t.entries {
		op.ConditionalAssign(&e, &t.entries[i], ctEq64(sel, uint64(i+1)))
	}
	var ne E
	op.Negate(&ne, &e)
	op.ConditionalAssign(&e, &ne, neg)
	return op.Add(sum, sum, &e)
}

// SelectAndAddVartime sets sum += digit·P and returns sum in variable time.
//
// Unsafe to use with secret scalars.
func (t *Table[E, O]) SelectAndAddVartime(sum *E, digit int8) *E {
	var op O
	if digit == 0 {
		return sum
	}
	if digit > 0 {
		return op.Add(sum, sum, &t.entries[int(digit)>>1])
	}
	var ne E
	op.Negate(&ne, &t.entries[(-int(digit))>>1])
	return op.Add(sum, sum, &ne)
}
