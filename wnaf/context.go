package wnaf

import (
	"errors"

	"git.gammaspectra.live/P2Pool/group"
)

var ErrNoBase = errors.New("context has no base set")

// Context Owns a reusable digit scratch buffer and, optionally, a retained
// multiples table, so repeated multiplications against the same base only pay
// the encode and accumulate cost.
//
// A Context is not safe for concurrent use; give each goroutine its own.
// Elements and scalars are value types and may be shared freely.
type Context[E any, O group.Ops[E]] struct {
	digits  DigitSequence
	table   *Table[E, O]
	base    E
	window  uint
	hasBase bool
	noTable bool
}

// NewContext returns a context that precomputes a table of width w when a base
// is set.
func NewContext[E any, O group.Ops[E]](w uint) (*Context[E, O], error) {
	if w < MinWindow || w > MaxWindow {
		return nil, ErrWindow
	}
	return &Context[E, O]{window: w}, nil
}

// NewContextNoTable returns a context that multiplies with the plain
// constant-time double-and-add ladder and never allocates a table, for
// memory-constrained callers. The choice is fixed at construction.
func NewContextNoTable[E any, O group.Ops[E]]() *Context[E, O] {
	return &Context[E, O]{window: MinWindow, noTable: true}
}

func (c *Context[E, O]) Window() uint {
	return c.window
}

// SetBase prepares the context for repeated multiplications against p,
// replacing any previously retained table.
func (c *Context[E, O]) SetBase(p *E) error {
	var op O
	op.Set(&c.base, p)
	c.hasBase = true
	if c.noTable {
		return nil
	}
	t, err := NewTable[E, O](p, c.window)
	if err != nil {
		return err
	}
	c.table = t
	return nil
}

// ScalarMult sets v = k·base and returns v.
func (c *Context[E, O]) ScalarMult(v *E, k *group.Scalar) (*E, error) {
	if !c.hasBase {
		return nil, ErrNoBase
	}
	if c.noTable {
		return ladderMult[E, O](v, k, &c.base), nil
	}
	if err := c.digits.Encode(k, c.window); err != nil {
		return nil, err
	}
	return Multiply(v, c.table, &c.digits)
}

// MemoryBytes reports the heap footprint of the retained table, zero when no
// table is held.
func (c *Context[E, O]) MemoryBytes() int {
	if c.table == nil {
		return 0
	}
	return c.table.MemoryBytes()
}

// ladderMult Constant-time binary double-and-add, the tableless fallback.
// Iterates the full bit width and folds each addition in with a masked assign.
func ladderMult[E any, O group.Ops[E]](v *E, k *group.Scalar, p *E) *E {
	var op O
	op.SetIdentity(v)
	var sum E
	for i := group.ScalarBits - 1; i >= 0; i-- {
		op.Double(v, v)
		op.Add(&sum, v, p)
		op.ConditionalAssign(v, &sum, k.Bit(uint(i)))
	}
	return v
}
