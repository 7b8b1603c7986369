// Package group provides an abstraction over additive cryptographic groups and
// serves as the foundation for the generic scalar multiplication engine in the
// wnaf subpackage. Concrete curve implementations supply field arithmetic and
// point formulas; this package only defines the capability contract they must
// satisfy.
package group

import "unsafe"

// Ops Implements the operation set required of an additive group over its
// element type E.
//
// Implementations are stateless zero-size types instantiated on demand; results
// are written into caller-owned element values, which are never shared mutably.
//
// All operations must execute in time independent of the element values
// involved, and must not branch or vary memory access patterns on them. Add
// must be complete: either operand may be the identity.
type Ops[E any] interface {
	// SetIdentity sets v to the group identity and returns v.
	SetIdentity(v *E) *E
	// Set sets v to p and returns v.
	Set(v, p *E) *E
	// Add sets v = p + q. v may alias p or q.
	Add(v, p, q *E) *E
	// Double sets v = p + p. v may alias p.
	Double(v, p *E) *E
	// Negate sets v = -p. v may alias p.
	Negate(v, p *E) *E
	// ConditionalAssign sets v to p when choice is 1 and leaves it unchanged
	// when choice is 0, without branching on choice.
	ConditionalAssign(v, p *E, choice uint64) *E
	// Equal returns 1 when p == q and 0 otherwise, in constant time.
	Equal(p, q *E) uint64
	// IsIdentity returns 1 when p is the group identity and 0 otherwise, in
	// constant time.
	IsIdentity(p *E) uint64
	// ElementSize returns the in-memory size of one element in bytes, used for
	// table memory budgeting.
	ElementSize() uintptr
}

// CofactorOps Extends Ops for groups composed of a large prime-order subgroup
// times a small cofactor, where elements outside the subgroup are expressible
// and must be detected or cleared before use.
//
// Groups of prime order satisfy the contract trivially: MultByCofactor is Set,
// IsSmallOrder only holds for the identity, and IsTorsionFree always holds.
type CofactorOps[E any] interface {
	Ops[E]
	// MultByCofactor sets v to the cofactor multiple of p, mapping p into the
	// prime-order subgroup. v may alias p.
	MultByCofactor(v, p *E) *E
	// IsSmallOrder reports whether p lies in the torsion subgroup.
	IsSmallOrder(p *E) bool
	// IsTorsionFree reports whether p lies in the prime-order subgroup.
	IsTorsionFree(p *E) bool
}

// AssertZeroSize Panics when an operations type carries state.
func AssertZeroSize[T any]() {
	var t T
	if unsafe.Sizeof(t) != 0 {
		panic("group: operations type must be zero size")
	}
}
