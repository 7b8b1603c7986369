// Package curve25519 binds the generic group contract to Edwards25519 points,
// serving as the reference curve collaborator for the multiplication engine.
package curve25519

import (
	"unsafe"

	"git.gammaspectra.live/P2Pool/edwards25519"
	"git.gammaspectra.live/P2Pool/group"
)

type Point = edwards25519.Point
type Scalar = edwards25519.Scalar

var identity = edwards25519.NewIdentityPoint()

// Ops Implements the group capability contract over Edwards25519 points.
//
// All operations are constant time; safe to use with secret scalars.
type Ops struct{}

func (e Ops) SetIdentity(v *Point) *Point {
	return v.Set(identity)
}

func (e Ops) Set(v, p *Point) *Point {
	return v.Set(p)
}

func (e Ops) Add(v, p, q *Point) *Point {
	return v.Add(p, q)
}

func (e Ops) Double(v, p *Point) *Point {
	return v.Double(p)
}

func (e Ops) Negate(v, p *Point) *Point {
	return v.Negate(p)
}

func (e Ops) ConditionalAssign(v, p *Point, choice uint64) *Point {
	return v.Select(p, v, int(choice))
}

func (e Ops) Equal(p, q *Point) uint64 {
	return uint64(p.Equal(q))
}

func (e Ops) IsIdentity(p *Point) uint64 {
	return uint64(p.Equal(identity))
}

func (e Ops) ElementSize() uintptr {
	return unsafe.Sizeof(Point{})
}

// MultByCofactor sets v = 8·p, clearing any torsion component of p.
func (e Ops) MultByCofactor(v, p *Point) *Point {
	return v.MultByCofactor(p)
}

func (e Ops) IsSmallOrder(p *Point) bool {
	return p.IsSmallOrder()
}

func (e Ops) IsTorsionFree(p *Point) bool {
	return p.IsTorsionFree()
}

var _ group.Ops[Point] = Ops{}
var _ group.CofactorOps[Point] = Ops{}

//nolint:gochecknoinits
func init() {
	group.AssertZeroSize[Ops]()
}
