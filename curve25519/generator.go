package curve25519

import (
	"git.gammaspectra.live/P2Pool/edwards25519"
	"git.gammaspectra.live/P2Pool/group"
	"git.gammaspectra.live/P2Pool/group/wnaf"
)

// GeneratorWindow Window width used for package generators; their tables are
// amortized over the process lifetime.
const GeneratorWindow = 6

type Generator struct {
	// Point The point used as Generator
	Point *Point
	// Table Precomputed odd multiples of Point for windowed multiplication
	Table *wnaf.Table[Point, Ops]
}

func NewGenerator(point *Point, w uint) (*Generator, error) {
	t, err := wnaf.NewTable[Point, Ops](point, w)
	if err != nil {
		return nil, err
	}
	return &Generator{
		Point: point,
		Table: t,
	}, nil
}

func mustGenerator(point *Point) *Generator {
	g, err := NewGenerator(point, GeneratorWindow)
	if err != nil {
		panic(err)
	}
	return g
}

// ScalarMult sets v = k·Generator and returns v, in constant time.
func (g *Generator) ScalarMult(v *Point, k *group.Scalar) *Point {
	var d wnaf.DigitSequence
	// the window comes from the retained table, neither call can fail
	_ = d.Encode(k, g.Table.Window())
	v, _ = wnaf.Multiply(v, g.Table, &d)
	return v
}

// GeneratorG The Ed25519 basepoint, G = {x, 4/5 mod q}.
var GeneratorG = mustGenerator(edwards25519.NewGeneratorPoint())
