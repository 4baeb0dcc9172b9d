package weierstrass

import (
	"math/big"

	"github.com/smallyu/go-ecdh/internal/crypto/field"
)

// Point is an element of the curve group: either the identity (the point
// at infinity) or an affine coordinate pair. The zero value is the
// identity, so the two cases are distinguished by an explicit tag rather
// than sentinel coordinates. Points are immutable; every operation
// returns a new value.
type Point struct {
	affine bool
	x, y   *big.Int
}

// Identity returns the group's neutral element.
func Identity() *Point { return &Point{} }

// NewPoint returns the affine point (x, y). The coordinates are copied.
// No curve equation is checked here; use Curve.IsOnCurve to validate
// points from untrusted sources before feeding them to the group law.
func NewPoint(x, y *big.Int) *Point {
	return &Point{
		affine: true,
		x:      new(big.Int).Set(x),
		y:      new(big.Int).Set(y),
	}
}

// IsIdentity reports whether p is the neutral element.
func (p *Point) IsIdentity() bool { return !p.affine }

// X returns a copy of the x coordinate, or nil for the identity.
func (p *Point) X() *big.Int {
	if !p.affine {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate, or nil for the identity.
func (p *Point) Y() *big.Int {
	if !p.affine {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal reports structural equality: the identity equals only the
// identity, and affine points are equal when both coordinates match.
func (p *Point) Equal(q *Point) bool {
	if !p.affine || !q.affine {
		return p.affine == q.affine
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// clone returns an independent copy of p.
func (p *Point) clone() *Point {
	if !p.affine {
		return &Point{}
	}
	return NewPoint(p.x, p.y)
}

// Negate returns -P: the identity for the identity, (x, p-y mod p)
// otherwise. A point with y = 0 is its own negation.
func (c *Curve) Negate(pt *Point) *Point {
	if pt.IsIdentity() {
		return Identity()
	}
	ny := new(big.Int).Neg(pt.y)
	ny.Mod(ny, c.p)
	return &Point{affine: true, x: new(big.Int).Set(pt.x), y: ny}
}

// Double returns 2P by the tangent rule. A point with y = 0 is of order 2
// and doubles to the identity; that case must be taken before the slope
// divides by 2y.
func (c *Curve) Double(pt *Point) (*Point, error) {
	if pt.IsIdentity() {
		return Identity(), nil
	}
	if pt.y.Sign() == 0 {
		return Identity(), nil
	}

	// s = (3x² + a) / (2y)
	num := new(big.Int).Mul(pt.x, pt.x)
	num.Mul(num, three)
	num.Add(num, c.a)
	den := new(big.Int).Lsh(pt.y, 1)
	inv, err := field.Inverse(den, c.p)
	if err != nil {
		return nil, err
	}
	s := num.Mul(num, inv)
	s.Mod(s, c.p)

	return c.chordResult(s, pt.x, pt.x, pt.y), nil
}

// Add returns P+Q by the chord rule, with the degenerate cases resolved
// first: equal points are doubled, the identity is neutral, and an
// inverse pair sums to the identity. The inverse-pair case must be
// decided before the chord slope divides by xP - xQ.
func (c *Curve) Add(p1, p2 *Point) (*Point, error) {
	if p1.Equal(p2) {
		return c.Double(p1)
	}
	if p1.IsIdentity() {
		return p2.clone(), nil
	}
	if p2.IsIdentity() {
		return p1.clone(), nil
	}
	if p2.Equal(c.Negate(p1)) {
		return Identity(), nil
	}

	// s = (y1 - y2) / (x1 - x2)
	num := new(big.Int).Sub(p1.y, p2.y)
	den := new(big.Int).Sub(p1.x, p2.x)
	inv, err := field.Inverse(den, c.p)
	if err != nil {
		return nil, err
	}
	s := num.Mul(num, inv)
	s.Mod(s, c.p)

	return c.chordResult(s, p1.x, p2.x, p1.y), nil
}

// chordResult evaluates the shared tail of the chord and tangent rules:
// x' = s² - x1 - x2 and y' = s(x1 - x') - y1, both mod p.
func (c *Curve) chordResult(s, x1, x2, y1 *big.Int) *Point {
	xr := new(big.Int).Mul(s, s)
	xr.Sub(xr, x1)
	xr.Sub(xr, x2)
	xr.Mod(xr, c.p)

	yr := new(big.Int).Sub(x1, xr)
	yr.Mul(yr, s)
	yr.Sub(yr, y1)
	yr.Mod(yr, c.p)

	return &Point{affine: true, x: xr, y: yr}
}
