// Package weierstrass implements the group of a short Weierstrass curve
// y² = x³ + a·x + b over a prime field: the chord-and-tangent group law in
// affine coordinates, double-and-add scalar multiplication, and a
// square-root-based compressed point encoding. All arithmetic is
// arbitrary-precision via math/big.
//
// The arithmetic is not constant-time: scalar multiplication branches on
// the bits of the multiplier and the group law branches on point structure.
// Use it where the timing of group operations is not adversary-observable.
package weierstrass

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	one   = big.NewInt(1)
	three = big.NewInt(3)
	four  = big.NewInt(4)
)

// Rounds of Miller-Rabin for validating p and n.
const primalityRounds = 64

// Curve describes y² = x³ + a·x + b over F_p with a generator G of prime
// order n. Construct with NewCurve; a Curve is immutable afterwards and
// safe for concurrent use from any number of goroutines.
type Curve struct {
	p, a, b *big.Int
	gx, gy  *big.Int
	n       *big.Int

	halfP   *big.Int // floor(p/2), the midpoint classifying the two roots
	byteLen int      // width of one field element in bytes
}

// NewCurve validates the parameter set once and returns an immutable Curve.
// Validation covers: p an odd prime greater than 3 with p ≡ 3 (mod 4) (the
// precondition of the decompression square root), coefficients in [0, p)
// with 4a³ + 27b² ≠ 0, G on the curve, and n prime with n·G = identity,
// which makes n the exact order of G. None of this is re-checked by later
// operations.
func NewCurve(p, a, b, gx, gy, n *big.Int) (*Curve, error) {
	for _, v := range []*big.Int{p, a, b, gx, gy, n} {
		if v == nil {
			return nil, errors.New("weierstrass: curve parameter is nil")
		}
	}

	if p.Cmp(three) <= 0 {
		return nil, errors.New("weierstrass: p must be an odd prime greater than 3")
	}
	if !p.ProbablyPrime(primalityRounds) {
		return nil, errors.New("weierstrass: p is not prime")
	}
	if new(big.Int).Mod(p, four).Cmp(three) != 0 {
		return nil, errors.New("weierstrass: p must be congruent to 3 mod 4 for square-root decompression")
	}

	for _, v := range []*big.Int{a, b, gx, gy} {
		if v.Sign() < 0 || v.Cmp(p) >= 0 {
			return nil, errors.New("weierstrass: curve parameter outside [0, p)")
		}
	}

	// A singular curve (4a³ + 27b² ≡ 0) is not a group under the chord law.
	disc := new(big.Int).Exp(a, three, p)
	disc.Mul(disc, four)
	bb := new(big.Int).Mul(b, b)
	bb.Mul(bb, big.NewInt(27))
	disc.Add(disc, bb)
	disc.Mod(disc, p)
	if disc.Sign() == 0 {
		return nil, errors.New("weierstrass: curve is singular")
	}

	c := &Curve{
		p:       new(big.Int).Set(p),
		a:       new(big.Int).Set(a),
		b:       new(big.Int).Set(b),
		gx:      new(big.Int).Set(gx),
		gy:      new(big.Int).Set(gy),
		n:       new(big.Int).Set(n),
		halfP:   new(big.Int).Rsh(p, 1),
		byteLen: (p.BitLen() + 7) / 8,
	}

	g := c.Generator()
	if !c.IsOnCurve(g) {
		return nil, fmt.Errorf("%w: generator does not satisfy the curve equation", ErrInvalidPoint)
	}

	if n.Cmp(one) <= 0 {
		return nil, errors.New("weierstrass: n must be greater than 1")
	}
	if !n.ProbablyPrime(primalityRounds) {
		return nil, errors.New("weierstrass: n is not prime")
	}
	nG, err := c.ScalarMult(g, n)
	if err != nil {
		return nil, fmt.Errorf("weierstrass: validating the generator order: %w", err)
	}
	if !nG.IsIdentity() {
		return nil, errors.New("weierstrass: n is not the order of the generator")
	}

	return c, nil
}

// P returns a copy of the field modulus.
func (c *Curve) P() *big.Int { return new(big.Int).Set(c.p) }

// A returns a copy of the curve coefficient a.
func (c *Curve) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns a copy of the curve coefficient b.
func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }

// N returns a copy of the generator order.
func (c *Curve) N() *big.Int { return new(big.Int).Set(c.n) }

// Generator returns the base point G.
func (c *Curve) Generator() *Point { return NewPoint(c.gx, c.gy) }

// ByteLen returns the width in bytes of one field element; it sizes every
// fixed-width encoding of the curve.
func (c *Curve) ByteLen() int { return c.byteLen }

// IsOnCurve reports whether pt is an element of the curve: the identity
// always is; an affine point must have both coordinates in [0, p) and
// satisfy y² ≡ x³ + a·x + b (mod p).
func (c *Curve) IsOnCurve(pt *Point) bool {
	if pt.IsIdentity() {
		return true
	}
	if pt.x.Sign() < 0 || pt.x.Cmp(c.p) >= 0 || pt.y.Sign() < 0 || pt.y.Cmp(c.p) >= 0 {
		return false
	}

	lhs := new(big.Int).Mul(pt.y, pt.y)
	lhs.Mod(lhs, c.p)
	return lhs.Cmp(c.rhs(pt.x)) == 0
}

// rhs returns x³ + a·x + b mod p, the curve equation's right-hand side.
func (c *Curve) rhs(x *big.Int) *big.Int {
	r := new(big.Int).Mul(x, x)
	r.Mul(r, x)
	ax := new(big.Int).Mul(c.a, x)
	r.Add(r, ax)
	r.Add(r, c.b)
	return r.Mod(r, c.p)
}
