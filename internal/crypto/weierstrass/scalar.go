package weierstrass

import (
	"fmt"
	"math/big"
)

// ScalarMult returns k·P, the k-fold group sum of P, for k ≥ 0. The
// multiplication is exact repeated group addition: k = 0 or an identity
// input yields the identity.
//
// The algorithm is double-and-add from the least significant bit of k
// upward: an accumulator starts at the identity and collects the running
// point wherever k has a set bit, while the running point doubles once
// per bit. It finishes in O(bitlen(k)) doublings and at most that many
// additions, and branches on the bits of k (not constant-time).
func (c *Curve) ScalarMult(pt *Point, k *big.Int) (*Point, error) {
	if k.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative multiplier", ErrInvalidScalar)
	}
	if pt.IsIdentity() {
		return Identity(), nil
	}

	acc := Identity()
	run := pt.clone()
	for i, bits := 0, k.BitLen(); i < bits; i++ {
		var err error
		if k.Bit(i) == 1 {
			acc, err = c.Add(acc, run)
			if err != nil {
				return nil, err
			}
		}
		run, err = c.Double(run)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// ScalarBaseMult returns k·G for the curve generator.
func (c *Curve) ScalarBaseMult(k *big.Int) (*Point, error) {
	return c.ScalarMult(c.Generator(), k)
}
