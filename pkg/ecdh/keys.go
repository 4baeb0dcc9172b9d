package ecdh

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecdh/internal/crypto/weierstrass"
)

// PublicKey is an affine point of a curve. A value built by this package
// is always a validated curve point and never the identity.
type PublicKey struct {
	Curve *Curve
	X, Y  *big.Int
}

// PrivateKey is a scalar in [1, n) together with its public point d·G.
type PrivateKey struct {
	PublicKey
	D *big.Int
}

// NewPublicKey validates that (x, y) satisfies the curve equation and
// returns it as a key. Points from the wire or from a peer must enter
// through here or ParsePublicKey; nothing downstream re-validates them.
func (c *Curve) NewPublicKey(x, y *big.Int) (*PublicKey, error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("ecdh: missing coordinate: %w", ErrInvalidPoint)
	}
	if !c.params.IsOnCurve(weierstrass.NewPoint(x, y)) {
		return nil, fmt.Errorf("ecdh: (x, y) does not satisfy the %s equation: %w", c.name, ErrInvalidPoint)
	}
	return &PublicKey{Curve: c, X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}, nil
}

// NewPrivateKey validates d ∈ [1, n) and derives the public point.
func (c *Curve) NewPrivateKey(d *big.Int) (*PrivateKey, error) {
	if d == nil || d.Sign() < 1 || d.Cmp(c.params.N()) >= 0 {
		return nil, fmt.Errorf("ecdh: private scalar outside [1, n): %w", ErrInvalidScalar)
	}

	// d·G is never the identity for d in [1, n) with G of order n.
	q, err := c.params.ScalarBaseMult(d)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{
		PublicKey: PublicKey{Curve: c, X: q.X(), Y: q.Y()},
		D:         new(big.Int).Set(d),
	}, nil
}

// ParsePublicKey decodes the compressed wire form produced by Bytes:
// the x coordinate as a fixed-width big-endian field element followed by
// one sign byte selecting the root. Malformed or off-curve encodings are
// rejected with ErrInvalidPoint or ErrNoSquareRoot.
func (c *Curve) ParsePublicKey(data []byte) (*PublicKey, error) {
	pt, err := c.params.ParseCompressed(data)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Curve: c, X: pt.X(), Y: pt.Y()}, nil
}

// Bytes returns the compressed wire encoding of the key.
func (pub *PublicKey) Bytes() []byte {
	out, err := pub.Curve.params.MarshalCompressed(pub.point())
	if err != nil {
		// A PublicKey is never the identity, the only point that does
		// not compress.
		panic("ecdh: unencodable public key: " + err.Error())
	}
	return out
}

// Equal reports whether both keys are the same point of the same curve.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	if pub == nil || other == nil {
		return pub == other
	}
	return pub.Curve == other.Curve &&
		pub.X.Cmp(other.X) == 0 &&
		pub.Y.Cmp(other.Y) == 0
}

// Equal reports whether both keys hold the same scalar on the same curve.
func (priv *PrivateKey) Equal(other *PrivateKey) bool {
	if priv == nil || other == nil {
		return priv == other
	}
	return priv.Curve == other.Curve && priv.D.Cmp(other.D) == 0
}

func (pub *PublicKey) point() *weierstrass.Point {
	return weierstrass.NewPoint(pub.X, pub.Y)
}
