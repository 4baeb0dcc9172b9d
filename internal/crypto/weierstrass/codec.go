package weierstrass

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecdh/internal/crypto/field"
)

// Compressed is the semantic form of a compressed affine point: the x
// coordinate plus one bit selecting which of the two square roots of
// x³ + a·x + b is the y coordinate. Sign is 1 when y > p/2 and 0
// otherwise. The roots are told apart by magnitude, not parity, and both
// peers use this one convention.
type Compressed struct {
	X    *big.Int
	Sign byte
}

// Compress returns the compressed form of an affine point. The identity
// has no x coordinate and reports ErrNotCompressible.
func (c *Curve) Compress(pt *Point) (*Compressed, error) {
	if pt.IsIdentity() {
		return nil, ErrNotCompressible
	}
	return &Compressed{X: new(big.Int).Set(pt.x), Sign: c.signOf(pt.y)}, nil
}

// Decompress recovers the affine point from its compressed form. The
// radicand x³ + a·x + b must be a quadratic residue mod p: the candidate
// root from field.Sqrt is verified by squaring, because Sqrt itself
// cannot detect a non-residue, and a failed check reports
// ErrNoSquareRoot. Of the two complementary roots {y, p-y}, the one whose
// magnitude class matches c.Sign is returned. The result always satisfies
// IsOnCurve.
func (c *Curve) Decompress(comp *Compressed) (*Point, error) {
	if comp == nil || comp.X == nil {
		return nil, fmt.Errorf("%w: empty compressed point", ErrInvalidPoint)
	}
	if comp.X.Sign() < 0 || comp.X.Cmp(c.p) >= 0 {
		return nil, fmt.Errorf("%w: x outside [0, p)", ErrInvalidPoint)
	}
	if comp.Sign > 1 {
		return nil, fmt.Errorf("%w: sign must be 0 or 1", ErrInvalidPoint)
	}

	radicand := c.rhs(comp.X)
	y := field.Sqrt(radicand, c.p)

	sq := new(big.Int).Mul(y, y)
	sq.Mod(sq, c.p)
	if sq.Cmp(radicand) != 0 {
		return nil, ErrNoSquareRoot
	}

	if c.signOf(y) != comp.Sign {
		y.Sub(c.p, y)
		y.Mod(y, c.p) // y = 0 has a single root; p-0 must reduce back to 0
	}
	return &Point{affine: true, x: new(big.Int).Set(comp.X), y: y}, nil
}

// signOf classifies a y coordinate against the field midpoint: 1 for the
// larger of the two complementary roots, 0 for the smaller.
func (c *Curve) signOf(y *big.Int) byte {
	if y.Cmp(c.halfP) > 0 {
		return 1
	}
	return 0
}

// MarshalCompressed encodes an affine point for the wire: the x
// coordinate as a fixed-width big-endian field element followed by one
// sign byte (0x00 or 0x01).
func (c *Curve) MarshalCompressed(pt *Point) ([]byte, error) {
	comp, err := c.Compress(pt)
	if err != nil {
		return nil, err
	}
	out := make([]byte, c.byteLen+1)
	comp.X.FillBytes(out[:c.byteLen])
	out[c.byteLen] = comp.Sign
	return out, nil
}

// ParseCompressed decodes MarshalCompressed output and decompresses it.
// Any byte string that is not exactly ByteLen()+1 bytes with a 0x00/0x01
// sign byte and an in-range residue abscissa is rejected.
func (c *Curve) ParseCompressed(data []byte) (*Point, error) {
	if len(data) != c.byteLen+1 {
		return nil, fmt.Errorf("%w: compressed point must be %d bytes, got %d",
			ErrInvalidPoint, c.byteLen+1, len(data))
	}
	sign := data[c.byteLen]
	if sign > 1 {
		return nil, fmt.Errorf("%w: sign byte must be 0x00 or 0x01", ErrInvalidPoint)
	}
	x := new(big.Int).SetBytes(data[:c.byteLen])
	return c.Decompress(&Compressed{X: x, Sign: sign})
}

// Encode returns the canonical affine encoding handed to key derivation:
// x then y, each a fixed-width big-endian field element. Initiator and
// responder must derive from identical bytes, so this is the single
// canonical form. The identity has no affine encoding.
func (c *Curve) Encode(pt *Point) ([]byte, error) {
	if pt.IsIdentity() {
		return nil, fmt.Errorf("%w: cannot encode the identity", ErrNotCompressible)
	}
	out := make([]byte, 2*c.byteLen)
	pt.x.FillBytes(out[:c.byteLen])
	pt.y.FillBytes(out[c.byteLen:])
	return out, nil
}
