// Package ecdh implements Diffie-Hellman key agreement over a short
// Weierstrass elliptic curve group. It covers the whole handshake: key
// generation, an initiator/responder exchange with a fresh ephemeral key
// per session, compressed point encodings for the wire, and derivation of
// the final symmetric key from the shared point.
//
// Randomness and key derivation are injectable, so tests can pin both and
// protocols can substitute their own KDF. The defaults draw scalars from
// crypto/rand and derive keys with HKDF-SHA256.
package ecdh

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/smallyu/go-ecdh/internal/crypto/weierstrass"
)

var one = big.NewInt(1)

// Curve is a named, validated parameter set bound to the group arithmetic.
// Construct one with NewCurve or use the built-in BrainpoolP192t1. A Curve
// is immutable and safe for concurrent use.
type Curve struct {
	name   string
	params *weierstrass.Curve
}

// NewCurve validates the parameter set once and binds it under the given
// name. Validation requires p prime with p ≡ 3 (mod 4), a non-singular
// equation, the generator on the curve, and n the prime order of the
// generator; a set failing any of these is unusable and rejected here, so
// no later operation re-checks them.
func NewCurve(name string, p, a, b, gx, gy, n *big.Int) (*Curve, error) {
	params, err := weierstrass.NewCurve(p, a, b, gx, gy, n)
	if err != nil {
		return nil, fmt.Errorf("ecdh: parameters for %q rejected: %w", name, err)
	}
	return &Curve{name: name, params: params}, nil
}

// Name returns the name the parameter set was registered under.
func (c *Curve) Name() string { return c.name }

var (
	brainpoolOnce sync.Once
	brainpool     *Curve
)

// BrainpoolP192t1 returns the brainpoolP192t1 curve (RFC 5639), the
// twisted 192-bit Brainpool parameter set. The constants are compiled in,
// so a validation failure means the binary itself is corrupt and panics.
func BrainpoolP192t1() *Curve {
	brainpoolOnce.Do(func() {
		var err error
		brainpool, err = NewCurve("brainpoolP192t1",
			hexInt("c302f41d932a36cda7a3463093d18db78fce476de1a86297"),
			hexInt("c302f41d932a36cda7a3463093d18db78fce476de1a86294"),
			hexInt("13d56ffaec78681e68f9deb43b35bec2fb68542e27897b79"),
			hexInt("3ae9e58c82f63c30282e1fe7bbf43fa72c446af6f4618129"),
			hexInt("097e2c5667c2223a902ab5ca449d0084b7e5b3de7ccc01c9"),
			hexInt("c302f41d932a36cda7a3462f9e9e916b5be8f1029ac4acc1"),
		)
		if err != nil {
			panic(err)
		}
	})
	return brainpool
}

func hexInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("ecdh: malformed curve constant " + s)
	}
	return v
}
