package ecdh

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"

	"github.com/smallyu/go-ecdh/internal/crypto/weierstrass"
)

// ScalarSource draws a uniformly distributed integer in [1, max). An
// Exchange calls it for every private and ephemeral scalar; substituting a
// deterministic source pins the whole handshake for tests.
type ScalarSource func(max *big.Int) (*big.Int, error)

// KDF derives the final symmetric key from the canonical encoding of the
// shared point. Initiator and responder must use the same KDF or their
// keys will not match.
type KDF func(secret []byte) ([]byte, error)

// DerivedKeySize is the output size of DefaultKDF in bytes.
const DerivedKeySize = 32

// DefaultScalarSource draws from crypto/rand. rand.Int is uniform on
// [0, max-1); shifting by one gives the uniform [1, max) a private scalar
// needs.
func DefaultScalarSource(max *big.Int) (*big.Int, error) {
	k, err := rand.Int(rand.Reader, new(big.Int).Sub(max, one))
	if err != nil {
		return nil, err
	}
	return k.Add(k, one), nil
}

// DefaultKDF is HKDF-SHA256 with neither salt nor context info, producing
// a DerivedKeySize-byte key.
func DefaultKDF(secret []byte) ([]byte, error) {
	r := hkdf.New(sha256.New, secret, nil, nil)
	key := make([]byte, DerivedKeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Exchange runs Diffie-Hellman handshakes on one curve. It is safe for
// concurrent use as long as its collaborators are; the defaults are.
type Exchange struct {
	curve  *Curve
	source ScalarSource
	kdf    KDF
}

// NewExchange binds a curve to its collaborators. A nil source or kdf
// selects the corresponding default.
func NewExchange(curve *Curve, source ScalarSource, kdf KDF) *Exchange {
	if source == nil {
		source = DefaultScalarSource
	}
	if kdf == nil {
		kdf = DefaultKDF
	}
	return &Exchange{curve: curve, source: source, kdf: kdf}
}

// Curve returns the curve the exchange runs on.
func (e *Exchange) Curve() *Curve { return e.curve }

// GenerateKey draws a private scalar d from the scalar source and returns
// it with its public point d·G.
func (e *Exchange) GenerateKey() (*PrivateKey, error) {
	d, err := e.source(e.curve.params.N())
	if err != nil {
		return nil, fmt.Errorf("ecdh: drawing a private scalar: %w", err)
	}
	return e.curve.NewPrivateKey(d)
}

// Handshake is the initiator's output: the ephemeral public key to send
// to the responder and the derived symmetric key to keep.
type Handshake struct {
	Ephemeral *PublicKey
	Key       []byte
}

// Initiate runs the initiator side of a key agreement against the
// responder's long-term public key: draw an ephemeral scalar r, compute
// the shared point r·Q, and derive the key from its canonical encoding.
// The returned ephemeral point r·G is what the responder needs to derive
// the same key.
func (e *Exchange) Initiate(peer *PublicKey) (*Handshake, error) {
	if err := e.checkPublic(peer); err != nil {
		return nil, err
	}

	eph, err := e.GenerateKey()
	if err != nil {
		return nil, err
	}
	key, err := e.deriveKey(eph.D, peer.point())
	if err != nil {
		return nil, err
	}
	return &Handshake{Ephemeral: &eph.PublicKey, Key: key}, nil
}

// Respond runs the responder side: compute d·R from the long-term private
// scalar and the initiator's ephemeral point, and derive the key from its
// canonical encoding. d·(r·G) = r·(d·G), so the result matches the
// initiator's key.
func (e *Exchange) Respond(priv *PrivateKey, ephemeral *PublicKey) ([]byte, error) {
	if priv == nil || priv.Curve != e.curve {
		return nil, fmt.Errorf("ecdh: private key is not from this exchange's curve: %w", ErrInvalidScalar)
	}
	if priv.D == nil || priv.D.Sign() < 1 || priv.D.Cmp(e.curve.params.N()) >= 0 {
		return nil, fmt.Errorf("ecdh: private scalar outside [1, n): %w", ErrInvalidScalar)
	}
	if err := e.checkPublic(ephemeral); err != nil {
		return nil, err
	}
	return e.deriveKey(priv.D, ephemeral.point())
}

// checkPublic re-validates a public key at the protocol boundary. Keys
// built by this package are valid by construction, but the struct fields
// are exported and a hand-assembled value must not reach the group law.
func (e *Exchange) checkPublic(pub *PublicKey) error {
	if pub == nil || pub.Curve != e.curve {
		return fmt.Errorf("ecdh: key is not from this exchange's curve: %w", ErrInvalidPoint)
	}
	if pub.X == nil || pub.Y == nil || !e.curve.params.IsOnCurve(pub.point()) {
		return fmt.Errorf("ecdh: key is not a curve point: %w", ErrInvalidPoint)
	}
	return nil
}

// deriveKey computes scalar·point and applies the KDF to the canonical
// x ‖ y encoding of the result. Both sides of a handshake end up here
// with the same shared point, which is what makes the keys agree.
func (e *Exchange) deriveKey(scalar *big.Int, point *weierstrass.Point) ([]byte, error) {
	shared, err := e.curve.params.ScalarMult(point, scalar)
	if err != nil {
		return nil, err
	}
	if shared.IsIdentity() {
		// Unreachable for validated keys on a prime-order curve. A
		// degenerate input must fail rather than derive a key.
		return nil, fmt.Errorf("ecdh: shared point is the identity: %w", ErrInvalidPoint)
	}
	secret, err := e.curve.params.Encode(shared)
	if err != nil {
		return nil, err
	}
	key, err := e.kdf(secret)
	if err != nil {
		return nil, fmt.Errorf("ecdh: deriving the key: %w", err)
	}
	return key, nil
}
