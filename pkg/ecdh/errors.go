package ecdh

import (
	"github.com/smallyu/go-ecdh/internal/crypto/field"
	"github.com/smallyu/go-ecdh/internal/crypto/weierstrass"
)

// Errors surfaced by the key agreement API. They are the sentinels of the
// underlying group packages, re-exported so callers can match them with
// errors.Is without importing internal packages.
var (
	// ErrInvalidPoint marks a point that is not an element of the curve:
	// coordinates off the curve equation, out of field range, or a wire
	// encoding that does not decode to a curve point.
	ErrInvalidPoint = weierstrass.ErrInvalidPoint

	// ErrInvalidScalar marks a scalar outside its required range.
	ErrInvalidScalar = weierstrass.ErrInvalidScalar

	// ErrNoSquareRoot is reported when decompressing an x coordinate whose
	// curve equation value has no square root mod p, which means no curve
	// point has that abscissa.
	ErrNoSquareRoot = weierstrass.ErrNoSquareRoot

	// ErrNotCompressible is reported when the identity point, which has no
	// affine coordinates, reaches an encoder.
	ErrNotCompressible = weierstrass.ErrNotCompressible

	// ErrDivideByZero is reported when a field inversion receives zero. The
	// group law guards every division, so seeing this error means an
	// operation was fed points that bypass those guards.
	ErrDivideByZero = field.ErrDivideByZero
)
