package weierstrass

import "errors"

// Failure outcomes reported by the group law and the point codec. All
// invalid input is reported through one of these; no operation silently
// computes a wrong result.
var (
	ErrInvalidPoint    = errors.New("weierstrass: point is not on the curve")
	ErrInvalidScalar   = errors.New("weierstrass: scalar out of range")
	ErrNoSquareRoot    = errors.New("weierstrass: x is not the abscissa of any curve point")
	ErrNotCompressible = errors.New("weierstrass: the identity point has no affine encoding")
)
