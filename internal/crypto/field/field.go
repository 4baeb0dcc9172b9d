// Package field implements the two modular operations the curve layer
// needs over a fixed odd prime p: multiplicative inversion and square
// roots. Values are arbitrary-precision integers; results are always
// reduced to [0, p).
package field

import (
	"errors"
	"math/big"
)

var (
	one  = big.NewInt(1)
	two  = big.NewInt(2)
	four = big.NewInt(4)
)

// ErrDivideByZero is returned when inverting a value congruent to zero.
var ErrDivideByZero = errors.New("field: inverse of zero")

// Inverse returns y with x*y ≡ 1 (mod p), computed as x^(p-2) mod p.
// p must be prime; x must not be congruent to 0 mod p.
func Inverse(x, p *big.Int) (*big.Int, error) {
	xm := new(big.Int).Mod(x, p)
	if xm.Sign() == 0 {
		return nil, ErrDivideByZero
	}

	// y = x^(p-2) mod p (Fermat)
	exp := new(big.Int).Sub(p, two)
	return new(big.Int).Exp(xm, exp, p), nil
}

// Sqrt returns v^((p+1)/4) mod p, which is a square root of v when v is a
// quadratic residue and p ≡ 3 (mod 4). The precondition on p is a property
// of the configured curve and is not checked here. When v is a non-residue
// the result does NOT square to v; callers that accept untrusted input must
// verify the result themselves.
func Sqrt(v, p *big.Int) *big.Int {
	// exp = (p+1)/4
	exp := new(big.Int).Add(p, one)
	exp.Div(exp, four)

	vm := new(big.Int).Mod(v, p)
	return new(big.Int).Exp(vm, exp, p)
}
