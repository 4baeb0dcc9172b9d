package weierstrass

import (
	"errors"
	"math/big"
	"testing"

	"github.com/smallyu/go-ecdh/internal/crypto/field"
)

func TestPointEqual(t *testing.T) {
	g := NewPoint(bpGx, bpGy)

	if !Identity().Equal(Identity()) {
		t.Error("identity != identity")
	}
	if Identity().Equal(g) || g.Equal(Identity()) {
		t.Error("identity compared equal to an affine point")
	}
	if !g.Equal(NewPoint(bpGx, bpGy)) {
		t.Error("equal coordinates compared unequal")
	}
	if g.Equal(NewPoint(bpGx, big.NewInt(1))) {
		t.Error("different y compared equal")
	}
}

func TestPointAccessors(t *testing.T) {
	if Identity().X() != nil || Identity().Y() != nil {
		t.Error("identity must have nil coordinates")
	}
	if !Identity().IsIdentity() {
		t.Error("Identity() not identified as identity")
	}

	g := NewPoint(bpGx, bpGy)
	if g.IsIdentity() {
		t.Error("affine point identified as identity")
	}
	if g.X().Cmp(bpGx) != 0 || g.Y().Cmp(bpGy) != 0 {
		t.Error("accessors do not return the constructed coordinates")
	}

	// NewPoint copies; mutating the inputs must not reach the point.
	x := big.NewInt(5)
	p := NewPoint(x, big.NewInt(7))
	x.SetInt64(9)
	if p.X().Int64() != 5 {
		t.Error("NewPoint aliased its x argument")
	}
}

func TestNegate(t *testing.T) {
	c := brainpool(t)
	g := c.Generator()

	if !c.Negate(Identity()).IsIdentity() {
		t.Error("negate(identity) != identity")
	}

	ng := c.Negate(g)
	wantY := new(big.Int).Sub(bpP, bpGy)
	if ng.X().Cmp(bpGx) != 0 || ng.Y().Cmp(wantY) != 0 {
		t.Errorf("negate(G) = (%s, %s), want (gx, p-gy)", ng.X().Text(16), ng.Y().Text(16))
	}
	if !c.Negate(ng).Equal(g) {
		t.Error("double negation did not restore the point")
	}

	// y = 0 is its own negation.
	tc := toyCurve()
	selfInverse := NewPoint(big.NewInt(0), big.NewInt(0))
	if !tc.Negate(selfInverse).Equal(selfInverse) {
		t.Error("negate of an order-2 point changed it")
	}
}

func TestAddIdentityIsNeutral(t *testing.T) {
	c := brainpool(t)
	g := c.Generator()

	sum, err := c.Add(g, Identity())
	if err != nil {
		t.Fatalf("Add(G, O) failed: %v", err)
	}
	if !sum.Equal(g) {
		t.Error("G + O != G")
	}

	sum, err = c.Add(Identity(), g)
	if err != nil {
		t.Fatalf("Add(O, G) failed: %v", err)
	}
	if !sum.Equal(g) {
		t.Error("O + G != G")
	}

	sum, err = c.Add(Identity(), Identity())
	if err != nil {
		t.Fatalf("Add(O, O) failed: %v", err)
	}
	if !sum.IsIdentity() {
		t.Error("O + O != O")
	}
}

func TestAddInversePair(t *testing.T) {
	c := brainpool(t)
	g := c.Generator()

	sum, err := c.Add(g, c.Negate(g))
	if err != nil {
		t.Fatalf("Add(G, -G) failed: %v", err)
	}
	if !sum.IsIdentity() {
		t.Error("G + (-G) != O")
	}

	five, err := c.ScalarBaseMult(big.NewInt(5))
	if err != nil {
		t.Fatalf("5G failed: %v", err)
	}
	sum, err = c.Add(c.Negate(five), five)
	if err != nil {
		t.Fatalf("Add(-5G, 5G) failed: %v", err)
	}
	if !sum.IsIdentity() {
		t.Error("(-5G) + 5G != O")
	}
}

func TestAddEqualsDouble(t *testing.T) {
	c := brainpool(t)
	g := c.Generator()

	viaAdd, err := c.Add(g, g)
	if err != nil {
		t.Fatalf("Add(G, G) failed: %v", err)
	}
	viaDouble, err := c.Double(g)
	if err != nil {
		t.Fatalf("Double(G) failed: %v", err)
	}
	if !viaAdd.Equal(viaDouble) {
		t.Error("G + G != 2G")
	}

	want := NewPoint(
		mustHex("58a8f0345c34d194f685e6789c91132f12418eee0b61b2f4"),
		mustHex("4aa51e964f0a796633ccb9215aee149656bb7ba99c90a365"),
	)
	if !viaDouble.Equal(want) {
		t.Errorf("2G = (%s, %s), want reference value",
			viaDouble.X().Text(16), viaDouble.Y().Text(16))
	}
}

func TestDoubleIdentityAndOrderTwo(t *testing.T) {
	c := brainpool(t)

	d, err := c.Double(Identity())
	if err != nil {
		t.Fatalf("Double(O) failed: %v", err)
	}
	if !d.IsIdentity() {
		t.Error("2O != O")
	}

	// On the toy curve (0,0) has order 2: doubling it gives the identity,
	// taken on the y = 0 branch before the tangent slope divides by 2y.
	tc := toyCurve()
	d, err = tc.Double(NewPoint(big.NewInt(0), big.NewInt(0)))
	if err != nil {
		t.Fatalf("Double((0,0)) failed: %v", err)
	}
	if !d.IsIdentity() {
		t.Error("doubling an order-2 point did not give the identity")
	}

	// (1,5) has order 4; its double is the order-2 point.
	d, err = tc.Double(NewPoint(big.NewInt(1), big.NewInt(5)))
	if err != nil {
		t.Fatalf("Double((1,5)) failed: %v", err)
	}
	if !d.Equal(NewPoint(big.NewInt(0), big.NewInt(0))) {
		t.Errorf("2*(1,5) = (%s, %s), want (0, 0)", d.X(), d.Y())
	}
}

// TestAddDivideByZeroGuard feeds the chord formula two off-curve points
// sharing an abscissa without being mirror roots. No on-curve pair can do
// this, but the division guard must hold regardless of caller discipline.
func TestAddDivideByZeroGuard(t *testing.T) {
	c := brainpool(t)

	p1 := NewPoint(big.NewInt(5), big.NewInt(1))
	p2 := NewPoint(big.NewInt(5), big.NewInt(2))
	_, err := c.Add(p1, p2)
	if !errors.Is(err, field.ErrDivideByZero) {
		t.Errorf("Add with shared abscissa error = %v, want ErrDivideByZero", err)
	}
}

// toyPoints enumerates every element of the toy curve group, identity
// included.
func toyPoints(tc *Curve) []*Point {
	pts := []*Point{Identity()}
	p := tc.p.Int64()
	for x := int64(0); x < p; x++ {
		for y := int64(0); y < p; y++ {
			pt := NewPoint(big.NewInt(x), big.NewInt(y))
			if tc.IsOnCurve(pt) {
				pts = append(pts, pt)
			}
		}
	}
	return pts
}

// TestToyCurveGroupAxioms checks the group axioms exhaustively on the
// 24-element toy group: closure, commutativity, identity, inverses, and
// full associativity over all triples.
func TestToyCurveGroupAxioms(t *testing.T) {
	tc := toyCurve()
	pts := toyPoints(tc)
	if len(pts) != 24 {
		t.Fatalf("toy curve has %d elements, want 24", len(pts))
	}

	for _, p := range pts {
		sum, err := tc.Add(p, tc.Negate(p))
		if err != nil {
			t.Fatalf("P + (-P) failed for (%s, %s): %v", p.X(), p.Y(), err)
		}
		if !sum.IsIdentity() {
			t.Errorf("P + (-P) != O for (%s, %s)", p.X(), p.Y())
		}
	}

	for _, p := range pts {
		for _, q := range pts {
			pq, err := tc.Add(p, q)
			if err != nil {
				t.Fatalf("Add failed: %v", err)
			}
			if !tc.IsOnCurve(pq) {
				t.Fatalf("P + Q left the curve for (%s,%s)+(%s,%s)", p.X(), p.Y(), q.X(), q.Y())
			}
			qp, err := tc.Add(q, p)
			if err != nil {
				t.Fatalf("Add failed: %v", err)
			}
			if !pq.Equal(qp) {
				t.Fatalf("addition not commutative for (%s,%s)+(%s,%s)", p.X(), p.Y(), q.X(), q.Y())
			}
		}
	}

	for _, p := range pts {
		for _, q := range pts {
			pq, _ := tc.Add(p, q)
			for _, r := range pts {
				qr, _ := tc.Add(q, r)
				left, err := tc.Add(pq, r)
				if err != nil {
					t.Fatalf("(P+Q)+R failed: %v", err)
				}
				right, err := tc.Add(p, qr)
				if err != nil {
					t.Fatalf("P+(Q+R) failed: %v", err)
				}
				if !left.Equal(right) {
					t.Fatalf("associativity broken at (%s,%s), (%s,%s), (%s,%s)",
						p.X(), p.Y(), q.X(), q.Y(), r.X(), r.Y())
				}
			}
		}
	}
}
