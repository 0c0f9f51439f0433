// Package curve implements the prime-order group G consumed by this module
// (§6): additive group, distinguished generator, scalar multiplication,
// identity, and multi-scalar multiplication, with free affine/projective
// conversion.
//
// The concrete instantiation is secp256k1, built on the same
// github.com/ing-bank/zkrp point-arithmetic package the teacher uses for its
// Bulletproofs and ElGamal groups (group/p256k1.go, algebra/p256.go) — this
// package only generalizes that adapter into the msm-capable contract the
// NARK/accumulator core needs, and adds a second Group instantiation
// (Ristretto255, via cloudflare/circl) to demonstrate the polymorphism §9
// calls for without introducing a generic type parameter.
package curve

import (
	"math/big"

	"github.com/ing-bank/zkrp/crypto/p256"

	"github.com/arcadialabs/r1cs-nark-acc/field"
)

// Element is a point of G. The zero value is not a valid element; use
// Identity, Generator, or a Group's constructors.
type Element struct {
	p *p256.P256
}

func wrap(p *p256.P256) Element { return Element{p: p} }

// Identity returns the identity element of G.
func Identity() Element {
	return wrap(new(p256.P256).SetInfinity())
}

// Generator returns the distinguished generator g of G.
func Generator() Element {
	return wrap(new(p256.P256).ScalarBaseMult(big.NewInt(1)))
}

// Add returns a + b.
func (a Element) Add(b Element) Element {
	return wrap(new(p256.P256).Add(a.p, b.p))
}

// Negate returns -a.
func (a Element) Negate() Element {
	return wrap(new(p256.P256).ScalarMult(a.p, big.NewInt(-1)))
}

// Sub returns a - b.
func (a Element) Sub(b Element) Element {
	return a.Add(b.Negate())
}

// Scale returns s*a.
func (a Element) Scale(s field.Element) Element {
	return wrap(new(p256.P256).ScalarMult(a.p, s.BigInt()))
}

// BaseScale returns s*g, where g is the group generator.
func BaseScale(s field.Element) Element {
	return wrap(new(p256.P256).ScalarBaseMult(s.BigInt()))
}

// IsEqual reports whether a and b represent the same point.
func (a Element) IsEqual(b Element) bool {
	aID, bID := a.IsIdentity(), b.IsIdentity()
	if aID || bID {
		return aID == bID
	}
	return a.p.X.Cmp(b.p.X) == 0 && a.p.Y.Cmp(b.p.Y) == 0
}

// IsIdentity reports whether a is the group's identity element.
func (a Element) IsIdentity() bool {
	if a.p == nil || a.p.X == nil || a.p.Y == nil {
		return true
	}
	return a.p.X.Sign() == 0 && a.p.Y.Sign() == 0
}

// Affine is a no-op accessor: the underlying representation is already
// affine. Kept as an explicit conversion point so callers do not need to
// know that, matching §6's "affine and projective representations both
// supported with free conversion" contract.
func (a Element) Affine() Element { return a }

// Projective is likewise a no-op: see Affine.
func (a Element) Projective() Element { return a }

// Bytes returns the uncompressed 64-byte affine coordinate encoding
// (32-byte X ∥ 32-byte Y, big-endian, zero-padded). The identity element
// encodes as 64 zero bytes.
func (a Element) Bytes() [64]byte {
	var out [64]byte
	if a.IsIdentity() {
		return out
	}
	xb := a.p.X.Bytes()
	yb := a.p.Y.Bytes()
	copy(out[32-len(xb):32], xb)
	copy(out[64-len(yb):64], yb)
	return out
}

// SetBytes recovers an element from the encoding produced by Bytes.
func SetBytes(b [64]byte) Element {
	x := new(big.Int).SetBytes(b[:32])
	y := new(big.Int).SetBytes(b[32:])
	p := new(p256.P256).SetInfinity()
	if x.Sign() != 0 || y.Sign() != 0 {
		p.X = x
		p.Y = y
	}
	return wrap(p)
}

// String returns a human-readable representation, used only for debugging.
func (a Element) String() string {
	return a.p.String()
}

// MSM computes the multi-scalar multiplication Σ scalars[i]*bases[i]. It
// panics if the lengths differ.
func MSM(scalars []field.Element, bases []Element) Element {
	if len(scalars) != len(bases) {
		panic("curve: msm length mismatch")
	}
	acc := Identity()
	for i := range scalars {
		if scalars[i].IsZero() {
			continue
		}
		acc = acc.Add(bases[i].Scale(scalars[i]))
	}
	return acc
}

// SumScale computes Σ coeffs[i]*points[i] for an already-aligned pair of
// slices; it is MSM with its arguments in (points, coeffs) order and panics
// on a length mismatch. The accumulator folds in this module do not call it:
// they add Scale results term by term.
func SumScale(points []Element, coeffs []field.Element) Element {
	return MSM(coeffs, points)
}
