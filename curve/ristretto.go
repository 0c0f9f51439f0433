package curve

import (
	"crypto/rand"

	circl "github.com/cloudflare/circl/group"
)

// RistrettoElement is a second, independent instantiation of the §6 group
// contract, grounded on the teacher's Ristretto255 adapter
// (group/ristretto255.go). It demonstrates the polymorphism §9 calls for
// ("implementers choose concrete instantiations... via a static parameter")
// without threading a generic type parameter through the whole module: the
// NARK/accumulator core is fixed to the secp256k1 Element above, and this
// type is exercised only by curve/ristretto_test.go to show the same group
// laws hold under a different instantiation.
type RistrettoElement struct {
	val circl.Element
}

// RistrettoGenerator returns the Ristretto255 base point.
func RistrettoGenerator() RistrettoElement {
	return RistrettoElement{val: circl.Ristretto255.Generator()}
}

// RistrettoIdentity returns the Ristretto255 identity element.
func RistrettoIdentity() RistrettoElement {
	return RistrettoElement{val: circl.Ristretto255.Identity()}
}

// RistrettoRandom returns a uniformly random Ristretto255 element.
func RistrettoRandom() RistrettoElement {
	return RistrettoElement{val: circl.Ristretto255.RandomElement(rand.Reader)}
}

// Add returns a + b.
func (a RistrettoElement) Add(b RistrettoElement) RistrettoElement {
	return RistrettoElement{val: circl.Ristretto255.NewElement().Add(a.val, b.val)}
}

// Scale returns s*a. s is a circl Ristretto255 scalar rather than this
// module's field.Element, whose modulus belongs to a different curve.
func (a RistrettoElement) Scale(s circl.Scalar) RistrettoElement {
	return RistrettoElement{val: circl.Ristretto255.NewElement().Mul(a.val, s)}
}

// IsEqual reports whether a and b are the same element.
func (a RistrettoElement) IsEqual(b RistrettoElement) bool {
	return a.val.IsEqual(b.val)
}
