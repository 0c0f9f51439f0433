// Package field implements the scalar field F consumed by the rest of this
// module (§6 of the design spec): a prime-order field supporting add, mul,
// neg, inverse, fixed-exponent power, and canonical 32-byte (de)serialization
// with rejection of non-canonical encodings.
//
// The field is fixed to the scalar field of the secp256k1 group (see the
// curve package) rather than made generic over an arbitrary curve, the same
// way the teacher hardcodes one prime per Group implementation instead of
// threading a type parameter through (group/p256k1.go, group/p384.go).
package field

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Modulus is the prime order of F, equal to the order of the secp256k1
// group.
var Modulus, _ = new(big.Int).SetString(
	"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

// Element is a member of F. The zero value is 0.
type Element struct {
	v *big.Int
}

func (a Element) val() *big.Int {
	if a.v == nil {
		return big.NewInt(0)
	}
	return a.v
}

// Zero returns the additive identity.
func Zero() Element { return Element{v: big.NewInt(0)} }

// One returns the multiplicative identity.
func One() Element { return Element{v: big.NewInt(1)} }

// FromUint64 reduces x modulo Modulus.
func FromUint64(x uint64) Element {
	return Element{v: new(big.Int).SetUint64(x)}
}

// FromBigInt reduces x modulo Modulus.
func FromBigInt(x *big.Int) Element {
	return Element{v: new(big.Int).Mod(x, Modulus)}
}

// BigInt returns the canonical big.Int representative in [0, Modulus).
func (a Element) BigInt() *big.Int {
	return new(big.Int).Mod(a.val(), Modulus)
}

// Add returns a + b.
func (a Element) Add(b Element) Element {
	return Element{v: new(big.Int).Mod(new(big.Int).Add(a.val(), b.val()), Modulus)}
}

// Sub returns a - b.
func (a Element) Sub(b Element) Element {
	return Element{v: new(big.Int).Mod(new(big.Int).Sub(a.val(), b.val()), Modulus)}
}

// Mul returns a * b.
func (a Element) Mul(b Element) Element {
	return Element{v: new(big.Int).Mod(new(big.Int).Mul(a.val(), b.val()), Modulus)}
}

// Neg returns -a.
func (a Element) Neg() Element {
	return Element{v: new(big.Int).Mod(new(big.Int).Neg(a.val()), Modulus)}
}

// Invert returns a^-1. It panics if a is zero: inverting zero is a
// programmer error per the design's failure semantics, not a runtime
// condition that can occur on valid inputs.
func (a Element) Invert() Element {
	if a.IsZero() {
		panic("field: attempt to invert zero")
	}
	return Element{v: new(big.Int).ModInverse(a.val(), Modulus)}
}

// Pow raises a to the exponent encoded as four little-endian 64-bit limbs,
// mirroring the `pow(&[u64; 4])` convention used throughout the original
// source (e.g. mu.pow(&[i as u64, 0, 0, 0])).
func (a Element) Pow(limbs [4]uint64) Element {
	e := new(big.Int)
	for i := 3; i >= 0; i-- {
		e.Lsh(e, 64)
		e.Or(e, new(big.Int).SetUint64(limbs[i]))
	}
	return Element{v: new(big.Int).Exp(a.val(), e, Modulus)}
}

// PowU64 is a convenience wrapper around Pow for a plain non-negative
// exponent, used pervasively for "i-th power of a challenge" folding.
func (a Element) PowU64(i uint64) Element {
	return a.Pow([4]uint64{i, 0, 0, 0})
}

// IsZero reports whether a is the additive identity.
func (a Element) IsZero() bool {
	return a.val().Sign() == 0
}

// Equal reports whether a and b represent the same field element.
func (a Element) Equal(b Element) bool {
	return a.BigInt().Cmp(b.BigInt()) == 0
}

// Bytes32 returns the canonical little-endian 32-byte encoding.
func (a Element) Bytes32() [32]byte {
	var out [32]byte
	b := a.BigInt().Bytes() // big-endian
	for i, j := 0, len(b)-1; j >= 0 && i < 32; i, j = i+1, j-1 {
		out[i] = b[j]
	}
	return out
}

// FromReprVartime decodes a canonical little-endian 32-byte encoding,
// rejecting any representation that is not strictly less than Modulus (the
// rejection-sampling contract demanded by §6: "uniform sampling from 32
// random bytes via from_repr_vartime").
func FromReprVartime(b [32]byte) (Element, error) {
	be := make([]byte, 32)
	for i := 0; i < 32; i++ {
		be[i] = b[31-i]
	}
	v := new(big.Int).SetBytes(be)
	if v.Cmp(Modulus) >= 0 {
		return Element{}, errors.New("field: non-canonical encoding")
	}
	return Element{v: v}, nil
}

// Random draws a uniformly distributed element by repeatedly sampling 32
// random bytes and rejecting non-canonical encodings, exactly the procedure
// §6 mandates for the CSPRNG/blinder path.
func Random(r io.Reader) (Element, error) {
	var buf [32]byte
	for attempt := 0; attempt < 256; attempt++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Element{}, fmt.Errorf("field: reading randomness: %w", err)
		}
		if e, err := FromReprVartime(buf); err == nil {
			return e, nil
		}
	}
	return Element{}, errors.New("field: failed to sample canonical element")
}

// MustRandom is Random sourced from crypto/rand, panicking only on an
// exhausted entropy source (a condition that never occurs in practice).
func MustRandom() Element {
	e, err := Random(rand.Reader)
	if err != nil {
		panic(err)
	}
	return e
}

// Zeroize overwrites the element's backing storage with zero. Call it via
// defer on every secret-holding local (blinders, witness copies, the NARK
// masking vector) so no secret survives on the stack or heap after the
// enclosing scope returns, matching §5's "scoped acquisition" requirement.
func (a *Element) Zeroize() {
	if a.v != nil {
		a.v.SetInt64(0)
	}
}

// ZeroizeSlice zeroizes every element of s in place.
func ZeroizeSlice(s []Element) {
	for i := range s {
		s[i].Zeroize()
	}
}
