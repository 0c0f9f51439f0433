// Package hadamard implements the Hadamard-product predicate prover (§4.2,
// component D) and the shared Instance/Witness types used throughout the
// accumulation layer.
//
// Grounded on original_source/src/predicates/hadamard/hadamard.rs.
package hadamard

import (
	"github.com/arcadialabs/r1cs-nark-acc/commitment"
	"github.com/arcadialabs/r1cs-nark-acc/curve"
	"github.com/arcadialabs/r1cs-nark-acc/field"
	"github.com/arcadialabs/r1cs-nark-acc/prng"
)

// Instance is the triple of commitments (c1, c2, c3), conceptually
// c1=Com(a,w1), c2=Com(b,w2), c3=Com(a∘b,w3) (§3).
type Instance struct {
	C1, C2, C3 curve.Element
}

// Witness is the opening (a, b, w1, w2, w3) behind an Instance.
type Witness struct {
	A, B       []field.Element
	W1, W2, W3 field.Element
}

// Prove commits to a, b, and a∘b under three independent blinders drawn
// from p, matching the contract of §4.2: "for every honest output,
// Com(a,w1)=c1, Com(b,w2)=c2, Com(a∘b,w3)=c3".
func Prove(gens commitment.Gens, p *prng.PRNG, a, b []field.Element) (Instance, Witness) {
	if len(a) != len(b) {
		panic("hadamard: a and b must have equal length")
	}

	blinders := p.Squeeze(3)
	w1, w2, w3 := blinders[0], blinders[1], blinders[2]

	ab := field.HadamardProduct(a, b)

	inst := Instance{
		C1: gens.Commit(a, w1),
		C2: gens.Commit(b, w2),
		C3: gens.Commit(ab, w3),
	}
	wit := Witness{A: a, B: b, W1: w1, W2: w2, W3: w3}
	return inst, wit
}

// Zeroize scrubs the secret-bearing fields of a witness in place.
func (w *Witness) Zeroize() {
	field.ZeroizeSlice(w.A)
	field.ZeroizeSlice(w.B)
	w.W1.Zeroize()
	w.W2.Zeroize()
	w.W3.Zeroize()
}
