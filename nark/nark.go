// Package nark implements the R1CS NARK prover and verifier (§4.5, §4.6;
// components E and F): the two-round Bünz-Chiesa-Mishra-Spooner-style sigma
// protocol over (A,B,C,z), made non-interactive via the transcript package's
// Fiat-Shamir transform.
//
// Grounded on original_source/src/predicates/r1cs/{prover.rs,verifier.rs,
// mod.rs}, with the column-ordering deviation spec.md §9 mandates: the
// original's prover builds z = witness ∥ public_input ∥ 1 (an extra trailing
// one never read back out by mul_vector against the produced matrices) while
// its verifier builds s∥x = public_input ∥ s. This port fixes both sides to
// the canonical z = x ∥ w order project-wide, matching r1cs.R1CS.IsSat and
// r1cs.ProduceSyntheticR1CS, and drops the trailing-one column since nothing
// in the matrices or in this port's synthetic fixture reserves it.
package nark

import (
	"errors"
	"fmt"

	"github.com/arcadialabs/r1cs-nark-acc/commitment"
	"github.com/arcadialabs/r1cs-nark-acc/curve"
	"github.com/arcadialabs/r1cs-nark-acc/field"
	"github.com/arcadialabs/r1cs-nark-acc/prng"
	"github.com/arcadialabs/r1cs-nark-acc/r1cs"
	"github.com/arcadialabs/r1cs-nark-acc/transcript"
)

// Pi1 is the NARK first message (§3): eight commitments absorbed into the
// transcript in this exact field order.
type Pi1 struct {
	CA, CB, CC                curve.Element
	CAPrime, CBPrime, CCPrime curve.Element
	C1, C2                    curve.Element
}

// points returns the eight commitments of Pi1 in the absorption order
// mandated by §4.5 step 8 / §4.6 step 1.
func (p Pi1) points() []curve.Element {
	return []curve.Element{p.CA, p.CB, p.CC, p.CAPrime, p.CBPrime, p.CCPrime, p.C1, p.C2}
}

// Pi2 is the NARK second message (§3).
type Pi2 struct {
	S                              []field.Element
	SigmaA, SigmaB, SigmaC, SigmaO field.Element
}

// Proof is a complete NARK proof (§3): public input plus both messages.
type Proof struct {
	PublicInput []field.Element
	Pi1         Pi1
	Pi2         Pi2
}

// Zeroize scrubs the secret-bearing fields of a proof's second message. The
// proof itself is not a secret once emitted, but s is derived from the
// witness (s = w + gamma*r) and callers that build proofs inside a larger
// secret-erasure scope may want to scrub it; exposed for symmetry with
// hadamard.Witness.Zeroize and r1cs accumulator witness zeroization.
func (p *Pi2) Zeroize() {
	field.ZeroizeSlice(p.S)
	p.SigmaA.Zeroize()
	p.SigmaB.Zeroize()
	p.SigmaC.Zeroize()
	p.SigmaO.Zeroize()
}

// Prove produces a NARK proof for the given R1CS instance, witness, and
// public input, implementing §4.5 steps 1-10. gens must have at least
// r.NumCons generators (§4.5: "commitment generators must have |G⃗| ≥
// num_cons"); t is the Fiat-Shamir transcript and p the CSPRNG source for
// the masking vector and blinders (§4.8: the prover is a one-shot state
// machine, Init -> AfterAbsorbPi1 -> Done, with no persistent state
// surviving the call).
func Prove(r r1cs.R1CS, gens commitment.Gens, t *transcript.Transcript, p *prng.PRNG, witness, publicInput []field.Element) Proof {
	if len(witness) != r.NumVars {
		panic(fmt.Sprintf("nark: witness length %d does not match num_vars %d", len(witness), r.NumVars))
	}
	if len(publicInput) != r.NumInput {
		panic(fmt.Sprintf("nark: public input length %d does not match num_input %d", len(publicInput), r.NumInput))
	}

	z := field.Concat(publicInput, witness)

	rMask := p.Squeeze(r.NumVars)
	rHat := field.Concat(field.ZeroVector(r.NumInput), rMask)

	zA := r.A.MulVector(r.NumCons, z)
	zB := r.B.MulVector(r.NumCons, z)
	zC := r.C.MulVector(r.NumCons, z)

	rA := r.A.MulVector(r.NumCons, rHat)
	rB := r.B.MulVector(r.NumCons, rHat)
	rC := r.C.MulVector(r.NumCons, rHat)

	blinders := p.Squeeze(8)
	wA, wB, wC := blinders[0], blinders[1], blinders[2]
	w1, w2 := blinders[3], blinders[4]
	wAPrime, wBPrime, wCPrime := blinders[5], blinders[6], blinders[7]

	cA := gens.Commit(zA, wA)
	cB := gens.Commit(zB, wB)
	cC := gens.Commit(zC, wC)
	cAPrime := gens.Commit(rA, wAPrime)
	cBPrime := gens.Commit(rB, wBPrime)
	cCPrime := gens.Commit(rC, wCPrime)

	t1 := field.AddVectors(field.HadamardProduct(zA, rB), field.HadamardProduct(zB, rA))
	t2 := field.HadamardProduct(rA, rB)
	c1 := gens.Commit(t1, w1)
	c2 := gens.Commit(t2, w2)

	pi1 := Pi1{CA: cA, CB: cB, CC: cC, CAPrime: cAPrime, CBPrime: cBPrime, CCPrime: cCPrime, C1: c1, C2: c2}

	t.AppendPoints(pi1.points())
	gamma := t.Squeeze(1)[0]

	s := make([]field.Element, r.NumVars)
	for i := range s {
		s[i] = witness[i].Add(rMask[i].Mul(gamma))
	}

	sigmaA := wA.Add(gamma.Mul(wAPrime))
	sigmaB := wB.Add(gamma.Mul(wBPrime))
	sigmaC := wC.Add(gamma.Mul(wCPrime))
	sigmaO := wC.Add(gamma.Mul(w1)).Add(gamma.Mul(gamma).Mul(w2))

	pi2 := Pi2{S: s, SigmaA: sigmaA, SigmaB: sigmaB, SigmaC: sigmaC, SigmaO: sigmaO}

	return Proof{PublicInput: append([]field.Element(nil), publicInput...), Pi1: pi1, Pi2: pi2}
}

// ErrVerificationFailed is the typed rejection returned by Verify, per §7.
var ErrVerificationFailed = errors.New("nark: verification failed")

// Verify checks a NARK proof against an R1CS instance, implementing §4.6.
// Any of the three first-round equalities or the single second-round
// equality failing is a total rejection (§4.9: "no partial success states").
func Verify(r r1cs.R1CS, gens commitment.Gens, t *transcript.Transcript, proof Proof) error {
	if len(proof.PublicInput) != r.NumInput || len(proof.Pi2.S) != r.NumVars {
		return ErrVerificationFailed
	}

	pi1, pi2 := proof.Pi1, proof.Pi2

	t.AppendPoints(pi1.points())
	gamma := t.Squeeze(1)[0]

	sWithX := field.Concat(proof.PublicInput, pi2.S)

	sA := r.A.MulVector(r.NumCons, sWithX)
	sB := r.B.MulVector(r.NumCons, sWithX)
	sC := r.C.MulVector(r.NumCons, sWithX)

	commSA := gens.Commit(sA, pi2.SigmaA)
	commSB := gens.Commit(sB, pi2.SigmaB)
	commSC := gens.Commit(sC, pi2.SigmaC)

	if !commSA.IsEqual(pi1.CA.Add(pi1.CAPrime.Scale(gamma))) {
		return ErrVerificationFailed
	}
	if !commSB.IsEqual(pi1.CB.Add(pi1.CBPrime.Scale(gamma))) {
		return ErrVerificationFailed
	}
	if !commSC.IsEqual(pi1.CC.Add(pi1.CCPrime.Scale(gamma))) {
		return ErrVerificationFailed
	}

	commSASB := gens.Commit(field.HadamardProduct(sA, sB), pi2.SigmaO)
	rhs := pi1.CC.Add(pi1.C1.Scale(gamma)).Add(pi1.C2.Scale(gamma.Mul(gamma)))
	if !commSASB.IsEqual(rhs) {
		return ErrVerificationFailed
	}

	return nil
}
