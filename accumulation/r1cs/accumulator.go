// Package r1csacc implements the R1CS accumulator (§4.7; component I): it
// reduces verification of n R1CS NARK proofs sharing one (A,B,C) to
// verification of a single Hadamard-product predicate plus a handful of
// linear combinations, by first turning each NARK first-message into a
// Hadamard instance (the very group elements the NARK verifier equates
// against commitments to s_A, s_B, s_A∘s_B) and delegating the fold to
// accumulation/hadamard.
//
// Grounded on original_source/src/accumulation/r1cs/{acc_prover.rs,
// acc_verifier.rs,utils.rs,mod.rs}, with two corrections the design spec
// mandates over the original (§4.7, §9):
//   - the per-proof Hadamard witness vectors a_i, b_i are A·(x_i∥s_i) and
//     B·(x_i∥s_i), matrix-vector products of length num_cons. The original's
//     acc_prover.rs passes num_vars to mul_vector instead of num_cons, a
//     shape bug this port does not carry over.
//   - the C_C fold uses C_Cᵢ + γᵢ·C_1ᵢ + γᵢ²·C_2ᵢ (the third coordinate of
//     the per-proof Hadamard instance), not C_Cᵢ + γᵢ·C_C'ᵢ as the original's
//     acc_prover.rs does symmetrically with C_A/C_B; §4.7 step 6 calls this
//     out explicitly so the fold lines up with the accumulated Hadamard
//     instance at the same β mixing. R1CSAccVerifier.verify is "TBD" in the
//     original; this package fills it in per §4.7's mirror-of-the-prover
//     description, the only behavior spec.md sanctions for that gap.
package r1csacc

import (
	"errors"
	"fmt"

	hadamardacc "github.com/arcadialabs/r1cs-nark-acc/accumulation/hadamard"
	"github.com/arcadialabs/r1cs-nark-acc/commitment"
	"github.com/arcadialabs/r1cs-nark-acc/curve"
	"github.com/arcadialabs/r1cs-nark-acc/field"
	"github.com/arcadialabs/r1cs-nark-acc/hadamard"
	"github.com/arcadialabs/r1cs-nark-acc/nark"
	"github.com/arcadialabs/r1cs-nark-acc/r1cs"
	"github.com/arcadialabs/r1cs-nark-acc/transcript"
)

// Instance is the R1CS accumulator instance (§3): the verifier-visible half.
type Instance struct {
	CX, CA, CB, CC curve.Element
	AccHPInstance  hadamard.Instance
}

// Witness is the R1CS accumulator witness (§3): the prover-held half.
type Witness struct {
	X, S                   []field.Element
	SigmaA, SigmaB, SigmaC field.Element
	AccHPWitness           hadamard.Witness
}

// Accumulator bundles an Instance and its opening Witness.
type Accumulator struct {
	Instance Instance
	Witness  Witness
}

// Zeroize scrubs the secret-bearing fields of an accumulator witness.
func (w *Witness) Zeroize() {
	field.ZeroizeSlice(w.X)
	field.ZeroizeSlice(w.S)
	w.SigmaA.Zeroize()
	w.SigmaB.Zeroize()
	w.SigmaC.Zeroize()
	w.AccHPWitness.Zeroize()
}

// powers returns [1, x, x^2, ..., x^(n-1)].
func powers(x field.Element, n int) []field.Element {
	out := make([]field.Element, n)
	out[0] = field.One()
	for i := 1; i < n; i++ {
		out[i] = out[i-1].Mul(x)
	}
	return out
}

// hadamardInstanceFromPi1 derives the per-proof Hadamard instance
// HI = (C_A+γ·C_A', C_B+γ·C_B', C_C+γ·C_1+γ²·C_2) named in §4.7 step 2 —
// the same group elements the NARK verifier (§4.6 steps 4-5) equates
// against commitments to s_A, s_B, s_A∘s_B.
func hadamardInstanceFromPi1(gamma field.Element, pi1 nark.Pi1) hadamard.Instance {
	gammaSq := gamma.Mul(gamma)
	return hadamard.Instance{
		C1: pi1.CA.Add(pi1.CAPrime.Scale(gamma)),
		C2: pi1.CB.Add(pi1.CBPrime.Scale(gamma)),
		C3: pi1.CC.Add(pi1.C1.Scale(gamma)).Add(pi1.C2.Scale(gammaSq)),
	}
}

// perProofGammas replays the per-proof R1CS-side transcript of §4.7 step 1:
// for each proof, absorb the eight π1 commitments into r1csTranscript in the
// order nark.Prove absorbs them, squeeze γ, then reset before moving to the
// next proof — each NARK proof was independently Fiat-Shamir'd, so its γ
// must be rederived from a clean slate (§9, "a domain-separation choice
// rooted in how each proof was independently Fiat-Shamir'd").
func perProofGammas(r1csTranscript *transcript.Transcript, proofs []nark.Proof) []field.Element {
	gammas := make([]field.Element, len(proofs))
	for i, proof := range proofs {
		pi1 := proof.Pi1
		r1csTranscript.AppendPoints([]curve.Element{pi1.CA, pi1.CB, pi1.CC, pi1.CAPrime, pi1.CBPrime, pi1.CCPrime, pi1.C1, pi1.C2})
		gammas[i] = r1csTranscript.Squeeze(1)[0]
		r1csTranscript.Reset()
	}
	return gammas
}

// Prove folds n NARK proofs sharing one R1CS instance into one accumulator,
// implementing §4.7 steps 1-8. accTranscript and r1csTranscript are
// distinct transcript instances per §4.7's two-transcript design (one
// per-proof, reset between proofs; one running across the whole fold for
// β).
func Prove(r r1cs.R1CS, gens commitment.Gens, accTranscript, r1csTranscript *transcript.Transcript, proofs []nark.Proof) (Accumulator, hadamardacc.Proof) {
	n := len(proofs)
	if n < 1 {
		panic("r1csacc: at least one proof is required")
	}

	gammas := perProofGammas(r1csTranscript, proofs)

	hadamardInstances := make([]hadamard.Instance, n)
	hadamardWitnesses := make([]hadamard.Witness, n)
	for i, proof := range proofs {
		hadamardInstances[i] = hadamardInstanceFromPi1(gammas[i], proof.Pi1)

		sWithX := field.Concat(proof.PublicInput, proof.Pi2.S)
		a := r.A.MulVector(r.NumCons, sWithX)
		b := r.B.MulVector(r.NumCons, sWithX)
		hadamardWitnesses[i] = hadamard.Witness{
			A: a, B: b,
			W1: proof.Pi2.SigmaA, W2: proof.Pi2.SigmaB, W3: proof.Pi2.SigmaO,
		}
	}

	hpAcc, hpProof := hadamardacc.Prove(gens, transcript.New([]byte("hadamard-acc-prover")), hadamardInstances, hadamardWitnesses)

	for _, inst := range hadamardInstances {
		accTranscript.AppendPoint(inst.C1)
		accTranscript.AppendPoint(inst.C2)
		accTranscript.AppendPoint(inst.C3)
	}
	beta := accTranscript.Squeeze(1)[0]
	betaPowers := powers(beta, n)

	cX := curve.Identity()
	cA := curve.Identity()
	cB := curve.Identity()
	cC := curve.Identity()
	for i, proof := range proofs {
		cX = cX.Add(gens.Commit(proof.PublicInput, field.Zero()).Scale(betaPowers[i]))
		cA = cA.Add(proof.Pi1.CA.Add(proof.Pi1.CAPrime.Scale(gammas[i])).Scale(betaPowers[i]))
		cB = cB.Add(proof.Pi1.CB.Add(proof.Pi1.CBPrime.Scale(gammas[i])).Scale(betaPowers[i]))
		cC = cC.Add(hadamardInstances[i].C3.Scale(betaPowers[i]))
	}

	x := field.ZeroVector(r.NumInput)
	s := field.ZeroVector(r.NumVars)
	sigmaA, sigmaB, sigmaC := field.Zero(), field.Zero(), field.Zero()
	for i, proof := range proofs {
		for k := range x {
			x[k] = x[k].Add(proof.PublicInput[k].Mul(betaPowers[i]))
		}
		for k := range s {
			s[k] = s[k].Add(proof.Pi2.S[k].Mul(betaPowers[i]))
		}
		sigmaA = sigmaA.Add(proof.Pi2.SigmaA.Mul(betaPowers[i]))
		sigmaB = sigmaB.Add(proof.Pi2.SigmaB.Mul(betaPowers[i]))
		sigmaC = sigmaC.Add(proof.Pi2.SigmaC.Mul(betaPowers[i]))
	}

	acc := Accumulator{
		Instance: Instance{CX: cX, CA: cA, CB: cB, CC: cC, AccHPInstance: hpAcc.Instance},
		Witness:  Witness{X: x, S: s, SigmaA: sigmaA, SigmaB: sigmaB, SigmaC: sigmaC, AccHPWitness: hpAcc.Witness},
	}
	return acc, hpProof
}

// ErrVerificationFailed is the typed rejection returned by Verify, per §7.
var ErrVerificationFailed = errors.New("r1csacc: verification failed")

// Verify mirrors Prove's steps 1-2 and 5-7 — recomputing γᵢ per proof, the
// per-proof Hadamard instances, β, and the folded C_x/C_A/C_B/C_C — then
// delegates the Hadamard-product check to accumulation/hadamard.Verify,
// implementing the §4.7 verifier the original source left as "TBD" (spec.md
// §9 fills it in as a mirror of the prover). publicInputs and accumulatedPi1
// are the public components of the n accumulated NARK proofs (public_input
// and π1 are not secret; only the witness underlying them is), in the same
// order used to produce claimed.
func Verify(accTranscript, r1csTranscript *transcript.Transcript, gens commitment.Gens, claimed Instance, publicInputs [][]field.Element, accumulatedPi1 []nark.Pi1, proof hadamardacc.Proof) error {
	n := len(accumulatedPi1)
	if n < 1 || len(publicInputs) != n {
		return ErrVerificationFailed
	}

	gammas := make([]field.Element, n)
	hadamardInstances := make([]hadamard.Instance, n)
	for i, pi1 := range accumulatedPi1 {
		r1csTranscript.AppendPoints([]curve.Element{pi1.CA, pi1.CB, pi1.CC, pi1.CAPrime, pi1.CBPrime, pi1.CCPrime, pi1.C1, pi1.C2})
		gammas[i] = r1csTranscript.Squeeze(1)[0]
		r1csTranscript.Reset()

		hadamardInstances[i] = hadamardInstanceFromPi1(gammas[i], pi1)
	}

	if err := hadamardacc.Verify(transcript.New([]byte("hadamard-acc-prover")), claimed.AccHPInstance, hadamardInstances, proof); err != nil {
		return fmt.Errorf("r1csacc: hadamard accumulator check failed: %w", err)
	}

	for _, inst := range hadamardInstances {
		accTranscript.AppendPoint(inst.C1)
		accTranscript.AppendPoint(inst.C2)
		accTranscript.AppendPoint(inst.C3)
	}
	beta := accTranscript.Squeeze(1)[0]
	betaPowers := powers(beta, n)

	expectedCX := curve.Identity()
	expectedCA := curve.Identity()
	expectedCB := curve.Identity()
	expectedCC := curve.Identity()
	for i, pi1 := range accumulatedPi1 {
		expectedCX = expectedCX.Add(gens.Commit(publicInputs[i], field.Zero()).Scale(betaPowers[i]))
		expectedCA = expectedCA.Add(pi1.CA.Add(pi1.CAPrime.Scale(gammas[i])).Scale(betaPowers[i]))
		expectedCB = expectedCB.Add(pi1.CB.Add(pi1.CBPrime.Scale(gammas[i])).Scale(betaPowers[i]))
		expectedCC = expectedCC.Add(hadamardInstances[i].C3.Scale(betaPowers[i]))
	}

	if !expectedCX.IsEqual(claimed.CX) || !expectedCA.IsEqual(claimed.CA) ||
		!expectedCB.IsEqual(claimed.CB) || !expectedCC.IsEqual(claimed.CC) {
		return ErrVerificationFailed
	}
	return nil
}
