// Package hadamardacc implements the Hadamard accumulator prover and
// verifier (§4.3, §4.4; components G and H): folding n Hadamard-predicate
// instances/witnesses into one via a bivariate cross-term commitment,
// Fiat-Shamir'd with challenges (mu, nu).
//
// Grounded on original_source/src/accumulation/hadamard/{acc_prover.rs,
// acc_verifier.rs}, with two deviations the design spec mandates over the
// original (§9 open questions):
//   - step 3's cross-term vector is the genuine coefficient-wise
//     convolution of (mu^i * a_i) with the reversed b sequence. The
//     original left this "TODO: Implement polynomial multiplication" and
//     fell back to the un-convolved a-coefficients; that shortcut is not
//     carried over.
//   - both the prover (step 1) and the verifier (§4.4) absorb the 3n
//     instance commitments before squeezing mu, and both absorb the
//     2n-2 proof points before squeezing nu. The original prover omits
//     the first absorption entirely ("TODO: Absorb the accumulator
//     instances") and the verifier omits the second; the spec requires
//     identical absorption on both sides, so this port supplies both.
package hadamardacc

import (
	"errors"

	"github.com/arcadialabs/r1cs-nark-acc/commitment"
	"github.com/arcadialabs/r1cs-nark-acc/curve"
	"github.com/arcadialabs/r1cs-nark-acc/field"
	"github.com/arcadialabs/r1cs-nark-acc/hadamard"
	"github.com/arcadialabs/r1cs-nark-acc/transcript"
)

// Accumulator bundles the folded instance and its opening witness.
type Accumulator struct {
	Instance hadamard.Instance
	Witness  hadamard.Witness
}

// Proof is the 2n-2 low-then-high cross-term commitments (§3 "Hadamard
// accumulation proof").
type Proof struct {
	Low, High []curve.Element
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

// convolve returns the coefficient-wise convolution of a and b, both
// length n, as a length 2n-1 vector: out[k] = Σ_{i+i'=k} a[i]*b[i'].
func convolve(a, b []field.Element) []field.Element {
	n := len(a)
	out := field.ZeroVector(2*n - 1)
	for i := 0; i < n; i++ {
		if a[i].IsZero() {
			continue
		}
		for ip := 0; ip < n; ip++ {
			out[i+ip] = out[i+ip].Add(a[i].Mul(b[ip]))
		}
	}
	return out
}

// absorbInstances appends the 3n commitments of qx to t in (c1,c2,c3)
// order per instance, matching the textual order §4.3 step 1 mandates.
func absorbInstances(t *transcript.Transcript, qx []hadamard.Instance) {
	for _, inst := range qx {
		t.AppendPoint(inst.C1)
		t.AppendPoint(inst.C2)
		t.AppendPoint(inst.C3)
	}
}

// absorbProof appends the low-then-high proof points to t, matching §4.4's
// "absorb the 2n-2 proof points in the same order" requirement.
func absorbProof(t *transcript.Transcript, proof Proof) {
	t.AppendPoints(proof.Low)
	t.AppendPoints(proof.High)
}

// Prove folds n Hadamard instances/witnesses into one accumulator,
// implementing §4.3 steps 1-8.
func Prove(gens commitment.Gens, t *transcript.Transcript, qx []hadamard.Instance, qw []hadamard.Witness) (Accumulator, Proof) {
	n := len(qx)
	if n != len(qw) {
		panic("hadamardacc: instance/witness count mismatch")
	}
	if n < 1 {
		panic("hadamardacc: at least one instance is required")
	}
	l := len(qw[0].A)

	absorbInstances(t, qx)
	mu := t.Squeeze(1)[0]
	muPowers := powers(mu, n)

	// Build the 2n-1 cross-term vectors: t_vecs[k][j] is the coefficient
	// k of the per-index convolution at position j (§4.3 step 3).
	tVecs := make([][]field.Element, 2*n-1)
	for k := range tVecs {
		tVecs[k] = make([]field.Element, l)
	}
	for j := 0; j < l; j++ {
		aCoeffs := make([]field.Element, n)
		bCoeffs := make([]field.Element, n)
		for i, qwI := range qw {
			aCoeffs[i] = qwI.A[j].Mul(muPowers[i])
			bCoeffs[n-1-i] = qwI.B[j]
		}
		product := convolve(aCoeffs, bCoeffs)
		for k := 0; k < 2*n-1; k++ {
			tVecs[k][j] = product[k]
		}
	}

	low := make([]curve.Element, 0, n-1)
	high := make([]curve.Element, 0, n-1)
	for k, tv := range tVecs {
		if k == n-1 {
			continue
		}
		c := gens.Commit(tv, field.Zero())
		if k < n-1 {
			low = append(low, c)
		} else {
			high = append(high, c)
		}
	}
	proof := Proof{Low: low, High: high}

	absorbProof(t, proof)
	nu := t.Squeeze(1)[0]
	nuPowers := powers(nu, n)

	c1 := curve.Identity()
	c2 := curve.Identity()
	for i, qxI := range qx {
		c1 = c1.Add(qxI.C1.Scale(muPowers[i].Mul(nuPowers[i])))
		c2 = c2.Add(qxI.C2.Scale(nuPowers[n-1-i]))
	}

	c3Low := curve.Identity()
	for i := 0; i < n-1; i++ {
		c3Low = c3Low.Add(low[i].Scale(nuPowers[i]))
	}
	c3Mid := curve.Identity()
	for i, qxI := range qx {
		c3Mid = c3Mid.Add(qxI.C3.Scale(muPowers[i]))
	}
	c3Mid = c3Mid.Scale(nuPowers[n-1])
	c3High := curve.Identity()
	nuNPlusI := powers(nu, 2*n-1) // nu^0 .. nu^(2n-2), indexed directly below
	for i := 0; i < n-1; i++ {
		c3High = c3High.Add(high[i].Scale(nuNPlusI[n+i]))
	}
	c3 := c3Low.Add(c3Mid).Add(c3High)

	a := field.ZeroVector(l)
	b := field.ZeroVector(l)
	w1, w2, w3 := field.Zero(), field.Zero(), field.Zero()
	for i, qwI := range qw {
		scaleAI := muPowers[i].Mul(nuPowers[i])
		for j := 0; j < l; j++ {
			a[j] = a[j].Add(qwI.A[j].Mul(scaleAI))
			b[j] = b[j].Add(qwI.B[j].Mul(nuPowers[n-1-i]))
		}
		w1 = w1.Add(qwI.W1.Mul(scaleAI))
		w2 = w2.Add(qwI.W2.Mul(nuPowers[n-1-i]))
		w3 = w3.Add(qwI.W3.Mul(muPowers[i]))
	}
	w3 = w3.Mul(nuPowers[n-1])

	acc := Accumulator{
		Instance: hadamard.Instance{C1: c1, C2: c2, C3: c3},
		Witness:  hadamard.Witness{A: a, B: b, W1: w1, W2: w2, W3: w3},
	}
	return acc, proof
}

// ErrVerificationFailed is the typed rejection returned by Verify, per §7
// ("return a typed rejection; do not leak which equality failed").
var ErrVerificationFailed = errors.New("hadamardacc: verification failed")

// Verify recomputes the fold of §4.3 step 6 from the accumulated instances
// and proof, and checks it matches the claimed accumulator instance,
// implementing §4.4.
func Verify(t *transcript.Transcript, accInstance hadamard.Instance, accumulated []hadamard.Instance, proof Proof) error {
	n := len(accumulated)
	if len(proof.Low) != n-1 || len(proof.High) != n-1 {
		return ErrVerificationFailed
	}

	absorbInstances(t, accumulated)
	mu := t.Squeeze(1)[0]
	muPowers := powers(mu, n)

	absorbProof(t, proof)
	nu := t.Squeeze(1)[0]
	nuPowers := powers(nu, n)

	expectedC1 := curve.Identity()
	expectedC2 := curve.Identity()
	for i, inst := range accumulated {
		expectedC1 = expectedC1.Add(inst.C1.Scale(muPowers[i].Mul(nuPowers[i])))
		expectedC2 = expectedC2.Add(inst.C2.Scale(nuPowers[n-1-i]))
	}

	expectedC3Low := curve.Identity()
	for i := 0; i < n-1; i++ {
		expectedC3Low = expectedC3Low.Add(proof.Low[i].Scale(nuPowers[i]))
	}
	expectedC3Mid := curve.Identity()
	for i, inst := range accumulated {
		expectedC3Mid = expectedC3Mid.Add(inst.C3.Scale(muPowers[i]))
	}
	expectedC3Mid = expectedC3Mid.Scale(nuPowers[n-1])
	expectedC3High := curve.Identity()
	nuExtended := powers(nu, 2*n-1)
	for i := 0; i < n-1; i++ {
		expectedC3High = expectedC3High.Add(proof.High[i].Scale(nuExtended[n+i]))
	}
	expectedC3 := expectedC3Low.Add(expectedC3Mid).Add(expectedC3High)

	if !expectedC1.IsEqual(accInstance.C1) || !expectedC2.IsEqual(accInstance.C2) || !expectedC3.IsEqual(accInstance.C3) {
		return ErrVerificationFailed
	}
	return nil
}
