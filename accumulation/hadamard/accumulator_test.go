package hadamardacc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcadialabs/r1cs-nark-acc/commitment"
	"github.com/arcadialabs/r1cs-nark-acc/curve"
	"github.com/arcadialabs/r1cs-nark-acc/field"
	"github.com/arcadialabs/r1cs-nark-acc/hadamard"
	"github.com/arcadialabs/r1cs-nark-acc/prng"
	"github.com/arcadialabs/r1cs-nark-acc/transcript"
)

// buildInstances mirrors the S4 scenario (§8): n instances of length l,
// a_i[j]=i, b_i[j]=n-i.
func buildInstances(t *testing.T, gens commitment.Gens, n, l int) ([]hadamard.Instance, []hadamard.Witness) {
	t.Helper()
	p, err := prng.New()
	require.NoError(t, err)

	qx := make([]hadamard.Instance, n)
	qw := make([]hadamard.Witness, n)
	for i := 0; i < n; i++ {
		a := make([]field.Element, l)
		b := make([]field.Element, l)
		for j := 0; j < l; j++ {
			a[j] = field.FromUint64(uint64(i))
			b[j] = field.FromUint64(uint64(n - i))
		}
		qx[i], qw[i] = hadamard.Prove(gens, p, a, b)
	}
	return qx, qw
}

// TestAccumulateAndVerify covers §8 invariant 4 / scenario S4: for n>=2
// honestly produced Hadamard witnesses, the accumulator prover and verifier
// agree on (c1,c2,c3).
func TestAccumulateAndVerify(t *testing.T) {
	const n, l = 3, 10
	gens := commitment.New(l, []byte("hadamard-acc-test"))
	qx, qw := buildInstances(t, gens, n, l)

	acc, proof := Prove(gens, transcript.New([]byte("hadamard-acc-test")), qx, qw)

	err := Verify(transcript.New([]byte("hadamard-acc-test")), acc.Instance, qx, proof)
	require.NoError(t, err)
}

// TestAccumulateWitnessOpensClaimedInstance covers §8 invariant 5: the
// folded witness actually opens the folded instance the same way a single
// Hadamard instance/witness pair would.
func TestAccumulateWitnessOpensClaimedInstance(t *testing.T) {
	const n, l = 4, 6
	gens := commitment.New(l, []byte("hadamard-acc-open-test"))
	qx, qw := buildInstances(t, gens, n, l)

	acc, _ := Prove(gens, transcript.New([]byte("hadamard-acc-open-test")), qx, qw)

	require.True(t, gens.Commit(acc.Witness.A, acc.Witness.W1).IsEqual(acc.Instance.C1))
	require.True(t, gens.Commit(acc.Witness.B, acc.Witness.W2).IsEqual(acc.Instance.C2))
	require.True(t, gens.Commit(field.HadamardProduct(acc.Witness.A, acc.Witness.B), acc.Witness.W3).IsEqual(acc.Instance.C3))
}

// TestVerifyRejectsTamperedProofPoint covers §8 invariant 8: replacing any
// one of the 2n-2 accumulation-proof points causes the verifier to reject.
func TestVerifyRejectsTamperedProofPoint(t *testing.T) {
	const n, l = 3, 5
	gens := commitment.New(l, []byte("hadamard-acc-tamper-test"))
	qx, qw := buildInstances(t, gens, n, l)

	acc, proof := Prove(gens, transcript.New([]byte("hadamard-acc-tamper-test")), qx, qw)
	require.NotEmpty(t, proof.Low)

	tamperedLow := append([]curve.Element(nil), proof.Low...)
	tamperedLow[0] = tamperedLow[0].Add(curve.Generator())
	badProof := Proof{Low: tamperedLow, High: proof.High}

	err := Verify(transcript.New([]byte("hadamard-acc-tamper-test")), acc.Instance, qx, badProof)
	require.ErrorIs(t, err, ErrVerificationFailed)
}

func TestVerifyRejectsWrongInstanceCount(t *testing.T) {
	const n, l = 3, 5
	gens := commitment.New(l, []byte("hadamard-acc-count-test"))
	qx, qw := buildInstances(t, gens, n, l)

	acc, proof := Prove(gens, transcript.New([]byte("hadamard-acc-count-test")), qx, qw)

	err := Verify(transcript.New([]byte("hadamard-acc-count-test")), acc.Instance, qx[:n-1], proof)
	require.ErrorIs(t, err, ErrVerificationFailed)
}
